package domain

import "time"

// SubmissionKind distinguishes the two form flows the gateway forwards.
type SubmissionKind string

const (
	SubmissionApplication SubmissionKind = "application"
	SubmissionContact     SubmissionKind = "contact"
)

const (
	OutcomeForwarded = "forwarded"
	OutcomeRejected  = "rejected"
)

// ResumeFile is an uploaded resume attached to an application.
type ResumeFile struct {
	Filename string
	Content  []byte
}

// Application is a job application built from form state. Optional fields are
// omitted from the outgoing payload entirely when empty.
type Application struct {
	JobID       string
	Name        string
	Email       string
	Phone       string
	Skills      string
	CoverLetter string
	Resume      *ResumeFile
}

// ContactMessage is a contact-form payload, forwarded to the backend verbatim.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionRecord is one journal entry for a forwarded submission. Form
// submissions are not safe to replay against the backend, so the journal is
// the operator's reconciliation trail.
type SubmissionRecord struct {
	ID          string         `json:"id" bson:"_id,omitempty"`
	Kind        SubmissionKind `json:"kind" bson:"kind"`
	Name        string         `json:"name" bson:"name"`
	Email       string         `json:"email" bson:"email"`
	JobTitle    string         `json:"job_title,omitempty" bson:"job_title,omitempty"`
	Message     string         `json:"message,omitempty" bson:"message,omitempty"`
	Outcome     string         `json:"outcome" bson:"outcome"`
	ForwardedAt time.Time      `json:"forwarded_at" bson:"forwarded_at"`
}
