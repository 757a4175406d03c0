package ports

import (
	"context"

	"github.com/mastersolis/site-gateway/internal/core/domain"
)

// SubmissionJournal records forwarded form submissions for reconciliation.
// Journal failures must never surface to the submitting user.
type SubmissionJournal interface {
	Record(ctx context.Context, rec domain.SubmissionRecord) error
}
