package ports

import (
	"context"
	"encoding/json"

	"github.com/mastersolis/site-gateway/internal/core/domain"
)

// LoginResult is the backend's login response. Raw carries the full body so
// callers can surface backend-provided detail beyond the token.
type LoginResult struct {
	Token string
	Raw   json.RawMessage
}

// Receipt is an opaque backend acknowledgement for a forwarded submission.
type Receipt struct {
	Raw json.RawMessage
}

// PageRecord is a loosely-shaped admin page document.
type PageRecord map[string]any

// SiteAPI is the typed facade over the content backend. Every operation is a
// single request; nothing here retries.
type SiteAPI interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Logout(ctx context.Context) error
	IsLoggedIn(ctx context.Context) bool

	GetServices(ctx context.Context) ([]domain.Service, error)
	GetProjects(ctx context.Context) ([]domain.Project, error)
	GetPosts(ctx context.Context) ([]domain.Post, error)
	// GetPost returns nil (not an error) when no post matches id.
	GetPost(ctx context.Context, id string) (*domain.Post, error)
	GetJobs(ctx context.Context) ([]domain.Job, error)

	SubmitApplication(ctx context.Context, app domain.Application) (Receipt, error)
	SendMessage(ctx context.Context, msg domain.ContactMessage) (Receipt, error)

	ListApplications(ctx context.Context) (json.RawMessage, error)
	ListMessages(ctx context.Context) (json.RawMessage, error)
	CreateJob(ctx context.Context, job domain.Job) (Receipt, error)
	UpdatePage(ctx context.Context, name string, content PageRecord) (Receipt, error)
}
