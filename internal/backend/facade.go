package backend

import (
	"context"
	"encoding/json"
	"net/url"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

var emptyList = json.RawMessage("[]")

// Facade is the typed API over the content backend, composing the transport
// client with list normalization and per-resource decoding.
type Facade struct {
	client   *Client
	sessions ports.SessionStore
	log      zerolog.Logger
}

var _ ports.SiteAPI = (*Facade)(nil)

func NewFacade(client *Client, sessions ports.SessionStore, log zerolog.Logger) *Facade {
	return &Facade{client: client, sessions: sessions, log: log}
}

// Login posts credentials and persists the returned token, when present,
// before handing the full response back. A missing token with a 2xx status is
// not an error here; callers decide what that means.
func (f *Facade) Login(ctx context.Context, email, password string) (ports.LoginResult, error) {
	payload, err := f.client.PostJSON(ctx, "/api/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return ports.LoginResult{}, err
	}

	result := ports.LoginResult{Raw: payload.JSON}
	if payload.IsJSON() {
		var body struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(payload.JSON, &body); err == nil {
			result.Token = body.Token
		}
	}

	if result.Token != "" {
		if err := f.sessions.Set(ctx, result.Token); err != nil {
			f.log.Warn().Err(err).Msg("failed to persist session token; session will not survive restart")
		}
		f.logTokenExpiry(result.Token)
	}
	return result, nil
}

// Logout clears the stored credential. No network call is made.
func (f *Facade) Logout(ctx context.Context) error {
	return f.sessions.Set(ctx, "")
}

func (f *Facade) IsLoggedIn(ctx context.Context) bool {
	return f.sessions.IsActive(ctx)
}

func (f *Facade) GetServices(ctx context.Context) ([]domain.Service, error) {
	payload, err := f.client.Get(ctx, "/api/pages/services")
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Service](extractField(payload.JSON, "services", emptyList))
}

func (f *Facade) GetProjects(ctx context.Context) ([]domain.Project, error) {
	payload, err := f.client.Get(ctx, "/api/pages/projects")
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Project](extractField(payload.JSON, "projects", emptyList))
}

func (f *Facade) GetPosts(ctx context.Context) ([]domain.Post, error) {
	payload, err := f.client.Get(ctx, "/api/blog")
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Post](payload.JSON)
}

// GetPost fetches the full post list and scans for the first id match.
// Absence is nil, not an error. Linear on purpose; the corpus is small and
// this is not a caching layer.
func (f *Facade) GetPost(ctx context.Context, id string) (*domain.Post, error) {
	posts, err := f.GetPosts(ctx)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if posts[i].ID.String() == id {
			return &posts[i], nil
		}
	}
	return nil, nil
}

func (f *Facade) GetJobs(ctx context.Context) ([]domain.Job, error) {
	payload, err := f.client.Get(ctx, "/api/jobs")
	if err != nil {
		return nil, err
	}
	return DecodeList[domain.Job](payload.JSON)
}

// SubmitApplication forwards a job application as multipart form data. The
// backend expects the job under job_title. Optional fields are omitted
// entirely when empty, never sent blank. Not safe to retry.
func (f *Facade) SubmitApplication(ctx context.Context, app domain.Application) (ports.Receipt, error) {
	form := NewMultipartPayload()
	form.AddField("name", app.Name)
	form.AddField("email", app.Email)
	form.AddField("job_title", app.JobID)
	if app.Phone != "" {
		form.AddField("phone", app.Phone)
	}
	if app.Skills != "" {
		form.AddField("desired_skills", app.Skills)
	}
	if app.CoverLetter != "" {
		form.AddField("cover_letter", app.CoverLetter)
	}
	if app.Resume != nil {
		form.AddFile("resume", app.Resume.Filename, app.Resume.Content)
	}

	payload, err := f.client.PostMultipart(ctx, "/api/apply", form)
	if err != nil {
		return ports.Receipt{}, err
	}
	return ports.Receipt{Raw: payload.JSON}, nil
}

// SendMessage forwards a contact-form payload verbatim.
func (f *Facade) SendMessage(ctx context.Context, msg domain.ContactMessage) (ports.Receipt, error) {
	payload, err := f.client.PostJSON(ctx, "/api/contact", msg)
	if err != nil {
		return ports.Receipt{}, err
	}
	return ports.Receipt{Raw: payload.JSON}, nil
}

func (f *Facade) ListApplications(ctx context.Context) (json.RawMessage, error) {
	payload, err := f.client.Get(ctx, "/api/admin/applications")
	if err != nil {
		return nil, err
	}
	return NormalizeList(payload.JSON), nil
}

func (f *Facade) ListMessages(ctx context.Context) (json.RawMessage, error) {
	payload, err := f.client.Get(ctx, "/api/admin/messages")
	if err != nil {
		return nil, err
	}
	return NormalizeList(payload.JSON), nil
}

func (f *Facade) CreateJob(ctx context.Context, job domain.Job) (ports.Receipt, error) {
	payload, err := f.client.PostJSON(ctx, "/api/jobs", job)
	if err != nil {
		return ports.Receipt{}, err
	}
	return ports.Receipt{Raw: payload.JSON}, nil
}

func (f *Facade) UpdatePage(ctx context.Context, name string, content ports.PageRecord) (ports.Receipt, error) {
	payload, err := f.client.PostJSON(ctx, "/api/admin/pages/"+url.PathEscape(name), content)
	if err != nil {
		return ports.Receipt{}, err
	}
	return ports.Receipt{Raw: payload.JSON}, nil
}

// logTokenExpiry is observability only: the backend may issue JWTs or opaque
// tokens, so a parse failure is the normal case and stays at debug level. The
// guard never consults expiry; a stored token is trusted until cleared.
func (f *Facade) logTokenExpiry(token string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		f.log.Debug().Msg("session token is not a JWT; expiry unknown")
		return
	}
	if claims.ExpiresAt != nil {
		f.log.Info().Time("expires_at", claims.ExpiresAt.Time).Msg("session token carries an expiry")
	}
}
