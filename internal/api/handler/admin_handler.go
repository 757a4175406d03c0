package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// JournalReader lists recent submission journal entries. Satisfied by the
// Mongo submission repository; the route is only registered when a journal is
// configured.
type JournalReader interface {
	ListRecent(ctx context.Context, kind domain.SubmissionKind, limit int64) ([]domain.SubmissionRecord, error)
}

// AdminHandler serves the session-guarded admin views. Every route here sits
// behind the session middleware; handlers can assume an active session, though
// the backend may still reject a stale token on any call.
type AdminHandler struct {
	api     ports.SiteAPI
	journal JournalReader
}

func NewAdminHandler(api ports.SiteAPI, journal JournalReader) *AdminHandler {
	return &AdminHandler{api: api, journal: journal}
}

// Index handles GET /admin: the subtree root forwards to the dashboard.
func (h *AdminHandler) Index(c echo.Context) error {
	return c.Redirect(http.StatusFound, "/admin/dashboard")
}

type dashboardResponse struct {
	LoggedIn bool `json:"logged_in"`
	Posts    int  `json:"posts"`
	Jobs     int  `json:"jobs"`
}

// Dashboard handles GET /admin/dashboard.
//
// @Summary      Admin dashboard summary
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      502  {object}  map[string]string
// @Router       /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	posts, err := h.api.GetPosts(ctx)
	if err != nil {
		return err
	}
	jobs, err := h.api.GetJobs(ctx)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, dashboardResponse{
		LoggedIn: h.api.IsLoggedIn(ctx),
		Posts:    len(posts),
		Jobs:     len(jobs),
	})
}

// Posts handles GET /admin/posts.
//
// @Summary      List blog posts (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Post
// @Router       /admin/posts [get]
func (h *AdminHandler) Posts(c echo.Context) error {
	posts, err := h.api.GetPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Jobs handles GET /admin/jobs.
//
// @Summary      List jobs (admin)
// @Tags         admin
// @Produce      json
// @Success      200  {array}   domain.Job
// @Router       /admin/jobs [get]
func (h *AdminHandler) Jobs(c echo.Context) error {
	jobs, err := h.api.GetJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}

type createJobRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Skills      string `json:"skills"`
}

// CreateJob handles POST /admin/jobs.
//
// @Summary      Create a job posting
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createJobRequest  true  "Job posting"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /admin/jobs [post]
func (h *AdminHandler) CreateJob(c echo.Context) error {
	var req createJobRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	receipt, err := h.api.CreateJob(c.Request().Context(), domain.Job{
		Title:       req.Title,
		Description: req.Description,
		Skills:      req.Skills,
	})
	if err != nil {
		return err
	}
	return relayJSON(c, receipt.Raw)
}

// Applications handles GET /admin/applications, relaying the backend's
// normalized application list.
//
// @Summary      List received applications
// @Tags         admin
// @Produce      json
// @Success      200  {array}   map[string]any
// @Router       /admin/applications [get]
func (h *AdminHandler) Applications(c echo.Context) error {
	raw, err := h.api.ListApplications(c.Request().Context())
	if err != nil {
		return err
	}
	return relayJSON(c, raw)
}

// Messages handles GET /admin/messages.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Success      200  {array}   map[string]any
// @Router       /admin/messages [get]
func (h *AdminHandler) Messages(c echo.Context) error {
	raw, err := h.api.ListMessages(c.Request().Context())
	if err != nil {
		return err
	}
	return relayJSON(c, raw)
}

// UpdatePage handles POST /admin/pages/:name with a loosely-shaped page
// document relayed to the backend.
//
// @Summary      Create or update a site page
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        name  path      string          true  "Page name"
// @Param        body  body      map[string]any  true  "Page content"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Router       /admin/pages/{name} [post]
func (h *AdminHandler) UpdatePage(c echo.Context) error {
	var content ports.PageRecord
	if err := c.Bind(&content); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}

	receipt, err := h.api.UpdatePage(c.Request().Context(), c.Param("name"), content)
	if err != nil {
		return err
	}
	return relayJSON(c, receipt.Raw)
}

// Journal handles GET /admin/journal. It reads the gateway's own submission
// trail, used to reconcile suspected duplicate applications.
//
// @Summary      List journaled submissions
// @Tags         admin
// @Produce      json
// @Param        kind  query     string  false  "application (default) or contact"
// @Success      200   {array}   domain.SubmissionRecord
// @Router       /admin/journal [get]
func (h *AdminHandler) Journal(c echo.Context) error {
	kind := domain.SubmissionKind(c.QueryParam("kind"))
	if kind == "" {
		kind = domain.SubmissionApplication
	}

	records, err := h.journal.ListRecent(c.Request().Context(), kind, 50)
	if err != nil {
		return err
	}
	if records == nil {
		records = []domain.SubmissionRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
