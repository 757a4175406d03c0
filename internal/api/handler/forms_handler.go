package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// FormsHandler forwards job applications and contact messages to the backend,
// journaling each forwarded submission.
// Required-field validation happens here, before any backend request is
// issued; the backend never sees an incomplete form.
type FormsHandler struct {
	api     ports.SiteAPI
	journal ports.SubmissionJournal
	log     zerolog.Logger
}

func NewFormsHandler(api ports.SiteAPI, journal ports.SubmissionJournal, log zerolog.Logger) *FormsHandler {
	return &FormsHandler{api: api, journal: journal, log: log}
}

type applyRequest struct {
	JobID       string `validate:"required"`
	Name        string `validate:"required"`
	Email       string `validate:"required,email"`
	Phone       string
	Skills      string
	CoverLetter string
}

type contactRequest struct {
	Name    string `json:"name"    validate:"required"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required"`
}

// Apply handles POST /apply (multipart form).
//
// @Summary      Submit a job application
// @Tags         forms
// @Accept       multipart/form-data
// @Produce      json
// @Param        job_id        formData  string  true   "Job id from the careers listing"
// @Param        name          formData  string  true   "Applicant name"
// @Param        email         formData  string  true   "Applicant email"
// @Param        phone         formData  string  false  "Phone number"
// @Param        skills        formData  string  false  "Comma-separated skills"
// @Param        cover_letter  formData  string  false  "Cover letter"
// @Param        resume        formData  file    false  "Resume file"
// @Success      200  {object}  map[string]any
// @Failure      400  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /apply [post]
func (h *FormsHandler) Apply(c echo.Context) error {
	req := applyRequest{
		JobID:       c.FormValue("job_id"),
		Name:        c.FormValue("name"),
		Email:       c.FormValue("email"),
		Phone:       c.FormValue("phone"),
		Skills:      c.FormValue("skills"),
		CoverLetter: c.FormValue("cover_letter"),
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	resume, err := readResume(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "resume could not be read"})
	}

	app := domain.Application{
		JobID:       req.JobID,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Skills:      req.Skills,
		CoverLetter: req.CoverLetter,
		Resume:      resume,
	}

	receipt, err := h.api.SubmitApplication(c.Request().Context(), app)
	h.record(c, domain.SubmissionRecord{
		Kind:     domain.SubmissionApplication,
		Name:     app.Name,
		Email:    app.Email,
		JobTitle: app.JobID,
		Outcome:  outcome(err),
	})
	if err != nil {
		return err
	}

	return relayJSON(c, receipt.Raw)
}

// Contact handles POST /contact (JSON).
//
// @Summary      Send a contact message
// @Tags         forms
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Message"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /contact [post]
func (h *FormsHandler) Contact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	receipt, err := h.api.SendMessage(c.Request().Context(), domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	h.record(c, domain.SubmissionRecord{
		Kind:    domain.SubmissionContact,
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Outcome: outcome(err),
	})
	if err != nil {
		return err
	}

	return relayJSON(c, receipt.Raw)
}

// readResume extracts the optional resume file part. Absence is not an error.
func readResume(c echo.Context) (*domain.ResumeFile, error) {
	fh, err := c.FormFile("resume")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &domain.ResumeFile{Filename: fh.Filename, Content: content}, nil
}

func (h *FormsHandler) record(c echo.Context, rec domain.SubmissionRecord) {
	rec.ForwardedAt = time.Now().UTC()
	if err := h.journal.Record(c.Request().Context(), rec); err != nil {
		h.log.Warn().Err(err).Str("kind", string(rec.Kind)).Msg("submission journal write failed")
	}
}

func outcome(err error) string {
	if err != nil {
		return domain.OutcomeRejected
	}
	return domain.OutcomeForwarded
}
