package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mastersolis/site-gateway/internal/core/domain"
	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// ContentHandler serves the public content views: services, projects, blog,
// and careers. Each is a thin read-through to the backend facade.
type ContentHandler struct {
	api ports.SiteAPI
}

func NewContentHandler(api ports.SiteAPI) *ContentHandler {
	return &ContentHandler{api: api}
}

// Services handles GET /services.
//
// @Summary      List services
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Service
// @Failure      502  {object}  map[string]string
// @Router       /services [get]
func (h *ContentHandler) Services(c echo.Context) error {
	services, err := h.api.GetServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// Projects handles GET /projects.
//
// @Summary      List projects
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Project
// @Failure      502  {object}  map[string]string
// @Router       /projects [get]
func (h *ContentHandler) Projects(c echo.Context) error {
	projects, err := h.api.GetProjects(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projects)
}

// Posts handles GET /blog.
//
// @Summary      List blog posts
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Post
// @Failure      502  {object}  map[string]string
// @Router       /blog [get]
func (h *ContentHandler) Posts(c echo.Context) error {
	posts, err := h.api.GetPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, posts)
}

// Post handles GET /blog/:id.
//
// @Summary      Get one blog post
// @Tags         content
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  domain.Post
// @Failure      404  {object}  map[string]string
// @Router       /blog/{id} [get]
func (h *ContentHandler) Post(c echo.Context) error {
	post, err := h.api.GetPost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	if post == nil {
		return domain.ErrPostNotFound
	}
	return c.JSON(http.StatusOK, post)
}

// Jobs handles GET /careers.
//
// @Summary      List open positions
// @Tags         content
// @Produce      json
// @Success      200  {array}   domain.Job
// @Failure      502  {object}  map[string]string
// @Router       /careers [get]
func (h *ContentHandler) Jobs(c echo.Context) error {
	jobs, err := h.api.GetJobs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobs)
}
