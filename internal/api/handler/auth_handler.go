package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// AuthHandler handles admin login and logout against the content backend.
type AuthHandler struct {
	api       ports.SiteAPI
	loginPath string
}

func NewAuthHandler(api ports.SiteAPI, loginPath string) *AuthHandler {
	return &AuthHandler{api: api, loginPath: loginPath}
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the backend and persists the returned token.
//
// @Summary      Admin login
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Admin credentials"
// @Success      200   {object}  map[string]any
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /admin/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	result, err := h.api.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	// The backend response is relayed as-is; a 2xx without a token is the
	// caller's call to judge, same as a missing-token login in the admin UI.
	return relayJSON(c, result.Raw)
}

// Logout clears the stored credential and sends the caller back to the login
// view. No backend call is made.
//
// @Summary      Admin logout
// @Tags         admin
// @Success      302
// @Router       /admin/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.api.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, h.loginPath)
}
