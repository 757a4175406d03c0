package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mastersolis/site-gateway/internal/core/ports"
)

// RequireSession gates the admin subtree on the presence of a stored
// credential. The check consults only the session store, never the network,
// so a token accepted here is trusted until explicitly cleared by logout.
// Without an active session the protected handler never runs; the caller is
// redirected to loginPath instead.
func RequireSession(store ports.SessionStore, loginPath string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !store.IsActive(c.Request().Context()) {
				return c.Redirect(http.StatusFound, loginPath)
			}
			return next(c)
		}
	}
}
