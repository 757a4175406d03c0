package handler

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
)

// relayJSON writes a backend JSON body through unchanged. A backend body that
// was not JSON relays as an empty object rather than an empty response.
func relayJSON(c echo.Context, raw json.RawMessage) error {
	if len(raw) == 0 {
		return c.JSON(http.StatusOK, map[string]any{})
	}
	return c.JSONBlob(http.StatusOK, raw)
}
