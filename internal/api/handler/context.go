package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxCallerID extracts the authenticated user id injected by the Auth
// middleware and fast-fails before any service call: a missing id means
// the middleware did not run on this route or the token carried no
// subject — reject with 401 either way.
func ctxCallerID(c echo.Context) (string, error) {
	id, _ := c.Get("user_id").(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return id, nil
}
