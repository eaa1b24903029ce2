package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler renders the error view for unmatched routes and failed
// handlers. It falls back to a plain text body when the view can't be rendered.
func (h *Handler) HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
	}
	if code != http.StatusNotFound {
		c.Logger().Error(err)
	}

	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(code); err != nil {
			c.Logger().Error(err)
		}
		return
	}

	err = c.Render(code, "error", echo.Map{
		"title":       http.StatusText(code),
		"code":        code,
		"message":     http.StatusText(code),
		"siteInfo":    h.Store.SiteInfo(),
		"currentPage": "error",
	})
	if err == nil {
		return
	}
	c.Logger().Error(err)
	if err := c.String(code, http.StatusText(code)); err != nil {
		c.Logger().Error(err)
	}
}
