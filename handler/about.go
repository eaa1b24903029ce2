package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetAbout(c echo.Context) error {
	return c.Render(http.StatusOK, "about", echo.Map{
		"title":       "About",
		"siteInfo":    h.Store.SiteInfo(),
		"currentPage": "about",
	})
}
