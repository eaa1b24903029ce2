package handler

import (
	"blog/content"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) GetPosts(c echo.Context) error {
	return c.Render(http.StatusOK, "index", echo.Map{
		"title":       "Home",
		"posts":       h.Store.Posts(),
		"siteInfo":    h.Store.SiteInfo(),
		"currentPage": "home",
	})
}

func (h *Handler) GetByID(c echo.Context) error {
	p, err := h.Store.LookupPost(c.Param("id"))
	if errors.Is(err, content.ErrPostNotFound) {
		return c.String(http.StatusNotFound, "Post not found")
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "post", echo.Map{
		"title":       p.Title,
		"post":        p,
		"siteInfo":    h.Store.SiteInfo(),
		"currentPage": "post",
	})
}
