package handler

import (
	"blog/content"
	"blog/domain"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures the view name and data bag instead of producing HTML.
type recorder struct {
	name  string
	data  echo.Map
	calls int
	err   error
}

func (r *recorder) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	r.name = name
	r.data, _ = data.(echo.Map)
	_, err := io.WriteString(w, "rendered "+name)
	return err
}

func setupTestHandler(t *testing.T) (*echo.Echo, *recorder) {
	t.Helper()
	h := &Handler{Store: content.Sample()}
	rec := &recorder{}

	e := echo.New()
	e.Renderer = rec
	e.HTTPErrorHandler = h.HTTPErrorHandler
	e.GET("/", h.GetPosts)
	e.GET("/about", h.GetAbout)
	e.GET("/post/:id", h.GetByID)

	return e, rec
}

func serve(e *echo.Echo, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}

func TestGetPosts(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodGet, "/")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "index", rec.name)
	assert.Equal(t, "Home", rec.data["title"])
	assert.Equal(t, "home", rec.data["currentPage"])

	posts, ok := rec.data["posts"].([]domain.Post)
	require.True(t, ok)
	require.Len(t, posts, 3)
	assert.Equal(t, "Getting Started with EJS", posts[0].Title)
	assert.Equal(t, content.Sample().Posts(), posts)
}

func TestGetAbout(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodGet, "/about")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "about", rec.name)
	assert.Equal(t, "About", rec.data["title"])
	assert.Equal(t, "about", rec.data["currentPage"])
	assert.NotContains(t, rec.data, "posts")

	site, ok := rec.data["siteInfo"].(domain.SiteInfo)
	require.True(t, ok)
	assert.Equal(t, "My EJS Blog", site.Title)
}

func TestSiteInfo_StableAcrossRequests(t *testing.T) {
	e, rec := setupTestHandler(t)

	serve(e, http.MethodGet, "/")
	home := rec.data
	serve(e, http.MethodGet, "/")
	assert.Equal(t, home, rec.data)

	serve(e, http.MethodGet, "/about")
	assert.Equal(t, home["siteInfo"], rec.data["siteInfo"])
}

func TestGetByID(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodGet, "/post/2")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "post", rec.name)
	assert.Equal(t, "Advanced EJS Techniques", rec.data["title"])
	assert.Equal(t, "post", rec.data["currentPage"])

	post, ok := rec.data["post"].(domain.Post)
	require.True(t, ok)
	assert.Equal(t, "Advanced EJS Techniques", post.Title)
	assert.Equal(t, "Jane Smith", post.Author)
}

func TestGetByID_NotFound(t *testing.T) {
	for _, id := range []string{"99", "abc", "0", "-1", "2abc"} {
		t.Run(id, func(t *testing.T) {
			e, rec := setupTestHandler(t)

			w := serve(e, http.MethodGet, "/post/"+id)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Equal(t, "Post not found", w.Body.String())
			assert.Contains(t, w.Header().Get(echo.HeaderContentType), echo.MIMETextPlain)
			assert.Zero(t, rec.calls, "no view should be rendered")
		})
	}
}

func TestHTTPErrorHandler_UnknownRoute(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodGet, "/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "error", rec.name)
	assert.Equal(t, http.StatusNotFound, rec.data["code"])
	assert.Equal(t, "Not Found", rec.data["message"])
}

func TestHTTPErrorHandler_RenderFailure(t *testing.T) {
	e, rec := setupTestHandler(t)
	rec.err = errors.New("boom")

	w := serve(e, http.MethodGet, "/about")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", w.Body.String())
	assert.Equal(t, 2, rec.calls)
}

func TestHTTPErrorHandler_Head(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodHead, "/nope")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Zero(t, rec.calls)
}

func TestHTTPErrorHandler_MethodNotAllowed(t *testing.T) {
	e, rec := setupTestHandler(t)

	w := serve(e, http.MethodPost, "/about")

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.data["code"])
}
