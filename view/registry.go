// Package view renders the blog pages. Every page is parsed together with the
// shared base.html layout and executed through it.
package view

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layout = "base.html"

var pages = []string{"index", "about", "post", "error"}

// Registry implements echo.Renderer over the embedded views.
type Registry struct {
	templates map[string]*template.Template
}

func New() (*Registry, error) {
	funcs := template.FuncMap{
		"markdown": SafeMarkdown,
		"plain":    Plain,
	}

	t := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		tmpl, err := template.New(page).Funcs(funcs).ParseFS(templateFS,
			"templates/"+layout,
			"templates/"+page+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing view %q: %w", page, err)
		}
		t[page] = tmpl
	}

	return &Registry{templates: t}, nil
}

func (r *Registry) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return errors.New("template not found: " + name)
	}

	return tmpl.ExecuteTemplate(w, layout, data)
}
