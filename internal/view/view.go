// Package view renders the HTML pages with html/template and serves the
// embedded static assets.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"

	"github.com/labstack/echo/v4"

	"github.com/plasmaster09/inventory-webapp-05-handling-forms-post-crud/internal/model"
)

// Page names accepted by Renderer.Render.
const (
	PageList   = "list"
	PageDetail = "detail"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// ListPage is the data for PageList.
type ListPage struct {
	Items []model.Item
}

// DetailPage is the data for PageDetail.
type DetailPage struct {
	Item *model.Item
}

// Renderer implements echo.Renderer. Each page is parsed once together
// with the shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template)}

	for _, page := range []string{PageList, PageDetail} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s template: %w", page, err)
		}

		r.pages[page] = tmpl
	}

	return r, nil
}

// Render writes the named page. Unknown names are an error.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Static returns the embedded static asset tree rooted at its top level.
func Static() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	return sub
}
