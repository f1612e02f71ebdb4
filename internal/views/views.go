// Package views renders the server-side pages. Every page is the shared
// layout with its own "content" block.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/anonto42/localflow/internal/catalog"
	"github.com/anonto42/localflow/internal/search"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// Nav is what the navigation shell needs on every page.
type Nav struct {
	IsLoggedIn       bool
	ProfileID        string
	Username         string
	Avatar           string
	HasNotifications bool
	HasMessages      bool
	Theme            string
	SearchText       string
	Path             string
}

// Page wraps page-specific data with the navigation shell.
type Page struct {
	Title string
	Nav   Nav
	Data  interface{}
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	r := &Renderer{pages: make(map[string]*template.Template)}
	for _, file := range files {
		if file == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(file), ".html")
		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, layoutFile, file)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		r.pages[name] = tmpl
	}
	return r, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("views: no page %q", name)
	}
	return tmpl.ExecuteTemplate(w, "layout.html", data)
}

// Has reports whether a page template exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

var funcs = template.FuncMap{
	"regions":       func() []string { return catalog.Regions },
	"citiesFor":     catalog.CitiesFor,
	"themes":        func() []string { return catalog.Themes },
	"subThemesFor":  catalog.SubThemesFor,
	"seasons":       func() []string { return catalog.Seasons },
	"groupSizes":    func() []string { return catalog.GroupSizes },
	"walkingLevels": func() []string { return catalog.WalkingLevels },
	"currencies":    func() []string { return catalog.Currencies },
	"visibilities":  func() []string { return []string{"public", "private", "friends"} },
	"quickDays":     func() []int { return search.QuickSelectDays },
	"joinTags":      func(tags []string) string { return strings.Join(tags, ", ") },
	"add":           func(a, b int) int { return a + b },
	"stepNumbers":   func() []int { return []int{1, 2, 3, 4} },
	"dateValue": func(f search.DateRange, which string) string {
		t := f.Start
		if which == "end" {
			t = f.End
		}
		if t.IsZero() {
			return ""
		}
		return t.Format(search.DateLayout)
	},
}
