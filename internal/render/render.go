// Package render owns the HTML presentation: embedded templates, the static
// assets, and the helpers templates need.
package render

import (
	"bytes"
	"embed"
	"encoding/base64"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates static
var assets embed.FS

var pages = []string{"signup", "login", "dashboard", "create", "edit"}

// Renderer executes the embedded page templates against the shared layout.
type Renderer struct {
	templates map[string]*template.Template
}

// New parses every page template. A parse failure is a programming error and
// surfaces at startup.
func New() (*Renderer, error) {
	funcs := template.FuncMap{
		"imageSrc": imageSrc,
	}
	templates := make(map[string]*template.Template, len(pages))
	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(assets,
			"templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", page, err)
		}
		templates[page] = t
	}
	return &Renderer{templates: templates}, nil
}

// HTML renders the named page into w. The page is rendered to a buffer first
// so a template failure never emits a half-written response.
func (rd *Renderer) HTML(w http.ResponseWriter, page string, data any) error {
	t, ok := rd.templates[page]
	if !ok {
		return fmt.Errorf("unknown template %q", page)
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("render %s: %w", page, err)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, err := buf.WriteTo(w)
	return err
}

// Static serves the embedded stylesheet and scripts. Mount under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// imageSrc turns an inline image into a data URI for an <img> tag.
func imageSrc(image []byte, ext string) template.URL {
	mime := ext
	if mime == "jpg" {
		mime = "jpeg"
	}
	encoded := base64.StdEncoding.EncodeToString(image)
	return template.URL("data:image/" + mime + ";base64," + encoded)
}
