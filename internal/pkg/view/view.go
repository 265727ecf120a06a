package view

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

// Data carries the values a template renders.
type Data map[string]any

// Renderer renders a named view with the given data.
type Renderer interface {
	Render(w io.Writer, name string, data Data) error
}

// HTML implements Renderer on top of html/template.
type HTML struct {
	tpl *template.Template
}

// NewHTML parses every template matching pattern from fsys.
func NewHTML(fsys fs.FS, pattern string) (*HTML, error) {
	tpl, err := template.ParseFS(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	return &HTML{tpl: tpl}, nil
}

// Render writes the named template to w.
func (h *HTML) Render(w io.Writer, name string, data Data) error {
	if data == nil {
		data = Data{}
	}

	if rw, ok := w.(http.ResponseWriter); ok {
		if rw.Header().Get("Content-Type") == "" {
			rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		}
	}

	return h.tpl.ExecuteTemplate(w, name, data)
}
