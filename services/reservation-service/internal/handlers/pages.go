package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

type pages struct {
	list *template.Template
	form *template.Template
}

func parsePages() (*pages, error) {
	list, err := template.ParseFS(templateFS, "templates/layout.html", "templates/list.html")
	if err != nil {
		return nil, err
	}
	form, err := template.ParseFS(templateFS, "templates/layout.html", "templates/form.html")
	if err != nil {
		return nil, err
	}
	return &pages{list: list, form: form}, nil
}

// render buffers the page so a template failure never leaves a half-written 200.
func render(w http.ResponseWriter, tmpl *template.Template, name string, status int, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
