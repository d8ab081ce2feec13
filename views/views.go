package views

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

// Templates mem-parse semua template dashboard. Nama yang dipakai handler:
// "shell", "statistics_panel", "personnel_panel".
func Templates() (*template.Template, error) {
	return template.New("views").ParseFS(files, "templates/*.html")
}
