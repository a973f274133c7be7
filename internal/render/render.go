package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	log "github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer writes server-rendered pages from the embedded template
// set. Handlers stay independent of the templating mechanism: they
// hand over a status, a template name and a context value.
type Renderer struct {
	tmpl *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// HTML renders the named template with data. The page is executed
// into a buffer first so a template failure can still produce a clean
// 500 instead of a half-written body.
func (r *Renderer) HTML(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		log.WithError(err).WithFields(log.Fields{"template": name}).Error("template execution failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

type errorPage struct {
	Status  int
	Message string
}

// Error renders the error page with the given status and message.
func (r *Renderer) Error(w http.ResponseWriter, status int, message string) {
	r.HTML(w, status, "error.html", errorPage{Status: status, Message: message})
}
