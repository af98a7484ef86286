// Package views renders the HTML pages of the café directory. Templates are
// embedded in the binary and parsed once; rendering is a pure function of
// the page name and the data bound to it.
package views

import (
	"embed"
	"html/template"
	"io"
	"sync"

	"github.com/spencergreen21/cafeWebsite/internal/domain"
	"github.com/spencergreen21/cafeWebsite/internal/http/flash"
)

// Page names.
const (
	PageCafes  = "cafes.html"
	PageAdd    = "add.html"
	PageChange = "change.html"
	PageDelete = "delete.html"
)

//go:embed templates/*.html
var files embed.FS

var (
	once   sync.Once
	parsed *template.Template
)

// ListPage is bound to PageCafes.
type ListPage struct {
	Notices []flash.Notice
	Cafes   []domain.Cafe
	Filter  domain.CafeFilter
}

// AddPage is bound to PageAdd. Form echoes the submitted values back after
// a rejected submission.
type AddPage struct {
	Notices []flash.Notice
	Form    CafeForm
}

// CafeForm holds the raw create-form values.
type CafeForm struct {
	Name        string
	MapURL      string
	ImgURL      string
	Location    string
	Seats       string
	CoffeePrice string
	Toilet      bool
	Wifi        bool
	Sockets     bool
	Calls       bool
}

// CafePage is bound to PageChange and PageDelete.
type CafePage struct {
	Notices []flash.Notice
	CafeID  uint64
}

var funcs = template.FuncMap{
	"yesno": func(b bool) string {
		if b {
			return "✔"
		}
		return "✘"
	},
	"price": func(c domain.Cafe) string {
		if p := c.Price(); p != "" {
			return p
		}
		return "—"
	},
}

// Templates returns the parsed template set. It panics if the embedded
// templates are malformed, which is a build defect.
func Templates() *template.Template {
	once.Do(func() {
		parsed = template.Must(template.New("views").Funcs(funcs).ParseFS(files, "templates/*.html"))
	})
	return parsed
}

// Render writes page to w using data.
func Render(w io.Writer, page string, data any) error {
	return Templates().ExecuteTemplate(w, page, data)
}
