// Package web renders the static informational pages from embedded templates.
package web

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"time"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	PageIndex    = "index"
	PageProtocol = "protocol"
	PageAbout    = "about"
)

// ErrUnknownPage is returned by Render for a page that was not loaded.
var ErrUnknownPage = errors.New("unknown page")

var pageTitles = map[string]string{
	PageIndex:    "首页",
	PageProtocol: "用户协议",
	PageAbout:    "关于再书",
}

// Renderer renders pages by name. It is safe for concurrent use.
type Renderer struct {
	pages map[string]*template.Template
	now   func() time.Time
}

// NewRenderer parses every page together with the shared layout.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{pages: make(map[string]*template.Template, len(pageTitles)), now: time.Now}
	for name := range pageTitles {
		t, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Render executes the named page. Output is buffered so a template error never
// leaves a half-written page.
func (r *Renderer) Render(name string) ([]byte, error) {
	t, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}

	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", struct {
		Title string
		Year  int
	}{pageTitles[name], r.now().Year()})
	if err != nil {
		return nil, fmt.Errorf("render page %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
