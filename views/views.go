// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/polls/models"
)

// Template names
const (
	IndexTemplate  = "polls/index.html"
	DetailTemplate = "polls/detail.html"
)

// Context keys
const (
	KeyLatestQuestionList = "latest_question_list"
	KeyQuestion           = "question"
	KeyNow                = "now"
)

// Context is the data handed to a template, keyed by name
type Context map[string]any

type Renderer interface {
	Render(w io.Writer, name string, ctx Context) error
}

//go:embed templates
var templateFS embed.FS

var funcs = template.FuncMap{
	"since": since,
	"recent": func(q models.Question, now time.Time) bool {
		return q.WasPublishedRecently(now)
	},
}

// TemplateRenderer renders the embedded HTML templates. Each page is parsed
// together with the base layout so the pages can redefine its blocks.
type TemplateRenderer struct {
	pages map[string]*template.Template
}

var _ Renderer = (*TemplateRenderer)(nil)

func NewTemplateRenderer() (*TemplateRenderer, error) {
	r := &TemplateRenderer{pages: make(map[string]*template.Template)}

	for _, name := range []string{IndexTemplate, DetailTemplate} {
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS,
			"templates/polls/base.html",
			"templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render executes the named page into w
func (r *TemplateRenderer) Render(w io.Writer, name string, ctx Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if err := t.ExecuteTemplate(w, "base", ctx); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}

// since describes t relative to now, e.g. "3 days ago" or "2 hours from now"
func since(t, now time.Time) string {
	return humanize.RelTime(t, now, "ago", "from now")
}
