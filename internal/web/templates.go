package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Templates holds the parsed page templates, each page cloned from
// the shared layout so their "content" blocks do not collide.
type Templates struct {
	pages map[string]*template.Template
}

func LoadTemplates() (*Templates, error) {
	funcMap := template.FuncMap{
		"lower": strings.ToLower,
		"join":  strings.Join,
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
		"seq": func(n int) []int {
			s := make([]int, n)
			for i := range s {
				s[i] = i + 1
			}
			return s
		},
		"dayNumber": func(day string) string {
			return strings.TrimPrefix(day[len(day)-2:], "0")
		},
		"shortDate": func(value string) string {
			for _, layout := range []string{time.RFC3339, "2006-01-02"} {
				if t, err := time.Parse(layout, value); err == nil {
					return t.Format("Jan 2, 2006")
				}
			}
			return value
		},
		"muscles": func() []string { return muscleOptions },
		"volBarHeight": func(value, max float64) int {
			if max == 0 {
				return 4
			}
			return 8 + int(value*100/max)
		},
		"barHeight": func(value, max int) int {
			if max == 0 {
				return 4
			}
			return 8 + value*100/max
		},
		"weightFmt": func(w float64) string {
			if w == float64(int(w)) {
				return fmt.Sprintf("%d", int(w))
			}
			return fmt.Sprintf("%.1f", w)
		},
	}

	base := template.Must(
		template.New("base").Funcs(funcMap).ParseFS(templateFiles, "templates/layout.html"),
	)

	entries, err := templateFiles.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read templates dir: %w", err)
	}

	pages := make(map[string]*template.Template)
	for _, entry := range entries {
		name := entry.Name()
		if name == "layout.html" {
			continue
		}
		page, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base template: %w", err)
		}
		if _, err := page.ParseFS(templateFiles, "templates/"+name); err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[strings.TrimSuffix(name, ".html")] = page
	}

	return &Templates{pages: pages}, nil
}

func (t *Templates) Render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("template %q not found", page)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}
