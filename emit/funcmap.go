package emit

import (
	"html/template"
	"time"

	"github.com/goodsign/monday"
)

// cheatsheetData is everything the cheatsheet template may reference through
// its funcmap. The placeholders (version, count, content) are funcs so a
// hand-written template stays a plain html/template file.
type cheatsheetData struct {
	Version string
	Count   int
	Content template.HTML
	Notes   Notes
	Tags    []string
}

func makeTemplateFuncmap(data cheatsheetData) template.FuncMap {
	tagSet := NewTagSet()

	return template.FuncMap{
		"version": func() string { return data.Version },
		"count":   func() int { return data.Count },
		"content": func() template.HTML { return data.Content },

		"introTitle":    func() string { return data.Notes.Title },
		"introAbstract": func() string { return data.Notes.Abstract },
		"intro":         func() template.HTML { return data.Notes.Body },

		"tags": func() []string { return data.Tags },
		"tagColor": func(tag string) string {
			return tagSet.HexColor(tag)
		},

		"generatedDisplay": func() string {
			return monday.Format(time.Now(), "January 2, 2006", monday.LocaleEnUS)
		},
	}
}
