package emit

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"sort"

	"gitlab.com/begraf/ikonwerk/optimize"
	"gitlab.com/begraf/ikonwerk/res"
)

// CheatsheetOptions collects the inputs of the cheatsheet page.
type CheatsheetOptions struct {
	Version string

	// Sprite is the assembled symbol document; it is appended to the page so
	// the per-icon references resolve without a second request.
	Sprite []byte

	// NotesPath optionally points at a markdown intro; TemplatePath optionally
	// overrides the embedded page template.
	NotesPath    string
	TemplatePath string

	// Tags feeds the colored tag legend.
	Tags []string
}

// Cheatsheet renders the browsable icon overview page.
func Cheatsheet(icons []*optimize.OptimizedIcon, opts CheatsheetOptions) ([]byte, error) {
	notes, _, err := ReadNotes(opts.NotesPath)
	if err != nil {
		return nil, err
	}

	data := cheatsheetData{
		Version: opts.Version,
		Count:   len(icons),
		Content: cheatsheetContent(icons, opts.Sprite),
		Notes:   notes,
		Tags:    opts.Tags,
	}

	tmpl, err := readCheatsheetTemplate(opts.TemplatePath, data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, nil); err != nil {
		return nil, fmt.Errorf("could not execute template: %w", err)
	}

	return buf.Bytes(), nil
}

// cheatsheetContent emits one symbol reference per icon in sprite order,
// followed by the sprite itself.
func cheatsheetContent(icons []*optimize.OptimizedIcon, sprite []byte) template.HTML {
	sorted := make([]*optimize.OptimizedIcon, len(icons))
	copy(sorted, icons)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var buf bytes.Buffer

	for _, ic := range sorted {
		fmt.Fprintf(
			&buf,
			"<div class=\"entry\" title=%q><svg class=\"icon\"><use href=\"#%s\" xlink:href=\"#%s\"></use></svg><span>%s</span></div>\n",
			ic.Name, ic.Name, ic.Name, ic.Name,
		)
	}

	buf.Write(sprite)

	return template.HTML(buf.String())
}

func readCheatsheetTemplate(path string, data cheatsheetData) (*template.Template, error) {
	funcMap := makeTemplateFuncmap(data)

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			tmpl, err := template.New("cheatsheet.html").Funcs(funcMap).ParseFiles(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load cheatsheet template: %w", err)
			}
			return tmpl, nil
		}
	}

	tmpl, err := template.New("cheatsheet.html").Funcs(funcMap).ParseFS(res.Templates, "templates/cheatsheet.html")
	if err != nil {
		return nil, fmt.Errorf("failed to load embedded template: %w", err)
	}

	return tmpl, nil
}
