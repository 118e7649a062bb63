package emit

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v2"
)

// Notes is the optional cheatsheet intro, authored as a markdown file with a
// YAML frontmatter block.
type Notes struct {
	Title    string
	Abstract string
	Body     template.HTML
}

type notesFrontMatter struct {
	Title    string `yaml:"title"`
	Abstract string `yaml:"abstract,omitempty"`
}

// ReadNotes loads and renders the intro file. A missing file is not an error;
// the cheatsheet simply has no intro then.
func ReadNotes(path string) (Notes, bool, error) {
	var notes Notes

	source, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return notes, false, nil
		}
		return notes, false, fmt.Errorf("could not read notes file: %w", err)
	}

	fmSource, mdSource, err := splitFrontMatterSource(source)
	if err != nil {
		return notes, false, fmt.Errorf("read front matter: %w", err)
	}

	if len(fmSource) > 0 {
		fm := notesFrontMatter{}
		if err := yaml.Unmarshal(fmSource, &fm); err != nil {
			return notes, false, fmt.Errorf("parse YAML: %w", err)
		}

		notes.Title = fm.Title
		notes.Abstract = fm.Abstract
	}

	gmark := goldmark.New(goldmark.WithRendererOptions(html.WithUnsafe()))

	var buffer bytes.Buffer
	if err := gmark.Convert(mdSource, &buffer); err != nil {
		return notes, false, fmt.Errorf("render notes markdown: %w", err)
	}

	notes.Body = template.HTML(buffer.String())

	return notes, true, nil
}

// splitFrontMatterSource separates a leading "---" delimited YAML block from
// the markdown body. A document without one is all body.
func splitFrontMatterSource(source []byte) (fm []byte, md []byte, err error) {
	const delimiter = "---"

	s := string(source)
	if !strings.HasPrefix(s, delimiter+"\n") {
		return nil, source, nil
	}

	rest := s[len(delimiter)+1:]
	end := strings.Index(rest, "\n"+delimiter)
	if end < 0 {
		return nil, nil, fmt.Errorf("unterminated front matter block")
	}

	fm = []byte(rest[:end+1])

	md = []byte(rest[end+1+len(delimiter):])
	md = bytes.TrimPrefix(md, []byte("\n"))

	return fm, md, nil
}
