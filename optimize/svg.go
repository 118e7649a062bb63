package optimize

import (
	"bytes"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"gitlab.com/begraf/ikonwerk/data/icon"
)

// Shared CSS classes referenced by the sprite-level style block.
const (
	ClassIcon        = "ionicon"
	ClassFillNone    = "ionicon-fill-none"
	ClassStrokeWidth = "ionicon-stroke-width"
)

// Icons are drawn with a 32-unit stroke in the source files; that width moves
// into the shared stroke-width class so consumers can override it.
const sourceStrokeWidth = "32"

// OptimizedIcon is the post-optimization form of an icon. Builders downstream
// of the optimizer consume this type only, so unoptimized markup can never
// leak into an artifact.
type OptimizedIcon struct {
	*icon.Icon

	// Markup is the normalized standalone SVG document.
	Markup []byte
}

// Icon normalizes a single icon's source markup.
//
// Presentation attributes move into the shared classes: any fill is dropped
// (fill="none" is remembered via the fill-none class), strokes are dropped,
// and the canonical stroke-width is replaced by its class. Inline style and
// script elements are stripped, as are the root's explicit dimensions, so the
// icon scales with its container.
func Icon(ic *icon.Icon) (*OptimizedIcon, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(ic.Source))
	if err != nil {
		return nil, fmt.Errorf("parse '%s': %w", ic.FileName, err)
	}

	root := doc.Find("svg").First()
	if root.Length() == 0 {
		return nil, fmt.Errorf("'%s' contains no svg root element", ic.FileName)
	}

	root.Find("style,script").Remove()

	elements := root.Find("*").AddSelection(root)
	elements.Each(func(i int, s *goquery.Selection) {
		if fill, ok := s.Attr("fill"); ok {
			s.RemoveAttr("fill")
			if fill == "none" {
				s.AddClass(ClassFillNone)
			}
		}

		s.RemoveAttr("stroke")

		if width, ok := s.Attr("stroke-width"); ok && width == sourceStrokeWidth {
			s.RemoveAttr("stroke-width")
			s.AddClass(ClassStrokeWidth)
		}
	})

	root.AddClass(ClassIcon)
	root.RemoveAttr("width")
	root.RemoveAttr("height")

	markup, err := goquery.OuterHtml(root)
	if err != nil {
		return nil, fmt.Errorf("serialize '%s': %w", ic.FileName, err)
	}

	return &OptimizedIcon{
		Icon:   ic,
		Markup: []byte(markup),
	}, nil
}
