package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"gitlab.com/begraf/ikonwerk/optimize"
)

const spriteStyle = `.ionicon {
  fill: currentColor;
  stroke: currentColor;
}
.ionicon-fill-none {
  fill: none;
}
.ionicon-stroke-width {
  stroke-width: 32px;
}`

// Sprite concatenates every optimized icon into a single hidden inline-symbol
// document. Icons are sorted by identifier, not export name, so fragment ids
// read naturally in the document; the shared style block carries the classes
// the optimizer assigned.
func Sprite(icons []*optimize.OptimizedIcon, version string) []byte {
	sorted := make([]*optimize.OptimizedIcon, len(icons))
	copy(sorted, icons)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var buf bytes.Buffer

	fmt.Fprintf(&buf, "<svg data-ikonwerk=%q style=\"display:none\">\n", version)
	fmt.Fprintf(&buf, "<style>\n%s\n</style>\n", spriteStyle)

	for _, ic := range sorted {
		buf.Write(symbolFragment(ic.Markup, ic.Name))
		buf.WriteByte('\n')
	}

	buf.WriteString("</svg>\n")

	return buf.Bytes()
}

// symbolFragment rewrites a standalone SVG document into a named symbol:
// the root open tag becomes <symbol id="..."> with its attributes kept, the
// close tag becomes </symbol>.
func symbolFragment(markup []byte, name string) []byte {
	s := string(markup)

	s = strings.Replace(s, "<svg", fmt.Sprintf("<symbol id=%q", name), 1)

	if i := strings.LastIndex(s, "</svg>"); i >= 0 {
		s = s[:i] + "</symbol>" + s[i+len("</svg>"):]
	}

	return []byte(s)
}
