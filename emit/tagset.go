package emit

import (
	"hash/fnv"

	"github.com/lucasb-eyer/go-colorful"
)

// TagSet assigns each tag a stable display color for the cheatsheet legend.
// The hue is hashed from the tag name so colors survive rebuilds unchanged.
type TagSet struct {
	colors map[string]colorful.Color
}

func NewTagSet() *TagSet {
	return &TagSet{
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	var (
		c  colorful.Color
		ok bool
	)

	if c, ok = ts.colors[tag]; !ok {
		h := fnv.New32a()
		h.Write([]byte(tag))

		c = colorful.Hsv(float64(h.Sum32()%360), 0.55, 0.85)
		ts.colors[tag] = c
	}

	return c.Hex()
}
