// Package palette provides named color swatches for the picker and finds the
// swatch perceptually closest to a color.
package palette

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/alexisbeaulieu97/huepick/internal/color"
)

// Swatch is a named palette entry.
type Swatch struct {
	Name   string      `json:"name"`
	Family string      `json:"family,omitempty"`
	Value  color.Value `json:"value"`
}

// Palette is an ordered swatch collection.
type Palette struct {
	swatches []Swatch
	byName   map[string]int
}

// New builds a palette from swatches. Later swatches replace earlier ones of
// the same name while keeping the original position.
func New(swatches ...Swatch) *Palette {
	p := &Palette{byName: make(map[string]int, len(swatches))}
	p.Add(swatches...)
	return p
}

// Default returns the built-in families.
func Default() *Palette {
	var swatches []Swatch
	for _, family := range familyOrder {
		hexes := familyHexes[family]
		for i, hex := range hexes {
			swatches = append(swatches, Swatch{
				Name:   family + "-" + shadeNames[i],
				Family: family,
				Value:  color.MustParse(hex),
			})
		}
	}
	return New(swatches...)
}

// Add appends or replaces swatches by name.
func (p *Palette) Add(swatches ...Swatch) {
	for _, s := range swatches {
		key := strings.ToLower(s.Name)
		if idx, ok := p.byName[key]; ok {
			p.swatches[idx] = s
			continue
		}
		p.byName[key] = len(p.swatches)
		p.swatches = append(p.swatches, s)
	}
}

// Len reports the number of swatches.
func (p *Palette) Len() int {
	return len(p.swatches)
}

// All returns a copy of every swatch in insertion order.
func (p *Palette) All() []Swatch {
	return append([]Swatch(nil), p.swatches...)
}

// Lookup finds a swatch by case-insensitive name.
func (p *Palette) Lookup(name string) (Swatch, bool) {
	idx, ok := p.byName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Swatch{}, false
	}
	return p.swatches[idx], true
}

// Families lists the distinct family names in first-seen order. Swatches
// without a family are grouped under "custom".
func (p *Palette) Families() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, s := range p.swatches {
		family := familyOf(s)
		if _, ok := seen[family]; ok {
			continue
		}
		seen[family] = struct{}{}
		out = append(out, family)
	}
	return out
}

// Family returns the swatches of one family.
func (p *Palette) Family(name string) ([]Swatch, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	var out []Swatch
	for _, s := range p.swatches {
		if familyOf(s) == name {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		families := p.Families()
		sort.Strings(families)
		return nil, fmt.Errorf("unknown palette family %q (available: %s)", name, strings.Join(families, ", "))
	}
	return out, nil
}

// Nearest returns the swatch closest to v by CIEDE2000 distance, with that
// distance. Alpha is ignored. It reports false for an empty palette.
func (p *Palette) Nearest(v color.Value) (Swatch, float64, bool) {
	if len(p.swatches) == 0 {
		return Swatch{}, 0, false
	}

	target := toColorful(v)
	best := 0
	bestDistance := math.Inf(1)
	for i, s := range p.swatches {
		d := target.DistanceCIEDE2000(toColorful(s.Value))
		if d < bestDistance {
			best, bestDistance = i, d
		}
	}
	return p.swatches[best], bestDistance, true
}

func toColorful(v color.Value) colorful.Color {
	return colorful.Color{
		R: float64(v.RGB.R) / 255,
		G: float64(v.RGB.G) / 255,
		B: float64(v.RGB.B) / 255,
	}
}

func familyOf(s Swatch) string {
	if s.Family == "" {
		return "custom"
	}
	return strings.ToLower(s.Family)
}
