package formatter

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/kataras/site-colors/pkg/css"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// Report is the machine readable form of a scrape result.
type Report struct {
	URL          string        `json:"url" yaml:"url"`
	Declarations int           `json:"declarations" yaml:"declarations"`
	Colors       []ReportColor `json:"colors" yaml:"colors"`
}

// ReportColor describes one distinct color and how many stylesheets declared it.
type ReportColor struct {
	Hex     string `json:"hex" yaml:"hex"`
	RGBA    string `json:"rgba" yaml:"rgba"`
	R       uint8  `json:"r" yaml:"r"`
	G       uint8  `json:"g" yaml:"g"`
	B       uint8  `json:"b" yaml:"b"`
	A       uint8  `json:"a" yaml:"a"`
	Sources int    `json:"sources" yaml:"sources"`
}

// Unique returns the distinct colors in order of first appearance.
func Unique(colors []css.Color) []css.Color {
	return lo.Uniq(colors)
}

// NewReport collapses duplicate colors, keeping the order in which they were first seen.
func NewReport(url string, colors []css.Color) Report {
	counts := lo.CountValues(colors)
	return Report{
		URL:          url,
		Declarations: len(colors),
		Colors: lo.Map(Unique(colors), func(c css.Color, _ int) ReportColor {
			return ReportColor{
				Hex:     c.Hex(),
				RGBA:    c.String(),
				R:       c.R,
				G:       c.G,
				B:       c.B,
				A:       c.A,
				Sources: counts[c],
			}
		}),
	}
}

// ToJSON encodes the report as indented JSON.
func ToJSON(r Report) ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode json report: %w", err)
	}
	return append(b, '\n'), nil
}

// ToYAML encodes the report as YAML.
func ToYAML(r Report) ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode yaml report: %w", err)
	}
	return b, nil
}

// grayThreshold is the HSL saturation below which a color is treated as a gray.
const grayThreshold = 0.05

// SortByHue returns a copy of colors ordered around the color wheel, grays last from dark to light.
func SortByHue(colors []css.Color) []css.Color {
	type keyed struct {
		color   css.Color
		h, s, l float64
	}

	items := lo.Map(colors, func(c css.Color, _ int) keyed {
		h, s, l := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hsl()
		return keyed{color: c, h: h, s: s, l: l}
	})

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		aGray, bGray := a.s < grayThreshold, b.s < grayThreshold
		switch {
		case aGray != bGray:
			return bGray
		case aGray:
			return a.l < b.l
		case a.h != b.h:
			return a.h < b.h
		default:
			return a.l < b.l
		}
	})

	return lo.Map(items, func(k keyed, _ int) css.Color { return k.color })
}
