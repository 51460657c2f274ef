package formatter

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/kataras/site-colors/pkg/css"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

var sample = []css.Color{
	css.RGB(255, 0, 0),
	css.RGBA(0, 0, 0, 127),
	css.RGB(0, 128, 0),
	css.RGB(255, 0, 0),
}

func TestToMarkdown(t *testing.T) {
	md := ToMarkdown("https://example.com", sample)

	wantContains := []string{
		"# Site Colors - https://example.com",
		"--color-1: #ff0000;",
		"--color-2: #008000;",
		"--color-translucent-1: rgba(0, 0, 0, 0.498);",
		"3 distinct color(s), 4 declaration(s)",
		"| `#ff0000` | `rgba(255, 0, 0, 1)` | 2 |",
		"| `#0000007f` | `rgba(0, 0, 0, 0.498)` | 1 |",
	}
	for _, want := range wantContains {
		if !strings.Contains(md, want) {
			t.Errorf("ToMarkdown() missing %q in:\n%s", want, md)
		}
	}
}

func TestToMarkdownEmpty(t *testing.T) {
	md := ToMarkdown("https://example.com", nil)
	if !strings.Contains(md, "No colors found") {
		t.Errorf("ToMarkdown() with no colors = %q, want a no colors notice", md)
	}
	if strings.Contains(md, "```css") {
		t.Error("ToMarkdown() with no colors should not render a palette block")
	}
}

func TestNewReport(t *testing.T) {
	r := NewReport("https://example.com", sample)

	if r.Declarations != 4 {
		t.Errorf("Declarations = %d, want 4", r.Declarations)
	}
	gotHex := make([]string, 0, len(r.Colors))
	for _, c := range r.Colors {
		gotHex = append(gotHex, c.Hex)
	}
	if diff := cmp.Diff([]string{"#ff0000", "#0000007f", "#008000"}, gotHex); diff != "" {
		t.Errorf("NewReport() colors mismatch (-want +got):\n%s", diff)
	}
	if r.Colors[0].Sources != 2 {
		t.Errorf("Colors[0].Sources = %d, want 2", r.Colors[0].Sources)
	}
}

func TestReportEncoding(t *testing.T) {
	r := NewReport("https://example.com", sample)

	jsonOut, err := ToJSON(r)
	if err != nil {
		t.Fatalf("ToJSON() error = %v", err)
	}
	var fromJSON Report
	if err := json.Unmarshal(jsonOut, &fromJSON); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}
	if diff := cmp.Diff(r, fromJSON); diff != "" {
		t.Errorf("JSON report mismatch (-want +got):\n%s", diff)
	}

	yamlOut, err := ToYAML(r)
	if err != nil {
		t.Fatalf("ToYAML() error = %v", err)
	}
	if !strings.Contains(string(yamlOut), "url: https://example.com") {
		t.Errorf("ToYAML() = %s, want url field", yamlOut)
	}
	var fromYAML Report
	if err := yaml.Unmarshal(yamlOut, &fromYAML); err != nil {
		t.Fatalf("ToYAML() produced invalid YAML: %v", err)
	}
	if diff := cmp.Diff(r, fromYAML); diff != "" {
		t.Errorf("YAML report mismatch (-want +got):\n%s", diff)
	}
}

func TestSortByHue(t *testing.T) {
	in := []css.Color{
		css.RGB(255, 255, 255), // white
		css.RGB(0, 0, 255),     // blue, hue 240
		css.RGB(0, 0, 0),       // black
		css.RGB(0, 255, 0),     // green, hue 120
		css.RGB(255, 0, 0),     // red, hue 0
	}
	want := []css.Color{
		css.RGB(255, 0, 0),
		css.RGB(0, 255, 0),
		css.RGB(0, 0, 255),
		css.RGB(0, 0, 0),
		css.RGB(255, 255, 255),
	}

	got := SortByHue(in)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SortByHue() mismatch (-want +got):\n%s", diff)
	}
	if in[0] != css.RGB(255, 255, 255) {
		t.Error("SortByHue() should not modify its input")
	}
}
