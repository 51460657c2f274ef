package css

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractSingleColor(t *testing.T) {
	tests := []struct {
		name string
		css  string
		want Color
	}{
		// Hex.
		{name: "3 digit black", css: "#000", want: RGB(0, 0, 0)},
		{name: "3 digit white", css: "#fff", want: RGB(255, 255, 255)},
		{name: "3 digit nibble doubling", css: "#abc", want: RGB(0xaa, 0xbb, 0xcc)},
		{name: "4 digit with alpha nibble", css: "#f0ff", want: RGBA(255, 0, 255, 255)},
		{name: "4 digit translucent", css: "#0008", want: RGBA(0, 0, 0, 0x88)},
		{name: "6 digit", css: "#ffffff", want: RGB(255, 255, 255)},
		{name: "6 digit uppercase", css: "#1A2B3C", want: RGB(0x1a, 0x2b, 0x3c)},
		{name: "8 digit", css: "#000000ee", want: RGBA(0, 0, 0, 238)},

		// rgb / rgba.
		{name: "rgb commas", css: "rgb(12, 45, 78)", want: RGB(12, 45, 78)},
		{name: "rgb spaces", css: "rgb(12 45 78)", want: RGB(12, 45, 78)},
		{name: "rgb fourth argument clamps", css: "rgb(12, 45, 78, 255)", want: RGB(12, 45, 78)},
		{name: "rgb no spaces", css: "rgb(123,45,78)", want: RGBA(123, 45, 78, 255)},
		{name: "rgba opaque", css: "rgba(23, 22, 11, 255)", want: RGB(23, 22, 11)},
		{name: "rgba transparent", css: "rgba(123,222,111,0)", want: RGBA(123, 222, 111, 0)},
		{name: "rgb minimal", css: "rgb(1 2 3)", want: RGBA(1, 2, 3, 255)},
		{name: "rgb extra whitespace", css: "rgb(4    5   6)", want: RGB(4, 5, 6)},
		{name: "rgba slash one", css: "rgba(7 8 9 / 1)", want: RGB(7, 8, 9)},
		{name: "rgba slash zero", css: "rgba(10 11 12 / 0)", want: RGBA(10, 11, 12, 0)},
		{name: "rgb slash decimal", css: "rgb(9 8 7 / .5)", want: RGBA(9, 8, 7, 127)},
		{name: "rgb slash percent", css: "rgb(6 5 4 / 50%)", want: RGBA(6, 5, 4, 127)},
		{name: "rgb percent channels", css: "rgb(1% 11% 100% / .5)", want: RGBA(2, 28, 255, 127)},
		{name: "rgb percent channels percent alpha", css: "rgb(2% 22% 100% / 50%)", want: RGBA(5, 56, 255, 127)},
		{name: "rgb newlines", css: "rgb(\n  1,\n  2,\n  3\n)", want: RGB(1, 2, 3)},
		{name: "rgb out of range clamps", css: "rgb(300, 0, 0)", want: RGB(255, 0, 0)},

		// hsl / hsla.
		{name: "hsl red", css: "hsl(360 100% 50%)", want: RGB(255, 0, 0)},
		{name: "hsl slash alpha", css: "hsl(150 70% 20% / .5)", want: RGBA(15, 86, 51, 127)},
		{name: "hsl fourth argument", css: "hsl(360, 100%, 50%, .5)", want: RGBA(255, 0, 0, 127)},
		{name: "hsla slash alpha", css: "hsla(360 100% 50% / .5)", want: RGBA(255, 0, 0, 127)},
		{name: "hsla commas", css: "hsla(360, 100%, 50%, .5)", want: RGBA(255, 0, 0, 127)},
		{name: "hsl blue", css: "hsl(240, 100%, 50%)", want: RGB(0, 0, 255)},
		{name: "hsl dark green", css: "hsl(120 100% 25%)", want: RGB(0, 127, 0)},

		// hwb.
		{name: "hwb", css: "hwb(194 0% 0%)", want: RGB(0, 195, 255)},
		{name: "hwb slash alpha", css: "hwb(194 0% 0% / .5)", want: RGBA(0, 195, 255, 127)},
		{name: "hwb green", css: "hwb(120 0% 0%)", want: RGB(0, 255, 0)},
		{name: "hwb gray", css: "hwb(0 50% 50%)", want: RGB(127, 127, 127)},

		// Keywords.
		{name: "keyword", css: ":green;", want: RGB(0, 128, 0)},
		{name: "keyword in declaration", css: "a { color: cornflowerblue; }", want: RGB(100, 149, 237)},
		{name: "keyword across newlines", css: "color:\n\tred\n;", want: RGB(255, 0, 0)},
		{name: "keyword case insensitive", css: "color: Navy;", want: RGB(0, 0, 128)},
		{name: "keyword transparent", css: "background: transparent;", want: RGBA(0, 0, 0, 0)},
		{name: "keyword prefix of longer keyword", css: "color: blueviolet;", want: RGB(138, 43, 226)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(tt.css)
			if len(got) != 1 {
				t.Fatalf("Extract(%q) returned %d colors %v, want exactly 1", tt.css, len(got), got)
			}
			if got[0] != tt.want {
				t.Errorf("Extract(%q) = %v, want %v", tt.css, got[0], tt.want)
			}
		})
	}
}

func TestExtractDiscardsInvalid(t *testing.T) {
	tests := []struct {
		name string
		css  string
	}{
		{name: "empty", css: ""},
		{name: "5 digit hex", css: "#abcde"},
		{name: "7 digit hex", css: "#abcdef1"},
		{name: "hex-like id selector", css: "#addr { margin: 0 }"},
		{name: "too few rgb arguments", css: "rgb(12, 45)"},
		{name: "too many rgb arguments", css: "rgb(1, 2, 3, 4, 5)"},
		{name: "malformed number", css: "rgb(1.2.3, 4, 5)"},
		{name: "double slash", css: "rgb(1 2 3 / 4 / 5)"},
		{name: "slash with two channels", css: "rgb(1 2 / 0.5)"},
		{name: "keyword without colon", css: "green;"},
		{name: "keyword without semicolon", css: "color: green"},
		{name: "keyword inside identifier", css: ".green-button { }"},
		{name: "unknown keyword", css: "color: notacolor;"},
		{name: "currentColor has no fixed value", css: "a { border-color: currentColor; }"},
		{name: "inherit", css: "a { color: inherit; }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.css); len(got) != 0 {
				t.Errorf("Extract(%q) = %v, want no colors", tt.css, got)
			}
		})
	}
}

func TestExtractStylesheet(t *testing.T) {
	sheet := `
body {
	color: #333;
	background-color: white;
}
a:hover { color: rgb(12 45 78); }
.card {
	border: 1px solid #333333;
	box-shadow: 0 0 4px rgba(0, 0, 0, .5);
}
.badge { background: hsl(150 70% 20% / .5); color:white; }
`
	want := []Color{
		RGB(0x33, 0x33, 0x33),
		RGB(12, 45, 78),
		RGBA(0, 0, 0, 127),
		RGBA(15, 86, 51, 127),
		RGB(255, 255, 255),
	}

	got := Extract(sheet)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Extract() mismatch (-want +got):\n%s", diff)
	}
}

func TestExtractIdempotent(t *testing.T) {
	sheet := "a{color:#f00} b{color:blue;} c{color:rgb(1 2 3)}"

	e := NewExtractor()
	first := e.Extract(sheet)
	_ = e.Extract("unrelated { color: #abc; }")
	second := e.Extract(sheet)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Extract() mismatch (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff(first, Default().Extract(sheet)); diff != "" {
		t.Errorf("NewExtractor and Default disagree (-new +default):\n%s", diff)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		digits string
		want   Color
		ok     bool
	}{
		{digits: "000", want: RGB(0, 0, 0), ok: true},
		{digits: "f0ff", want: RGBA(255, 0, 255, 255), ok: true},
		{digits: "663399", want: RGB(0x66, 0x33, 0x99), ok: true},
		{digits: "00000000", want: RGBA(0, 0, 0, 0), ok: true},
		{digits: "", ok: false},
		{digits: "12345", ok: false},
		{digits: "1234567", ok: false},
		{digits: "zzz", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.digits, func(t *testing.T) {
			got, ok := parseHex(tt.digits).Get()
			if ok != tt.ok {
				t.Fatalf("parseHex(%q) ok = %v, want %v", tt.digits, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("parseHex(%q) = %v, want %v", tt.digits, got, tt.want)
			}
		})
	}
}

func TestKeywordsAreValidHex(t *testing.T) {
	// 148 named colors plus transparent.
	if len(keywords) != 149 {
		t.Errorf("len(keywords) = %d, want 149", len(keywords))
	}
	for name, hex := range keywords {
		if _, ok := parseHex(hex[1:]).Get(); !ok {
			t.Errorf("keyword %q maps to invalid hex %q", name, hex)
		}
	}
}
