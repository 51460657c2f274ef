package css

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/samber/mo"
)

// srgbPattern matches the functional notations (hsl, hsla, hwb, rgb, rgba) with a permissive
// argument body of at least five digits, separators, decimal points or percent signs, and
// hex colors of 3, 4, 6 or 8 digits. Seven digit matches are rejected later by parseHex.
const srgbPattern = `(?i:hsla?|rgba?|hwb)\([\s\d%/.,+-]{5,}\)|#[\da-fA-F]{3}(?:[\da-fA-F]{3,5}|[\da-fA-F])?\b`

// Extractor finds every color declared in a block of CSS text.
// The compiled patterns and the keyword table are read-only after NewExtractor returns,
// so a single Extractor can be shared by any number of goroutines.
type Extractor struct {
	srgb     *regexp.Regexp
	keyword  *regexp.Regexp
	keywords map[string]string
}

// NewExtractor compiles the color patterns and the named color table.
func NewExtractor() *Extractor {
	names := make([]string, 0, len(keywords))
	for name := range keywords {
		names = append(names, regexp.QuoteMeta(name))
	}
	slices.Sort(names)

	return &Extractor{
		srgb: regexp.MustCompile(srgbPattern),
		// Keywords only count in declaration position, e.g. "color: red;".
		keyword:  regexp.MustCompile(`(?i):\s*(` + strings.Join(names, "|") + `)\s*;`),
		keywords: keywords,
	}
}

// Default returns the process-wide Extractor, built on first use.
var Default = sync.OnceValue(NewExtractor)

// Extract is a shortcut for Default().Extract(text).
func Extract(text string) []Color {
	return Default().Extract(text)
}

// Extract scans text for hex, functional and keyword colors and returns each distinct color once,
// in the order it was first matched: hex and functional notations first, then keywords.
// Candidates that look like colors but fail to parse are skipped; Extract never fails.
func (e *Extractor) Extract(text string) []Color {
	var (
		colors []Color
		seen   = make(map[Color]struct{})
	)

	add := func(c mo.Option[Color]) {
		color, ok := c.Get()
		if !ok {
			return
		}
		if _, dup := seen[color]; dup {
			return
		}
		seen[color] = struct{}{}
		colors = append(colors, color)
	}

	for _, match := range e.srgb.FindAllString(text, -1) {
		if strings.HasPrefix(match, "#") {
			add(parseHex(match[1:]))
		} else {
			add(parseFunction(match))
		}
	}

	for _, groups := range e.keyword.FindAllStringSubmatch(text, -1) {
		add(e.parseKeyword(groups[1]))
	}

	return colors
}

func (e *Extractor) parseKeyword(name string) mo.Option[Color] {
	hex, ok := e.keywords[strings.ToLower(name)]
	if !ok {
		return mo.None[Color]()
	}
	return parseHex(strings.TrimPrefix(hex, "#"))
}

// parseHex converts 3, 4, 6 or 8 hex digits (without the leading '#') to a Color.
// Shorthand digits are doubled, so "f" becomes 0xff. Any other length yields None.
func parseHex(digits string) mo.Option[Color] {
	channels := [4]uint8{0, 0, 0, 255}

	var width int
	switch len(digits) {
	case 3, 4:
		width = 1
	case 6, 8:
		width = 2
	default:
		return mo.None[Color]()
	}

	for i := 0; i*width < len(digits); i++ {
		v, err := strconv.ParseUint(digits[i*width:(i+1)*width], 16, 8)
		if err != nil {
			return mo.None[Color]()
		}
		if width == 1 {
			v *= 17
		}
		channels[i] = uint8(v)
	}

	return mo.Some(Color{R: channels[0], G: channels[1], B: channels[2], A: channels[3]})
}

// arg is one numeric argument of a functional color notation.
type arg struct {
	value   float64
	percent bool
}

func parseArg(token string) (arg, bool) {
	a := arg{}
	if strings.HasSuffix(token, "%") {
		a.percent = true
		token = strings.TrimSuffix(token, "%")
	}
	v, err := strconv.ParseFloat(token, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return arg{}, false
	}
	a.value = v
	return a, true
}

// splitArgs separates the body of a functional notation into three channel arguments and
// an optional alpha. Commas and whitespace are interchangeable separators and the alpha
// may follow a '/' or be given as a fourth argument.
func splitArgs(body string) (channels [3]arg, alpha mo.Option[arg], ok bool) {
	isSep := func(r rune) bool { return r == ',' || unicode.IsSpace(r) }

	main, rest, slashed := strings.Cut(body, "/")
	fields := strings.FieldsFunc(main, isSep)

	var alphaToken string
	if slashed {
		tail := strings.FieldsFunc(rest, isSep)
		if len(fields) != 3 || len(tail) != 1 || strings.Contains(rest, "/") {
			return channels, alpha, false
		}
		alphaToken = tail[0]
	} else {
		switch len(fields) {
		case 3:
		case 4:
			alphaToken = fields[3]
		default:
			return channels, alpha, false
		}
	}

	for i := range channels {
		a, valid := parseArg(fields[i])
		if !valid {
			return channels, alpha, false
		}
		channels[i] = a
	}

	alpha = mo.None[arg]()
	if alphaToken != "" {
		a, valid := parseArg(alphaToken)
		if !valid {
			return channels, alpha, false
		}
		alpha = mo.Some(a)
	}

	return channels, alpha, true
}

// parseFunction normalizes rgb(), rgba(), hsl(), hsla() and hwb() notations.
func parseFunction(notation string) mo.Option[Color] {
	open := strings.IndexByte(notation, '(')
	if open < 0 || !strings.HasSuffix(notation, ")") {
		return mo.None[Color]()
	}
	name := strings.ToLower(notation[:open])
	body := notation[open+1 : len(notation)-1]

	channels, alpha, ok := splitArgs(body)
	if !ok {
		return mo.None[Color]()
	}

	a := uint8(255)
	if v, set := alpha.Get(); set {
		a = toByte(fraction(v, 1))
	}

	switch name {
	case "rgb", "rgba":
		return mo.Some(Color{
			R: rgbChannel(channels[0]),
			G: rgbChannel(channels[1]),
			B: rgbChannel(channels[2]),
			A: a,
		})
	case "hsl", "hsla":
		c := colorful.Hsl(hue(channels[0]), fraction(channels[1], 100), fraction(channels[2], 100))
		return mo.Some(fromColorful(c, a))
	case "hwb":
		return mo.Some(fromColorful(hwb(hue(channels[0]), fraction(channels[1], 100), fraction(channels[2], 100)), a))
	}

	return mo.None[Color]()
}

// hwb converts hue/whiteness/blackness to sRGB through the equivalent HSV color.
func hwb(h, w, b float64) colorful.Color {
	if w+b >= 1 {
		gray := w / (w + b)
		return colorful.Color{R: gray, G: gray, B: gray}
	}
	return colorful.Hsv(h, 1-w/(1-b), 1-b)
}

// rgbChannel accepts 0-255 numbers or 0-100% percentages.
func rgbChannel(a arg) uint8 {
	if a.percent {
		return toByte(clamp(a.value/100, 0, 1))
	}
	return uint8(clamp(a.value, 0, 255))
}

// hue returns degrees in [0, 360). Percentages are a fraction of a full turn.
func hue(a arg) float64 {
	h := a.value
	if a.percent {
		h = a.value / 100 * 360
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// fraction maps an argument into [0, 1]. Bare numbers are read on a 0..scale range.
func fraction(a arg, scale float64) float64 {
	if a.percent {
		return clamp(a.value/100, 0, 1)
	}
	return clamp(a.value/scale, 0, 1)
}

func fromColorful(c colorful.Color, alpha uint8) Color {
	return Color{
		R: toByte(clamp(c.R, 0, 1)),
		G: toByte(clamp(c.G, 0, 1)),
		B: toByte(clamp(c.B, 0, 1)),
		A: alpha,
	}
}

// toByte scales a [0, 1] value to 0-255, truncating any fractional part.
func toByte(v float64) uint8 {
	return uint8(v * 255)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
