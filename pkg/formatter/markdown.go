package formatter

import (
	"fmt"
	"strings"

	"github.com/kataras/site-colors/pkg/css"

	"github.com/samber/lo"
)

// ToMarkdown renders the colors found at url as a markdown document. The output starts with CSS
// custom property definitions, opaque and translucent colors in separate groups, followed by a
// table with every distinct color and the number of stylesheets that declared it.
func ToMarkdown(url string, colors []css.Color) string {
	var sb strings.Builder

	unique := Unique(colors)
	counts := lo.CountValues(colors)
	opaque := lo.Filter(unique, func(c css.Color, _ int) bool { return c.Opaque() })
	translucent := lo.Filter(unique, func(c css.Color, _ int) bool { return !c.Opaque() })

	sb.WriteString(fmt.Sprintf("# Site Colors - %s\n\n", url))
	sb.WriteString("This document lists every color declared in the page's inline and linked stylesheets.\n\n")

	if len(unique) == 0 {
		sb.WriteString("_No colors found._\n")
		return sb.String()
	}

	sb.WriteString("## Color Palette\n\n")
	sb.WriteString("```css\n")
	sb.WriteString(":root {\n")

	if len(opaque) > 0 {
		sb.WriteString("  /* Opaque Colors */\n")
		for i, c := range opaque {
			sb.WriteString(fmt.Sprintf("  --color-%d: %s;\n", i+1, c.Hex()))
		}
	}

	if len(translucent) > 0 {
		if len(opaque) > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  /* Translucent Colors */\n")
		for i, c := range translucent {
			sb.WriteString(fmt.Sprintf("  --color-translucent-%d: %s;\n", i+1, c.String()))
		}
	}

	sb.WriteString("}\n")
	sb.WriteString("```\n\n")

	sb.WriteString("## Colors\n\n")
	sb.WriteString(fmt.Sprintf("%d distinct color(s), %d declaration(s) across all stylesheets.\n\n", len(unique), len(colors)))
	sb.WriteString("| Hex | RGBA | Sources |\n")
	sb.WriteString("|-----|------|---------|\n")
	for _, c := range unique {
		sb.WriteString(fmt.Sprintf("| `%s` | `%s` | %d |\n", c.Hex(), c.String(), counts[c]))
	}
	sb.WriteString("\n")

	return sb.String()
}
