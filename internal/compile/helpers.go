package compile

import (
	"fmt"
	"html"
	"strings"

	"hackpage/internal/domain"
)

func esc(s string) string { return html.EscapeString(s) }

// text returns a string field from a block's data bag, or "" when the
// field is missing or not a string.
func text(data map[string]any, key string) string {
	if v, ok := data[key].(string); ok {
		return v
	}
	return ""
}

// textOr is text with a fallback for empty/missing fields.
func textOr(data map[string]any, key, fallback string) string {
	if v := text(data, key); v != "" {
		return v
	}
	return fallback
}

// flag returns a boolean field, false when missing or mistyped.
func flag(data map[string]any, key string) bool {
	v, _ := data[key].(bool)
	return v
}

// entries returns a list field as a slice of field bags, tolerating both
// []any (JSON round-trips) and missing or mistyped values.
func entries(data map[string]any, key string) []map[string]any {
	raw, ok := data[key].([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(raw))
	for _, e := range raw {
		if m, ok := e.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// sectionStyle builds the inline style for a block's outer <section> from
// its catalog-seeded styles. Only known style keys are emitted, in a fixed
// order, so output stays deterministic.
func sectionStyle(b domain.Block, extra string) string {
	var parts []string
	if p := b.Styles["padding"]; p != "" {
		parts = append(parts, "padding:"+p)
	}
	if a := b.Styles["align"]; a != "" {
		parts = append(parts, "text-align:"+a)
	}
	if h := b.Styles["minHeight"]; h != "" {
		parts = append(parts, "min-height:"+h)
	}
	if extra != "" {
		parts = append(parts, extra)
	}
	return strings.Join(parts, ";")
}

func section(sb *strings.Builder, b domain.Block, extraStyle string) {
	fmt.Fprintf(sb, `<section class="hp-%s" style="%s">`+"\n", b.Type, esc(sectionStyle(b, extraStyle)))
}

// heading writes the block's h2 when it has one.
func heading(sb *strings.Builder, b domain.Block, colors domain.ColorTheme) {
	if h := text(b.Data, "heading"); h != "" {
		fmt.Fprintf(sb, `<h2 style="color:%s">%s</h2>`+"\n", esc(colors.Primary), esc(h))
	}
}
