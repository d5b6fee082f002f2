// Package compile turns a homepage document into standalone HTML and CSS
// for the public, unauthenticated landing page. Compilation is a pure
// function of its inputs: same blocks, colors, and context always produce
// byte-identical output.
package compile

import (
	"fmt"
	"sort"
	"strings"

	"hackpage/internal/domain"
)

// Result is the compiled public artifact.
type Result struct {
	HTML string `json:"html"`
	CSS  string `json:"css"`
}

// Compile renders the enabled blocks in order into one container carrying
// the theme's background and text colors. Unknown block types are skipped
// so documents saved by newer or older builds still compile; a malformed
// block degrades to whatever fields it does have rather than aborting.
func Compile(blocks []domain.Block, colors domain.ColorTheme, ctx domain.HackathonContext) Result {
	ordered := make([]domain.Block, len(blocks))
	copy(ordered, blocks)
	sort.SliceStable(ordered, func(a, b int) bool {
		return ordered[a].Order < ordered[b].Order
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, `<div class="hp-page" style="background-color:%s;color:%s">`+"\n",
		esc(colors.Background), esc(colors.Text))
	for _, b := range ordered {
		if !b.Enabled {
			continue
		}
		render, ok := templates[b.Type]
		if !ok {
			continue
		}
		sb.WriteString(render(b, colors, ctx))
	}
	sb.WriteString("</div>\n")

	return Result{HTML: sb.String(), CSS: baseCSS}
}
