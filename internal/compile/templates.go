package compile

import (
	"fmt"
	"strings"

	"hackpage/internal/domain"
)

// templateFunc renders one block into a self-contained markup fragment.
// All per-block visual variation is inline style computed from the theme;
// the shared stylesheet stays block-agnostic.
type templateFunc func(b domain.Block, colors domain.ColorTheme, ctx domain.HackathonContext) string

// templates is the single dispatch table from block type to renderer.
// A type absent here is skipped at compile time, never an error.
var templates = map[domain.BlockType]templateFunc{
	domain.BlockTypeHero:     renderHero,
	domain.BlockTypeAbout:    renderAbout,
	domain.BlockTypeSchedule: renderSchedule,
	domain.BlockTypePrizes:   renderPrizes,
	domain.BlockTypeJudges:   renderJudges,
	domain.BlockTypeSponsors: renderSponsors,
	domain.BlockTypeStats:    renderStats,
	domain.BlockTypeFAQ:      renderFAQ,
	domain.BlockTypeContact:  renderContact,
}

func renderHero(b domain.Block, colors domain.ColorTheme, ctx domain.HackathonContext) string {
	var sb strings.Builder

	var extra string
	if img := text(b.Data, "backgroundImage"); img != "" {
		extra = fmt.Sprintf("background-image:url('%s');background-size:cover;background-position:center", img)
	}
	section(&sb, b, extra)

	if flag(b.Data, "overlay") && text(b.Data, "backgroundImage") != "" {
		sb.WriteString(`<div class="hp-hero-overlay"></div>` + "\n")
	}
	sb.WriteString(`<div class="hp-hero-inner">` + "\n")

	title := textOr(b.Data, "title", ctx.Title)
	if title != "" {
		fmt.Fprintf(&sb, `<h1>%s</h1>`+"\n", esc(title))
	}
	if subtitle := textOr(b.Data, "subtitle", ctx.Tagline); subtitle != "" {
		fmt.Fprintf(&sb, `<p class="hp-hero-subtitle">%s</p>`+"\n", esc(subtitle))
	}
	var when []string
	if ctx.StartDate != "" {
		when = append(when, ctx.StartDate)
	}
	if ctx.EndDate != "" && ctx.EndDate != ctx.StartDate {
		when = append(when, ctx.EndDate)
	}
	meta := strings.Join(when, " – ")
	if ctx.Location != "" {
		if meta != "" {
			meta += " · "
		}
		meta += ctx.Location
	}
	if meta != "" {
		fmt.Fprintf(&sb, `<p class="hp-hero-meta" style="color:%s">%s</p>`+"\n", esc(colors.Accent), esc(meta))
	}
	if cta := text(b.Data, "ctaText"); cta != "" {
		link := textOr(b.Data, "ctaLink", "#")
		fmt.Fprintf(&sb, `<a class="hp-cta" href="%s" style="background-color:%s;color:%s">%s</a>`+"\n",
			esc(link), esc(colors.Primary), esc(colors.Background), esc(cta))
	}
	sb.WriteString("</div>\n</section>\n")
	return sb.String()
}

func renderAbout(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	if body := text(b.Data, "body"); body != "" {
		sb.WriteString(`<div class="hp-prose">` + "\n")
		sb.WriteString(renderMarkdown(body))
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</section>\n")
	return sb.String()
}

func renderSchedule(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	sb.WriteString(`<ul class="hp-schedule">` + "\n")
	for _, ev := range entries(b.Data, "events") {
		sb.WriteString(`<li class="hp-event">` + "\n")
		when := strings.TrimSpace(text(ev, "date") + " " + text(ev, "time"))
		fmt.Fprintf(&sb, `<span class="hp-event-when" style="color:%s">%s</span>`+"\n",
			esc(colors.Secondary), esc(when))
		if t := text(ev, "title"); t != "" {
			fmt.Fprintf(&sb, `<strong>%s</strong>`+"\n", esc(t))
		}
		if d := text(ev, "description"); d != "" {
			fmt.Fprintf(&sb, `<p>%s</p>`+"\n", esc(d))
		}
		sb.WriteString("</li>\n")
	}
	sb.WriteString("</ul>\n</section>\n")
	return sb.String()
}

func renderPrizes(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	sb.WriteString(`<div class="hp-cards">` + "\n")
	for _, p := range entries(b.Data, "prizes") {
		sb.WriteString(`<div class="hp-card">` + "\n")
		if place := text(p, "place"); place != "" {
			fmt.Fprintf(&sb, `<h3>%s</h3>`+"\n", esc(place))
		}
		if reward := text(p, "reward"); reward != "" {
			fmt.Fprintf(&sb, `<p class="hp-reward" style="color:%s">%s</p>`+"\n", esc(colors.Accent), esc(reward))
		}
		if d := text(p, "description"); d != "" {
			fmt.Fprintf(&sb, `<p>%s</p>`+"\n", esc(d))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>\n</section>\n")
	return sb.String()
}

func renderJudges(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	sb.WriteString(`<div class="hp-people">` + "\n")
	for _, j := range entries(b.Data, "judges") {
		sb.WriteString(`<div class="hp-person">` + "\n")
		if avatar := text(j, "avatar"); avatar != "" {
			fmt.Fprintf(&sb, `<img src="%s" alt="%s">`+"\n", esc(avatar), esc(text(j, "name")))
		}
		if name := text(j, "name"); name != "" {
			fmt.Fprintf(&sb, `<strong>%s</strong>`+"\n", esc(name))
		}
		if role := text(j, "role"); role != "" {
			fmt.Fprintf(&sb, `<span style="color:%s">%s</span>`+"\n", esc(colors.Secondary), esc(role))
		}
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>\n</section>\n")
	return sb.String()
}

func renderSponsors(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	sb.WriteString(`<div class="hp-sponsors">` + "\n")
	for _, sp := range entries(b.Data, "sponsors") {
		name := text(sp, "name")
		inner := esc(name)
		if logo := text(sp, "logo"); logo != "" {
			inner = fmt.Sprintf(`<img src="%s" alt="%s">`, esc(logo), esc(name))
		}
		if url := text(sp, "url"); url != "" {
			fmt.Fprintf(&sb, `<a class="hp-sponsor" href="%s">%s</a>`+"\n", esc(url), inner)
		} else {
			fmt.Fprintf(&sb, `<span class="hp-sponsor">%s</span>`+"\n", inner)
		}
	}
	sb.WriteString("</div>\n</section>\n")
	return sb.String()
}

func renderStats(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	sb.WriteString(`<div class="hp-stats">` + "\n")
	for _, st := range entries(b.Data, "stats") {
		sb.WriteString(`<div class="hp-stat">` + "\n")
		fmt.Fprintf(&sb, `<span class="hp-stat-value" style="color:%s">%s</span>`+"\n",
			esc(colors.Primary), esc(text(st, "value")))
		fmt.Fprintf(&sb, `<span class="hp-stat-label">%s</span>`+"\n", esc(text(st, "label")))
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>\n</section>\n")
	return sb.String()
}

func renderFAQ(b domain.Block, colors domain.ColorTheme, _ domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	for _, item := range entries(b.Data, "items") {
		sb.WriteString(`<details class="hp-faq-item">` + "\n")
		fmt.Fprintf(&sb, `<summary>%s</summary>`+"\n", esc(text(item, "question")))
		if a := text(item, "answer"); a != "" {
			sb.WriteString(`<div class="hp-prose">` + "\n")
			sb.WriteString(renderMarkdown(a))
			sb.WriteString("</div>\n")
		}
		sb.WriteString("</details>\n")
	}
	sb.WriteString("</section>\n")
	return sb.String()
}

func renderContact(b domain.Block, colors domain.ColorTheme, ctx domain.HackathonContext) string {
	var sb strings.Builder
	section(&sb, b, "")
	heading(&sb, b, colors)
	if email := textOr(b.Data, "email", ctx.Email); email != "" {
		fmt.Fprintf(&sb, `<p><a href="mailto:%s" style="color:%s">%s</a></p>`+"\n",
			esc(email), esc(colors.Primary), esc(email))
	}
	var links []string
	if d := text(b.Data, "discord"); d != "" {
		links = append(links, fmt.Sprintf(`<a href="%s">Discord</a>`, esc(d)))
	}
	if t := text(b.Data, "twitter"); t != "" {
		links = append(links, fmt.Sprintf(`<a href="%s">Twitter</a>`, esc(t)))
	}
	if ctx.Website != "" {
		links = append(links, fmt.Sprintf(`<a href="%s">Website</a>`, esc(ctx.Website)))
	}
	if len(links) > 0 {
		fmt.Fprintf(&sb, `<p class="hp-contact-links">%s</p>`+"\n", strings.Join(links, " · "))
	}
	sb.WriteString("</section>\n")
	return sb.String()
}
