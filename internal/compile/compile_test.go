package compile_test

import (
	"strings"
	"testing"

	"hackpage/internal/compile"
	"hackpage/internal/domain"
)

func heroBlock(order int) domain.Block {
	return domain.Block{
		ID:      "hero-1",
		Type:    domain.BlockTypeHero,
		Enabled: true,
		Order:   order,
		Data: map[string]any{
			"title":    "Welcome",
			"subtitle": "48 hours of building",
			"ctaText":  "Register Now",
			"ctaLink":  "#register",
		},
		Styles: map[string]string{"padding": "96px 24px", "align": "center"},
	}
}

func TestCompile_RendersEnabledBlocksInOrder(t *testing.T) {
	blocks := []domain.Block{
		{ID: "b", Type: domain.BlockTypeAbout, Enabled: true, Order: 1,
			Data: map[string]any{"heading": "About"}},
		heroBlock(0),
	}
	res := compile.Compile(blocks, domain.DefaultTheme(), domain.HackathonContext{})

	hero := strings.Index(res.HTML, "hp-hero")
	about := strings.Index(res.HTML, "hp-about")
	if hero < 0 || about < 0 {
		t.Fatalf("expected both sections in output:\n%s", res.HTML)
	}
	if hero > about {
		t.Error("expected hero (Order 0) before about (Order 1)")
	}
	if !strings.Contains(res.HTML, "<h1>Welcome</h1>") {
		t.Error("expected hero title rendered as h1")
	}
	if !strings.Contains(res.HTML, `href="#register"`) {
		t.Error("expected CTA link rendered")
	}
}

func TestCompile_IsDeterministic(t *testing.T) {
	blocks := []domain.Block{
		heroBlock(0),
		{ID: "s", Type: domain.BlockTypeStats, Enabled: true, Order: 1,
			Data: map[string]any{"stats": []any{
				map[string]any{"label": "Hackers", "value": "500+"},
				map[string]any{"label": "Hours", "value": "48"},
			}}},
	}
	theme := domain.DefaultTheme()
	ctx := domain.HackathonContext{Title: "X", StartDate: "Jan 1", Location: "Online"}

	first := compile.Compile(blocks, theme, ctx)
	for i := 0; i < 10; i++ {
		again := compile.Compile(blocks, theme, ctx)
		if again.HTML != first.HTML || again.CSS != first.CSS {
			t.Fatal("expected byte-identical output across compiles")
		}
	}
}

func TestCompile_SkipsDisabledBlocks(t *testing.T) {
	blocks := []domain.Block{
		heroBlock(0),
		{ID: "f", Type: domain.BlockTypeFAQ, Enabled: false, Order: 1,
			Data: map[string]any{"heading": "FAQ"}},
	}
	res := compile.Compile(blocks, domain.DefaultTheme(), domain.HackathonContext{})

	if strings.Contains(res.HTML, "hp-faq") {
		t.Error("expected disabled block excluded from output")
	}
}

func TestCompile_SkipsUnknownBlockTypes(t *testing.T) {
	blocks := []domain.Block{
		heroBlock(0),
		{ID: "x", Type: "carousel", Enabled: true, Order: 1},
	}
	res := compile.Compile(blocks, domain.DefaultTheme(), domain.HackathonContext{})

	if strings.Contains(res.HTML, "carousel") {
		t.Error("expected unknown block type skipped")
	}
	if !strings.Contains(res.HTML, "hp-hero") {
		t.Error("expected known blocks to still compile")
	}
}

func TestCompile_HeroFallsBackToContext(t *testing.T) {
	b := domain.Block{ID: "h", Type: domain.BlockTypeHero, Enabled: true,
		Data: map[string]any{}}
	ctx := domain.HackathonContext{
		Title: "HackTheNorth", Tagline: "Dream big", StartDate: "June 12", EndDate: "June 14",
		Location: "Waterloo",
	}
	res := compile.Compile([]domain.Block{b}, domain.DefaultTheme(), ctx)

	if !strings.Contains(res.HTML, "<h1>HackTheNorth</h1>") {
		t.Error("expected hero title to fall back to hackathon title")
	}
	if !strings.Contains(res.HTML, "Dream big") {
		t.Error("expected subtitle fallback to tagline")
	}
	if !strings.Contains(res.HTML, "June 12 – June 14 · Waterloo") {
		t.Errorf("expected date/location meta line, got:\n%s", res.HTML)
	}
}

func TestCompile_EscapesUserContent(t *testing.T) {
	b := domain.Block{ID: "h", Type: domain.BlockTypeHero, Enabled: true,
		Data: map[string]any{"title": `<script>alert("x")</script>`}}
	res := compile.Compile([]domain.Block{b}, domain.DefaultTheme(), domain.HackathonContext{})

	if strings.Contains(res.HTML, "<script>") {
		t.Fatal("expected user content escaped")
	}
	if !strings.Contains(res.HTML, "&lt;script&gt;") {
		t.Error("expected escaped entity form in output")
	}
}

func TestCompile_MarkdownFields(t *testing.T) {
	b := domain.Block{ID: "a", Type: domain.BlockTypeAbout, Enabled: true,
		Data: map[string]any{"body": "Join us for **48 hours** of hacking."}}
	res := compile.Compile([]domain.Block{b}, domain.DefaultTheme(), domain.HackathonContext{})

	if !strings.Contains(res.HTML, "<strong>48 hours</strong>") {
		t.Errorf("expected markdown emphasis rendered, got:\n%s", res.HTML)
	}
}

func TestCompile_MarkdownEscapesRawHTML(t *testing.T) {
	b := domain.Block{ID: "a", Type: domain.BlockTypeAbout, Enabled: true,
		Data: map[string]any{"body": `<img src=x onerror=alert(1)>`}}
	res := compile.Compile([]domain.Block{b}, domain.DefaultTheme(), domain.HackathonContext{})

	if strings.Contains(res.HTML, "<img src=x") {
		t.Fatal("expected raw HTML in markdown escaped")
	}
}

func TestCompile_MalformedListFieldDegrades(t *testing.T) {
	blocks := []domain.Block{
		{ID: "s", Type: domain.BlockTypeSchedule, Enabled: true, Order: 0,
			Data: map[string]any{
				"heading": "Schedule",
				// events is a string instead of a list: must not panic,
				// the section renders with no entries.
				"events": "oops",
			}},
		{ID: "p", Type: domain.BlockTypePrizes, Enabled: true, Order: 1,
			Data: map[string]any{
				"prizes": []any{
					map[string]any{"place": "1st", "reward": "$5,000"},
					"not-a-map",
					map[string]any{"place": "2nd"},
				},
			}},
	}
	res := compile.Compile(blocks, domain.DefaultTheme(), domain.HackathonContext{})

	if !strings.Contains(res.HTML, "hp-schedule") {
		t.Error("expected schedule section despite malformed events")
	}
	if !strings.Contains(res.HTML, "<h3>1st</h3>") || !strings.Contains(res.HTML, "<h3>2nd</h3>") {
		t.Error("expected valid prize entries rendered around the malformed one")
	}
}

func TestCompile_ThemeColorsApplied(t *testing.T) {
	theme := domain.ColorTheme{
		Primary: "#111111", Secondary: "#222222", Accent: "#333333",
		Background: "#444444", Text: "#555555",
	}
	res := compile.Compile([]domain.Block{heroBlock(0)}, theme, domain.HackathonContext{})

	if !strings.Contains(res.HTML, "background-color:#444444;color:#555555") {
		t.Error("expected page container to carry background and text colors")
	}
	if !strings.Contains(res.HTML, "background-color:#111111") {
		t.Error("expected CTA to carry the primary color")
	}
}

func TestCompile_EmptyDocument(t *testing.T) {
	res := compile.Compile(nil, domain.DefaultTheme(), domain.HackathonContext{})

	if !strings.Contains(res.HTML, `<div class="hp-page"`) {
		t.Error("expected page container even with no blocks")
	}
	if res.CSS == "" {
		t.Error("expected the stylesheet regardless of content")
	}
}

func TestPage_WrapsIntoStandaloneDocument(t *testing.T) {
	page := compile.Page("HackTheNorth", "<div>body</div>")

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>HackTheNorth</title>",
		`<link rel="stylesheet" href="style.css">`,
		"<div>body</div>",
	} {
		if !strings.Contains(page, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}
