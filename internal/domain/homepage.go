package domain

// ColorTheme holds the five named theme colors. Every compiled block falls
// back to these when its own styles do not override.
type ColorTheme struct {
	Primary    string `json:"primary"`
	Secondary  string `json:"secondary"`
	Accent     string `json:"accent"`
	Background string `json:"background"`
	Text       string `json:"text"`
}

// DefaultTheme returns the theme a freshly created homepage starts with.
func DefaultTheme() ColorTheme {
	return ColorTheme{
		Primary:    "#6366f1",
		Secondary:  "#8b5cf6",
		Accent:     "#f59e0b",
		Background: "#0f0f14",
		Text:       "#f4f4f5",
	}
}

// HomepageDocument is the aggregate root for one landing page: ordered
// blocks plus theme and publishing metadata. It is owned by the editor's
// document store and never mutated in place — every mutation produces a
// new value.
type HomepageDocument struct {
	HackathonID string     `json:"hackathonId"`
	IsEnabled   bool       `json:"isEnabled"`
	Subdomain   string     `json:"subdomain,omitempty"`
	Colors      ColorTheme `json:"colors"`
	Blocks      []Block    `json:"blocks"`
}

// NewHomepageDocument creates an empty document with the default theme,
// used when a hackathon has no previously saved page.
func NewHomepageDocument(hackathonID string) HomepageDocument {
	return HomepageDocument{
		HackathonID: hackathonID,
		Colors:      DefaultTheme(),
		Blocks:      []Block{},
	}
}

// Clone returns a deep copy of the document.
func (d HomepageDocument) Clone() HomepageDocument {
	c := d
	c.Blocks = make([]Block, len(d.Blocks))
	for i, b := range d.Blocks {
		c.Blocks[i] = b.Clone()
	}
	return c
}

// BlockIndex returns the array position of the block with the given id,
// or -1 when absent.
func (d HomepageDocument) BlockIndex(id string) int {
	for i, b := range d.Blocks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

// HackathonContext carries the ambient hackathon facts used to seed block
// defaults and to fill compile-time fallbacks (e.g. a hero with no explicit
// title renders the hackathon title). Dates are display strings — the
// builder never formats times itself, so compilation stays deterministic.
type HackathonContext struct {
	Title     string `json:"title"`
	Tagline   string `json:"tagline"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Location  string `json:"location"`
	Email     string `json:"email"`
	Website   string `json:"website"`
}
