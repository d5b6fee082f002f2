package domain

type BlockType string

const (
	BlockTypeHero     BlockType = "hero"
	BlockTypeAbout    BlockType = "about"
	BlockTypeSchedule BlockType = "schedule"
	BlockTypePrizes   BlockType = "prizes"
	BlockTypeJudges   BlockType = "judges"
	BlockTypeSponsors BlockType = "sponsors"
	BlockTypeFAQ      BlockType = "faq"
	BlockTypeStats    BlockType = "stats"
	BlockTypeContact  BlockType = "contact"
)

// Block is one typed section of a landing page. Data holds the per-type
// field bag (shape owned by the catalog); Styles carries catalog-seeded
// visual defaults through unchanged.
type Block struct {
	ID      string            `json:"id"`
	Type    BlockType         `json:"type"`
	Enabled bool              `json:"enabled"`
	Order   int               `json:"order"`
	Data    map[string]any    `json:"data"`
	Styles  map[string]string `json:"styles"`
}

// Clone returns a deep copy of the block. History snapshots must never
// share Data or Styles maps with the live document.
func (b Block) Clone() Block {
	c := b
	c.Data = cloneFieldBag(b.Data)
	if b.Styles != nil {
		c.Styles = make(map[string]string, len(b.Styles))
		for k, v := range b.Styles {
			c.Styles[k] = v
		}
	}
	return c
}

func cloneFieldBag(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	c := make(map[string]any, len(m))
	for k, v := range m {
		c[k] = cloneValue(v)
	}
	return c
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		return cloneFieldBag(t)
	case []any:
		c := make([]any, len(t))
		for i, e := range t {
			c[i] = cloneValue(e)
		}
		return c
	default:
		return v
	}
}
