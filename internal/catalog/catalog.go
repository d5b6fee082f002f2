// Package catalog is the static registry of landing-page block types.
// It is the single place that knows each type's default data and styles;
// no other component hard-codes per-type defaults.
package catalog

import (
	"fmt"

	"hackpage/internal/domain"
)

// ordered palette sequence — also the suggested authoring order.
var types = []domain.BlockType{
	domain.BlockTypeHero,
	domain.BlockTypeAbout,
	domain.BlockTypeSchedule,
	domain.BlockTypePrizes,
	domain.BlockTypeJudges,
	domain.BlockTypeSponsors,
	domain.BlockTypeStats,
	domain.BlockTypeFAQ,
	domain.BlockTypeContact,
}

// Types returns every block type in palette order.
func Types() []domain.BlockType {
	out := make([]domain.BlockType, len(types))
	copy(out, types)
	return out
}

// Known reports whether t is part of the closed block enumeration.
func Known(t domain.BlockType) bool {
	for _, k := range types {
		if k == t {
			return true
		}
	}
	return false
}

// DefaultData returns the seed field bag for a new block of the given type.
// Fields fall back to the hackathon context where it has something to offer.
// Requesting a type outside the enumeration is a programmer error and panics.
func DefaultData(t domain.BlockType, ctx domain.HackathonContext) map[string]any {
	switch t {
	case domain.BlockTypeHero:
		return map[string]any{
			"title":           orDefault(ctx.Title, "Your Hackathon"),
			"subtitle":        orDefault(ctx.Tagline, "Build something amazing"),
			"ctaText":         "Register Now",
			"ctaLink":         "#register",
			"backgroundImage": "",
			"overlay":         true,
		}
	case domain.BlockTypeAbout:
		return map[string]any{
			"heading": "About",
			"body": "Tell visitors what your hackathon is about, who should join, " +
				"and what makes it special.",
		}
	case domain.BlockTypeSchedule:
		return map[string]any{
			"heading": "Schedule",
			"events": []any{
				map[string]any{
					"date":        ctx.StartDate,
					"time":        "09:00",
					"title":       "Kickoff & Opening Ceremony",
					"description": "Doors open, team formation, opening keynote.",
				},
				map[string]any{
					"date":        ctx.EndDate,
					"time":        "17:00",
					"title":       "Demos & Awards",
					"description": "Project demos, judging, and prize ceremony.",
				},
			},
		}
	case domain.BlockTypePrizes:
		return map[string]any{
			"heading": "Prizes",
			"prizes": []any{
				map[string]any{"place": "1st Place", "reward": "$5,000", "description": ""},
				map[string]any{"place": "2nd Place", "reward": "$2,500", "description": ""},
				map[string]any{"place": "3rd Place", "reward": "$1,000", "description": ""},
			},
		}
	case domain.BlockTypeJudges:
		return map[string]any{
			"heading": "Judges",
			"judges":  []any{},
		}
	case domain.BlockTypeSponsors:
		return map[string]any{
			"heading":  "Sponsors",
			"sponsors": []any{},
		}
	case domain.BlockTypeStats:
		return map[string]any{
			"stats": []any{
				map[string]any{"label": "Hackers", "value": "500+"},
				map[string]any{"label": "Hours", "value": "48"},
				map[string]any{"label": "In Prizes", "value": "$10K"},
			},
		}
	case domain.BlockTypeFAQ:
		return map[string]any{
			"heading": "FAQ",
			"items": []any{
				map[string]any{
					"question": "Who can participate?",
					"answer":   "Anyone! Students, professionals, and first-timers are all welcome.",
				},
				map[string]any{
					"question": "How much does it cost?",
					"answer":   "Participation is **free** — food and swag included.",
				},
			},
		}
	case domain.BlockTypeContact:
		return map[string]any{
			"heading": "Get in Touch",
			"email":   ctx.Email,
			"discord": "",
			"twitter": "",
		}
	}
	panic(fmt.Sprintf("catalog: unknown block type %q", t))
}

// DefaultStyles returns the catalog-seeded visual defaults for a block
// type. The editor carries these through unchanged.
func DefaultStyles(t domain.BlockType) map[string]string {
	switch t {
	case domain.BlockTypeHero:
		return map[string]string{
			"padding":   "96px 24px",
			"align":     "center",
			"minHeight": "480px",
		}
	case domain.BlockTypeAbout, domain.BlockTypeFAQ:
		return map[string]string{
			"padding": "64px 24px",
			"align":   "left",
		}
	case domain.BlockTypeSchedule, domain.BlockTypePrizes, domain.BlockTypeJudges,
		domain.BlockTypeSponsors, domain.BlockTypeStats, domain.BlockTypeContact:
		return map[string]string{
			"padding": "64px 24px",
			"align":   "center",
		}
	}
	panic(fmt.Sprintf("catalog: unknown block type %q", t))
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
