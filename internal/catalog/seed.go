package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/tracykish1/T-T-Botanica-Shop/internal/domain"
)

const placeholderImage = "https://images.unsplash.com/photo-1598899134739-24b6b8443a86?q=80&w=1600&auto=format&fit=crop"

// Seed returns the initial catalog, used when nothing has been
// persisted yet.
func Seed() []domain.Product {
	return []domain.Product{
		{
			ID:          "p1",
			Name:        "Monstera deliciosa",
			Subtitle:    "Medium plant · Established",
			Price:       decimal.NewFromInt(38),
			CompareAt:   decimal.NewFromInt(46),
			Category:    "Aroids",
			Type:        "Medium plant",
			Tags:        []string{"Easy", "Low light tolerant"},
			Stock:       12,
			ImageURL:    placeholderImage,
			Description: "Classic split-leaf beauty grown in T&T's airy aroid mix. Expect 2-3 new leaves this season.",
			Care:        domain.Care{Light: "Bright indirect", Water: "When top 2\" is dry", Humidity: "40-60%"},
		},
		{
			ID:          "p2",
			Name:        "Hoya kerrii (heart leaf)",
			Subtitle:    "Starter plant · Rooted cutting",
			Price:       decimal.NewFromInt(16),
			Category:    "Hoyas",
			Type:        "Starter plant",
			Tags:        []string{"Giftable", "Drought tolerant"},
			Stock:       20,
			ImageURL:    "https://images.unsplash.com/photo-1606041008023-472dfb5e5303?q=80&w=1600&auto=format&fit=crop",
			Description: "Adorable heart-shaped leaves. Thrives in chunky mix and bright light. Ships in 2.5\" nursery pot.",
			Care:        domain.Care{Light: "Bright to bright-indirect", Water: "Let dry between waterings", Humidity: "40%+"},
		},
		{
			ID:          "p3",
			Name:        "Philodendron 'Pink Princess'",
			Subtitle:    "Cutting · Variegated",
			Price:       decimal.NewFromInt(68),
			CompareAt:   decimal.NewFromInt(79),
			Category:    "Aroids",
			Type:        "Cutting",
			Tags:        []string{"Variegated", "Collector"},
			Stock:       6,
			ImageURL:    "https://images.unsplash.com/photo-1605087158074-3f0b4f7b82ec?q=80&w=1600&auto=format&fit=crop",
			Description: "Stable pink streaks, one-node cutting with aerial root. Packed with warmth pack as needed.",
			Care:        domain.Care{Light: "Bright indirect", Water: "Keep slightly moist", Humidity: "60%+"},
		},
		{
			ID:          "p4",
			Name:        "Alocasia corm mix (3-pack)",
			Subtitle:    "Corms · Dormant",
			Price:       decimal.NewFromInt(12),
			Category:    "Alocasia",
			Type:        "Corms",
			Tags:        []string{"Budget", "Fun project"},
			Stock:       18,
			ImageURL:    "https://images.unsplash.com/photo-1598899134374-2e7bade36dd9?q=80&w=1600&auto=format&fit=crop",
			Description: "Three healthy corms from mixed cultivars. Plant shallow in warm, humid conditions for best sprout rate.",
			Care:        domain.Care{Light: "Bright indirect", Water: "Evenly moist", Humidity: "60%+"},
		},
	}
}
