package attribute

import "github.com/atheriel/itemforge/internal/domain"

// Flavor describes the five-way taste profile of a berry-like item.
type Flavor struct {
	Spicy  int `json:"spicy"`
	Dry    int `json:"dry"`
	Sweet  int `json:"sweet"`
	Bitter int `json:"bitter"`
	Sour   int `json:"sour"`
}

// NewFlavor creates a flavor attribute from the five taste values.
func NewFlavor(spicy, dry, sweet, bitter, sour int) *Flavor {
	return &Flavor{Spicy: spicy, Dry: dry, Sweet: sweet, Bitter: bitter, Sour: sour}
}

func (a *Flavor) Kind() domain.AttributeKind { return domain.AttributeKindFlavor }

// Dominant returns the name of the strongest taste, or "" when all five
// values are zero. Ties resolve in declaration order.
func (a *Flavor) Dominant() string {
	names := []string{"spicy", "dry", "sweet", "bitter", "sour"}
	values := []int{a.Spicy, a.Dry, a.Sweet, a.Bitter, a.Sour}

	best, bestIdx := 0, -1
	for i, v := range values {
		if v > best {
			best, bestIdx = v, i
		}
	}
	if bestIdx < 0 {
		return ""
	}
	return names[bestIdx]
}
