// Package attribute provides the stock attribute implementations stored on
// items by kind. Attributes are plain data facets; anything with behavior
// belongs in an effect instead.
package attribute

import "github.com/atheriel/itemforge/internal/domain"

// Canonical pocket names for bag sorting.
const (
	PocketItems    = "Items"
	PocketMedicine = "Medicine"
	PocketBerries  = "Berries"
	PocketMachines = "TMs"
	PocketKeyItems = "Key Items"
	PocketBattle   = "Battle Items"
)

// Pocket indicates which bag pocket an item is sorted into.
type Pocket struct {
	Name string `json:"name"`
}

// NewPocket creates a pocket attribute. Use the canonical pocket name
// constants where possible; custom pockets are allowed.
func NewPocket(name string) *Pocket {
	return &Pocket{Name: name}
}

func (p *Pocket) Kind() domain.AttributeKind { return domain.AttributeKindPocket }
