package domain

import "sync"

// Item is the base item entity. The plain data fields carry no invariants
// beyond their types and are freely mutable; the attribute map is the
// interesting part. It stays nil until the first AddAttribute call, so items
// that never acquire attributes pay no allocation. Absent and empty maps are
// equivalent on every read path.
type Item struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Sellable      bool   `json:"sellable"`
	SalePrice     int    `json:"sale_price"`
	Usable        bool   `json:"usable"`
	Consumable    bool   `json:"consumable"`
	Holdable      bool   `json:"holdable"`
	HasHoldEffect bool   `json:"has_hold_effect"`

	attrMu     sync.RWMutex
	attributes map[AttributeKind]Attribute
}

// NewItem creates an item with the given name. The attribute map is not
// allocated until an attribute is added.
func NewItem(name string) *Item {
	return &Item{Name: name}
}

// AddAttribute stores attr under kind, overwriting any prior value for that
// kind. Last write wins; callers that want first-write-wins must check
// GetAttribute themselves.
func (it *Item) AddAttribute(kind AttributeKind, attr Attribute) {
	it.attrMu.Lock()
	defer it.attrMu.Unlock()

	if it.attributes == nil {
		it.attributes = make(map[AttributeKind]Attribute)
	}
	it.attributes[kind] = attr
}

// GetAttribute returns the attribute stored under kind, or false when the
// item has none. A miss is a normal result, not an error.
func (it *Item) GetAttribute(kind AttributeKind) (Attribute, bool) {
	it.attrMu.RLock()
	defer it.attrMu.RUnlock()

	if it.attributes == nil {
		return nil, false
	}
	attr, ok := it.attributes[kind]
	return attr, ok
}

// AttributeKinds returns the kinds currently present on the item. The order
// is unspecified.
func (it *Item) AttributeKinds() []AttributeKind {
	it.attrMu.RLock()
	defer it.attrMu.RUnlock()

	kinds := make([]AttributeKind, 0, len(it.attributes))
	for kind := range it.attributes {
		kinds = append(kinds, kind)
	}
	return kinds
}
