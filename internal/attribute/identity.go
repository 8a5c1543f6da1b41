package attribute

import "github.com/atheriel/itemforge/internal/domain"

// Identity carries an item's stable numeric id alongside its display name.
type Identity struct {
	ID          int    `json:"id"`
	DisplayName string `json:"display_name"`
}

// NewIdentity creates an identity attribute.
func NewIdentity(id int, displayName string) *Identity {
	return &Identity{ID: id, DisplayName: displayName}
}

func (a *Identity) Kind() domain.AttributeKind { return domain.AttributeKindIdentity }
