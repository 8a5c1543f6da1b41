package domain

// AttributeKind identifies a category of item attribute. Attributes are
// stored and retrieved by kind rather than by concrete type so that lookup
// never depends on runtime type identity (and serialization stays simple:
// a consumer asks "does this item have kind X" without reflection).
type AttributeKind string

// The closed set of attribute kinds.
const (
	AttributeKindIdentity AttributeKind = "identity"
	AttributeKindFlavor   AttributeKind = "flavor"
	AttributeKindPocket   AttributeKind = "pocket"
	AttributeKindBerry    AttributeKind = "berry"
)

// Attribute is a named, typed facet of an item. One instance per kind per
// item; the instance is owned exclusively by the item that holds it.
type Attribute interface {
	Kind() AttributeKind
}

// AttributeAs retrieves the attribute stored under kind and asserts it to
// the concrete type T. Returns the zero value and false when the attribute
// is absent or holds a different concrete type, so callers never need an
// unchecked cast.
func AttributeAs[T Attribute](it *Item, kind AttributeKind) (T, bool) {
	attr, ok := it.GetAttribute(kind)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := attr.(T)
	return typed, ok
}
