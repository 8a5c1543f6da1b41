package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/atheriel/itemforge/internal/domain"
	"github.com/atheriel/itemforge/internal/metrics"
)

// EventSchemaVersion is the current version of the event schema
const EventSchemaVersion = "1.0"

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Common event types
const (
	AttributeAdded  Type = "item.attribute.added"
	EffectAttached  Type = "item.effect.attached"
	CatalogReloaded Type = "catalog.reloaded"
)

// Typed event payloads for type safety

// AttributeAddedPayloadV1 is the typed payload for attribute added events
type AttributeAddedPayloadV1 struct {
	ItemName      string `json:"item_name"`
	AttributeKind string `json:"attribute_kind"`
	Timestamp     int64  `json:"timestamp"`
}

// EffectAttachedPayloadV1 is the typed payload for effect attached events
type EffectAttachedPayloadV1 struct {
	ItemName   string `json:"item_name"`
	Category   string `json:"category"` // "use" or "hold"
	EffectKind string `json:"effect_kind"`
	Existing   bool   `json:"existing"` // true when the call returned an already-attached instance
	Timestamp  int64  `json:"timestamp"`
}

// CatalogReloadedPayloadV1 is the typed payload for catalog reload events
type CatalogReloadedPayloadV1 struct {
	ItemCount int   `json:"item_count"`
	Timestamp int64 `json:"timestamp"`
}

// Type-safe event constructors

// NewAttributeAddedEvent creates a new attribute added event
func NewAttributeAddedEvent(itemName string, kind domain.AttributeKind) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    AttributeAdded,
		Payload: AttributeAddedPayloadV1{
			ItemName:      itemName,
			AttributeKind: string(kind),
			Timestamp:     time.Now().Unix(),
		},
	}
}

// NewEffectAttachedEvent creates a new effect attached event
func NewEffectAttachedEvent(itemName string, category domain.EffectCategory, kind domain.EffectKind, existing bool) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    EffectAttached,
		Payload: EffectAttachedPayloadV1{
			ItemName:   itemName,
			Category:   string(category),
			EffectKind: string(kind),
			Existing:   existing,
			Timestamp:  time.Now().Unix(),
		},
	}
}

// NewCatalogReloadedEvent creates a new catalog reloaded event
func NewCatalogReloadedEvent(itemCount int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    CatalogReloaded,
		Payload: CatalogReloadedPayloadV1{
			ItemCount: itemCount,
			Timestamp: time.Now().Unix(),
		},
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// in subscription order; a failing handler does not stop the others.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d handler error(s) for %s: %v", len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
