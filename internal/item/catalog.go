package item

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/cases"

	"github.com/atheriel/itemforge/internal/attribute"
	"github.com/atheriel/itemforge/internal/domain"
	"github.com/atheriel/itemforge/internal/metrics"
)

// Catalog is the in-memory store of assembled items, keyed by case-folded
// internal name. Items are built once from a Config and shared by reference;
// effect attachment through a catalog item follows the normal get-or-create
// contract.
type Catalog struct {
	registry *domain.Registry

	mu    sync.RWMutex
	items map[string]*domain.EffectiveItem

	cache  *lookupCache
	folder cases.Caser
}

// NewCatalog creates an empty catalog resolving effect kinds against the
// given registry.
func NewCatalog(registry *domain.Registry, cacheSize int, cacheTTL time.Duration) *Catalog {
	return &Catalog{
		registry: registry,
		items:    make(map[string]*domain.EffectiveItem),
		cache:    newLookupCache(cacheSize, cacheTTL),
		folder:   cases.Fold(),
	}
}

// Build replaces the catalog contents with items assembled from the config.
// The config must already be validated. Unknown effect kinds fail the build;
// a failed build leaves the previous contents in place.
func (c *Catalog) Build(config *Config) error {
	items := make(map[string]*domain.EffectiveItem, len(config.Items))

	for i := range config.Items {
		def := &config.Items[i]
		it, err := c.assemble(def)
		if err != nil {
			return err
		}
		items[c.folder.String(def.InternalName)] = it
	}

	c.mu.Lock()
	c.items = items
	c.mu.Unlock()
	c.cache.Clear()

	metrics.CatalogItems.Set(float64(len(items)))
	metrics.CatalogReloads.Inc()
	return nil
}

// assemble builds one effective item from its definition.
func (c *Catalog) assemble(def *Def) (*domain.EffectiveItem, error) {
	it := domain.NewEffectiveItemWithRegistry(def.InternalName, c.registry)
	it.Description = def.Description
	it.Sellable = def.Sellable
	it.SalePrice = def.SalePrice
	it.Consumable = def.Consumable

	if def.Identity != nil {
		displayName := def.Identity.DisplayName
		if displayName == "" {
			displayName = def.DisplayName
		}
		c.addAttribute(it, attribute.NewIdentity(def.Identity.ID, displayName))
	}
	if def.Flavor != nil {
		f := def.Flavor
		c.addAttribute(it, attribute.NewFlavor(f.Spicy, f.Dry, f.Sweet, f.Bitter, f.Sour))
	}
	if def.Pocket != "" {
		c.addAttribute(it, attribute.NewPocket(def.Pocket))
	}
	if def.Berry != nil {
		growth := time.Duration(def.Berry.GrowthHours) * time.Hour
		c.addAttribute(it, attribute.NewBerry(growth, def.Berry.MaxHarvest))
	}

	for _, kind := range def.UseEffects {
		if _, err := it.GetOrCreateUseEffect(domain.EffectKind(kind)); err != nil {
			return nil, fmt.Errorf(ErrFmtAttachEffectFailed, def.InternalName, domain.EffectCategoryUse, kind, err)
		}
		metrics.EffectsAttached.WithLabelValues(string(domain.EffectCategoryUse), kind).Inc()
	}
	for _, kind := range def.HoldEffects {
		if _, err := it.GetOrCreateHoldEffect(domain.EffectKind(kind)); err != nil {
			return nil, fmt.Errorf(ErrFmtAttachEffectFailed, def.InternalName, domain.EffectCategoryHold, kind, err)
		}
		metrics.EffectsAttached.WithLabelValues(string(domain.EffectCategoryHold), kind).Inc()
	}

	return it, nil
}

func (c *Catalog) addAttribute(it *domain.EffectiveItem, attr domain.Attribute) {
	it.AddAttribute(attr.Kind(), attr)
	metrics.AttributesAdded.WithLabelValues(string(attr.Kind())).Inc()
}

// Lookup resolves an item by internal name, falling back to a scan over
// identity display names. Matching folds case (Unicode case folding, so
// "POKé BALL" finds "poké ball"). Resolved display-name lookups are
// memoized in the LRU cache.
func (c *Catalog) Lookup(name string) (*domain.EffectiveItem, bool) {
	folded := c.folder.String(name)

	c.mu.RLock()
	it, ok := c.items[folded]
	c.mu.RUnlock()
	if ok {
		return it, true
	}

	if cached, ok := c.cache.Get(folded); ok {
		return cached, true
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, candidate := range c.items {
		identity, ok := domain.AttributeAs[*attribute.Identity](&candidate.Item, domain.AttributeKindIdentity)
		if ok && c.folder.String(identity.DisplayName) == folded {
			c.cache.Set(folded, candidate)
			return candidate, true
		}
	}
	return nil, false
}

// Items returns all catalog items sorted by name.
func (c *Catalog) Items() []*domain.EffectiveItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]*domain.EffectiveItem, 0, len(c.items))
	for _, it := range c.items {
		items = append(items, it)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
