package attribute

import (
	"time"

	"github.com/atheriel/itemforge/internal/domain"
)

// Berry carries the growth parameters of a plantable berry item.
type Berry struct {
	GrowthTime time.Duration `json:"growth_time"`
	MaxHarvest int           `json:"max_harvest"`
}

// NewBerry creates a berry attribute.
func NewBerry(growthTime time.Duration, maxHarvest int) *Berry {
	return &Berry{GrowthTime: growthTime, MaxHarvest: maxHarvest}
}

func (a *Berry) Kind() domain.AttributeKind { return domain.AttributeKindBerry }
