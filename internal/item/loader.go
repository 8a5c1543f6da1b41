// Package item loads item definitions from configuration and serves them
// from an in-memory catalog of fully assembled effective items.
package item

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors for the item loader
var (
	ErrDuplicateInternalName = errors.New("duplicate internal name")

	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config represents the JSON configuration for items
type Config struct {
	Version     string `json:"version" validate:"required"`
	Description string `json:"description"`

	Items []Def `json:"items" validate:"dive"`
}

// Def represents a single item definition in the JSON
type Def struct {
	InternalName string `json:"internal_name" validate:"required,max=100,excludesall=\x00\n\r\t"`
	DisplayName  string `json:"display_name" validate:"required,max=100"`
	Description  string `json:"description"`
	Sellable     bool   `json:"sellable"`
	SalePrice    int    `json:"sale_price" validate:"min=0"`
	Consumable   bool   `json:"consumable"`

	// Attribute blocks; each is optional.
	Identity *IdentityDef `json:"identity,omitempty"`
	Flavor   *FlavorDef   `json:"flavor,omitempty"`
	Pocket   string       `json:"pocket,omitempty" validate:"max=50"`
	Berry    *BerryDef    `json:"berry,omitempty"`

	// Effect kinds attached at catalog build time.
	UseEffects  []string `json:"use_effects,omitempty" validate:"dive,required"`
	HoldEffects []string `json:"hold_effects,omitempty" validate:"dive,required"`
}

// IdentityDef is the identity attribute block
type IdentityDef struct {
	ID          int    `json:"id" validate:"min=0"`
	DisplayName string `json:"display_name"`
}

// FlavorDef is the flavor attribute block
type FlavorDef struct {
	Spicy  int `json:"spicy" validate:"min=0"`
	Dry    int `json:"dry" validate:"min=0"`
	Sweet  int `json:"sweet" validate:"min=0"`
	Bitter int `json:"bitter" validate:"min=0"`
	Sour   int `json:"sour" validate:"min=0"`
}

// BerryDef is the berry attribute block
type BerryDef struct {
	GrowthHours int `json:"growth_hours" validate:"min=0"`
	MaxHarvest  int `json:"max_harvest" validate:"min=0"`
}

// Loader handles loading and validating item configuration
type Loader interface {
	Load(path string) (*Config, error)
	Validate(config *Config) error
}

type itemLoader struct {
	validate *validator.Validate
}

// NewLoader creates a new Loader instance
func NewLoader() Loader {
	return &itemLoader{
		validate: validator.New(),
	}
}

// Load reads and parses an items JSON file
func (l *itemLoader) Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadConfigFileFailed, err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf(ErrMsgParseConfigFailed, err)
	}

	return &config, nil
}

// Validate checks the item configuration for errors
func (l *itemLoader) Validate(config *Config) error {
	if config == nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgConfigNil)
	}

	if len(config.Items) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, ErrMsgNoItemsDefined)
	}

	if err := l.validate.Struct(config); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	// Track internal names for duplicate detection
	internalNames := make(map[string]bool, len(config.Items))
	for i := range config.Items {
		def := &config.Items[i]
		if internalNames[def.InternalName] {
			return fmt.Errorf(ErrFmtDuplicateName, ErrDuplicateInternalName, def.InternalName)
		}
		internalNames[def.InternalName] = true
	}

	return nil
}
