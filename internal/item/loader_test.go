package item

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestItemLoader_Load(t *testing.T) {
	loader := NewLoader()

	t.Run("valid JSON file", func(t *testing.T) {
		content := `{
			"version": "1.0",
			"description": "Test items",
			"items": [
				{
					"internal_name": "cheri_berry",
					"display_name": "Cheri Berry",
					"description": "A spicy berry",
					"sellable": true,
					"sale_price": 10,
					"consumable": true,
					"pocket": "Berries",
					"identity": {"id": 1, "display_name": "Cheri Berry"},
					"flavor": {"spicy": 10},
					"berry": {"growth_hours": 12, "max_harvest": 5},
					"use_effects": ["heal"]
				}
			]
		}`
		tmpFile := createTempFile(t, content)

		config, err := loader.Load(tmpFile)
		require.NoError(t, err)
		assert.Equal(t, "1.0", config.Version)
		assert.Equal(t, "Test items", config.Description)
		require.Len(t, config.Items, 1)

		def := config.Items[0]
		assert.Equal(t, "cheri_berry", def.InternalName)
		assert.Equal(t, "Cheri Berry", def.DisplayName)
		assert.Equal(t, "Berries", def.Pocket)
		require.NotNil(t, def.Flavor)
		assert.Equal(t, 10, def.Flavor.Spicy)
		assert.Equal(t, []string{"heal"}, def.UseEffects)
	})

	t.Run("file not found", func(t *testing.T) {
		_, err := loader.Load("/nonexistent/path.json")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read items config file")
	})

	t.Run("invalid JSON", func(t *testing.T) {
		tmpFile := createTempFile(t, `{invalid json}`)

		_, err := loader.Load(tmpFile)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse items config")
	})
}

func TestItemLoader_Validate(t *testing.T) {
	loader := NewLoader()

	validDef := func(name string) Def {
		return Def{
			InternalName: name,
			DisplayName:  "Display " + name,
			SalePrice:    100,
		}
	}

	t.Run("valid config", func(t *testing.T) {
		config := &Config{
			Version: "1.0",
			Items:   []Def{validDef("item1"), validDef("item2")},
		}
		assert.NoError(t, loader.Validate(config))
	})

	t.Run("nil config", func(t *testing.T) {
		err := loader.Validate(nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("empty items", func(t *testing.T) {
		config := &Config{Version: "1.0", Items: []Def{}}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing version", func(t *testing.T) {
		config := &Config{Items: []Def{validDef("item1")}}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing internal name", func(t *testing.T) {
		def := validDef("")
		config := &Config{Version: "1.0", Items: []Def{def}}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("missing display name", func(t *testing.T) {
		def := Def{InternalName: "item1"}
		config := &Config{Version: "1.0", Items: []Def{def}}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("negative sale price", func(t *testing.T) {
		def := validDef("item1")
		def.SalePrice = -1
		config := &Config{Version: "1.0", Items: []Def{def}}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))
	})

	t.Run("duplicate internal names", func(t *testing.T) {
		config := &Config{
			Version: "1.0",
			Items:   []Def{validDef("dupe"), validDef("dupe")},
		}
		err := loader.Validate(config)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrDuplicateInternalName))
		assert.Contains(t, err.Error(), "dupe")
	})
}
