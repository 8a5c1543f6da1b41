package handler

import (
	"net/http"

	"github.com/atheriel/itemforge/internal/event"
	"github.com/atheriel/itemforge/internal/item"
	"github.com/atheriel/itemforge/internal/logger"
)

// ReloadResponse reports the size of the catalog after a reload
type ReloadResponse struct {
	Message   string `json:"message"`
	ItemCount int    `json:"item_count"`
}

// HandleReloadCatalog re-reads the item configuration from disk and rebuilds
// the catalog. A failed reload leaves the running catalog untouched.
func HandleReloadCatalog(loader item.Loader, catalog *item.Catalog, bus event.Bus, configPath string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		config, err := loader.Load(configPath)
		if err != nil {
			log.Error("Failed to load item configuration", "error", err, "path", configPath)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		if err := loader.Validate(config); err != nil {
			log.Error("Invalid item configuration", "error", err, "path", configPath)
			respondError(w, http.StatusInternalServerError, ErrMsgReloadConfigFailed)
			return
		}

		if err := catalog.Build(config); err != nil {
			log.Error("Failed to rebuild catalog", "error", err)
			status, message := mapDomainErrorToStatus(err)
			respondError(w, status, message)
			return
		}

		if err := bus.Publish(r.Context(), event.NewCatalogReloadedEvent(catalog.Len())); err != nil {
			log.Warn("Failed to publish catalog reloaded event", "error", err)
		}

		log.Info("Catalog reloaded", "items", catalog.Len())
		respondJSON(w, http.StatusOK, ReloadResponse{
			Message:   MsgCatalogReloaded,
			ItemCount: catalog.Len(),
		})
	}
}
