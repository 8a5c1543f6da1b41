package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/atheriel/itemforge/internal/domain"
	"github.com/atheriel/itemforge/internal/event"
	"github.com/atheriel/itemforge/internal/item"
	"github.com/atheriel/itemforge/internal/logger"
	"github.com/atheriel/itemforge/internal/metrics"
)

// ItemView is the JSON projection of an effective item
type ItemView struct {
	Name          string                                     `json:"name"`
	Description   string                                     `json:"description"`
	Sellable      bool                                       `json:"sellable"`
	SalePrice     int                                        `json:"sale_price"`
	Usable        bool                                       `json:"usable"`
	Consumable    bool                                       `json:"consumable"`
	Holdable      bool                                       `json:"holdable"`
	HasHoldEffect bool                                       `json:"has_hold_effect"`
	Attributes    map[domain.AttributeKind]domain.Attribute `json:"attributes"`
	UseEffects    []domain.EffectKind                        `json:"use_effects"`
	HoldEffects   []domain.EffectKind                        `json:"hold_effects"`
}

func newItemView(it *domain.EffectiveItem) ItemView {
	attrs := make(map[domain.AttributeKind]domain.Attribute)
	for _, kind := range it.AttributeKinds() {
		if attr, ok := it.GetAttribute(kind); ok {
			attrs[kind] = attr
		}
	}

	return ItemView{
		Name:          it.Name,
		Description:   it.Description,
		Sellable:      it.Sellable,
		SalePrice:     it.SalePrice,
		Usable:        it.Usable,
		Consumable:    it.Consumable,
		Holdable:      it.Holdable,
		HasHoldEffect: it.HasHoldEffect,
		Attributes:    attrs,
		UseEffects:    it.UseEffectKinds(),
		HoldEffects:   it.HoldEffectKinds(),
	}
}

// HandleListItems returns all catalog items
func HandleListItems(catalog *item.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items := catalog.Items()
		views := make([]ItemView, 0, len(items))
		for _, it := range items {
			views = append(views, newItemView(it))
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: views})
	}
}

// HandleGetItem returns a single catalog item by name
func HandleGetItem(catalog *item.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		it, ok := catalog.Lookup(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: newItemView(it)})
	}
}

// HandleGetItemAttribute returns a single attribute of an item by kind.
// A missing attribute is a plain not-found, not a server error.
func HandleGetItemAttribute(catalog *item.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		kind := domain.AttributeKind(chi.URLParam(r, "kind"))

		it, ok := catalog.Lookup(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		attr, ok := it.GetAttribute(kind)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgAttributeNotFoundError)
			return
		}
		respondJSON(w, http.StatusOK, DataResponse{Data: attr})
	}
}

// AttachEffectRequest asks for an effect of the given kind to be attached
type AttachEffectRequest struct {
	Kind string `json:"kind" validate:"required,max=100"`
}

// AttachEffectResponse reports the resulting flag state of the item
type AttachEffectResponse struct {
	Message       string `json:"message"`
	ItemName      string `json:"item_name"`
	EffectKind    string `json:"effect_kind"`
	Existing      bool   `json:"existing"`
	Usable        bool   `json:"usable"`
	Holdable      bool   `json:"holdable"`
	HasHoldEffect bool   `json:"has_hold_effect"`
}

// HandleAttachEffect attaches an effect of the requested kind to an item.
// The category decides which of the two effect mappings is used.
func HandleAttachEffect(catalog *item.Catalog, category domain.EffectCategory, bus event.Bus) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req AttachEffectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode attach effect request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid request", "error", err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
			return
		}

		name := chi.URLParam(r, "name")
		it, ok := catalog.Lookup(name)
		if !ok {
			respondError(w, http.StatusNotFound, ErrMsgItemNotFoundError)
			return
		}

		kind := domain.EffectKind(req.Kind)
		existing, err := attachEffect(it, category, kind)
		if err != nil {
			log.Warn("Failed to attach effect",
				"error", err, "item", it.Name, "category", category, "kind", kind)
			metrics.EffectConstructionErrors.WithLabelValues(string(category), req.Kind).Inc()
			status, message := mapDomainErrorToStatus(err)
			respondError(w, status, message)
			return
		}

		if !existing {
			metrics.EffectsAttached.WithLabelValues(string(category), req.Kind).Inc()
		}
		if err := bus.Publish(r.Context(), event.NewEffectAttachedEvent(it.Name, category, kind, existing)); err != nil {
			log.Warn("Failed to publish effect attached event", "error", err)
		}

		log.Info("Effect attached",
			"item", it.Name, "category", category, "kind", kind, "existing", existing)

		respondJSON(w, http.StatusOK, AttachEffectResponse{
			Message:       MsgEffectAttached,
			ItemName:      it.Name,
			EffectKind:    req.Kind,
			Existing:      existing,
			Usable:        it.Usable,
			Holdable:      it.Holdable,
			HasHoldEffect: it.HasHoldEffect,
		})
	}
}

// attachEffect runs get-or-create for the right category and reports whether
// the effect already existed.
func attachEffect(it *domain.EffectiveItem, category domain.EffectCategory, kind domain.EffectKind) (bool, error) {
	switch category {
	case domain.EffectCategoryHold:
		_, existing := it.HoldEffect(kind)
		if _, err := it.GetOrCreateHoldEffect(kind); err != nil {
			return false, err
		}
		return existing, nil
	default:
		_, existing := it.UseEffect(kind)
		if _, err := it.GetOrCreateUseEffect(kind); err != nil {
			return false, err
		}
		return existing, nil
	}
}
