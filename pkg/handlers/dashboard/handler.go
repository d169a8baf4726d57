package dashboard

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/fis-tools/fiscal-atlas/pkg/adapters"
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// Assembler is the slice of the report service the handler needs.
type Assembler interface {
	Assemble(ctx context.Context, view domain.ViewKind, prefs domain.DisplayPreferences) (domain.DisplayModel, error)
}

type Handler struct {
	assembler Assembler
	defaults  domain.DisplayPreferences
}

func NewHandler(assembler Assembler, defaults domain.DisplayPreferences) *Handler {
	return &Handler{
		assembler: assembler,
		defaults:  defaults,
	}
}

// ListViews returns the catalog the view selector is built from.
func (h *Handler) ListViews(w http.ResponseWriter, r *http.Request) {
	logger := zerolog.Ctx(r.Context())

	if err := json.NewEncoder(w).Encode(adapters.MapViewCatalogDomainToApi(domain.Views())); err != nil {
		logger.Error().Err(err).Msg("failed to encode view catalog")
	}
}

// GetView assembles and returns the display model for one view. Display
// preferences come from query parameters; an unrecognized view or unit is a
// client error, never a silent default.
func (h *Handler) GetView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	view, err := domain.ParseViewKind(chi.URLParam(r, "view"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	prefs, err := h.preferences(r, view)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	model, err := h.assembler.Assemble(ctx, view, prefs)
	if err != nil {
		logger.Error().Err(err).Str("view", string(view)).Msg("failed to assemble view")
		http.Error(w, "failed to assemble view", http.StatusInternalServerError)
		return
	}

	if err := json.NewEncoder(w).Encode(adapters.MapDisplayModelDomainToApi(model)); err != nil {
		logger.Error().Err(err).Str("view", string(view)).Msg("failed to encode display model")
	}
}

func (h *Handler) preferences(r *http.Request, view domain.ViewKind) (domain.DisplayPreferences, error) {
	prefs := h.defaults
	prefs.View = view

	if raw := r.URL.Query().Get("unit"); raw != "" {
		unit, err := domain.ParseUnit(raw)
		if err != nil {
			return domain.DisplayPreferences{}, err
		}
		prefs.Unit = unit
	}

	if raw := r.URL.Query().Get("comparison"); raw != "" {
		show, err := strconv.ParseBool(raw)
		if err != nil {
			return domain.DisplayPreferences{}, err
		}
		prefs.ShowComparison = show
	}

	return prefs, nil
}
