package view

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/port"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 favorites views routes
type HandlerV1 struct {
	views    port.FavoriteViews
	metadata port.MetadataService
	logger   *slog.Logger
}

// NewViewHandlerV1 creates HandlerV1
func NewViewHandlerV1(views port.FavoriteViews, metadata port.MetadataService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		views:    views,
		metadata: metadata,
		logger:   logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.OpenViewV1)
	router.Get("/{viewID}", h.GetViewV1)
	router.Delete("/{viewID}", h.CloseViewV1)
	router.Post("/{viewID}/favorites/{documentID}", h.ToggleFavoriteV1)

	return router
}

func (h *HandlerV1) view(w http.ResponseWriter, r *http.Request) (port.FavoriteView, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "viewID"))
	if err != nil {
		response.BadRequest(w, h.logger, "invalid view id")
		return nil, false
	}

	v, err := h.views.Get(id)
	if err != nil {
		response.Error(w, h.logger, err)
		return nil, false
	}
	return v, true
}
