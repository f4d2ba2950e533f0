package importwiz

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/port"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 imports routes
type HandlerV1 struct {
	registry port.ImportRegistry
	logger   *slog.Logger
}

// NewImportHandlerV1 creates HandlerV1
func NewImportHandlerV1(registry port.ImportRegistry, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		registry: registry,
		logger:   logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	// the file body is streamed to the object store, no size or time limit here
	router.Put("/{importID}/file", h.UploadFileV1)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequestSize(1 << 20))
		r.Use(middleware.Timeout(60 * time.Second))

		r.Post("/", h.OpenImportV1)
		r.Get("/{importID}", h.GetImportV1)
		r.Delete("/{importID}", h.CloseImportV1)
		r.Delete("/{importID}/file", h.CancelUploadV1)
		r.Post("/{importID}/video", h.SelectVideoV1)
		r.Post("/{importID}/link", h.SelectLinkV1)
		r.Post("/{importID}/advance", h.AdvanceV1)
		r.Post("/{importID}/back", h.BackV1)
		r.Put("/{importID}/details", h.UpdateDetailsV1)
		r.Post("/{importID}/tags", h.AddTagV1)
		r.Delete("/{importID}/tags/{tag}", h.RemoveTagV1)
		r.Post("/{importID}/submit", h.SubmitV1)
	})

	return router
}

// wizard resolves the importID url param, writing the error response when it fails
func (h *HandlerV1) wizard(w http.ResponseWriter, r *http.Request) (port.ImportWizard, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "importID"))
	if err != nil {
		response.BadRequest(w, h.logger, "invalid import id")
		return nil, false
	}

	wiz, err := h.registry.Get(id)
	if err != nil {
		response.Error(w, h.logger, err)
		return nil, false
	}
	return wiz, true
}

// respond writes the snapshot of wiz, or the error
func (h *HandlerV1) respond(w http.ResponseWriter, wiz port.ImportWizard, err error) {
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}
	response.JSON(w, h.logger, http.StatusOK, newV1ImportResponse(wiz.Snapshot()))
}
