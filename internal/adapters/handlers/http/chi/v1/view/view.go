package view

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
)

// V1OpenViewRequest is the body of the open view request. School scopes the favorites list.
type V1OpenViewRequest struct {
	School *string `json:"school"`
}

// V1DocumentResponse is a favorite document as displayed
type V1DocumentResponse struct {
	ID         uuid.UUID         `json:"id"`
	Title      string            `json:"title"`
	Type       string            `json:"type"`
	Subject    string            `json:"subject"`
	School     string            `json:"school"`
	SourceKind domain.SourceKind `json:"source_kind"`
	IsFavorite bool              `json:"is_favorite"`
}

// V1WriteErrorResponse is a favorite write that failed and was rolled back
type V1WriteErrorResponse struct {
	DocumentID *uuid.UUID `json:"document_id,omitempty"`
	Error      string     `json:"error"`
}

// V1ViewResponse is the favorites display of a view
type V1ViewResponse struct {
	ViewID    uuid.UUID              `json:"view_id"`
	Favorites []V1DocumentResponse   `json:"favorites"`
	Errors    []V1WriteErrorResponse `json:"errors"`
}

func newV1ViewResponse(v port.FavoriteView) V1ViewResponse {
	favorites := v.Favorites()
	resp := V1ViewResponse{
		ViewID:    v.ID(),
		Favorites: make([]V1DocumentResponse, 0, len(favorites)),
		Errors:    []V1WriteErrorResponse{},
	}
	for _, doc := range favorites {
		resp.Favorites = append(resp.Favorites, V1DocumentResponse{
			ID:         doc.ID,
			Title:      doc.Title,
			Type:       doc.Type,
			Subject:    doc.Subject,
			School:     doc.School,
			SourceKind: doc.SourceKind,
			IsFavorite: doc.IsFavorite,
		})
	}
	for _, err := range v.DrainErrors() {
		item := V1WriteErrorResponse{Error: err.Error()}
		var writeErr *domain.FavoriteWriteError
		if errors.As(err, &writeErr) {
			id := writeErr.DocumentID
			item.DocumentID = &id
		}
		resp.Errors = append(resp.Errors, item)
	}
	return resp
}

// OpenViewV1 opens a favorites view
func (h *HandlerV1) OpenViewV1(w http.ResponseWriter, r *http.Request) {
	var req V1OpenViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("error decoding open view request", "error", err)
		response.BadRequest(w, h.logger, "invalid request")
		return
	}

	v, err := h.views.Open(r.Context(), req.School)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	w.Header().Set("Location", "/api/v1/views/"+v.ID().String())
	response.JSON(w, h.logger, http.StatusCreated, newV1ViewResponse(v))
}

// GetViewV1 returns the favorites display and the write errors queued since the last call
func (h *HandlerV1) GetViewV1(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	response.JSON(w, h.logger, http.StatusOK, newV1ViewResponse(v))
}

// CloseViewV1 tears a view down. Pending writes are dropped.
func (h *HandlerV1) CloseViewV1(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}
	if err := h.views.Close(v.ID()); err != nil {
		response.Error(w, h.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
