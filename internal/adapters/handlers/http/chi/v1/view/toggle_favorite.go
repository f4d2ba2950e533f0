package view

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ToggleFavoriteRequest carries the value the user saw before toggling
type V1ToggleFavoriteRequest struct {
	Current *bool `json:"current"`
}

// V1ToggleFavoriteResponse is the optimistic value after the toggle
type V1ToggleFavoriteResponse struct {
	DocumentID uuid.UUID `json:"document_id"`
	IsFavorite bool      `json:"is_favorite"`
}

// ToggleFavoriteV1 flips the favorite flag of a document. The write is persisted later.
func (h *HandlerV1) ToggleFavoriteV1(w http.ResponseWriter, r *http.Request) {
	v, ok := h.view(w, r)
	if !ok {
		return
	}

	documentID, err := uuid.Parse(chi.URLParam(r, "documentID"))
	if err != nil {
		response.BadRequest(w, h.logger, "invalid document id")
		return
	}

	var req V1ToggleFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding toggle request", "error", err)
		response.BadRequest(w, h.logger, "invalid request")
		return
	}
	if req.Current == nil {
		response.BadRequest(w, h.logger, "current required")
		return
	}

	if !v.Knows(documentID) {
		doc, err := h.metadata.GetDocument(r.Context(), documentID)
		if err != nil {
			response.Error(w, h.logger, err)
			return
		}
		v.Track(*doc)
	}

	value, err := v.Toggle(documentID, *req.Current)
	if err != nil {
		response.Error(w, h.logger, err)
		return
	}

	response.JSON(w, h.logger, http.StatusOK, V1ToggleFavoriteResponse{DocumentID: documentID, IsFavorite: value})
}
