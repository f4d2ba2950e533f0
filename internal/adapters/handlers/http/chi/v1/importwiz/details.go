package importwiz

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/domain"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// V1UpdateDetailsRequest is the body of the details form. Tags are left untouched when omitted.
type V1UpdateDetailsRequest struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Subject         string   `json:"subject"`
	School          string   `json:"school"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	DownloadEnabled bool     `json:"download_enabled"`
}

// V1AddTagRequest is the body of the add tag request
type V1AddTagRequest struct {
	Tag string `json:"tag"`
}

// UpdateDetailsV1 replaces the form fields of an import
func (h *HandlerV1) UpdateDetailsV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	var req V1UpdateDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding details request", "error", err)
		response.BadRequest(w, h.logger, "invalid request")
		return
	}

	err := wiz.UpdateDetails(domain.DocumentDetails{
		Title:           req.Title,
		Type:            req.Type,
		Subject:         req.Subject,
		School:          req.School,
		Description:     req.Description,
		Tags:            req.Tags,
		DownloadEnabled: req.DownloadEnabled,
	})
	h.respond(w, wiz, err)
}

// AddTagV1 adds a tag to an import
func (h *HandlerV1) AddTagV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	var req V1AddTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding add tag request", "error", err)
		response.BadRequest(w, h.logger, "invalid request")
		return
	}
	if req.Tag == "" {
		response.BadRequest(w, h.logger, "tag cannot be empty")
		return
	}

	h.respond(w, wiz, wiz.AddTag(req.Tag))
}

// RemoveTagV1 removes a tag from an import
func (h *HandlerV1) RemoveTagV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.RemoveTag(chi.URLParam(r, "tag")))
}
