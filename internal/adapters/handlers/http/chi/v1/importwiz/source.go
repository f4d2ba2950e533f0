package importwiz

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"encoding/json"
	"net/http"
)

// V1URLRequest is the body of the video and link source requests
type V1URLRequest struct {
	URL string `json:"url"`
}

func (h *HandlerV1) decodeURL(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req V1URLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding url request", "error", err)
		response.BadRequest(w, h.logger, "invalid request")
		return "", false
	}
	if req.URL == "" {
		response.BadRequest(w, h.logger, "url required")
		return "", false
	}
	return req.URL, true
}

// SelectVideoV1 resolves an external video and makes it the import source
func (h *HandlerV1) SelectVideoV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	url, ok := h.decodeURL(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.SelectVideo(r.Context(), url))
}

// SelectLinkV1 makes a generic url the import source
func (h *HandlerV1) SelectLinkV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	url, ok := h.decodeURL(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.SelectLink(url))
}

// AdvanceV1 moves an import from source selection to details entry
func (h *HandlerV1) AdvanceV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.Advance())
}

// BackV1 returns an import to source selection
func (h *HandlerV1) BackV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.Back())
}
