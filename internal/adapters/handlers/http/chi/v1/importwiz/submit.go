package importwiz

import (
	"net/http"
)

// SubmitV1 commits an import. On success the snapshot carries the new document id.
func (h *HandlerV1) SubmitV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	_, err := wiz.Submit(r.Context())
	h.respond(w, wiz, err)
}
