package importwiz

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"errors"
	"mime"
	"net/http"
	"path"
)

// UploadFileV1 streams the request body into the import's upload pipeline and answers once the
// transfer has ended. A transfer cancelled by the user answers with the idle import.
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	fileName := path.Base(r.Header.Get("X-File-Name"))
	if fileName == "" || fileName == "." || fileName == "/" {
		response.BadRequest(w, h.logger, "X-File-Name header required")
		return
	}
	if r.ContentLength < 0 {
		response.JSON(w, h.logger, http.StatusLengthRequired, response.V1Error{Error: "Content-Length required"})
		return
	}

	mimeType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		response.BadRequest(w, h.logger, "invalid Content-Type")
		return
	}

	transfer, err := wiz.SelectFile(r.Context(), port.UploadFile{
		Name:     fileName,
		Size:     r.ContentLength,
		MimeType: mimeType,
		Body:     r.Body,
	})
	if err != nil {
		h.respond(w, wiz, ignoreCancelled(err))
		return
	}

	for progress := range transfer.Progress() {
		h.logger.Debug("upload progress",
			"importID", wiz.ID().String(),
			"percent", progress.ProgressPercent)
	}

	_, err = transfer.Wait()
	h.respond(w, wiz, ignoreCancelled(err))
}

func ignoreCancelled(err error) error {
	if errors.Is(err, domain.ErrTransferCancelled) {
		return nil
	}
	return err
}

// CancelUploadV1 aborts the running upload of an import
func (h *HandlerV1) CancelUploadV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, wiz.CancelUpload())
}
