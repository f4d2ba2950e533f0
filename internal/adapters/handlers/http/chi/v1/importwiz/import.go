package importwiz

import (
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/domain"
	"net/http"

	"github.com/google/uuid"
)

// V1UploadResponse is the state of the file upload of an import
type V1UploadResponse struct {
	Status          domain.UploadStatus `json:"status"`
	FileName        string              `json:"filename,omitempty"`
	SizeBytes       int64               `json:"size_bytes,omitempty"`
	ProgressPercent int                 `json:"progress_percent"`
	Error           string              `json:"error,omitempty"`
}

// V1VideoResponse is the resolved metadata of an external video
type V1VideoResponse struct {
	Platform        domain.VideoPlatform `json:"platform"`
	Title           string               `json:"title"`
	DurationSeconds int                  `json:"duration_seconds"`
	ThumbnailURL    string               `json:"thumbnail_url,omitempty"`
}

// V1SourceResponse is the acquired source of an import
type V1SourceResponse struct {
	Kind      domain.SourceKind `json:"kind"`
	Ref       string            `json:"ref,omitempty"`
	FileName  string            `json:"filename,omitempty"`
	MimeType  string            `json:"mime_type,omitempty"`
	SizeBytes int64             `json:"size_bytes,omitempty"`
	Video     *V1VideoResponse  `json:"video,omitempty"`
}

// V1DetailsResponse is the form state of an import
type V1DetailsResponse struct {
	Title           string   `json:"title"`
	Type            string   `json:"type"`
	Subject         string   `json:"subject"`
	School          string   `json:"school"`
	Description     string   `json:"description"`
	Tags            []string `json:"tags"`
	DownloadEnabled bool     `json:"download_enabled"`
}

// V1ImportResponse is the snapshot of an import
type V1ImportResponse struct {
	ImportID   uuid.UUID         `json:"import_id"`
	Step       domain.WizardStep `json:"step"`
	Upload     V1UploadResponse  `json:"upload"`
	Source     *V1SourceResponse `json:"source,omitempty"`
	Details    V1DetailsResponse `json:"details"`
	DocumentID *uuid.UUID        `json:"document_id,omitempty"`
}

func newV1ImportResponse(s domain.WizardSnapshot) V1ImportResponse {
	tags := s.Details.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := V1ImportResponse{
		ImportID: s.ID,
		Step:     s.Step,
		Upload: V1UploadResponse{
			Status:          s.Upload.Status,
			FileName:        s.Upload.FileName,
			SizeBytes:       s.Upload.SizeBytes,
			ProgressPercent: s.Upload.ProgressPercent,
			Error:           s.Upload.Error,
		},
		Details: V1DetailsResponse{
			Title:           s.Details.Title,
			Type:            s.Details.Type,
			Subject:         s.Details.Subject,
			School:          s.Details.School,
			Description:     s.Details.Description,
			Tags:            tags,
			DownloadEnabled: s.Details.DownloadEnabled,
		},
		DocumentID: s.DocumentID,
	}

	if s.Source != nil {
		resp.Source = &V1SourceResponse{
			Kind:      s.Source.Kind,
			Ref:       s.Source.Ref,
			FileName:  s.Source.FileName,
			MimeType:  s.Source.MimeType,
			SizeBytes: s.Source.SizeBytes,
		}
		if v := s.Source.Video; v != nil {
			resp.Source.Video = &V1VideoResponse{
				Platform:        v.Platform,
				Title:           v.Title,
				DurationSeconds: v.DurationSeconds,
				ThumbnailURL:    v.ThumbnailURL,
			}
		}
	}
	return resp
}

// OpenImportV1 opens a new import wizard
func (h *HandlerV1) OpenImportV1(w http.ResponseWriter, r *http.Request) {
	wiz := h.registry.Open()
	w.Header().Set("Location", "/api/v1/imports/"+wiz.ID().String())
	response.JSON(w, h.logger, http.StatusCreated, newV1ImportResponse(wiz.Snapshot()))
}

// GetImportV1 returns the snapshot of an import
func (h *HandlerV1) GetImportV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}
	h.respond(w, wiz, nil)
}

// CloseImportV1 abandons an import and forgets it
func (h *HandlerV1) CloseImportV1(w http.ResponseWriter, r *http.Request) {
	wiz, ok := h.wizard(w, r)
	if !ok {
		return
	}

	if err := h.registry.Close(wiz.ID()); err != nil {
		h.respond(w, wiz, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
