package importwiz_test

import (
	"bytes"
	"doclib/internal/adapters/handlers/http/chi"
	"doclib/internal/adapters/handlers/http/chi/v1/importwiz"
	"doclib/internal/adapters/handlers/http/chi/v1/response"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"doclib/internal/core/service/upload"
	"doclib/internal/core/service/wizard"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newRouter(registry port.ImportRegistry) http.Handler {
	handler := importwiz.NewImportHandlerV1(registry, discardLogger)
	return chi.NewRouter(discardLogger, nil, handler, "")
}

// openWizard registers a mock wizard under a fresh id
func openWizard(registry *wizard.MockRegistry) (uuid.UUID, *wizard.MockWizard) {
	id := uuid.New()
	wiz := wizard.NewMockWizard()
	wiz.On("ID").Return(id).Maybe()
	registry.On("Get", id).Return(wiz, nil)
	return id, wiz
}

func decodeImport(t *testing.T, w *httptest.ResponseRecorder) importwiz.V1ImportResponse {
	var resp importwiz.V1ImportResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) response.V1Error {
	var resp response.V1Error
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestOpenImportV1(t *testing.T) {
	// Arrange
	registry := wizard.NewMockRegistry()
	id := uuid.New()
	wiz := wizard.NewMockWizard()
	wiz.On("ID").Return(id)
	wiz.On("Snapshot").Return(domain.WizardSnapshot{
		ID:     id,
		Step:   domain.WizardStepSourceSelection,
		Upload: domain.ProvisionalUpload{Status: domain.UploadStatusIdle},
	})
	registry.On("Open").Return(wiz)

	h := newRouter(registry)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/", nil)

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/api/v1/imports/"+id.String(), w.Header().Get("Location"))
	resp := decodeImport(t, w)
	assert.Equal(t, id, resp.ImportID)
	assert.Equal(t, domain.WizardStepSourceSelection, resp.Step)
	assert.Equal(t, domain.UploadStatusIdle, resp.Upload.Status)
	assert.Nil(t, resp.Source)
	assert.Equal(t, []string{}, resp.Details.Tags)
	registry.AssertExpectations(t)
}

func TestGetImportV1(t *testing.T) {
	t.Run("snapshot with video source", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{
			ID:   id,
			Step: domain.WizardStepDetailsEntry,
			Source: &domain.Source{
				Kind: domain.SourceKindExternalVideo,
				Ref:  "https://youtu.be/abc123",
				Video: &domain.VideoMetadata{
					Platform:        domain.VideoPlatformYouTube,
					Title:           "Cell division",
					DurationSeconds: 300,
				},
			},
			Details: domain.DocumentDetails{Title: "Cell division", Tags: []string{"BIOLOGY"}},
		})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+id.String(), nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeImport(t, w)
		require.NotNil(t, resp.Source)
		require.NotNil(t, resp.Source.Video)
		assert.Equal(t, domain.SourceKindExternalVideo, resp.Source.Kind)
		assert.Equal(t, 300, resp.Source.Video.DurationSeconds)
		assert.Equal(t, []string{"BIOLOGY"}, resp.Details.Tags)
	})

	t.Run("error - unknown import", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id := uuid.New()
		registry.On("Get", id).Return(nil, domain.ErrImportNotFound)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/"+id.String(), nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - invalid id", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/imports/not-a-uuid", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		registry.AssertNotCalled(t, "Get", mock.Anything)
	})
}

func TestCloseImportV1(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, _ := openWizard(registry)
		registry.On("Close", id).Return(nil)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+id.String(), nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusNoContent, w.Code)
		registry.AssertExpectations(t)
	})

	t.Run("error - saving", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, _ := openWizard(registry)
		registry.On("Close", id).Return(domain.ErrCommitInProgress)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+id.String(), nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUploadFileV1(t *testing.T) {
	content := []byte("%PDF-1.4 lesson plan")

	t.Run("nominal", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)

		transfer := upload.NewMockTransfer(
			domain.UploadProgress{BytesSent: 0, TotalBytes: int64(len(content)), ProgressPercent: 0},
			domain.UploadProgress{BytesSent: int64(len(content)), TotalBytes: int64(len(content)), ProgressPercent: 100},
		)
		completed := domain.ProvisionalUpload{
			FilePath:        "documents/key.pdf",
			FileName:        "plan.pdf",
			SizeBytes:       int64(len(content)),
			Status:          domain.UploadStatusCompleted,
			ProgressPercent: 100,
		}
		transfer.On("Wait").Return(completed, nil)

		wiz.On("SelectFile", mock.Anything, mock.MatchedBy(func(f port.UploadFile) bool {
			return f.Name == "plan.pdf" && f.MimeType == "application/pdf" && f.Size == int64(len(content))
		})).Return(transfer, nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection, Upload: completed})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", bytes.NewReader(content))
		req.Header.Set("X-File-Name", "plan.pdf")
		req.Header.Set("Content-Type", "application/pdf")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeImport(t, w)
		assert.Equal(t, domain.UploadStatusCompleted, resp.Upload.Status)
		assert.Equal(t, 100, resp.Upload.ProgressPercent)
		wiz.AssertExpectations(t)
		transfer.AssertExpectations(t)
	})

	t.Run("error - missing file name", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", bytes.NewReader(content))
		req.Header.Set("Content-Type", "application/pdf")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		wiz.AssertNotCalled(t, "SelectFile", mock.Anything, mock.Anything)
	})

	t.Run("error - invalid file type", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("SelectFile", mock.Anything, mock.Anything).
			Return(nil, &domain.UploadError{Kind: domain.ErrSlotNegotiationFailed, Err: domain.ErrInvalidFileType})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", strings.NewReader("MZ"))
		req.Header.Set("X-File-Name", "setup.exe")
		req.Header.Set("Content-Type", "application/x-msdownload")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("cancelled while transferring answers the idle import", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		transfer := upload.NewMockTransfer(domain.UploadProgress{ProgressPercent: 10})
		transfer.On("Wait").Return(domain.ProvisionalUpload{Status: domain.UploadStatusIdle}, domain.ErrTransferCancelled)
		wiz.On("SelectFile", mock.Anything, mock.Anything).Return(transfer, nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection, Upload: domain.ProvisionalUpload{Status: domain.UploadStatusIdle}})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", bytes.NewReader(content))
		req.Header.Set("X-File-Name", "plan.pdf")
		req.Header.Set("Content-Type", "application/pdf")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeImport(t, w)
		assert.Equal(t, domain.UploadStatusIdle, resp.Upload.Status)
		assert.Nil(t, resp.Source)
	})

	t.Run("cancelled before the transfer started answers the idle import", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("SelectFile", mock.Anything, mock.Anything).Return(nil, domain.ErrTransferCancelled)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection, Upload: domain.ProvisionalUpload{Status: domain.UploadStatusIdle}})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", bytes.NewReader(content))
		req.Header.Set("X-File-Name", "plan.pdf")
		req.Header.Set("Content-Type", "application/pdf")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, domain.UploadStatusIdle, decodeImport(t, w).Upload.Status)
	})

	t.Run("error - transport failure", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		transfer := upload.NewMockTransfer()
		transfer.On("Wait").Return(domain.ProvisionalUpload{Status: domain.UploadStatusError},
			&domain.UploadError{Kind: domain.ErrTransferFailed, Err: errors.New("connection reset")})
		wiz.On("SelectFile", mock.Anything, mock.Anything).Return(transfer, nil)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/file", bytes.NewReader(content))
		req.Header.Set("X-File-Name", "plan.pdf")
		req.Header.Set("Content-Type", "application/pdf")

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "connection reset")
	})
}

func TestCancelUploadV1(t *testing.T) {
	// Arrange
	registry := wizard.NewMockRegistry()
	id, wiz := openWizard(registry)
	wiz.On("CancelUpload").Return(nil)
	wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection, Upload: domain.ProvisionalUpload{Status: domain.UploadStatusIdle}})

	h := newRouter(registry)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+id.String()+"/file", nil)

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.UploadStatusIdle, decodeImport(t, w).Upload.Status)
	wiz.AssertExpectations(t)
}

func TestSelectVideoV1(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("SelectVideo", mock.Anything, "https://vimeo.com/76979871").Return(nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/video", strings.NewReader(`{"url":"https://vimeo.com/76979871"}`))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		wiz.AssertExpectations(t)
	})

	t.Run("error - resolution failed", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("SelectVideo", mock.Anything, mock.Anything).
			Return(&domain.VideoResolutionError{URL: "https://youtu.be/private", Err: errors.New("video is private"), Guidance: "check the link"})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/video", strings.NewReader(`{"url":"https://youtu.be/private"}`))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "video is private")
	})

	t.Run("error - missing url", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/video", strings.NewReader(`{}`))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		wiz.AssertNotCalled(t, "SelectVideo", mock.Anything, mock.Anything)
	})
}

func TestSelectLinkV1(t *testing.T) {
	// Arrange
	registry := wizard.NewMockRegistry()
	id, wiz := openWizard(registry)
	wiz.On("SelectLink", "not a url").Return(fmt.Errorf("%w: not a url", domain.ErrInvalidURL))

	h := newRouter(registry)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/link", strings.NewReader(`{"url":"not a url"}`))

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, http.StatusBadRequest, w.Code)
	wiz.AssertExpectations(t)
}

func TestAdvanceV1(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nominal", nil, http.StatusOK},
		{"upload running", domain.ErrWaitForUpload, http.StatusConflict},
		{"no source", domain.ErrNoSource, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			registry := wizard.NewMockRegistry()
			id, wiz := openWizard(registry)
			wiz.On("Advance").Return(tt.err)
			wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepDetailsEntry}).Maybe()

			h := newRouter(registry)
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/advance", nil)

			//Act
			h.ServeHTTP(w, req)

			//Assert
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestBackV1(t *testing.T) {
	// Arrange
	registry := wizard.NewMockRegistry()
	id, wiz := openWizard(registry)
	wiz.On("Back").Return(nil)
	wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepSourceSelection})

	h := newRouter(registry)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/back", nil)

	//Act
	h.ServeHTTP(w, req)

	//Assert
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, domain.WizardStepSourceSelection, decodeImport(t, w).Step)
}

func TestUpdateDetailsV1(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		expected := domain.DocumentDetails{
			Title:           "Photosynthesis",
			Type:            "course",
			Subject:         "biology",
			School:          "north",
			DownloadEnabled: true,
		}
		wiz.On("UpdateDetails", expected).Return(nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepDetailsEntry, Details: expected})

		body, err := json.Marshal(importwiz.V1UpdateDetailsRequest{
			Title:           "Photosynthesis",
			Type:            "course",
			Subject:         "biology",
			School:          "north",
			DownloadEnabled: true,
		})
		require.NoError(t, err)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/details", bytes.NewReader(body))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "Photosynthesis", decodeImport(t, w).Details.Title)
		wiz.AssertExpectations(t)
	})

	t.Run("error - invalid body", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/imports/"+id.String()+"/details", strings.NewReader("{"))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		wiz.AssertNotCalled(t, "UpdateDetails", mock.Anything)
	})
}

func TestTagsV1(t *testing.T) {
	t.Run("add", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("AddTag", "genetics").Return(nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepDetailsEntry, Details: domain.DocumentDetails{Tags: []string{"GENETICS"}}})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/tags", strings.NewReader(`{"tag":"genetics"}`))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []string{"GENETICS"}, decodeImport(t, w).Details.Tags)
	})

	t.Run("add empty", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/tags", strings.NewReader(`{"tag":""}`))

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadRequest, w.Code)
		wiz.AssertNotCalled(t, "AddTag", mock.Anything)
	})

	t.Run("remove", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("RemoveTag", "GENETICS").Return(nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepDetailsEntry})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/imports/"+id.String()+"/tags/GENETICS", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		wiz.AssertExpectations(t)
	})
}

func TestSubmitV1(t *testing.T) {
	t.Run("nominal", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		docID := uuid.New()
		wiz.On("Submit", mock.Anything).Return(&domain.Document{ID: docID}, nil)
		wiz.On("Snapshot").Return(domain.WizardSnapshot{ID: id, Step: domain.WizardStepDone, DocumentID: &docID})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/submit", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeImport(t, w)
		assert.Equal(t, domain.WizardStepDone, resp.Step)
		require.NotNil(t, resp.DocumentID)
		assert.Equal(t, docID, *resp.DocumentID)
	})

	t.Run("error - missing fields", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("Submit", mock.Anything).Return(nil, &domain.ValidationError{Missing: []string{"title", "subject"}})

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/submit", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, []string{"title", "subject"}, decodeError(t, w).MissingFields)
	})

	t.Run("error - commit failed", func(t *testing.T) {
		// Arrange
		registry := wizard.NewMockRegistry()
		id, wiz := openWizard(registry)
		wiz.On("Submit", mock.Anything).Return(nil, fmt.Errorf("%w: %w", domain.ErrCommitFailed, errors.New("db unavailable")))

		h := newRouter(registry)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/"+id.String()+"/submit", nil)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, decodeError(t, w).Error, "db unavailable")
	})
}
