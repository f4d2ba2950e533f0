package response

import (
	"doclib/internal/core/domain"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
)

// V1Error is the body of every failed v1 request
type V1Error struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
}

// JSON writes v with status
func JSON(w http.ResponseWriter, logger *slog.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("error encoding response", "error", err)
	}
}

// Error writes err with the status mapped from its sentinel
func Error(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := Status(err)
	body := V1Error{Error: err.Error()}

	var validationErr *domain.ValidationError
	if errors.As(err, &validationErr) {
		body.MissingFields = validationErr.Missing
	}

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "error", err)
		body.Error = "internal server error"
		if errors.Is(err, domain.ErrCommitFailed) || errors.Is(err, domain.ErrSlotNegotiationFailed) || errors.Is(err, domain.ErrTransferFailed) {
			body.Error = err.Error()
		}
	} else {
		logger.Warn("invalid request", "error", err)
	}

	JSON(w, logger, status, body)
}

// BadRequest writes a 400 with msg
func BadRequest(w http.ResponseWriter, logger *slog.Logger, msg string) {
	JSON(w, logger, http.StatusBadRequest, V1Error{Error: msg})
}

// Status maps a domain error to an http status code
func Status(err error) int {
	switch {
	case errors.Is(err, domain.ErrImportNotFound),
		errors.Is(err, domain.ErrViewNotFound),
		errors.Is(err, domain.ErrDocumentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidationFailed),
		errors.Is(err, domain.ErrVideoResolutionFailed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidFileType),
		errors.Is(err, domain.ErrFileSizeTooSmall),
		errors.Is(err, domain.ErrInvalidURL),
		errors.Is(err, domain.ErrUnrecognizedVideoURL),
		errors.Is(err, domain.ErrNoSource):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrFileSizeTooBig):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrUploadInProgress),
		errors.Is(err, domain.ErrWaitForUpload),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCommitInProgress),
		errors.Is(err, domain.ErrPipelineClosed),
		errors.Is(err, domain.ErrViewClosed),
		errors.Is(err, domain.ErrTransferCancelled):
		return http.StatusConflict
	case errors.Is(err, domain.ErrSlotNegotiationFailed),
		errors.Is(err, domain.ErrTransferFailed),
		errors.Is(err, domain.ErrCommitFailed):
		return http.StatusBadGateway
	default:
		return http.StatusServiceUnavailable
	}
}
