package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrAlreadyExists is an error thrown when entity already exists
var ErrAlreadyExists = errors.New("already exists")

// ErrTagNotFound is an error when tag is not found
var ErrTagNotFound = errors.New("tag not found")

// ErrDocumentNotFound is an error thrown when a document is not known
var ErrDocumentNotFound = errors.New("document not found")

// ErrProvisionalUploadNotFound is an error thrown when no ledger entry exists for an object
var ErrProvisionalUploadNotFound = errors.New("provisional upload not found")

// ErrUploadMissing is an error thrown when a document is committed on an upload whose object or ledger entry is gone
var ErrUploadMissing = errors.New("uploaded file is missing")

// ErrInvalidFileType is an error thrown when file type is invalid
var ErrInvalidFileType = errors.New("invalid file type")

// ErrFileSizeTooBig is an error thrown when file size is too big
var ErrFileSizeTooBig = errors.New("file size too big")

// ErrFileSizeTooSmall is an error thrown when file is empty
var ErrFileSizeTooSmall = errors.New("file size too small")

// ErrSlotNegotiationFailed is an error thrown when no storage destination could be obtained
var ErrSlotNegotiationFailed = errors.New("slot negotiation failed")

// ErrTransferFailed is an error thrown when the transport fails during an upload
var ErrTransferFailed = errors.New("transfer failed")

// ErrTransferCancelled is returned to the waiting caller when the user cancels an upload.
// It is an abandonment, not a failure.
var ErrTransferCancelled = errors.New("transfer cancelled")

// ErrUploadInProgress is an error thrown when an upload is started while another is running
var ErrUploadInProgress = errors.New("an upload is already in progress")

// ErrPipelineClosed is an error thrown when a reset pipeline is used again
var ErrPipelineClosed = errors.New("upload pipeline closed")

// ErrVideoResolutionFailed is an error thrown when a video url does not resolve to metadata
var ErrVideoResolutionFailed = errors.New("video resolution failed")

// ErrUnrecognizedVideoURL is an error thrown when a url is not a known video platform url
var ErrUnrecognizedVideoURL = errors.New("unrecognized video url")

// ErrInvalidURL is an error thrown when a link cannot be parsed
var ErrInvalidURL = errors.New("invalid url")

// ErrValidationFailed is an error thrown when a commit is attempted with missing fields
var ErrValidationFailed = errors.New("validation failed")

// ErrCommitFailed is an error thrown when the metadata service rejects a create call
var ErrCommitFailed = errors.New("commit failed")

// ErrFavoriteWriteFailed is an error thrown when a favorite toggle could not be persisted
var ErrFavoriteWriteFailed = errors.New("favorite write failed")

// ErrWaitForUpload is an error thrown when the wizard is advanced while the upload is running
var ErrWaitForUpload = errors.New("wait for the upload to complete")

// ErrNoSource is an error thrown when the wizard is advanced without an acquired source
var ErrNoSource = errors.New("no source selected")

// ErrInvalidTransition is an error thrown when an operation is not allowed in the current step
var ErrInvalidTransition = errors.New("invalid wizard transition")

// ErrCommitInProgress is an error thrown when the wizard is dismissed or resubmitted while saving
var ErrCommitInProgress = errors.New("commit in progress")

// ErrImportNotFound is an error thrown when an import wizard id is unknown
var ErrImportNotFound = errors.New("import not found")

// ErrViewNotFound is an error thrown when a favorites view id is unknown
var ErrViewNotFound = errors.New("view not found")

// ErrViewClosed is an error thrown when a torn down favorites view is used
var ErrViewClosed = errors.New("view closed")

// ErrInvalidEvent is an error thrown when a bucket notification cannot be decoded. It is never redelivered.
var ErrInvalidEvent = errors.New("invalid bucket event")

// UploadError is returned by the upload pipeline. Kind is one of ErrSlotNegotiationFailed or ErrTransferFailed.
type UploadError struct {
	Kind error
	Err  error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("%v: %v", e.Kind, e.Err)
}

func (e *UploadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// ValidationError enumerates the fields missing for a commit
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: missing %s", ErrValidationFailed, strings.Join(e.Missing, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// VideoResolutionError carries the resolver error verbatim and a hint for the user
type VideoResolutionError struct {
	URL      string
	Err      error
	Guidance string
}

func (e *VideoResolutionError) Error() string {
	return fmt.Sprintf("%v: %v. %s", ErrVideoResolutionFailed, e.Err, e.Guidance)
}

func (e *VideoResolutionError) Unwrap() []error {
	return []error{ErrVideoResolutionFailed, e.Err}
}

// FavoriteWriteError is queued for the UI when a coalesced favorite write fails
type FavoriteWriteError struct {
	DocumentID uuid.UUID
	Value      bool
	Err        error
}

func (e *FavoriteWriteError) Error() string {
	return fmt.Sprintf("%v: document %s: %v", ErrFavoriteWriteFailed, e.DocumentID, e.Err)
}

func (e *FavoriteWriteError) Unwrap() []error {
	return []error{ErrFavoriteWriteFailed, e.Err}
}
