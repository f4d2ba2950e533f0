package port

import (
	"context"
	"doclib/internal/core/domain"

	"github.com/google/uuid"
)

// ImportWizard sequences source acquisition, details entry and commit of one import
type ImportWizard interface {
	ID() uuid.UUID
	SelectFile(ctx context.Context, file UploadFile) (UploadTransfer, error)
	CancelUpload() error
	SelectVideo(ctx context.Context, url string) error
	SelectLink(url string) error
	Advance() error
	Back() error
	UpdateDetails(details domain.DocumentDetails) error
	AddTag(tag string) error
	RemoveTag(tag string) error
	Submit(ctx context.Context) (*domain.Document, error)
	Abandon() error
	Snapshot() domain.WizardSnapshot
}

// ImportRegistry owns the open import wizards
type ImportRegistry interface {
	Open() ImportWizard
	Get(id uuid.UUID) (ImportWizard, error)
	Close(id uuid.UUID) error
	CloseAll()
}
