package domain

import "github.com/google/uuid"

// WizardStep is a state of the import wizard
type WizardStep string

const (
	WizardStepSourceSelection WizardStep = "source_selection"
	WizardStepDetailsEntry    WizardStep = "details_entry"
	WizardStepSaving          WizardStep = "saving"
	WizardStepDone            WizardStep = "done"
	WizardStepAbandoned       WizardStep = "abandoned"
)

// Source is the acquired origin of an import
type Source struct {
	Kind      SourceKind
	Bucket    string
	Ref       string
	FileName  string
	MimeType  string
	SizeBytes int64
	Video     *VideoMetadata
}

// WizardSnapshot is a read-only view of an import wizard
type WizardSnapshot struct {
	ID         uuid.UUID
	Step       WizardStep
	Upload     ProvisionalUpload
	Source     *Source
	Details    DocumentDetails
	DocumentID *uuid.UUID
}
