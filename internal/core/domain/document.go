package domain

import (
	"time"

	"github.com/google/uuid"
)

// SourceKind tells where the bytes of a document live
type SourceKind string

const (
	SourceKindUploadedFile  SourceKind = "uploadedFile"
	SourceKindExternalVideo SourceKind = "externalVideo"
	SourceKindExternalLink  SourceKind = "externalLink"
)

// Document represents a committed library asset
type Document struct {
	ID              uuid.UUID
	Title           string
	Type            string
	Subject         string
	School          string
	Description     string
	Tags            []string
	DownloadEnabled bool
	SourceKind      SourceKind
	StorageRef      string
	StorageBucket   string
	MimeType        string
	SizeBytes       int64
	PageCount       int
	DurationSeconds int
	ThumbnailURL    string
	IsFavorite      bool
	ViewCount       int64
	DownloadCount   int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// DocumentDetails are the fields collected by the import form
type DocumentDetails struct {
	Title           string
	Type            string
	Subject         string
	School          string
	Description     string
	Tags            []string
	DownloadEnabled bool
}

// DocumentFields is everything the metadata service needs to create a document
type DocumentFields struct {
	DocumentDetails
	Source Source
}
