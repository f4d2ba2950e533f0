package domain

import (
	"time"
)

// UploadStatus represents the status of a provisional upload
type UploadStatus string

const (
	UploadStatusIdle      UploadStatus = "idle"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusCompleted UploadStatus = "completed"
	UploadStatusError     UploadStatus = "error"
)

// UploadSlot is a negotiated destination in the object store
type UploadSlot struct {
	Bucket   string
	FilePath string
}

// IsZero reports whether no slot was negotiated
func (s UploadSlot) IsZero() bool {
	return s.Bucket == "" && s.FilePath == ""
}

// ProvisionalUpload is the state of an object written before any document owns it
type ProvisionalUpload struct {
	FilePath        string
	Bucket          string
	FileName        string
	MimeType        string
	SizeBytes       int64
	Status          UploadStatus
	ProgressPercent int
	Error           string
}

// Slot returns the coordinates of the upload
func (p ProvisionalUpload) Slot() UploadSlot {
	return UploadSlot{Bucket: p.Bucket, FilePath: p.FilePath}
}

// UploadProgress is a progress event emitted while a transfer runs
type UploadProgress struct {
	BytesSent       int64
	TotalBytes      int64
	ProgressPercent int
}

// LedgerStatus is the durable status of a negotiated slot
type LedgerStatus string

const (
	LedgerStatusNegotiated LedgerStatus = "negotiated"
	LedgerStatusStored     LedgerStatus = "stored"
	LedgerStatusAttached   LedgerStatus = "attached"
)

// LedgerEntry records a negotiated slot until a document owns it or it is deleted
type LedgerEntry struct {
	Bucket    string
	FilePath  string
	FileName  string
	MimeType  string
	SizeBytes int64
	PageCount int
	Status    LedgerStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Slot returns the coordinates of the ledger entry
func (e LedgerEntry) Slot() UploadSlot {
	return UploadSlot{Bucket: e.Bucket, FilePath: e.FilePath}
}

// ObjectInfo describes an object as seen by the store
type ObjectInfo struct {
	Bucket      string
	FilePath    string
	SizeBytes   int64
	ContentType string
}
