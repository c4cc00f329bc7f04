package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecordStatus represents the current status of a recorded download.
type RecordStatus string

const (
	StatusQueued     RecordStatus = "queued"
	StatusProcessing RecordStatus = "processing"
	StatusCompleted  RecordStatus = "completed"
	StatusFailed     RecordStatus = "failed"
)

// DownloadRecord is one row of download history.
type DownloadRecord struct {
	ID           string       `json:"id" gorm:"primaryKey"`
	URL          string       `json:"url" gorm:"not null"`
	Title        string       `json:"title,omitempty"`
	Status       RecordStatus `json:"status" gorm:"not null;index"`
	FilePath     string       `json:"file_path,omitempty"`
	ErrorMessage string       `json:"error_message,omitempty"`
	CreatedAt    time.Time    `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time    `json:"updated_at" gorm:"autoUpdateTime"`
	StartedAt    *time.Time   `json:"started_at,omitempty"`
	CompletedAt  *time.Time   `json:"completed_at,omitempty"`
}

// NewDownloadRecord creates a history record for a download of url.
func NewDownloadRecord(url string) *DownloadRecord {
	return &DownloadRecord{
		ID:        uuid.New().String(),
		URL:       url,
		Status:    StatusQueued,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// MarkProcessing marks the record as in progress.
func (r *DownloadRecord) MarkProcessing() {
	r.Status = StatusProcessing
	now := time.Now()
	r.StartedAt = &now
	r.UpdatedAt = now
}

// MarkCompleted marks the record as completed with the final file path.
func (r *DownloadRecord) MarkCompleted(filePath string) {
	r.Status = StatusCompleted
	r.FilePath = filePath
	now := time.Now()
	r.CompletedAt = &now
	r.UpdatedAt = now
}

// MarkFailed marks the record as failed.
func (r *DownloadRecord) MarkFailed(err error) {
	r.Status = StatusFailed
	r.ErrorMessage = err.Error()
	r.UpdatedAt = time.Now()
}

// HistoryStats aggregates download history counts.
type HistoryStats struct {
	Total     int64 `json:"total"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}

// HistoryRepository persists download history.
type HistoryRepository interface {
	// Create inserts a new record.
	Create(record *DownloadRecord) error

	// Update saves changes to an existing record.
	Update(record *DownloadRecord) error

	// FindByID finds a record by ID.
	FindByID(id string) (*DownloadRecord, error)

	// FindRecent returns the most recent records, newest first.
	FindRecent(limit int) ([]*DownloadRecord, error)

	// CountByStatus returns the number of records with the given status.
	CountByStatus(status RecordStatus) (int64, error)

	// GetStats returns aggregate history statistics.
	GetStats() (*HistoryStats, error)
}
