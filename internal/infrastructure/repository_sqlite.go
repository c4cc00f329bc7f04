package infrastructure

import (
	"fmt"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLiteHistoryRepository implements domain.HistoryRepository using SQLite.
type SQLiteHistoryRepository struct {
	db *gorm.DB
}

// NewSQLiteHistoryRepository creates a new SQLite history repository.
func NewSQLiteHistoryRepository(dbPath string) (*SQLiteHistoryRepository, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.AutoMigrate(&domain.DownloadRecord{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &SQLiteHistoryRepository{db: db}, nil
}

// Create inserts a new record.
func (r *SQLiteHistoryRepository) Create(record *domain.DownloadRecord) error {
	return r.db.Create(record).Error
}

// Update saves changes to an existing record.
func (r *SQLiteHistoryRepository) Update(record *domain.DownloadRecord) error {
	return r.db.Save(record).Error
}

// FindByID finds a record by ID.
func (r *SQLiteHistoryRepository) FindByID(id string) (*domain.DownloadRecord, error) {
	var record domain.DownloadRecord
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// FindRecent returns the most recent records, newest first.
func (r *SQLiteHistoryRepository) FindRecent(limit int) ([]*domain.DownloadRecord, error) {
	var records []*domain.DownloadRecord
	query := r.db.Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&records).Error
	return records, err
}

// CountByStatus returns the number of records with the given status.
func (r *SQLiteHistoryRepository) CountByStatus(status domain.RecordStatus) (int64, error) {
	var count int64
	err := r.db.Model(&domain.DownloadRecord{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// GetStats returns aggregate history statistics.
func (r *SQLiteHistoryRepository) GetStats() (*domain.HistoryStats, error) {
	stats := &domain.HistoryStats{}

	if err := r.db.Model(&domain.DownloadRecord{}).Count(&stats.Total).Error; err != nil {
		return nil, err
	}

	var err error
	if stats.Completed, err = r.CountByStatus(domain.StatusCompleted); err != nil {
		return nil, err
	}
	if stats.Failed, err = r.CountByStatus(domain.StatusFailed); err != nil {
		return nil, err
	}

	return stats, nil
}
