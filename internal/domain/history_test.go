package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDownloadRecord(t *testing.T) {
	record := NewDownloadRecord("https://example.com/v")

	assert.NotEmpty(t, record.ID)
	assert.Equal(t, "https://example.com/v", record.URL)
	assert.Equal(t, StatusQueued, record.Status)
	assert.Nil(t, record.StartedAt)
	assert.Nil(t, record.CompletedAt)
}

func TestDownloadRecordTransitions(t *testing.T) {
	record := NewDownloadRecord("https://example.com/v")

	record.MarkProcessing()
	assert.Equal(t, StatusProcessing, record.Status)
	require.NotNil(t, record.StartedAt)

	record.MarkCompleted("/downloads/v.mp4")
	assert.Equal(t, StatusCompleted, record.Status)
	assert.Equal(t, "/downloads/v.mp4", record.FilePath)
	require.NotNil(t, record.CompletedAt)
	assert.False(t, record.CompletedAt.Before(*record.StartedAt))
}

func TestDownloadRecordMarkFailed(t *testing.T) {
	record := NewDownloadRecord("https://example.com/v")
	record.MarkProcessing()

	record.MarkFailed(assert.AnError)

	assert.Equal(t, StatusFailed, record.Status)
	assert.Equal(t, assert.AnError.Error(), record.ErrorMessage)
	assert.Nil(t, record.CompletedAt)
}
