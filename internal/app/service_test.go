package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// stubDownloader returns canned envelopes so service-level behavior can be
// tested without running subprocesses.
type stubDownloader struct {
	downloadResp *domain.DownloadResponse
	playlistResp *domain.PlaylistResponse
	searchResp   *domain.SearchResponse
	setupErr     error
}

func (s *stubDownloader) SetupBinaries(ctx context.Context) error { return s.setupErr }

func (s *stubDownloader) GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error) {
	return &domain.VideoInfo{ID: "abc", Title: "Stub Video"}, nil
}

func (s *stubDownloader) Search(ctx context.Context, query string, maxResults int) ([]*domain.VideoInfo, error) {
	return nil, nil
}

func (s *stubDownloader) GetPlaylistInfo(ctx context.Context, url string) (*domain.PlaylistInfo, error) {
	return &domain.PlaylistInfo{}, nil
}

func (s *stubDownloader) Download(ctx context.Context, url string, config *domain.DownloadConfig, callback domain.ProgressCallback) (string, error) {
	return "", nil
}

func (s *stubDownloader) DownloadPlaylist(ctx context.Context, url string, config *domain.DownloadConfig, callback domain.ProgressCallback) ([]string, error) {
	return nil, nil
}

func (s *stubDownloader) HealthCheck(ctx context.Context) *domain.HealthResponse {
	return &domain.HealthResponse{Status: domain.HealthHealthy}
}

func (s *stubDownloader) DownloadWithResponse(ctx context.Context, req *domain.DownloadRequest, callback domain.ProgressCallback) *domain.DownloadResponse {
	return s.downloadResp
}

func (s *stubDownloader) SearchWithResponse(ctx context.Context, req *domain.SearchRequest) *domain.SearchResponse {
	return s.searchResp
}

func (s *stubDownloader) DownloadPlaylistWithResponse(ctx context.Context, req *domain.PlaylistRequest, callback domain.ProgressCallback) *domain.PlaylistResponse {
	return s.playlistResp
}

// memoryHistory is an in-memory HistoryRepository capturing every update.
type memoryHistory struct {
	records map[string]*domain.DownloadRecord
	order   []string
}

func newMemoryHistory() *memoryHistory {
	return &memoryHistory{records: map[string]*domain.DownloadRecord{}}
}

func (m *memoryHistory) Create(record *domain.DownloadRecord) error {
	copied := *record
	m.records[record.ID] = &copied
	m.order = append(m.order, record.ID)
	return nil
}

func (m *memoryHistory) Update(record *domain.DownloadRecord) error {
	copied := *record
	m.records[record.ID] = &copied
	return nil
}

func (m *memoryHistory) FindByID(id string) (*domain.DownloadRecord, error) {
	record, ok := m.records[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return record, nil
}

func (m *memoryHistory) FindRecent(limit int) ([]*domain.DownloadRecord, error) {
	var out []*domain.DownloadRecord
	for i := len(m.order) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.records[m.order[i]])
	}
	return out, nil
}

func (m *memoryHistory) CountByStatus(status domain.RecordStatus) (int64, error) {
	var count int64
	for _, record := range m.records {
		if record.Status == status {
			count++
		}
	}
	return count, nil
}

func (m *memoryHistory) GetStats() (*domain.HistoryStats, error) {
	completed, _ := m.CountByStatus(domain.StatusCompleted)
	failed, _ := m.CountByStatus(domain.StatusFailed)
	return &domain.HistoryStats{
		Total:     int64(len(m.records)),
		Completed: completed,
		Failed:    failed,
	}, nil
}

func (m *memoryHistory) only(t *testing.T) *domain.DownloadRecord {
	t.Helper()
	require.Len(t, m.order, 1)
	return m.records[m.order[0]]
}

func TestServiceDownload_RecordsCompletion(t *testing.T) {
	downloader := &stubDownloader{
		downloadResp: &domain.DownloadResponse{
			Success:   true,
			Message:   "Download completed successfully",
			Filename:  "video.mp4",
			VideoInfo: &domain.VideoInfo{Title: "Stub Video"},
		},
	}
	history := newMemoryHistory()
	service := NewService(downloader, history, nil, zap.NewNop())

	resp := service.Download(context.Background(), &domain.DownloadRequest{URL: "https://example.com/v"}, nil)

	assert.True(t, resp.Success)
	record := history.only(t)
	assert.Equal(t, domain.StatusCompleted, record.Status)
	assert.Equal(t, "video.mp4", record.FilePath)
	assert.Equal(t, "Stub Video", record.Title)
	assert.NotNil(t, record.StartedAt)
	assert.NotNil(t, record.CompletedAt)
}

func TestServiceDownload_RecordsFailure(t *testing.T) {
	downloader := &stubDownloader{
		downloadResp: &domain.DownloadResponse{
			Success: false,
			Message: "Download failed",
			Error:   "yt-dlp download: exit status 1",
		},
	}
	history := newMemoryHistory()
	service := NewService(downloader, history, nil, zap.NewNop())

	resp := service.Download(context.Background(), &domain.DownloadRequest{URL: "https://example.com/v"}, nil)

	assert.False(t, resp.Success)
	record := history.only(t)
	assert.Equal(t, domain.StatusFailed, record.Status)
	assert.Equal(t, "yt-dlp download: exit status 1", record.ErrorMessage)
}

func TestServiceDownload_NilHistoryAndNotifier(t *testing.T) {
	downloader := &stubDownloader{
		downloadResp: &domain.DownloadResponse{Success: true, Filename: "video.mp4"},
	}
	service := NewService(downloader, nil, nil, zap.NewNop())

	resp := service.Download(context.Background(), &domain.DownloadRequest{URL: "https://example.com/v"}, nil)

	assert.True(t, resp.Success)

	records, err := service.History(10)
	require.NoError(t, err)
	assert.Nil(t, records)

	stats, err := service.HistoryStats()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
}

func TestServiceDownloadPlaylist_RecordsBatchOutcome(t *testing.T) {
	downloader := &stubDownloader{
		playlistResp: &domain.PlaylistResponse{
			Success:             true,
			Message:             "Downloaded 2 out of 3 videos",
			TotalVideos:         3,
			SuccessfulDownloads: 2,
		},
	}
	history := newMemoryHistory()
	service := NewService(downloader, history, nil, zap.NewNop())

	resp := service.DownloadPlaylist(context.Background(), &domain.PlaylistRequest{URL: "https://example.com/list"}, nil)

	assert.True(t, resp.Success)
	record := history.only(t)
	assert.Equal(t, domain.StatusCompleted, record.Status)
	assert.Equal(t, "Downloaded 2 out of 3 videos", record.Title)
}

func TestServiceHealth(t *testing.T) {
	service := NewService(&stubDownloader{}, nil, nil, zap.NewNop())

	health := service.Health(context.Background())

	assert.Equal(t, domain.HealthHealthy, health.Status)
}
