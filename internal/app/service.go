package app

import (
	"context"
	"errors"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"github.com/yourusername/ytgrab-go/internal/infrastructure"
	"go.uber.org/zap"
)

// Service composes the media downloader with history recording and desktop
// notifications. It is the surface the API handlers and the CLI talk to.
type Service struct {
	downloader domain.MediaDownloader
	history    domain.HistoryRepository
	notifier   *infrastructure.NotificationService
	logger     *zap.Logger
}

// NewService creates a service. history and notifier may be nil, in which
// case the corresponding side effects are skipped.
func NewService(
	downloader domain.MediaDownloader,
	history domain.HistoryRepository,
	notifier *infrastructure.NotificationService,
	logger *zap.Logger,
) *Service {
	return &Service{
		downloader: downloader,
		history:    history,
		notifier:   notifier,
		logger:     logger,
	}
}

// Setup provisions the external binaries.
func (s *Service) Setup(ctx context.Context) error {
	return s.downloader.SetupBinaries(ctx)
}

// GetVideoInfo fetches metadata for one URL.
func (s *Service) GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error) {
	return s.downloader.GetVideoInfo(ctx, url)
}

// Search searches for videos, returning an envelope.
func (s *Service) Search(ctx context.Context, req *domain.SearchRequest) *domain.SearchResponse {
	return s.downloader.SearchWithResponse(ctx, req)
}

// Download downloads one URL, recording the outcome in history and notifying
// on completion or failure.
func (s *Service) Download(ctx context.Context, req *domain.DownloadRequest, callback domain.ProgressCallback) *domain.DownloadResponse {
	record := domain.NewDownloadRecord(req.URL)
	s.createRecord(record)
	record.MarkProcessing()
	s.updateRecord(record)

	resp := s.downloader.DownloadWithResponse(ctx, req, callback)

	if resp.Success {
		if resp.VideoInfo != nil {
			record.Title = resp.VideoInfo.Title
		}
		record.MarkCompleted(resp.Filename)
		if s.notifier != nil {
			s.notifier.NotifyDownloadCompleted(req.URL, resp.Filename)
		}
	} else {
		err := errors.New(resp.Error)
		record.MarkFailed(err)
		if s.notifier != nil {
			s.notifier.NotifyDownloadFailed(req.URL, err)
		}
	}
	s.updateRecord(record)

	return resp
}

// DownloadPlaylist downloads a playlist, recording the batch outcome.
func (s *Service) DownloadPlaylist(ctx context.Context, req *domain.PlaylistRequest, callback domain.ProgressCallback) *domain.PlaylistResponse {
	record := domain.NewDownloadRecord(req.URL)
	s.createRecord(record)
	record.MarkProcessing()
	s.updateRecord(record)

	resp := s.downloader.DownloadPlaylistWithResponse(ctx, req, callback)

	if resp.Success {
		record.Title = resp.Message
		record.MarkCompleted("")
	} else {
		record.MarkFailed(errors.New(resp.Error))
	}
	s.updateRecord(record)

	return resp
}

// Health probes the external tools.
func (s *Service) Health(ctx context.Context) *domain.HealthResponse {
	return s.downloader.HealthCheck(ctx)
}

// History returns the most recent download records.
func (s *Service) History(limit int) ([]*domain.DownloadRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.FindRecent(limit)
}

// HistoryStats returns aggregate history statistics.
func (s *Service) HistoryStats() (*domain.HistoryStats, error) {
	if s.history == nil {
		return &domain.HistoryStats{}, nil
	}
	return s.history.GetStats()
}

// History recording is best-effort: a persistence failure is logged, never
// surfaced to the caller.
func (s *Service) createRecord(record *domain.DownloadRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Create(record); err != nil {
		s.logger.Error("Failed to record download", zap.String("id", record.ID), zap.Error(err))
	}
}

func (s *Service) updateRecord(record *domain.DownloadRecord) {
	if s.history == nil {
		return
	}
	if err := s.history.Update(record); err != nil {
		s.logger.Error("Failed to update download record", zap.String("id", record.ID), zap.Error(err))
	}
}
