package infrastructure

import (
	"context"
	"fmt"

	"github.com/yourusername/ytgrab-go/internal/domain"
)

// DownloadWithResponse downloads a single URL, converting any failure into a
// failure envelope instead of returning an error.
func (d *YTDLPDownloader) DownloadWithResponse(ctx context.Context, req *domain.DownloadRequest, callback domain.ProgressCallback) *domain.DownloadResponse {
	config := req.Config
	if config == nil {
		config = domain.NewDownloadConfig()
	}

	info, err := d.GetVideoInfo(ctx, req.URL)
	if err != nil {
		return &domain.DownloadResponse{
			Success: false,
			Message: "Failed to get video information",
			Error:   err.Error(),
		}
	}

	filename, err := d.Download(ctx, req.URL, config, callback)
	if err != nil {
		return &domain.DownloadResponse{
			Success: false,
			Message: "Download failed",
			Error:   err.Error(),
		}
	}

	return &domain.DownloadResponse{
		Success:   true,
		Message:   "Download completed successfully",
		Filename:  filename,
		VideoInfo: info,
	}
}

// SearchWithResponse searches, converting any failure into a failure envelope.
func (d *YTDLPDownloader) SearchWithResponse(ctx context.Context, req *domain.SearchRequest) *domain.SearchResponse {
	results, err := d.Search(ctx, req.Query, req.MaxResults)
	if err != nil {
		return &domain.SearchResponse{
			Success: false,
			Message: "Search failed",
			Error:   err.Error(),
		}
	}

	return &domain.SearchResponse{
		Success:      true,
		Message:      fmt.Sprintf("Found %d results", len(results)),
		Results:      results,
		TotalResults: len(results),
	}
}

// DownloadPlaylistWithResponse downloads a playlist with per-item failure
// accounting. Individual item failures keep Success=true; only a failure to
// list the playlist yields a failure envelope.
func (d *YTDLPDownloader) DownloadPlaylistWithResponse(ctx context.Context, req *domain.PlaylistRequest, callback domain.ProgressCallback) *domain.PlaylistResponse {
	config := req.Config
	if config == nil {
		config = domain.NewDownloadConfig()
	}

	downloaded, failed, total, err := d.downloadPlaylistItems(ctx, req.URL, config, req.MaxVideos, callback)
	if err != nil {
		return &domain.PlaylistResponse{
			Success: false,
			Message: "Playlist download failed",
			Error:   err.Error(),
		}
	}

	return &domain.PlaylistResponse{
		Success:             true,
		Message:             fmt.Sprintf("Downloaded %d out of %d videos", len(downloaded), total),
		DownloadedFiles:     downloaded,
		FailedDownloads:     failed,
		TotalVideos:         total,
		SuccessfulDownloads: len(downloaded),
	}
}
