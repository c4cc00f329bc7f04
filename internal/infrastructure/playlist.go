package infrastructure

import (
	"context"
	"fmt"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// DownloadPlaylist downloads every entry of a playlist sequentially and
// returns the filenames that completed. Per-item failures are logged and
// skipped; only a failure to list the playlist itself aborts the batch.
func (d *YTDLPDownloader) DownloadPlaylist(ctx context.Context, url string, config *domain.DownloadConfig, callback domain.ProgressCallback) ([]string, error) {
	downloaded, _, _, err := d.downloadPlaylistItems(ctx, url, config, 0, callback)
	return downloaded, err
}

// downloadPlaylistItems is the shared batch loop. maxVideos <= 0 means all
// entries. Items download strictly sequentially so per-item progress
// attribution stays unambiguous and external-process load stays bounded.
func (d *YTDLPDownloader) downloadPlaylistItems(ctx context.Context, url string, config *domain.DownloadConfig, maxVideos int, callback domain.ProgressCallback) (downloaded, failed []string, total int, err error) {
	info, err := d.GetPlaylistInfo(ctx, url)
	if err != nil {
		return nil, nil, 0, err
	}

	entries := info.Entries
	if maxVideos > 0 && len(entries) > maxVideos {
		entries = entries[:maxVideos]
	}
	total = len(entries)

	for i, entry := range entries {
		if callback != nil {
			// Coarse batch-level event before each item.
			callback(&domain.DownloadProgress{
				URL:        url,
				Title:      fmt.Sprintf("Playlist item %d/%d", i+1, total),
				Percentage: float64(i) / float64(total) * 100,
				Status:     domain.ProgressDownloading,
			})
		}

		filename, derr := d.Download(ctx, entry.PageURL(), config, callback)
		if derr != nil {
			d.logger.Error("Playlist item failed",
				zap.String("playlist", info.Title),
				zap.String("title", entry.DisplayTitle()),
				zap.Error(derr))
			failed = append(failed, fmt.Sprintf("%s: %v", entry.DisplayTitle(), derr))
			continue
		}
		downloaded = append(downloaded, filename)
	}

	return downloaded, failed, total, nil
}
