package domain

import "context"

// MediaDownloader drives the external extraction and transcoding tools.
type MediaDownloader interface {
	// SetupBinaries provisions yt-dlp and ffmpeg, downloading platform
	// releases on first use. Idempotent.
	SetupBinaries(ctx context.Context) error

	// GetVideoInfo fetches metadata for one URL without downloading.
	GetVideoInfo(ctx context.Context, url string) (*VideoInfo, error)

	// Search returns up to maxResults videos matching query.
	Search(ctx context.Context, query string, maxResults int) ([]*VideoInfo, error)

	// GetPlaylistInfo lists playlist entries without resolving each one.
	GetPlaylistInfo(ctx context.Context, url string) (*PlaylistInfo, error)

	// Download downloads one URL and returns the final filename.
	Download(ctx context.Context, url string, config *DownloadConfig, callback ProgressCallback) (string, error)

	// DownloadPlaylist downloads playlist entries sequentially, in listed
	// order. A single entry's failure never aborts the batch.
	DownloadPlaylist(ctx context.Context, url string, config *DownloadConfig, callback ProgressCallback) ([]string, error)

	// HealthCheck probes both tools with their version flags.
	HealthCheck(ctx context.Context) *HealthResponse

	// DownloadWithResponse is Download wrapped in a success/failure
	// envelope; it never returns an error to the caller.
	DownloadWithResponse(ctx context.Context, req *DownloadRequest, callback ProgressCallback) *DownloadResponse

	// SearchWithResponse is Search wrapped in a success/failure envelope.
	SearchWithResponse(ctx context.Context, req *SearchRequest) *SearchResponse

	// DownloadPlaylistWithResponse is DownloadPlaylist wrapped in an
	// envelope with per-item failure accounting.
	DownloadPlaylistWithResponse(ctx context.Context, req *PlaylistRequest, callback ProgressCallback) *PlaylistResponse
}
