package domain

// DownloadRequest pairs a target URL with an optional per-download config.
type DownloadRequest struct {
	URL    string          `json:"url" binding:"required"`
	Config *DownloadConfig `json:"config,omitempty"`
}

// SearchRequest asks for up to MaxResults videos matching Query.
type SearchRequest struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"max_results,omitempty"`
}

// PlaylistRequest asks to download up to MaxVideos entries of a playlist.
// MaxVideos <= 0 means all entries.
type PlaylistRequest struct {
	URL       string          `json:"url" binding:"required"`
	Config    *DownloadConfig `json:"config,omitempty"`
	MaxVideos int             `json:"max_videos,omitempty"`
}
