package domain

// Health status values reported by HealthCheck.
const (
	HealthHealthy   = "healthy"
	HealthDegraded  = "degraded"
	HealthUnhealthy = "unhealthy"
)

// DownloadResponse is the envelope form of a single-download result.
type DownloadResponse struct {
	Success   bool       `json:"success"`
	Message   string     `json:"message"`
	Error     string     `json:"error,omitempty"`
	Filename  string     `json:"filename,omitempty"`
	VideoInfo *VideoInfo `json:"video_info,omitempty"`
}

// SearchResponse is the envelope form of a search result.
type SearchResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	Error        string       `json:"error,omitempty"`
	Results      []*VideoInfo `json:"results,omitempty"`
	TotalResults int          `json:"total_results"`
}

// PlaylistResponse is the envelope form of a playlist batch result. A partial
// failure is still Success=true; FailedDownloads lists "title: error" strings
// for the items that did not complete.
type PlaylistResponse struct {
	Success             bool     `json:"success"`
	Message             string   `json:"message"`
	Error               string   `json:"error,omitempty"`
	DownloadedFiles     []string `json:"downloaded_files,omitempty"`
	FailedDownloads     []string `json:"failed_downloads,omitempty"`
	TotalVideos         int      `json:"total_videos"`
	SuccessfulDownloads int      `json:"successful_downloads"`
}

// HealthResponse reports availability of both external tools.
type HealthResponse struct {
	Status          string `json:"status"`
	YTDLPAvailable  bool   `json:"yt_dlp_available"`
	FFmpegAvailable bool   `json:"ffmpeg_available"`
	BinariesPath    string `json:"binaries_path,omitempty"`
	Error           string `json:"error,omitempty"`
}
