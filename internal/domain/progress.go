package domain

// ProgressStatus is the lifecycle state of one in-flight download.
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
)

// DownloadProgress is the mutable progress record for one download. It is
// owned exclusively by that download's orchestration loop; the parser mutates
// it in place, one line at a time, and it must never be shared between
// concurrent downloads.
type DownloadProgress struct {
	URL             string         `json:"url"`
	Title           string         `json:"title,omitempty"`
	Percentage      float64        `json:"percentage"`
	DownloadedBytes int64          `json:"downloaded_bytes"`
	TotalBytes      int64          `json:"total_bytes"`
	Speed           string         `json:"speed,omitempty"`
	ETA             int            `json:"eta"`
	Status          ProgressStatus `json:"status"`
}

// NewDownloadProgress creates a progress record for a download of url.
func NewDownloadProgress(url string) *DownloadProgress {
	return &DownloadProgress{
		URL:    url,
		Status: ProgressDownloading,
	}
}

// ProgressCallback receives progress updates during a download. Invocations
// for one download are strictly ordered: the orchestrator does not read the
// next output line until the callback returns.
type ProgressCallback func(*DownloadProgress)
