package domain

// VideoInfo is the metadata record yt-dlp emits in --dump-json mode.
// Immutable once decoded.
type VideoInfo struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	Duration    float64 `json:"duration,omitempty"`
	Uploader    string  `json:"uploader,omitempty"`
	UploaderID  string  `json:"uploader_id,omitempty"`
	UploadDate  string  `json:"upload_date,omitempty"`
	ViewCount   int64   `json:"view_count,omitempty"`
	LikeCount   int64   `json:"like_count,omitempty"`
	WebpageURL  string  `json:"webpage_url,omitempty"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	Ext         string  `json:"ext,omitempty"`
}

// PlaylistEntry is one record from a flat playlist listing. Flat listings do
// not resolve full media info, so only identity fields are populated.
type PlaylistEntry struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	URL           string `json:"url,omitempty"`
	WebpageURL    string `json:"webpage_url,omitempty"`
	PlaylistTitle string `json:"playlist_title,omitempty"`
}

// PageURL returns the canonical page URL for the entry. Flat listings emit
// webpage_url for some extractors and only url for others.
func (e *PlaylistEntry) PageURL() string {
	if e.WebpageURL != "" {
		return e.WebpageURL
	}
	return e.URL
}

// DisplayTitle returns the entry title or a placeholder when the listing did
// not carry one.
func (e *PlaylistEntry) DisplayTitle() string {
	if e.Title != "" {
		return e.Title
	}
	return "Unknown"
}

// PlaylistInfo is the result of a flat playlist listing.
type PlaylistInfo struct {
	Title   string           `json:"title"`
	Entries []*PlaylistEntry `json:"entries"`
}
