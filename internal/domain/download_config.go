package domain

// DownloadConfig describes how one download should be performed. It is an
// immutable input: the command builder reads it, nothing mutates it.
type DownloadConfig struct {
	OutputPath      string                 `json:"output_path,omitempty" mapstructure:"output_path"`
	Quality         Quality                `json:"quality,omitempty" mapstructure:"quality"`
	ExtractAudio    bool                   `json:"extract_audio,omitempty" mapstructure:"extract_audio"`
	AudioFormat     AudioFormat            `json:"audio_format,omitempty" mapstructure:"audio_format"`
	VideoFormat     VideoFormat            `json:"video_format,omitempty" mapstructure:"video_format"`
	WriteSubs       bool                   `json:"write_subs,omitempty" mapstructure:"write_subs"`
	EmbedSubs       bool                   `json:"embed_subs,omitempty" mapstructure:"embed_subs"`
	SubtitleLang    string                 `json:"subtitle_lang,omitempty" mapstructure:"subtitle_lang"`
	WriteThumbnail  bool                   `json:"write_thumbnail,omitempty" mapstructure:"write_thumbnail"`
	EmbedThumbnail  bool                   `json:"embed_thumbnail,omitempty" mapstructure:"embed_thumbnail"`
	WriteInfoJSON   bool                   `json:"write_info_json,omitempty" mapstructure:"write_info_json"`
	CustomFilename  string                 `json:"custom_filename,omitempty" mapstructure:"custom_filename"`
	CookiesFile     string                 `json:"cookies_file,omitempty" mapstructure:"cookies_file"`
	Proxy           string                 `json:"proxy,omitempty" mapstructure:"proxy"`
	RateLimit       string                 `json:"rate_limit,omitempty" mapstructure:"rate_limit"`
	Retries         int                    `json:"retries" mapstructure:"retries"`
	FragmentRetries int                    `json:"fragment_retries" mapstructure:"fragment_retries"`
	CustomOptions   map[string]interface{} `json:"custom_options,omitempty" mapstructure:"custom_options"`
}

// NewDownloadConfig returns a download configuration with default values.
func NewDownloadConfig() *DownloadConfig {
	return &DownloadConfig{
		OutputPath:      "./downloads",
		Quality:         QualityBest,
		SubtitleLang:    "en",
		Retries:         3,
		FragmentRetries: 3,
	}
}

// TargetExt returns the file extension the finished download will carry after
// post-processing, or "" when no recode/extract step changes the container.
// Video format wins over audio format when both are set.
func (c *DownloadConfig) TargetExt() string {
	if c == nil {
		return ""
	}
	if c.VideoFormat != "" {
		return c.VideoFormat.Ext()
	}
	if c.AudioFormat != "" {
		return c.AudioFormat.Ext()
	}
	return ""
}
