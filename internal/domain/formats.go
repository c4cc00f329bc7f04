package domain

import "strings"

// Quality selects which streams yt-dlp should pick for a download.
type Quality string

const (
	QualityBest      Quality = "best"
	QualityWorst     Quality = "worst"
	QualityAudioOnly Quality = "audio_only"
	QualityVideoOnly Quality = "video_only"
	Quality144p      Quality = "144p"
	Quality240p      Quality = "240p"
	Quality360p      Quality = "360p"
	Quality480p      Quality = "480p"
	Quality720p      Quality = "720p"
	Quality1080p     Quality = "1080p"
	Quality1440p     Quality = "1440p"
	Quality2160p     Quality = "2160p"
)

// FormatSelector returns the yt-dlp format selector expression for this quality.
// Resolution qualities constrain height and prefer mp4+m4a so the result plays
// everywhere without recoding.
func (q Quality) FormatSelector() string {
	switch q {
	case QualityBest, "":
		return "bv*+ba/b"
	case QualityWorst:
		return "worst"
	case QualityAudioOnly:
		return "bestaudio"
	case QualityVideoOnly:
		return "bestvideo"
	default:
		height := strings.TrimSuffix(string(q), "p")
		return "bestvideo[height<=" + height + "][ext=mp4]+" +
			"bestaudio[ext=m4a]/best[height<=" + height + "][ext=mp4]"
	}
}

// ValidateQuality checks if a quality value is one of the known selectors.
func ValidateQuality(q Quality) bool {
	switch q {
	case QualityBest, QualityWorst, QualityAudioOnly, QualityVideoOnly,
		Quality144p, Quality240p, Quality360p, Quality480p,
		Quality720p, Quality1080p, Quality1440p, Quality2160p:
		return true
	default:
		return false
	}
}

// AudioFormat is a target audio container/codec for extracted audio.
// The enum value doubles as the canonical file extension.
type AudioFormat string

const (
	AudioMP3    AudioFormat = "mp3"
	AudioAAC    AudioFormat = "aac"
	AudioM4A    AudioFormat = "m4a"
	AudioFLAC   AudioFormat = "flac"
	AudioOpus   AudioFormat = "opus"
	AudioVorbis AudioFormat = "vorbis"
	AudioWAV    AudioFormat = "wav"
)

// Ext returns the filename extension files in this format carry.
func (f AudioFormat) Ext() string {
	return string(f)
}

// VideoFormat is a target video container. The enum value doubles as the
// canonical file extension.
type VideoFormat string

const (
	VideoMP4  VideoFormat = "mp4"
	VideoWebM VideoFormat = "webm"
	VideoMKV  VideoFormat = "mkv"
	VideoAVI  VideoFormat = "avi"
	VideoMOV  VideoFormat = "mov"
	VideoFLV  VideoFormat = "flv"
)

// Ext returns the filename extension files in this container carry.
func (f VideoFormat) Ext() string {
	return string(f)
}
