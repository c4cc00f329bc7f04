package infrastructure

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/yourusername/ytgrab-go/internal/domain"
)

// progressTemplate asks yt-dlp to emit one delimiter-tagged progress line per
// update instead of its human-formatted (and version-dependent) default.
const progressTemplate = "download:" + progressTag +
	"|%(progress._percent_str)s" +
	"|%(progress._downloaded_bytes_str)s" +
	"|%(progress._total_bytes_str)s" +
	"|%(progress._speed_str)s" +
	"|%(progress._eta_str)s"

// BuildDownloadArgs maps a download configuration onto a yt-dlp argument
// vector. Pure and deterministic given (url, config, ffmpegPath); argument
// order is fixed so invocations are reproducible.
// Note: exec.Command passes args directly to the process, no shell quoting needed.
func BuildDownloadArgs(url string, config *domain.DownloadConfig, ffmpegPath string) []string {
	args := []string{"--no-warnings", "--progress"}

	if config.ExtractAudio {
		audioFormat := config.AudioFormat
		if audioFormat == "" {
			audioFormat = domain.AudioMP3
		}
		args = append(args, "-x", "--audio-format", string(audioFormat))
	} else {
		args = append(args, "-f", config.Quality.FormatSelector())
	}

	if config.VideoFormat != "" && !config.ExtractAudio {
		args = append(args, "--recode-video", string(config.VideoFormat))
	}

	if config.CustomFilename != "" {
		args = append(args, "-o", config.CustomFilename)
	} else {
		args = append(args, "-o", "%(title)s.%(ext)s")
	}

	if config.WriteSubs {
		args = append(args, "--write-subs", "--sub-lang", config.SubtitleLang)
	}
	if config.EmbedSubs {
		args = append(args, "--embed-subs")
	}
	if config.WriteThumbnail {
		args = append(args, "--write-thumbnail")
	}
	if config.EmbedThumbnail {
		args = append(args, "--embed-thumbnail")
	}
	if config.WriteInfoJSON {
		args = append(args, "--write-info-json")
	}
	if config.CookiesFile != "" {
		args = append(args, "--cookies", config.CookiesFile)
	}
	if config.Proxy != "" {
		args = append(args, "--proxy", config.Proxy)
	}
	if config.RateLimit != "" {
		args = append(args, "--limit-rate", config.RateLimit)
	}

	args = append(args, "--retries", strconv.Itoa(config.Retries))
	args = append(args, "--fragment-retries", strconv.Itoa(config.FragmentRetries))

	if ffmpegPath != "" {
		args = append(args, "--ffmpeg-location", ffmpegPath)
	}

	// Passthrough options, sorted so the vector stays deterministic.
	keys := make([]string, 0, len(config.CustomOptions))
	for key := range config.CustomOptions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		switch value := config.CustomOptions[key].(type) {
		case bool:
			if value {
				args = append(args, "--"+key)
			}
		default:
			args = append(args, "--"+key, fmt.Sprint(value))
		}
	}

	args = append(args, "--progress-template", progressTemplate)
	args = append(args, "--newline")
	args = append(args, url)

	return args
}
