package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yourusername/ytgrab-go/internal/domain"
)

const testURL = "https://example.com/watch?v=abc"

// flagValue returns the argument following flag, or "" when flag is absent.
func flagValue(args []string, flag string) string {
	for i, arg := range args {
		if arg == flag && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func TestBuildDownloadArgs_Defaults(t *testing.T) {
	args := BuildDownloadArgs(testURL, domain.NewDownloadConfig(), "")

	assert.Equal(t, "--no-warnings", args[0])
	assert.Equal(t, "--progress", args[1])
	assert.Equal(t, "bv*+ba/b", flagValue(args, "-f"))
	assert.Equal(t, "%(title)s.%(ext)s", flagValue(args, "-o"))
	assert.Equal(t, "3", flagValue(args, "--retries"))
	assert.Equal(t, "3", flagValue(args, "--fragment-retries"))
	assert.Equal(t, progressTemplate, flagValue(args, "--progress-template"))
	assert.Contains(t, args, "--newline")
	assert.Equal(t, testURL, args[len(args)-1], "url must be the last argument")
	assert.NotContains(t, args, "--ffmpeg-location")
}

func TestBuildDownloadArgs_ResolutionSelector(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.Quality = domain.Quality720p

	args := BuildDownloadArgs(testURL, config, "")

	assert.Equal(t,
		"bestvideo[height<=720][ext=mp4]+bestaudio[ext=m4a]/best[height<=720][ext=mp4]",
		flagValue(args, "-f"))
}

func TestBuildDownloadArgs_ExtractAudioDefaultsToMP3(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.ExtractAudio = true

	args := BuildDownloadArgs(testURL, config, "")

	assert.Contains(t, args, "-x")
	assert.Equal(t, "mp3", flagValue(args, "--audio-format"))
	assert.NotContains(t, args, "-f", "audio extraction replaces format selection")
}

func TestBuildDownloadArgs_ExtractAudioSuppressesRecode(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.ExtractAudio = true
	config.AudioFormat = domain.AudioFLAC
	config.VideoFormat = domain.VideoMP4

	args := BuildDownloadArgs(testURL, config, "")

	assert.Equal(t, "flac", flagValue(args, "--audio-format"))
	assert.NotContains(t, args, "--recode-video")
}

func TestBuildDownloadArgs_RecodeVideo(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.VideoFormat = domain.VideoMKV

	args := BuildDownloadArgs(testURL, config, "")

	assert.Equal(t, "mkv", flagValue(args, "--recode-video"))
}

func TestBuildDownloadArgs_OptionalFlags(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.WriteSubs = true
	config.SubtitleLang = "de"
	config.EmbedSubs = true
	config.WriteThumbnail = true
	config.EmbedThumbnail = true
	config.WriteInfoJSON = true
	config.CustomFilename = "clip-%(id)s.%(ext)s"
	config.CookiesFile = "/tmp/cookies.txt"
	config.Proxy = "socks5://127.0.0.1:9050"
	config.RateLimit = "1M"

	args := BuildDownloadArgs(testURL, config, "/opt/ffmpeg/bin")

	assert.Contains(t, args, "--write-subs")
	assert.Equal(t, "de", flagValue(args, "--sub-lang"))
	assert.Contains(t, args, "--embed-subs")
	assert.Contains(t, args, "--write-thumbnail")
	assert.Contains(t, args, "--embed-thumbnail")
	assert.Contains(t, args, "--write-info-json")
	assert.Equal(t, "clip-%(id)s.%(ext)s", flagValue(args, "-o"))
	assert.Equal(t, "/tmp/cookies.txt", flagValue(args, "--cookies"))
	assert.Equal(t, "socks5://127.0.0.1:9050", flagValue(args, "--proxy"))
	assert.Equal(t, "1M", flagValue(args, "--limit-rate"))
	assert.Equal(t, "/opt/ffmpeg/bin", flagValue(args, "--ffmpeg-location"))
}

func TestBuildDownloadArgs_CustomOptions(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.CustomOptions = map[string]interface{}{
		"no-playlist":          true,
		"skip-download":        false,
		"concurrent-fragments": 4,
		"user-agent":           "test-agent",
	}

	args := BuildDownloadArgs(testURL, config, "")

	assert.Contains(t, args, "--no-playlist")
	assert.NotContains(t, args, "--skip-download", "false booleans are omitted")
	assert.Equal(t, "4", flagValue(args, "--concurrent-fragments"))
	assert.Equal(t, "test-agent", flagValue(args, "--user-agent"))
}

func TestBuildDownloadArgs_Deterministic(t *testing.T) {
	config := domain.NewDownloadConfig()
	config.CustomOptions = map[string]interface{}{
		"c": 1, "a": 2, "b": 3, "d": true, "e": "x",
	}

	first := BuildDownloadArgs(testURL, config, "ffmpeg")
	for i := 0; i < 20; i++ {
		require.Equal(t, first, BuildDownloadArgs(testURL, config, "ffmpeg"))
	}
}
