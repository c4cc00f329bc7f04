package infrastructure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/yourusername/ytgrab-go/internal/domain"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int64
	}{
		{"binary kilobyte", "1KiB", 1024},
		{"binary megabyte", "1MiB", 1048576},
		{"fractional binary megabyte", "2.5MiB", 2621440},
		{"binary gigabyte", "1GiB", 1073741824},
		{"decimal kilobyte", "1KB", 1000},
		{"decimal megabyte", "1MB", 1000000},
		{"decimal gigabyte", "1.5GB", 1500000000},
		{"decimal terabyte", "1TB", 1000000000000},
		{"bare bytes with unit", "512B", 512},
		{"bare number without unit", "123", 123},
		{"estimate prefix stripped", "~10.00MiB", 10485760},
		{"surrounding whitespace", "  1KiB  ", 1024},
		{"empty string", "", 0},
		{"not a size", "unknown", 0},
		{"unit without number", "MiB", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseSize(tt.input))
		})
	}
}

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"seconds only", "90", 90},
		{"minutes and seconds", "1:30", 90},
		{"hours minutes seconds", "1:01:01", 3661},
		{"zero", "0", 0},
		{"surrounding whitespace", " 2:05 ", 125},
		{"garbage", "soon", 0},
		{"garbage with colon", "a:b", 0},
		{"too many parts", "1:2:3:4", 0},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseClock(tt.input))
		})
	}
}

func TestParseProgressLine_UpdatesAllFields(t *testing.T) {
	progress := domain.NewDownloadProgress("https://example.com/v")

	ParseProgressLine("PROGRESS|  42.5%|4.25MiB|10.00MiB|2.50MiB/s|00:02", progress)

	assert.Equal(t, 42.5, progress.Percentage)
	assert.Equal(t, int64(4456448), progress.DownloadedBytes)
	assert.Equal(t, int64(10485760), progress.TotalBytes)
	assert.Equal(t, "2.50MiB/s", progress.Speed)
	assert.Equal(t, 2, progress.ETA)
}

func TestParseProgressLine_NAKeepsPreviousValues(t *testing.T) {
	progress := domain.NewDownloadProgress("https://example.com/v")
	ParseProgressLine("PROGRESS|50.0%|5.00MiB|10.00MiB|1.00MiB/s|00:05", progress)

	before := *progress
	ParseProgressLine("PROGRESS|N/A|N/A|N/A|N/A|N/A", progress)

	assert.Equal(t, before, *progress)
}

func TestParseProgressLine_MalformedLinesAreIgnored(t *testing.T) {
	lines := []string{
		"",
		"[youtube] abc: Downloading webpage",
		"PROGRESS|50.0%",
		"PROGRESS|50.0%|1MiB|2MiB|1MiB/s",
		"PROGRESS|50.0%|1MiB|2MiB|1MiB/s|00:01|extra",
		"PROGRES|50.0%|1MiB|2MiB|1MiB/s|00:01",
	}

	for _, line := range lines {
		progress := domain.NewDownloadProgress("https://example.com/v")
		assert.NotPanics(t, func() { ParseProgressLine(line, progress) })
		assert.Zero(t, progress.Percentage, "line %q should not update progress", line)
		assert.Zero(t, progress.DownloadedBytes, "line %q should not update progress", line)
	}
}

func TestParseProgressLine_UnparsableFieldKeepsPrevious(t *testing.T) {
	progress := domain.NewDownloadProgress("https://example.com/v")
	ParseProgressLine("PROGRESS|25.0%|1.00MiB|4.00MiB|1.00MiB/s|00:03", progress)

	ParseProgressLine("PROGRESS|garbage|junk|4.00MiB|N/A|??", progress)

	assert.Equal(t, 25.0, progress.Percentage)
	// Size fields parse through ParseSize, which maps garbage to 0.
	assert.Equal(t, int64(0), progress.DownloadedBytes)
	assert.Equal(t, int64(4194304), progress.TotalBytes)
	assert.Equal(t, "1.00MiB/s", progress.Speed)
	assert.Equal(t, 0, progress.ETA)
}

func TestParseProgressLine_DestinationSetsTitle(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		title string
	}{
		{"plain destination", "[download] Destination: My Video.webm", "My Video"},
		{"destination with path", "[download] Destination: /tmp/out/Concert (Live).mp4", "Concert (Live)"},
		{"no extension", "[download] Destination: rawfile", "rawfile"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			progress := domain.NewDownloadProgress("https://example.com/v")
			ParseProgressLine(tt.line, progress)
			assert.Equal(t, tt.title, progress.Title)
		})
	}
}
