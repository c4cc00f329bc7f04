package infrastructure

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/yourusername/ytgrab-go/internal/domain"
)

// progressTag prefixes the machine-parseable progress lines requested via
// --progress-template, so they cannot be confused with yt-dlp's free text.
const progressTag = "PROGRESS"

// ParseProgressLine consumes one line of yt-dlp output and updates the
// progress record in place. Malformed lines are ignored: a field that cannot
// be parsed keeps its previous value, and nothing here ever returns an error.
func ParseProgressLine(line string, progress *domain.DownloadProgress) {
	line = strings.TrimSpace(line)

	if idx := strings.Index(line, "Destination:"); idx >= 0 {
		dest := strings.TrimSpace(line[idx+len("Destination:"):])
		base := filepath.Base(dest)
		progress.Title = strings.TrimSuffix(base, filepath.Ext(base))
		return
	}

	if !strings.HasPrefix(line, progressTag+"|") {
		return
	}

	// PROGRESS|percent|downloaded|total|speed|eta
	parts := strings.Split(line, "|")
	if len(parts) != 6 {
		return
	}

	if v, ok := fieldValue(parts[1]); ok {
		if pct, err := strconv.ParseFloat(strings.TrimSuffix(v, "%"), 64); err == nil {
			progress.Percentage = pct
		}
	}
	if v, ok := fieldValue(parts[2]); ok {
		progress.DownloadedBytes = ParseSize(v)
	}
	if v, ok := fieldValue(parts[3]); ok {
		progress.TotalBytes = ParseSize(v)
	}
	if v, ok := fieldValue(parts[4]); ok {
		progress.Speed = v
	}
	if v, ok := fieldValue(parts[5]); ok {
		progress.ETA = ParseClock(v)
	}
}

// fieldValue trims a raw progress field and reports whether it carries a
// value. "N/A" and empty fields mean "keep the previous value".
func fieldValue(raw string) (string, bool) {
	v := strings.TrimSpace(raw)
	if v == "" || v == "N/A" {
		return "", false
	}
	return v, true
}

// sizeUnits, longest suffixes first so "KiB" is not mistaken for "B".
// Binary units are 1024-based, decimal units 1000-based.
var sizeUnits = []struct {
	suffix string
	mult   float64
}{
	{"KiB", 1 << 10},
	{"MiB", 1 << 20},
	{"GiB", 1 << 30},
	{"TiB", 1 << 40},
	{"KB", 1e3},
	{"MB", 1e6},
	{"GB", 1e9},
	{"TB", 1e12},
	{"B", 1},
}

// ParseSize converts a human-readable size string like "10.5MiB" or "~1.2GB"
// to bytes. Unparsable input yields 0.
func ParseSize(s string) int64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), "~", "")
	if s == "" {
		return 0
	}

	for _, unit := range sizeUnits {
		if !strings.HasSuffix(s, unit.suffix) {
			continue
		}
		number, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(s, unit.suffix)), 64)
		if err != nil {
			return 0
		}
		return int64(number * unit.mult)
	}

	// No unit: plain bytes.
	number, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return int64(number)
}

// ParseClock converts a clock string ("90", "1:30", "1:01:01") to seconds.
// Unparsable input yields 0.
func ParseClock(s string) int {
	parts := strings.Split(strings.TrimSpace(s), ":")
	switch len(parts) {
	case 1:
		n, err := strconv.Atoi(parts[0])
		if err != nil {
			return 0
		}
		return n
	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil {
			return 0
		}
		return m*60 + sec
	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil {
			return 0
		}
		return h*3600 + m*60 + sec
	default:
		return 0
	}
}
