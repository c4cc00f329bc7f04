package infrastructure

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

const (
	ytdlpReleaseURL        = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/yt-dlp"
	ytdlpReleaseURLWindows = "https://github.com/yt-dlp/yt-dlp/releases/latest/download/yt-dlp.exe"
	ffmpegZipURLWindows    = "https://github.com/BtbN/FFmpeg-Builds/releases/latest/download/ffmpeg-n7.1-latest-win64-lgpl-7.1.zip"
)

// transcoderStrategy selects how ffmpeg/ffprobe are obtained on one platform.
type transcoderStrategy int

const (
	// transcoderFromZip downloads a release zip and extracts the two
	// executables (Windows).
	transcoderFromZip transcoderStrategy = iota
	// transcoderFromPath relies on a system-installed copy found via PATH
	// lookup, warning instead of failing when it is absent (macOS/Linux).
	transcoderFromPath
)

// provisionPlan describes how to obtain the external tools on one platform.
type provisionPlan struct {
	extractorName  string
	extractorURL   string
	extractorChmod bool
	transcoder     transcoderStrategy
	transcoderURL  string
}

// planFor returns the provisioning plan for a GOOS value.
func planFor(goos string) provisionPlan {
	if goos == "windows" {
		return provisionPlan{
			extractorName: "yt-dlp.exe",
			extractorURL:  ytdlpReleaseURLWindows,
			transcoder:    transcoderFromZip,
			transcoderURL: ffmpegZipURLWindows,
		}
	}
	return provisionPlan{
		extractorName:  "yt-dlp",
		extractorURL:   ytdlpReleaseURL,
		extractorChmod: true,
		transcoder:     transcoderFromPath,
	}
}

// Provisioner ensures yt-dlp and ffmpeg/ffprobe exist locally, fetching
// platform releases on first use. Resolved paths are read-only after Ensure;
// the mutex makes concurrent first-run calls single-flight so two callers
// never race to write the same binary.
type Provisioner struct {
	binDir string
	client *http.Client
	logger *zap.Logger

	mu          sync.Mutex
	plan        provisionPlan
	ytdlpPath   string
	ffmpegPath  string
	ffprobePath string
	provisioned bool
}

// NewProvisioner creates a provisioner placing binaries under binDir.
func NewProvisioner(binDir string, logger *zap.Logger) *Provisioner {
	return &Provisioner{
		binDir: binDir,
		client: &http.Client{Timeout: 15 * time.Minute},
		logger: logger,
		plan:   planFor(runtime.GOOS),
	}
}

// Ensure provisions both tools. Idempotent: binaries already present at their
// expected locations are left alone and no network action occurs.
func (p *Provisioner) Ensure(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.provisioned {
		return nil
	}

	if err := os.MkdirAll(p.binDir, 0o755); err != nil {
		return fmt.Errorf("failed to create binaries directory: %w", err)
	}

	if err := p.ensureExtractor(ctx); err != nil {
		return err
	}
	if err := p.ensureTranscoder(ctx); err != nil {
		return err
	}

	p.provisioned = true
	p.logger.Info("All binaries are ready",
		zap.String("yt_dlp", p.ytdlpPath),
		zap.String("ffmpeg", p.ffmpegPath))
	return nil
}

func (p *Provisioner) ensureExtractor(ctx context.Context) error {
	path := filepath.Join(p.binDir, p.plan.extractorName)

	if !fileExists(path) {
		p.logger.Info("Downloading yt-dlp", zap.String("url", p.plan.extractorURL))
		if err := p.downloadFile(ctx, p.plan.extractorURL, path); err != nil {
			return err
		}
		if p.plan.extractorChmod {
			if err := os.Chmod(path, 0o755); err != nil {
				return fmt.Errorf("failed to mark yt-dlp executable: %w", err)
			}
		}
	}

	p.ytdlpPath = path
	return nil
}

func (p *Provisioner) ensureTranscoder(ctx context.Context) error {
	switch p.plan.transcoder {
	case transcoderFromZip:
		ffmpegPath := filepath.Join(p.binDir, "ffmpeg.exe")
		ffprobePath := filepath.Join(p.binDir, "ffprobe.exe")

		if !fileExists(ffmpegPath) {
			p.logger.Info("Downloading ffmpeg", zap.String("url", p.plan.transcoderURL))
			zipPath := filepath.Join(p.binDir, "ffmpeg.zip")
			if err := p.downloadFile(ctx, p.plan.transcoderURL, zipPath); err != nil {
				return err
			}
			if err := extractTranscoderZip(zipPath, p.binDir); err != nil {
				return &domain.ProvisionError{URL: p.plan.transcoderURL, Err: err}
			}
			os.Remove(zipPath)
		}

		p.ffmpegPath = ffmpegPath
		p.ffprobePath = ffprobePath

	case transcoderFromPath:
		if _, err := exec.LookPath("ffmpeg"); err == nil {
			p.ffmpegPath = "ffmpeg"
			p.ffprobePath = "ffprobe"
		} else {
			// Soft failure: downloads still work, recoding will not.
			p.logger.Warn("ffmpeg not found on PATH; install it via your package manager")
		}
	}

	return nil
}

// downloadFile streams a GET response to dest. A non-200 status or transport
// failure is fatal to setup; partial downloads are not resumed.
func (p *Provisioner) downloadFile(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &domain.ProvisionError{URL: url, Err: err}
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return &domain.ProvisionError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &domain.ProvisionError{URL: url, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	out, err := os.Create(dest)
	if err != nil {
		return &domain.ProvisionError{URL: url, Err: err}
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(dest)
		return &domain.ProvisionError{URL: url, Err: err}
	}

	return nil
}

// extractTranscoderZip pulls ffmpeg.exe and ffprobe.exe out of a release
// archive, flattening any directory structure into destDir.
func extractTranscoderZip(zipPath, destDir string) error {
	reader, err := zip.OpenReader(zipPath)
	if err != nil {
		return err
	}
	defer reader.Close()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() {
			continue
		}
		name := file.Name
		if !strings.HasSuffix(name, "ffmpeg.exe") && !strings.HasSuffix(name, "ffprobe.exe") {
			continue
		}

		src, err := file.Open()
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, filepath.Base(name))
		dst, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o755)
		if err != nil {
			src.Close()
			return err
		}

		_, err = io.Copy(dst, src)
		src.Close()
		dst.Close()
		if err != nil {
			return err
		}
	}

	return nil
}

// ExtractorPath returns the resolved yt-dlp path. Before Ensure has run it
// falls back to a copy already present in the binaries directory, then to the
// bare command name for PATH resolution.
func (p *Provisioner) ExtractorPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ytdlpPath != "" {
		return p.ytdlpPath
	}
	candidate := filepath.Join(p.binDir, p.plan.extractorName)
	if fileExists(candidate) {
		p.ytdlpPath = candidate
		return candidate
	}
	return "yt-dlp"
}

// TranscoderPath returns the resolved ffmpeg path, or "" when no transcoder
// is available.
func (p *Provisioner) TranscoderPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ffmpegPath != "" {
		return p.ffmpegPath
	}
	for _, name := range []string{"ffmpeg.exe", "ffmpeg"} {
		candidate := filepath.Join(p.binDir, name)
		if fileExists(candidate) {
			p.ffmpegPath = candidate
			return candidate
		}
	}
	if _, err := exec.LookPath("ffmpeg"); err == nil {
		p.ffmpegPath = "ffmpeg"
		return "ffmpeg"
	}
	return ""
}

// ProberPath returns the resolved ffprobe path, or "" when unavailable.
func (p *Provisioner) ProberPath() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ffprobePath != "" {
		return p.ffprobePath
	}
	for _, name := range []string{"ffprobe.exe", "ffprobe"} {
		candidate := filepath.Join(p.binDir, name)
		if fileExists(candidate) {
			p.ffprobePath = candidate
			return candidate
		}
	}
	if _, err := exec.LookPath("ffprobe"); err == nil {
		p.ffprobePath = "ffprobe"
		return "ffprobe"
	}
	return ""
}

// BinDir returns the binaries directory.
func (p *Provisioner) BinDir() string {
	return p.binDir
}
