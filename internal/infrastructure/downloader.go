package infrastructure

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// YTDLPDownloader implements domain.MediaDownloader by driving the yt-dlp and
// ffmpeg executables as subprocesses.
type YTDLPDownloader struct {
	provisioner *Provisioner
	logger      *zap.Logger
}

// NewYTDLPDownloader creates a downloader whose binaries live under binDir.
func NewYTDLPDownloader(binDir string, logger *zap.Logger) *YTDLPDownloader {
	return &YTDLPDownloader{
		provisioner: NewProvisioner(binDir, logger),
		logger:      logger,
	}
}

// Provisioner exposes the binary provisioner, e.g. for health reporting.
func (d *YTDLPDownloader) Provisioner() *Provisioner {
	return d.provisioner
}

// SetupBinaries provisions yt-dlp and ffmpeg. Idempotent.
func (d *YTDLPDownloader) SetupBinaries(ctx context.Context) error {
	return d.provisioner.Ensure(ctx)
}

// Download downloads one URL and returns the final filename as reported by
// yt-dlp. Output is read line by line as it arrives; each line is fully
// parsed and its callback fully returned before the next read, so progress
// events for one download are strictly ordered.
func (d *YTDLPDownloader) Download(ctx context.Context, url string, config *domain.DownloadConfig, callback domain.ProgressCallback) (string, error) {
	if config == nil {
		config = domain.NewDownloadConfig()
	}

	outputDir := config.OutputPath
	if outputDir == "" {
		outputDir = "./downloads"
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	bin := d.provisioner.ExtractorPath()
	args := BuildDownloadArgs(url, config, d.provisioner.TranscoderPath())
	d.logger.Debug("Running extractor", zap.String("cmd", ShellEscapeCommand(bin, args...)))

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = outputDir
	configureProcessGroup(cmd)

	// Merge stderr into stdout so error text interleaves with progress lines.
	pr, pw, err := os.Pipe()
	if err != nil {
		return "", fmt.Errorf("failed to create output pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		pr.Close()
		pw.Close()
		return "", &domain.ToolError{Tool: "yt-dlp", Op: "download", Err: err}
	}
	pw.Close()

	progress := domain.NewDownloadProgress(url)
	var outputFile string

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		oldPercentage := progress.Percentage
		ParseProgressLine(line, progress)

		if callback != nil && (progress.Percentage != oldPercentage ||
			progress.DownloadedBytes > 0 || progress.TotalBytes > 0) {
			callback(progress)
		}

		// Capture the reported output filename.
		if idx := strings.Index(line, "[download] Destination:"); idx >= 0 {
			outputFile = strings.TrimSpace(line[idx+len("[download] Destination:"):])
		} else if strings.Contains(line, "[download]") && strings.Contains(line, "has already been downloaded") {
			if fields := strings.Fields(line); len(fields) >= 2 {
				outputFile = fields[1]
			}
		}
	}
	pr.Close()

	if err := cmd.Wait(); err != nil {
		return "", &domain.ToolError{Tool: "yt-dlp", Op: "download", Err: err}
	}

	if callback != nil {
		progress.Status = domain.ProgressFinished
		progress.Percentage = 100
		callback(progress)
	}

	if outputFile == "" {
		return "", domain.ErrUnknownOutputFile
	}

	// yt-dlp reports the pre-transcode filename; when post-processing changes
	// the container, the real file carries the configured extension.
	if ext := config.TargetExt(); ext != "" {
		outputFile = replaceExt(outputFile, ext)
	}

	return outputFile, nil
}

// replaceExt swaps filename's extension, preserving the base name.
func replaceExt(filename, ext string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename)) + "." + ext
}

// GetVideoInfo fetches metadata for one URL without downloading.
func (d *YTDLPDownloader) GetVideoInfo(ctx context.Context, url string) (*domain.VideoInfo, error) {
	out, err := d.runDump(ctx, "info", "--dump-json", "--no-warnings", url)
	if err != nil {
		return nil, err
	}

	var info domain.VideoInfo
	if err := json.Unmarshal(out, &info); err != nil {
		return nil, fmt.Errorf("failed to decode video info: %w", err)
	}
	return &info, nil
}

// Search returns up to maxResults videos matching query, one structured
// record per output line.
func (d *YTDLPDownloader) Search(ctx context.Context, query string, maxResults int) ([]*domain.VideoInfo, error) {
	if maxResults <= 0 {
		maxResults = 10
	}
	searchURL := fmt.Sprintf("ytsearch%d:%s", maxResults, query)

	out, err := d.runDump(ctx, "search", "--dump-json", "--no-warnings", searchURL)
	if err != nil {
		return nil, err
	}

	var results []*domain.VideoInfo
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		var info domain.VideoInfo
		if err := json.Unmarshal([]byte(line), &info); err != nil {
			return nil, fmt.Errorf("failed to decode search result: %w", err)
		}
		results = append(results, &info)
	}
	return results, nil
}

// GetPlaylistInfo lists playlist entries without resolving each entry's full
// media info. The playlist title comes from the first entry.
func (d *YTDLPDownloader) GetPlaylistInfo(ctx context.Context, url string) (*domain.PlaylistInfo, error) {
	out, err := d.runDump(ctx, "playlist info", "--dump-json", "--flat-playlist", "--no-warnings", url)
	if err != nil {
		return nil, err
	}

	var entries []*domain.PlaylistEntry
	for _, line := range strings.Split(strings.TrimSpace(string(out)), "\n") {
		if line == "" {
			continue
		}
		var entry domain.PlaylistEntry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			return nil, fmt.Errorf("failed to decode playlist entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	title := "Empty Playlist"
	if len(entries) > 0 {
		title = entries[0].PlaylistTitle
		if title == "" {
			title = "Unknown Playlist"
		}
	}

	return &domain.PlaylistInfo{Title: title, Entries: entries}, nil
}

// HealthCheck probes both tools with their version flags.
func (d *YTDLPDownloader) HealthCheck(ctx context.Context) *domain.HealthResponse {
	ytdlpOK := probeVersion(ctx, d.provisioner.ExtractorPath(), "--version")

	ffmpegOK := false
	if path := d.provisioner.TranscoderPath(); path != "" {
		ffmpegOK = probeVersion(ctx, path, "-version")
	}

	status := domain.HealthUnhealthy
	switch {
	case ytdlpOK && ffmpegOK:
		status = domain.HealthHealthy
	case ytdlpOK || ffmpegOK:
		status = domain.HealthDegraded
	}

	return &domain.HealthResponse{
		Status:          status,
		YTDLPAvailable:  ytdlpOK,
		FFmpegAvailable: ffmpegOK,
		BinariesPath:    d.provisioner.BinDir(),
	}
}

// probeVersion runs bin with a version flag and reports a zero exit.
func probeVersion(ctx context.Context, bin, flag string) bool {
	cmd := exec.CommandContext(ctx, bin, flag)
	configureProcessGroup(cmd)
	return cmd.Run() == nil
}

// runDump executes yt-dlp in a structured-dump mode, returning stdout.
// Non-zero exit is fatal to the operation and carries the captured stderr.
func (d *YTDLPDownloader) runDump(ctx context.Context, op string, args ...string) ([]byte, error) {
	bin := d.provisioner.ExtractorPath()
	d.logger.Debug("Running extractor", zap.String("cmd", ShellEscapeCommand(bin, args...)))

	cmd := exec.CommandContext(ctx, bin, args...)
	configureProcessGroup(cmd)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &domain.ToolError{
			Tool:   "yt-dlp",
			Op:     op,
			Output: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}
	return stdout.Bytes(), nil
}

// fileExists checks if a file exists
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
