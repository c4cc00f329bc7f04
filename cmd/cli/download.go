package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yourusername/ytgrab-go/internal/domain"
)

var downloadCmd = &cobra.Command{
	Use:   "download [url]",
	Short: "Download a video or audio track",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}

		resp := service.Download(cmd.Context(), &domain.DownloadRequest{
			URL:    args[0],
			Config: configFromFlags(cmd),
		}, printProgress)
		fmt.Println()
		if !resp.Success {
			fatalf("%s: %s", resp.Message, resp.Error)
		}
		fmt.Printf("Saved: %s\n", resp.Filename)
	},
}

var playlistCmd = &cobra.Command{
	Use:   "playlist [url]",
	Short: "Download a playlist",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}

		maxVideos, _ := cmd.Flags().GetInt("max")
		resp := service.DownloadPlaylist(cmd.Context(), &domain.PlaylistRequest{
			URL:       args[0],
			Config:    configFromFlags(cmd),
			MaxVideos: maxVideos,
		}, printProgress)
		fmt.Println()
		if !resp.Success {
			fatalf("%s: %s", resp.Message, resp.Error)
		}

		fmt.Println(resp.Message)
		for _, name := range resp.DownloadedFiles {
			fmt.Printf("  %s\n", name)
		}
		for _, failure := range resp.FailedDownloads {
			fmt.Printf("  FAILED %s\n", failure)
		}
	},
}

func init() {
	for _, cmd := range []*cobra.Command{downloadCmd, playlistCmd} {
		cmd.Flags().StringP("output", "o", "", "Output directory")
		cmd.Flags().StringP("quality", "q", "best", "Quality: best, worst, audio_only, video_only or a height like 720p")
		cmd.Flags().BoolP("extract-audio", "x", false, "Extract audio instead of video")
		cmd.Flags().String("audio-format", "", "Audio format for extracted audio (mp3, aac, ...)")
		cmd.Flags().String("video-format", "", "Recode video to this container (mp4, webm, ...)")
		cmd.Flags().String("filename", "", "Custom output filename template")
		cmd.Flags().Bool("subs", false, "Write subtitles")
		cmd.Flags().Bool("embed-subs", false, "Embed subtitles")
		cmd.Flags().String("sub-lang", "en", "Subtitle language code")
		cmd.Flags().Bool("thumbnail", false, "Write thumbnail")
		cmd.Flags().Bool("embed-thumbnail", false, "Embed thumbnail")
		cmd.Flags().Bool("info-json", false, "Write metadata .info.json")
		cmd.Flags().String("cookies", "", "Path to cookies file")
		cmd.Flags().String("proxy", "", "Proxy URL")
		cmd.Flags().String("limit-rate", "", "Rate limit, e.g. 1M")
		cmd.Flags().Int("retries", 3, "Retry count")
		cmd.Flags().Int("fragment-retries", 3, "Fragment retry count")
	}
	playlistCmd.Flags().Int("max", 0, "Maximum number of playlist entries (0 = all)")
}

// configFromFlags assembles a per-download config from the command flags.
func configFromFlags(cmd *cobra.Command) *domain.DownloadConfig {
	config := domain.NewDownloadConfig()

	if v, _ := cmd.Flags().GetString("output"); v != "" {
		config.OutputPath = v
	}
	if v, _ := cmd.Flags().GetString("quality"); v != "" {
		config.Quality = domain.Quality(v)
	}
	config.ExtractAudio, _ = cmd.Flags().GetBool("extract-audio")
	if v, _ := cmd.Flags().GetString("audio-format"); v != "" {
		config.AudioFormat = domain.AudioFormat(v)
	}
	if v, _ := cmd.Flags().GetString("video-format"); v != "" {
		config.VideoFormat = domain.VideoFormat(v)
	}
	config.CustomFilename, _ = cmd.Flags().GetString("filename")
	config.WriteSubs, _ = cmd.Flags().GetBool("subs")
	config.EmbedSubs, _ = cmd.Flags().GetBool("embed-subs")
	config.SubtitleLang, _ = cmd.Flags().GetString("sub-lang")
	config.WriteThumbnail, _ = cmd.Flags().GetBool("thumbnail")
	config.EmbedThumbnail, _ = cmd.Flags().GetBool("embed-thumbnail")
	config.WriteInfoJSON, _ = cmd.Flags().GetBool("info-json")
	config.CookiesFile, _ = cmd.Flags().GetString("cookies")
	config.Proxy, _ = cmd.Flags().GetString("proxy")
	config.RateLimit, _ = cmd.Flags().GetString("limit-rate")
	config.Retries, _ = cmd.Flags().GetInt("retries")
	config.FragmentRetries, _ = cmd.Flags().GetInt("fragment-retries")

	return config
}

// printProgress renders one progress line, rewriting it in place.
func printProgress(p *domain.DownloadProgress) {
	title := p.Title
	if title == "" {
		title = p.URL
	}
	if len(title) > 50 {
		title = title[:47] + "..."
	}

	if p.Status == domain.ProgressFinished {
		fmt.Printf("\r%-50s 100.0%%           ", title)
		return
	}
	fmt.Printf("\r%-50s %5.1f%% %-10s", title, p.Percentage, p.Speed)
}
