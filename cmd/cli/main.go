package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/yourusername/ytgrab-go/internal/app"
	"github.com/yourusername/ytgrab-go/internal/domain"
	"github.com/yourusername/ytgrab-go/internal/infrastructure"
	"github.com/yourusername/ytgrab-go/pkg/logger"
)

var (
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "ytgrab",
		Short: "ytgrab CLI - Download media from websites via yt-dlp",
		Long:  `A command-line interface for probing, searching and downloading media from websites.`,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(downloadCmd)
	rootCmd.AddCommand(playlistCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(historyCmd)
}

// buildService wires the downloader, history store and notifier from config.
func buildService() (*app.Service, error) {
	config, err := app.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.FromLoggingConfig(config.Logging.Level, config.Logging.Format, config.Logging.OutputPath)
	if err != nil {
		return nil, err
	}

	downloader := infrastructure.NewYTDLPDownloader(config.Binaries.Dir, log)

	var history domain.HistoryRepository
	if config.History.Enabled {
		repo, err := infrastructure.NewSQLiteHistoryRepository(config.History.DatabasePath)
		if err != nil {
			log.Warn("History database unavailable", zap.Error(err))
		} else {
			history = repo
		}
	}

	notifier := infrastructure.NewNotificationService(&config.Notification, log)
	return app.NewService(downloader, history, notifier, log), nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func printJSON(v interface{}) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Download and install yt-dlp and ffmpeg binaries",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}
		if err := service.Setup(cmd.Context()); err != nil {
			fatalf("Setup failed: %v", err)
		}
		fmt.Println("Binaries are ready!")
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [url]",
	Short: "Show video metadata without downloading",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}
		info, err := service.GetVideoInfo(cmd.Context(), args[0])
		if err != nil {
			fatalf("Error: %v", err)
		}
		printJSON(info)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for videos",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}

		maxResults, _ := cmd.Flags().GetInt("max")
		resp := service.Search(cmd.Context(), &domain.SearchRequest{
			Query:      args[0],
			MaxResults: maxResults,
		})
		if !resp.Success {
			fatalf("Search failed: %s", resp.Error)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tDURATION\tUPLOADER\tTITLE")
		for _, info := range resp.Results {
			fmt.Fprintf(w, "%s\t%.0fs\t%s\t%s\n", info.ID, info.Duration, info.Uploader, info.Title)
		}
		w.Flush()
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that yt-dlp and ffmpeg are working",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}
		printJSON(service.Health(cmd.Context()))
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent downloads",
	Run: func(cmd *cobra.Command, args []string) {
		service, err := buildService()
		if err != nil {
			fatalf("Error: %v", err)
		}

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := service.History(limit)
		if err != nil {
			fatalf("Error: %v", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "STATUS\tCREATED\tFILE\tURL")
		for _, r := range records {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				r.Status, r.CreatedAt.Format("2006-01-02 15:04"), r.FilePath, r.URL)
		}
		w.Flush()
	},
}

func init() {
	searchCmd.Flags().IntP("max", "n", 10, "Maximum number of results")
	historyCmd.Flags().Int("limit", 50, "Maximum number of records")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
