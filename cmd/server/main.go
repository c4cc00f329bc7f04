package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/yourusername/ytgrab-go/api"
	"github.com/yourusername/ytgrab-go/internal/app"
	"github.com/yourusername/ytgrab-go/internal/domain"
	"github.com/yourusername/ytgrab-go/internal/infrastructure"
	"github.com/yourusername/ytgrab-go/pkg/logger"
)

var configPath = flag.String("config", "", "Path to config file")

func main() {
	flag.Parse()

	config, err := app.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.FromLoggingConfig(config.Logging.Level, config.Logging.Format, config.Logging.OutputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	downloader := infrastructure.NewYTDLPDownloader(config.Binaries.Dir, log)

	var history domain.HistoryRepository
	if config.History.Enabled {
		repo, err := infrastructure.NewSQLiteHistoryRepository(config.History.DatabasePath)
		if err != nil {
			log.Fatal("Failed to open history database", zap.Error(err))
		}
		history = repo
	}

	notifier := infrastructure.NewNotificationService(&config.Notification, log)
	service := app.NewService(downloader, history, notifier, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if config.Binaries.AutoInstall {
		if err := service.Setup(ctx); err != nil {
			log.Fatal("Binary setup failed", zap.Error(err))
		}
	}

	router := api.SetupRouter(service, log)
	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Shutdown failed", zap.Error(err))
	}
}
