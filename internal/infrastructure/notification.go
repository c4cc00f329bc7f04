package infrastructure

import (
	"fmt"
	"os/exec"

	"github.com/yourusername/ytgrab-go/internal/domain"
	"go.uber.org/zap"
)

// NotificationService sends desktop notifications for download outcomes.
type NotificationService struct {
	config *domain.NotificationConfig
	logger *zap.Logger
}

// NewNotificationService creates a new notification service
func NewNotificationService(config *domain.NotificationConfig, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		config: config,
		logger: logger,
	}
}

// Send sends a notification via the configured method.
func (n *NotificationService) Send(title, message string) error {
	if n.config == nil || !n.config.Enabled {
		return nil
	}

	var cmd *exec.Cmd
	switch n.config.Method {
	case "osascript":
		script := fmt.Sprintf(`display notification "%s" with title "%s"`, message, title)
		cmd = exec.Command("osascript", "-e", script)
	case "notify-send":
		cmd = exec.Command("notify-send", title, message)
	default:
		n.logger.Warn("Unknown notification method", zap.String("method", n.config.Method))
		return nil
	}

	if err := cmd.Run(); err != nil {
		n.logger.Error("Failed to send notification",
			zap.String("method", n.config.Method),
			zap.Error(err))
		return err
	}
	return nil
}

// NotifyDownloadCompleted sends notification when a download completes
func (n *NotificationService) NotifyDownloadCompleted(url, filename string) {
	n.Send("Download Completed", fmt.Sprintf("Saved %s", truncateString(filename, 40)))
}

// NotifyDownloadFailed sends notification when a download fails
func (n *NotificationService) NotifyDownloadFailed(url string, err error) {
	n.Send("Download Failed", fmt.Sprintf("Failed: %s", truncateString(url, 40)))
}

// truncateString truncates a string to the specified length
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
