package domain

// Config represents the application configuration
type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	Binaries     BinariesConfig     `mapstructure:"binaries"`
	Download     DownloadConfig     `mapstructure:"download"`
	History      HistoryConfig      `mapstructure:"history"`
	Notification NotificationConfig `mapstructure:"notification"`
	Logging      LoggingConfig      `mapstructure:"logging"`
}

// ServerConfig contains server-related configuration
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
}

// BinariesConfig controls where external tool binaries live and whether
// setup may fetch them over the network.
type BinariesConfig struct {
	Dir         string `mapstructure:"dir"`
	AutoInstall bool   `mapstructure:"auto_install"`
}

// HistoryConfig contains download-history persistence configuration
type HistoryConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DatabasePath string `mapstructure:"database_path"`
}

// NotificationConfig contains desktop notification configuration
type NotificationConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Sound   bool   `mapstructure:"sound"`
	Method  string `mapstructure:"method"` // osascript, notify-send, etc.
}

// LoggingConfig contains logging-related configuration
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputPath string `mapstructure:"output_path"` // stdout, stderr, or file path
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Binaries: BinariesConfig{
			Dir:         "bin",
			AutoInstall: true,
		},
		Download: *NewDownloadConfig(),
		History: HistoryConfig{
			Enabled:      true,
			DatabasePath: "$HOME/.ytgrab/history.db",
		},
		Notification: NotificationConfig{
			Enabled: false,
			Sound:   true,
			Method:  "osascript",
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			OutputPath: "stdout",
		},
	}
}
