package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/SkinTrade_Go/internal/config"
	"github.com/osse101/SkinTrade_Go/internal/logger"
)

// SetupLogger initializes the application logger. Output always goes to stdout;
// when cfg.LogDir is set it is also written to a timestamped file in that directory
// and older files beyond the retention count are removed.
// Returns the log file handle (nil without LogDir; caller must close) and any error encountered.
func SetupLogger(cfg *config.Config, version string) (*os.File, error) {
	var out io.Writer = os.Stdout
	var logFile *os.File

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		cleanupLogs(cfg.LogDir, LogFileRetentionCount)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		config.ServiceName,
		version,
		cfg.Environment,
		cfg.IsDev(),
	), out)

	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "log_dir", cfg.LogDir)
	slog.Info(LogMsgStartingSkinTrade,
		"environment", cfg.Environment,
		"version", version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"session_ttl", cfg.SessionTTL,
		"session_capacity", cfg.SessionCapacity,
		"reveal_delay", cfg.RevealDelay,
		"starting_balance", cfg.StartingBalance)

	for _, w := range cfg.Warnings() {
		slog.Warn(LogMsgConfigWarning, "warning", w)
	}

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the keep most recent.
// File names carry a sortable timestamp, so directory order is age order.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	toDelete := len(logFiles) - keep
	for i := 0; i < toDelete; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i].Name(), "error", err)
		}
	}
}
