package logutils

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogSettings configures the service logger.
type LogSettings struct {
	Enabled bool `json:"Enabled"`
	// Level is one of ERROR, WARN, INFO or DEBUG.
	Level           string `json:"Level" validate:"omitempty,eq=ERROR|eq=WARN|eq=INFO|eq=DEBUG"`
	File            string `json:"File"`
	MaxSize         int    `json:"MaxSize" validate:"min=0"`
	MaxBackups      int    `json:"MaxBackups" validate:"min=0"`
	CompressRotated bool   `json:"CompressRotated"`
	// ToStderr also writes to stderr when File is set.
	ToStderr bool `json:"ToStderr"`
}

var (
	rootLogger = zap.NewNop()
	rootMu     sync.RWMutex
)

// ZapLogger returns the process wide logger.
func ZapLogger() *zap.Logger {
	rootMu.RLock()
	defer rootMu.RUnlock()
	return rootLogger
}

// OverrideRootLogWithConfig replaces the process wide logger.
func OverrideRootLogWithConfig(settings LogSettings) error {
	logger, err := NewLogger(settings)
	if err != nil {
		return err
	}
	rootMu.Lock()
	rootLogger = logger
	rootMu.Unlock()
	return nil
}

func parseLevel(level string) (zapcore.Level, error) {
	switch strings.ToUpper(level) {
	case "", "INFO":
		return zapcore.InfoLevel, nil
	case "DEBUG":
		return zapcore.DebugLevel, nil
	case "WARN":
		return zapcore.WarnLevel, nil
	case "ERROR":
		return zapcore.ErrorLevel, nil
	}
	return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", level)
}

// NewLogger builds a logger writing JSON lines to a rotated file, or
// console lines to stderr when no file is configured.
func NewLogger(settings LogSettings) (*zap.Logger, error) {
	if !settings.Enabled {
		return zap.NewNop(), nil
	}
	level, err := parseLevel(settings.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	stderrCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		level,
	)
	if settings.File == "" {
		return zap.New(stderrCore), nil
	}

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		ZapSyncerWithRotation(FileOptions{
			Filename:   settings.File,
			MaxSize:    settings.MaxSize,
			MaxBackups: settings.MaxBackups,
			Compress:   settings.CompressRotated,
		}),
		level,
	)
	if settings.ToStderr {
		return zap.New(zapcore.NewTee(fileCore, stderrCore)), nil
	}
	return zap.New(fileCore), nil
}
