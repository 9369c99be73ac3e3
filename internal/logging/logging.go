package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DefaultLevel  = "info"
	DefaultFormat = "console"

	// DefaultMaxSize is the default size of a log file before rotation, in MB.
	DefaultMaxSize = 100
)

// FileConfig enables logging to a rotated file.
type FileConfig struct {
	// Log filename, leave empty to log to stderr.
	Filename string `toml:"filename"`
	// Max size for a single file, in MB.
	MaxSize int `toml:"max-size"`
	// Maximum number of old log files to retain.
	MaxBackups int `toml:"max-backups"`
}

// Config controls the logger built by New.
type Config struct {
	// Log level: debug, info, warn or error.
	Level string `toml:"level"`
	// Log format: console or json.
	Format string     `toml:"format"`
	File   FileConfig `toml:"file"`
}

func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel,
		Format: DefaultFormat,
	}
}

// New builds a zap logger writing to stderr, or to cfg.File when a filename
// is set.
func New(cfg Config) (*zap.Logger, error) {
	var w io.Writer = os.Stderr
	if cfg.File.Filename != "" {
		maxSize := cfg.File.MaxSize
		if maxSize <= 0 {
			maxSize = DefaultMaxSize
		}
		w = &lumberjack.Logger{
			Filename:   cfg.File.Filename,
			MaxSize:    maxSize,
			MaxBackups: cfg.File.MaxBackups,
		}
	}
	return NewWithWriter(cfg, w)
}

// NewWithWriter builds a zap logger writing to w.
func NewWithWriter(cfg Config, w io.Writer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
		}
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006/01/02 15:04:05.000")

	var enc zapcore.Encoder
	switch cfg.Format {
	case "", "console", "text":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		enc = zapcore.NewConsoleEncoder(encCfg)
	case "json":
		enc = zapcore.NewJSONEncoder(encCfg)
	default:
		return nil, fmt.Errorf("invalid log format %q", cfg.Format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), level)
	return zap.New(core, zap.AddStacktrace(zapcore.FatalLevel)), nil
}
