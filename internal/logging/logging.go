package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logger *Logger
	raw    *zap.Logger

	// Returned by L() until Init or InitTest runs.
	noopLogger = &Logger{zap.NewNop().Sugar()}
)

// Logger wraps zap's SugaredLogger so packages can add their own fields.
type Logger struct {
	*zap.SugaredLogger
}

// Options control where and how the session log is written.
type Options struct {
	// Path of the log file. Rotated by size.
	Path string
	// Level is one of debug, info, warn, error. Empty means info (debug in dev mode).
	Level string
	// Dev switches the encoder from JSON to the human-readable console format.
	Dev bool
}

// With adds structured fields to the logger and returns a new instance.
func (l *Logger) With(args ...interface{}) *Logger {
	if l == nil {
		return noopLogger
	}
	return &Logger{l.SugaredLogger.With(args...)}
}

// L returns the global logger or a no-op fallback if uninitialized.
func L() *Logger {
	if logger == nil {
		return noopLogger
	}
	return logger
}

// DetectDev reports whether RKSHELL_ENV asks for development logging.
func DetectDev() bool {
	switch strings.ToLower(os.Getenv("RKSHELL_ENV")) {
	case "dev", "development":
		return true
	default:
		return false
	}
}

// Init installs the global logger writing to opts.Path.
func Init(opts Options) error {
	if opts.Path == "" {
		return fmt.Errorf("log path is empty")
	}
	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	level, err := ParseLevel(opts.Level, opts.Dev)
	if err != nil {
		return err
	}

	writer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
	})

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	var encoder zapcore.Encoder
	if opts.Dev {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, writer, level)
	raw = zap.New(core, zap.AddCaller())
	logger = &Logger{raw.Sugar()}

	logger.Debugf("logger initialized, writing to %s", opts.Path)
	return nil
}

// InitTest creates a lightweight logger for tests that logs to stdout.
func InitTest() {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	cfg.OutputPaths = []string{"stdout"}
	raw, _ = cfg.Build(zap.AddCaller())
	logger = &Logger{raw.Sugar()}
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}

// ParseLevel maps a level name to a zap level. An empty name picks debug
// in dev mode and info otherwise.
func ParseLevel(name string, dev bool) (zapcore.Level, error) {
	switch strings.ToLower(name) {
	case "":
		if dev {
			return zap.DebugLevel, nil
		}
		return zap.InfoLevel, nil
	case "debug":
		return zap.DebugLevel, nil
	case "info":
		return zap.InfoLevel, nil
	case "warn", "warning":
		return zap.WarnLevel, nil
	case "error":
		return zap.ErrorLevel, nil
	default:
		return zap.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}
