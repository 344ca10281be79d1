// Package log provides category-scoped structured logging backed by zap.
//
// Until Init is called every call is a no-op, so library code and tests stay
// quiet unless a command opts in.
package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category tags a log line with the subsystem that produced it.
type Category string

const (
	CatConfig Category = "config"
	CatCLI    Category = "cli"
	CatSign   Category = "sign"
)

// Config selects the level, encoding and destination of log output.
type Config struct {
	Level  string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"oneof=console logfmt json"`
	Output string `mapstructure:"output" validate:"required"` // stderr, stdout or a file path
}

var current atomic.Pointer[zap.SugaredLogger]

func init() {
	current.Store(zap.NewNop().Sugar())
}

// Init replaces the global logger according to cfg.
func Init(cfg Config) error {
	ws, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	lg, err := build(cfg, ws)
	if err != nil {
		return err
	}
	current.Store(lg)
	return nil
}

// SetOutput sends log output to w at debug level using the given format.
func SetOutput(w io.Writer, format string) {
	lg, err := build(Config{Level: "debug", Format: format}, zapcore.AddSync(w))
	if err != nil {
		return
	}
	current.Store(lg)
}

// Reset restores the no-op logger.
func Reset() {
	current.Store(zap.NewNop().Sugar())
}

func build(cfg Config, ws zapcore.WriteSyncer) (*zap.SugaredLogger, error) {
	level := zapcore.WarnLevel
	if cfg.Level != "" {
		parsed, err := zapcore.ParseLevel(cfg.Level)
		if err != nil {
			return nil, fmt.Errorf("parsing log level: %w", err)
		}
		level = parsed
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch cfg.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	case "", "console":
		encoder = zapcore.NewConsoleEncoder(encCfg)
	default:
		return nil, fmt.Errorf("unknown log format %q", cfg.Format)
	}

	core := zapcore.NewCore(encoder, ws, level)
	return zap.New(core).Sugar(), nil
}

func openOutput(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "", "stderr":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0750); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	return zapcore.AddSync(f), nil
}

func with(cat Category, kv []any) []any {
	return append([]any{"cat", string(cat)}, kv...)
}

// Debug logs msg at debug level. kv are alternating keys and values.
func Debug(cat Category, msg string, kv ...any) {
	current.Load().Debugw(msg, with(cat, kv)...)
}

// Info logs msg at info level.
func Info(cat Category, msg string, kv ...any) {
	current.Load().Infow(msg, with(cat, kv)...)
}

// Warn logs msg at warn level.
func Warn(cat Category, msg string, kv ...any) {
	current.Load().Warnw(msg, with(cat, kv)...)
}

// ErrorErr logs msg and err at error level.
func ErrorErr(cat Category, msg string, err error, kv ...any) {
	current.Load().Errorw(msg, with(cat, append(kv, "error", err))...)
}

// Sync flushes buffered output.
func Sync() {
	_ = current.Load().Sync()
}
