// Package logger 提供以 logr 包裝 slog 的結構化日誌
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-logr/logr"
	"github.com/spf13/pflag"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type (
	// Logger wraps the upstream logr logger.
	Logger struct {
		logr.Logger
	}

	Config struct {
		Verbosity int
		Format    string
	}

	Format string
)

// output 供測試替換輸出目的地
var output io.Writer = os.Stderr

// AddFlags 將日誌相關旗標加入 flagset，解析後寫入 cfg
func AddFlags(flags *pflag.FlagSet, cfg *Config) {
	flags.IntVarP(&cfg.Verbosity, "v", "v", 0, "Logging level")
	flags.StringVar(&cfg.Format, "log-format", string(TextFormat), "Logging format: text or json")
}

// New 依設定建立 Logger
func New(cfg Config) (Logger, error) {
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}

	var h slog.Handler
	switch Format(cfg.Format) {
	case TextFormat, "":
		h = slog.NewTextHandler(output, opts)
	case JSONFormat:
		h = slog.NewJSONHandler(output, opts)
	default:
		return Logger{}, fmt.Errorf("unrecognised logging format: %s", cfg.Format)
	}
	return Logger{Logger: logr.FromSlogHandler(h)}, nil
}

func Discard() Logger { return Logger{Logger: logr.Discard()} }

// WithValues returns a new Logger instance with additional key/value pairs.
func (l Logger) WithValues(keysAndValues ...any) Logger {
	return Logger{Logger: l.Logger.WithValues(keysAndValues...)}
}

func (l Logger) WithName(name string) Logger {
	return Logger{Logger: l.Logger.WithName(name)}
}

func (l Logger) V(level int) Logger {
	return Logger{Logger: l.Logger.V(level)}
}

// toSlogLevel converts a logr v-level to a slog level.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-4 - (verbosity - 1))
}
