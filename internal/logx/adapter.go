package logx

import (
	"log/slog"
	"time"
)

// SlogAdapter is the fallback Logger used when zap cannot be built.
type SlogAdapter struct {
	l *slog.Logger
}

// NewSlogAdapter wraps l.
func NewSlogAdapter(l *slog.Logger) Logger {
	return &SlogAdapter{l: l}
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) { s.l.Debug(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Info(msg string, fields ...Field)  { s.l.Info(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Warn(msg string, fields ...Field)  { s.l.Warn(msg, toSlogArgs(fields)...) }
func (s *SlogAdapter) Error(msg string, fields ...Field) { s.l.Error(msg, toSlogArgs(fields)...) }

// With returns a child logger carrying fields.
func (s *SlogAdapter) With(fields ...Field) Logger {
	return &SlogAdapter{l: s.l.With(toSlogArgs(fields)...)}
}

// Sync is a no-op: slog handlers write synchronously.
func (s *SlogAdapter) Sync() error { return nil }

// toSlogArgs mirrors toZapFields: errors are rendered by their message,
// durations and times keep their slog kinds.
func toSlogArgs(fields []Field) []any {
	args := make([]any, 0, len(fields))
	for _, f := range fields {
		switch v := f.Value.(type) {
		case error:
			args = append(args, slog.String(f.Key, v.Error()))
		case time.Duration:
			args = append(args, slog.Duration(f.Key, v))
		case time.Time:
			args = append(args, slog.Time(f.Key, v))
		default:
			args = append(args, slog.Any(f.Key, v))
		}
	}
	return args
}
