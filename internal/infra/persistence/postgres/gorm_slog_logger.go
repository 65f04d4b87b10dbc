package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lostfound/config"
	deliverycontext "lostfound/internal/delivery/context"
	"lostfound/internal/errors"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const slowQueryThreshold = 200 * time.Millisecond

// queryLogger routes gorm output to slog. Lines use the request-scoped logger
// when the query context carries one.
type queryLogger struct {
	base  *slog.Logger
	level gormlogger.LogLevel
	slow  time.Duration
}

func newQueryLogger(base *slog.Logger, cfg *config.Config) gormlogger.Interface {
	level := gormlogger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = gormlogger.Info
	}

	return &queryLogger{base: base, level: level, slow: slowQueryThreshold}
}

func (l *queryLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	next := *l
	next.level = level

	return &next
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, msg, args...)
}

// Trace logs failed queries, slow queries, and in debug mode every query.
// Record-not-found is an expected outcome of FindByID and is not logged.
func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.base == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.query(ctx, slog.LevelError, "Query failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= gormlogger.Warn:
		l.query(ctx, slog.LevelWarn, "Slow query", fc, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= gormlogger.Info:
		l.query(ctx, slog.LevelDebug, "Query", fc, elapsed)
	}
}

func (l *queryLogger) printf(ctx context.Context, level gormlogger.LogLevel, msg string, args ...any) {
	if l.base == nil || l.level < level {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.base).
		LogAttrs(ctx, slogLevel(level), "gorm", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) query(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}, extra...)

	deliverycontext.GetLoggerOrDefault(ctx, l.base).LogAttrs(ctx, level, msg, attrs...)
}

func slogLevel(level gormlogger.LogLevel) slog.Level {
	switch level {
	case gormlogger.Error:
		return slog.LevelError
	case gormlogger.Warn:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
