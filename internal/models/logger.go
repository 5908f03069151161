package models

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gorm_logger "gorm.io/gorm/logger"
)

// dbLogger forwards gorm log output to zerolog.
type dbLogger struct{}

func (l dbLogger) LogMode(gorm_logger.LogLevel) gorm_logger.Interface {
	return l
}

func (l dbLogger) Info(_ context.Context, format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

func (l dbLogger) Warn(_ context.Context, format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

func (l dbLogger) Error(_ context.Context, format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// Trace logs every statement with its duration. Rows that are simply not
// there are a normal outcome, not an error.
func (l dbLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	sql, rows := fc()

	event := log.Debug()
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && !errors.Is(err, ErrResourceNotFound) {
		event = log.Error().Err(err)
	}

	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur("duration", time.Since(begin)).
		Msg("database query")
}
