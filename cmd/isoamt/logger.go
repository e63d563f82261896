package main

import (
	"io"

	"github.com/phuslu/log"
	"github.com/rgehrsitz/isoamt/internal/calculation"
)

// cliLogger implements calculation.Logger on top of phuslu/log
type cliLogger struct {
	logger log.Logger
}

var _ calculation.Logger = (*cliLogger)(nil)

func newCLILogger(level string, w io.Writer) *cliLogger {
	return &cliLogger{
		logger: log.Logger{
			Level:  log.ParseLevel(level),
			Writer: &log.ConsoleWriter{Writer: w},
		},
	}
}

func (l *cliLogger) Debugf(format string, args ...any) { l.logger.Debug().Msgf(format, args...) }
func (l *cliLogger) Infof(format string, args ...any)  { l.logger.Info().Msgf(format, args...) }
func (l *cliLogger) Warnf(format string, args ...any)  { l.logger.Warn().Msgf(format, args...) }
func (l *cliLogger) Errorf(format string, args ...any) { l.logger.Error().Msgf(format, args...) }
