package gateway

import (
	"fmt"
	"log/slog"

	"github.com/stripe/stripe-go/v79"
)

// leveledLogger routes stripe-go's internal logging into slog.
type leveledLogger struct {
	logger *slog.Logger
}

var _ stripe.LeveledLoggerInterface = (*leveledLogger)(nil)

func newLeveledLogger(logger *slog.Logger) *leveledLogger {
	return &leveledLogger{logger: logger.With("component", "stripe")}
}

func (l *leveledLogger) Debugf(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

// stripe-go logs every request line at info
func (l *leveledLogger) Infof(format string, v ...interface{}) {
	l.logger.Debug(fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Warnf(format string, v ...interface{}) {
	l.logger.Warn(fmt.Sprintf(format, v...))
}

func (l *leveledLogger) Errorf(format string, v ...interface{}) {
	l.logger.Error(fmt.Sprintf(format, v...))
}
