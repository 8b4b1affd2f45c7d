// Package logging configures the shared elog logger.
package logging

import (
	"fmt"

	"github.com/gotomicro/ego/core/elog"
	"go.uber.org/zap/zapcore"
)

// New returns the default logger at the given level, named after the
// program
func New(name, level string) (*elog.Component, error) {
	lv, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	elog.DefaultLogger.SetLevel(lv)
	return elog.DefaultLogger.With(elog.String("app", name)), nil
}
