// Package logging builds the logr.Logger used throughout the module.
package logging

import (
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// New returns a structured logger. Development mode switches to console
// encoding with debug level enabled.
func New(development bool) (logr.Logger, error) {
	config := zap.NewProductionConfig()
	if development {
		config = zap.NewDevelopmentConfig()
	}

	zapLogger, err := config.Build()
	if err != nil {
		return logr.Logger{}, errors.WithStack(err)
	}
	return zapr.NewLogger(zapLogger), nil
}
