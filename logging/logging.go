// Package logging builds the zap logger shared by the frontends.
package logging

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls logger construction.
type Options struct {
	// Debug lowers the level to debug
	Debug bool

	// OutputPaths are zap sink URLs or file paths; stderr when empty
	OutputPaths []string

	// Frontend names the process in every entry
	Frontend string
}

// New builds a JSON logger tagged with a fresh session id.
func New(opts Options) (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	outputs := opts.OutputPaths
	if len(outputs) == 0 {
		outputs = []string{"stderr"}
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(level),
		Development: false,
		Sampling: &zap.SamplingConfig{
			Initial:    100,
			Thereafter: 100,
		},
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      outputs,
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}

	logger, err := config.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}

	fields := []zap.Field{zap.String("session", uuid.NewString())}
	if opts.Frontend != "" {
		fields = append(fields, zap.String("frontend", opts.Frontend))
	}
	return logger.With(fields...), nil
}
