// Package nblog wires nbpm's structured logging. It mirrors the shape
// of a plain stdlib logger pair but backs it with zap, so every
// subcommand gets leveled, structured output instead of bare text.
package nblog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Loggers holds the two logging channels nbpm's commands write to and
// the verbosity flag they were built with.
type Loggers struct {
	Out, Err *zap.SugaredLogger
	// Verbose records whether New built Out at debug level.
	Verbose bool
}

// New builds a Loggers pair, both with zap's human-readable development
// (console) encoder. Out logs to stdout, at debug level in verbose mode
// and at info level otherwise. Err always logs at warn level and above,
// to stderr.
func New(verbose bool) (*Loggers, error) {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	outCfg := zap.NewDevelopmentConfig()
	outCfg.Level = zap.NewAtomicLevelAt(level)
	outCfg.OutputPaths = []string{"stdout"}
	outCfg.ErrorOutputPaths = []string{"stdout"}
	outLogger, err := outCfg.Build()
	if err != nil {
		return nil, err
	}

	errCfg := zap.NewDevelopmentConfig()
	errCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	errCfg.OutputPaths = []string{"stderr"}
	errCfg.ErrorOutputPaths = []string{"stderr"}
	errLogger, err := errCfg.Build()
	if err != nil {
		return nil, err
	}

	return &Loggers{
		Out:     outLogger.Sugar(),
		Err:     errLogger.Sugar(),
		Verbose: verbose,
	}, nil
}

// Sync flushes any buffered log entries. Callers should defer it from
// main after a successful New.
func (l *Loggers) Sync() {
	_ = l.Out.Sync()
	_ = l.Err.Sync()
}
