package main

import (
	"go.uber.org/zap"
)

func newLogger(verbose bool) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.EncoderConfig.TimeKey = ""
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func (rcc *rootCmdConfig) Logf(format string, a ...interface{}) {
	if rcc.logger == nil {
		rcc.logger = newLogger(rcc.verbose)
	}
	rcc.logger.Debugf(format, a...)
}

func (rcc *rootCmdConfig) Sync() {
	if rcc.logger != nil {
		// Syncing STDERR fails with EINVAL on terminals and pipes.
		_ = rcc.logger.Sync()
	}
}
