// Package logging builds the application's zap logger from configuration.
package logging

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/km-arc/go-laravel-listeners/framework/config"
)

// New returns a development logger for debug/local apps and a production
// (JSON) logger otherwise, at the configured level.
func New(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: invalid LOG_LEVEL %q: %w", cfg.Log.Level, err)
	}

	var zc zap.Config
	if cfg.App.Debug || cfg.App.Env == "local" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	if cfg.Log.Encoding != "" {
		zc.Encoding = cfg.Log.Encoding
	}

	logger, err := zc.Build(zap.Fields(
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
	))
	if err != nil {
		return nil, fmt.Errorf("logging: build logger: %w", err)
	}
	return logger, nil
}
