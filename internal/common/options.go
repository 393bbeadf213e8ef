package common

import (
	"go.uber.org/zap"
	"gozar/internal/config"
)

// ServiceOptions defines common options for building the application
type ServiceOptions struct {
	Logger     *zap.Logger
	Env        string
	ConfigPath config.Path
}

// Option defines a service option modifier
type Option func(*ServiceOptions)

func WithLogger(logger *zap.Logger) Option {
	return func(o *ServiceOptions) {
		o.Logger = logger
	}
}

func WithEnv(env string) Option {
	return func(o *ServiceOptions) {
		o.Env = env
	}
}

// WithConfigPath overrides CONFIG_PATH.
func WithConfigPath(path config.Path) Option {
	return func(o *ServiceOptions) {
		o.ConfigPath = path
	}
}
