package app

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gozar/internal/config"
)

type hookParams struct {
	fx.In

	Logger    *zap.Logger
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Env       string `optional:"true"`
}

func registerHooks(p hookParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			p.Logger.Info("starting application",
				zap.String("env", p.Env),
				zap.Int("links", len(p.Config.Links)),
				zap.String("output", p.Config.Output.Path))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Logger.Info("stopping application")
			return nil
		},
	})
}
