package app

import (
	"context"
	"os"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"gozar/internal/common"
	"gozar/internal/config"
	"gozar/internal/link"
	"gozar/internal/metrics"
	"gozar/internal/worker"
	"gozar/internal/xray"
)

// coreModules is everything below configuration loading.
var coreModules = fx.Options(
	link.Module,
	metrics.Module,
	worker.Module,
	xray.Module,
)

type Application struct {
	app           *fx.App
	logger        *zap.Logger
	metricsServer *metrics.Server
}

func NewApplication(opts ...common.Option) *Application {
	options := &common.ServiceOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Ensure required options are set
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	app := &Application{
		logger: options.Logger,
	}

	// Build fx application
	app.app = fx.New(
		// Core modules
		config.Module,
		coreModules,

		// Provide base dependencies
		fx.Provide(
			func() *zap.Logger { return options.Logger },
			func() string { return options.Env },
			func() config.Path { return options.ConfigPath },
		),

		// Configure fx
		fx.WithLogger(func(logger *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger}
		}),

		// Set timeouts
		fx.StopTimeout(30*time.Second),
		fx.StartTimeout(30*time.Second),

		// Register lifecycle hooks
		fx.Invoke(registerHooks),
		fx.Populate(&app.metricsServer),
	)

	return app
}

func (a *Application) Start(ctx context.Context) error {
	return a.app.Start(ctx)
}

func (a *Application) Stop(ctx context.Context) error {
	return a.app.Stop(ctx)
}

// Serving reports whether the application keeps an endpoint open after
// start. Without one the config is written during start and there is
// nothing left to wait for.
func (a *Application) Serving() bool {
	return a.metricsServer != nil && a.metricsServer.Enabled()
}

// Done receives SIGINT and SIGTERM.
func (a *Application) Done() <-chan os.Signal {
	return a.app.Done()
}
