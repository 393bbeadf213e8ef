package app

import (
	"context"
	"testing"
	"time"

	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"gozar/internal/common"
	"gozar/internal/config"
	"gozar/internal/domain"
	"gozar/internal/xray"
)

// TestApplication runs the core modules under fxtest with an in-memory
// configuration instead of a config file.
type TestApplication struct {
	tb      testing.TB
	cfg     *config.Config
	testApp *fxtest.App
	options []fx.Option
	logger  *zap.Logger
	service *xray.Service
}

func NewTestApplication(tb testing.TB, cfg *config.Config, opts ...common.Option) *TestApplication {
	options := &common.ServiceOptions{
		Logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(options)
	}

	return &TestApplication{
		tb:      tb,
		cfg:     cfg,
		logger:  options.Logger,
		options: []fx.Option{},
	}
}

// WithMetrics replaces the Prometheus collector.
func (ta *TestApplication) WithMetrics(collector domain.MetricsCollector) *TestApplication {
	return ta.WithOption(fx.Decorate(func(domain.MetricsCollector) domain.MetricsCollector {
		return collector
	}))
}

func (ta *TestApplication) WithOption(opt fx.Option) *TestApplication {
	ta.options = append(ta.options, opt)
	return ta
}

func (ta *TestApplication) Start(ctx context.Context) error {
	testOptions := []fx.Option{
		fx.Provide(func() *zap.Logger { return ta.logger }),
		fx.Supply(ta.cfg),
		fx.Provide(config.ProvideDomainPolicy),
		coreModules,
		fx.Invoke(registerHooks),
		fx.Populate(&ta.service),
	}

	// Add user-provided options
	testOptions = append(testOptions, ta.options...)

	// Configure test app
	testOptions = append(testOptions,
		fx.StartTimeout(10*time.Second),
		fx.StopTimeout(10*time.Second),
	)

	ta.testApp = fxtest.New(
		ta.tb,
		testOptions...,
	)

	return ta.testApp.Start(ctx)
}

func (ta *TestApplication) Stop(ctx context.Context) error {
	if ta.testApp != nil {
		return ta.testApp.Stop(ctx)
	}
	return nil
}

// Service returns the compiler service once the application is built.
func (ta *TestApplication) Service() *xray.Service {
	return ta.service
}
