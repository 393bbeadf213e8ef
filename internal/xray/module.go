package xray

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(NewService),
	// Force construction so the start hook is registered.
	fx.Invoke(func(*Service) {}),
)
