package metrics

import (
	"go.uber.org/fx"
	"gozar/internal/domain"
)

// Module provides the registry, the collector and the optional endpoint.
var Module = fx.Options(
	fx.Provide(NewRegistry),
	fx.Provide(NewCollector),
	fx.Provide(func(c *Collector) domain.MetricsCollector { return c }),
	fx.Provide(NewServer),
	fx.Invoke(func(*Server) {}),
)
