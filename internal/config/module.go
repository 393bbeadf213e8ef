package config

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gozar/internal/policy"
)

var Module = fx.Options(
	fx.Provide(NewConfig),
	fx.Provide(ProvideDomainPolicy),
)

func ProvideDomainPolicy(cfg *Config, logger *zap.Logger) *policy.DomainPolicy {
	p := policy.New(cfg.AllowedDomain)
	logger.Debug("domain policy configured", zap.String("root", p.Root()))
	return p
}
