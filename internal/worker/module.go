package worker

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/fx"
	"gozar/internal/config"
	"gozar/internal/domain"
	"gozar/internal/interfaces"
)

const ingestTimeout = 30 * time.Second

var Module = fx.Options(
	fx.Provide(NewPool),
	fx.Provide(func(p *Pool) interfaces.Ingestor { return p }),
	fx.Provide(ProvideConnections),
)

// ProvideConnections ingests the configured links. Any rejected link fails
// the graph.
func ProvideConnections(cfg *config.Config, ingestor interfaces.Ingestor) ([]domain.Connection, error) {
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	connections, err := ingestor.Ingest(ctx, cfg.Links)
	if err != nil {
		return nil, fmt.Errorf("failed to ingest links: %w", err)
	}
	return connections, nil
}
