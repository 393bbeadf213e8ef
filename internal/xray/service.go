package xray

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gozar/internal/config"
	"gozar/internal/domain"
)

type ConfigPath string

// Service compiles the ingested connections and writes the resulting
// document where the proxy engine expects it.
type Service struct {
	logger      *zap.Logger
	configPath  ConfigPath
	selectedID  int64
	connections []domain.Connection
	metrics     domain.MetricsCollector

	mu       sync.RWMutex
	document string
}

func NewService(
	lc fx.Lifecycle,
	cfg *config.Config,
	connections []domain.Connection,
	metrics domain.MetricsCollector,
	logger *zap.Logger,
) (*Service, error) {
	if cfg.Output.Path == "" {
		return nil, fmt.Errorf("output path cannot be empty")
	}

	service := &Service{
		logger:      logger.With(zap.String("component", "xray")),
		configPath:  ConfigPath(cfg.Output.Path),
		selectedID:  cfg.SelectedID,
		connections: connections,
		metrics:     metrics,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := service.generateConfig(); err != nil {
				return fmt.Errorf("failed to generate config: %w", err)
			}
			return nil
		},
	})

	return service, nil
}

// Document returns the last successfully written configuration.
func (s *Service) Document() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.document
}

func (s *Service) ConfigPath() ConfigPath {
	return s.configPath
}

func (s *Service) generateConfig() error {
	if s.selectedID != 0 && !s.hasConnection(s.selectedID) {
		s.logger.Warn("selected connection is not among the compiled connections",
			zap.Int64("selected_id", s.selectedID))
	}

	start := time.Now()
	document, err := Compile(s.connections, s.selectedID)
	result := domain.CompileResult{
		Connections: len(s.connections),
		Duration:    time.Since(start),
		Err:         err,
	}
	if err == nil {
		result.Outbounds = len(s.connections) + len(getDefaultOutbounds())
	}
	s.metrics.RecordCompile(result)
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(string(s.configPath)), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(string(s.configPath), []byte(document), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	s.mu.Lock()
	s.document = document
	s.mu.Unlock()

	s.logger.Info("wrote xray config",
		zap.String("path", string(s.configPath)),
		zap.Int("connections", len(s.connections)),
		zap.Int64("selected_id", s.selectedID))
	s.logger.Debug("generated xray config", zap.String("config", document))

	return nil
}

func (s *Service) hasConnection(id int64) bool {
	for _, c := range s.connections {
		if c.ID == id {
			return true
		}
	}
	return false
}
