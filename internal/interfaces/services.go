package interfaces

import (
	"context"

	"gozar/internal/domain"
)

// LinkParser turns one untrusted share link into a validated connection
type LinkParser interface {
	ParseAndValidate(link string) (domain.ParsedConnection, error)
}

// Ingestor turns a batch of configured links into stored connection records
type Ingestor interface {
	Ingest(ctx context.Context, links []domain.RawLink) ([]domain.Connection, error)
}
