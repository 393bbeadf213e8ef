package worker

import (
	"fmt"

	"gozar/internal/domain"
)

const (
	StageParse    = "parse"
	StageValidate = "validate"
)

// IngestError represents a link that could not be turned into a connection
type IngestError struct {
	Link  domain.LinkName // Configured name of the link
	Stage string          // The stage where the error occurred
	Err   error           // Original error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("link %q: %s: %v", e.Link, e.Stage, e.Err)
}

func (e *IngestError) Unwrap() error {
	return e.Err
}

func NewIngestError(link domain.LinkName, stage string, err error) error {
	return &IngestError{
		Link:  link,
		Stage: stage,
		Err:   err,
	}
}
