package link

import (
	"errors"
	"fmt"

	"gozar/internal/domain"
)

var (
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
	ErrMalformedEncoding   = errors.New("malformed encoding")
	ErrMissingField        = errors.New("missing field")
	ErrDomainNotAllowed    = errors.New("domain not allowed")
)

// Error describes why a share link was rejected. Kind is one of the Err*
// sentinels and is matched by errors.Is.
type Error struct {
	Protocol domain.Protocol
	Kind     error
	Message  string
	Err      error
}

func (e *Error) Error() string {
	prefix := "link"
	if e.Protocol != "" {
		prefix = string(e.Protocol)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %s: %v", prefix, e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %v: %s", prefix, e.Kind, e.Message)
}

func (e *Error) Is(target error) bool {
	return target == e.Kind
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(protocol domain.Protocol, kind error, message string, err error) error {
	return &Error{
		Protocol: protocol,
		Kind:     kind,
		Message:  message,
		Err:      err,
	}
}

// Reason maps a parse error to a short label suitable for metrics.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnsupportedProtocol):
		return "unsupported_protocol"
	case errors.Is(err, ErrMalformedEncoding):
		return "malformed_encoding"
	case errors.Is(err, ErrMissingField):
		return "missing_field"
	case errors.Is(err, ErrDomainNotAllowed):
		return "domain_not_allowed"
	default:
		return "other"
	}
}
