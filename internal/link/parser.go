package link

import (
	"fmt"
	"strings"

	"gozar/internal/domain"
	"gozar/internal/policy"
)

// Parser validates untrusted share links against the domain policy.
type Parser struct {
	policy *policy.DomainPolicy
}

func NewParser(p *policy.DomainPolicy) *Parser {
	return &Parser{policy: p}
}

// ParseAndValidate decodes link, checks that it names a usable endpoint and
// that the endpoint host is allowed. The returned Link is the trimmed text.
func (p *Parser) ParseAndValidate(link string) (domain.ParsedConnection, error) {
	trimmed := strings.TrimSpace(link)

	l, err := Decode(trimmed)
	if err != nil {
		return domain.ParsedConnection{}, err
	}

	protocol := l.Protocol()
	host, port := l.Endpoint()

	if host == "" {
		return domain.ParsedConnection{}, newError(protocol, ErrMissingField, missingHostMessage(protocol), nil)
	}
	if port == 0 {
		return domain.ParsedConnection{}, newError(protocol, ErrMissingField, "missing 'port' field", nil)
	}
	if port < 0 || port > 65535 {
		return domain.ParsedConnection{}, newError(protocol, ErrMalformedEncoding,
			fmt.Sprintf("port %d out of range", port), nil)
	}
	if !p.policy.IsAllowed(host) {
		return domain.ParsedConnection{}, newError(protocol, ErrDomainNotAllowed,
			fmt.Sprintf("connection host must be %s or a subdomain of it, got: %s", p.policy.Root(), host), nil)
	}

	return domain.ParsedConnection{
		Protocol:   protocol,
		ServerHost: host,
		ServerPort: port,
		Link:       trimmed,
		Name:       l.DisplayName(),
	}, nil
}

func missingHostMessage(protocol domain.Protocol) string {
	if protocol == domain.ProtocolVMess {
		return "missing 'add' field"
	}
	return "missing host"
}
