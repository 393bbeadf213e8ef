package policy

import (
	"net/url"
	"strings"
)

// IsValidSubscriptionURL reports whether raw is an https URL whose host is
// allowed by the policy. It never fails; anything unparseable is invalid.
func (p *DomainPolicy) IsValidSubscriptionURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	// url.Parse lowercases the scheme, so check the original text as well.
	if u.Scheme != "https" || !strings.HasPrefix(raw, "https:") {
		return false
	}
	return p.IsAllowed(u.Hostname())
}
