package policy

import "strings"

// DefaultRootDomain is the organisational domain connections must live under.
const DefaultRootDomain = "persiangames.online"

// DomainPolicy restricts server hosts to a single root domain and its
// subdomains.
type DomainPolicy struct {
	root string
}

func New(root string) *DomainPolicy {
	if root == "" {
		root = DefaultRootDomain
	}
	return &DomainPolicy{root: root}
}

func (p *DomainPolicy) Root() string {
	return p.root
}

// IsAllowed reports whether host equals the root domain or is a subdomain of
// it. The comparison is case-sensitive.
func (p *DomainPolicy) IsAllowed(host string) bool {
	return host == p.root || strings.HasSuffix(host, "."+p.root)
}
