package link

import (
	"net/url"
	"strconv"
	"strings"

	"gozar/internal/domain"
)

const (
	defaultVLESSName  = "VLESS Connection"
	defaultTrojanName = "Trojan Connection"
	defaultTLSPort    = 443
)

type VLESS struct {
	UUID       string
	Host       string
	Port       int
	Encryption string
	Flow       string
	Network    string
	Security   string
	SNI        string
	Name       string
	Params     map[string]string
}

func (v *VLESS) Protocol() domain.Protocol { return domain.ProtocolVLESS }
func (v *VLESS) Endpoint() (string, int) { return v.Host, v.Port }
func (v *VLESS) DisplayName() string { return v.Name }
func (v *VLESS) sealed() {}

// Trojan always runs over TLS.
type Trojan struct {
	Password string
	Host     string
	Port     int
	Network  string
	SNI      string
	Name     string
	Params   map[string]string
}

func (t *Trojan) Protocol() domain.Protocol { return domain.ProtocolTrojan }
func (t *Trojan) Endpoint() (string, int) { return t.Host, t.Port }
func (t *Trojan) DisplayName() string { return t.Name }
func (t *Trojan) sealed() {}

func DecodeVLESS(raw string) (*VLESS, error) {
	u, err := parseURI(domain.ProtocolVLESS, raw)
	if err != nil {
		return nil, err
	}
	port, err := portOrDefault(domain.ProtocolVLESS, u, defaultTLSPort)
	if err != nil {
		return nil, err
	}

	params := parseQuery(u.RawQuery)
	return &VLESS{
		UUID:       userInfo(u),
		Host:       u.Hostname(),
		Port:       port,
		Encryption: orDefault(params["encryption"], "none"),
		Flow:       params["flow"],
		Network:    orDefault(params["type"], "tcp"),
		Security:   params["security"],
		SNI:        params["sni"],
		Name:       displayName(u, defaultVLESSName),
		Params:     params,
	}, nil
}

func DecodeTrojan(raw string) (*Trojan, error) {
	u, err := parseURI(domain.ProtocolTrojan, raw)
	if err != nil {
		return nil, err
	}
	port, err := portOrDefault(domain.ProtocolTrojan, u, defaultTLSPort)
	if err != nil {
		return nil, err
	}

	params := parseQuery(u.RawQuery)
	return &Trojan{
		Password: userInfo(u),
		Host:     u.Hostname(),
		Port:     port,
		Network:  orDefault(params["type"], "tcp"),
		SNI:      params["sni"],
		Name:     displayName(u, defaultTrojanName),
		Params:   params,
	}, nil
}

func parseURI(protocol domain.Protocol, raw string) (*url.URL, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return nil, newError(protocol, ErrMalformedEncoding, "invalid URI", err)
	}
	return u, nil
}

// userInfo returns the decoded user-info component including any ':'.
func userInfo(u *url.URL) string {
	if u.User == nil {
		return ""
	}
	if password, ok := u.User.Password(); ok {
		return u.User.Username() + ":" + password
	}
	return u.User.Username()
}

func portOrDefault(protocol domain.Protocol, u *url.URL, def int) (int, error) {
	p := u.Port()
	if p == "" {
		return def, nil
	}
	port, err := strconv.Atoi(p)
	if err != nil {
		return 0, newError(protocol, ErrMalformedEncoding, "invalid port "+p, err)
	}
	if port == 0 {
		return def, nil
	}
	return port, nil
}

// parseQuery splits a raw query on '&'; the first '=' separates key from
// value and a bare key maps to "". Later duplicates win.
func parseQuery(rawQuery string) map[string]string {
	params := make(map[string]string)
	for _, pair := range strings.Split(rawQuery, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		params[unescape(key)] = unescape(value)
	}
	return params
}

func unescape(s string) string {
	if decoded, err := url.PathUnescape(s); err == nil {
		return decoded
	}
	return s
}

// displayName percent-decodes the fragment, falling back to def when the
// link has none.
func displayName(u *url.URL, def string) string {
	if u.Fragment == "" {
		return def
	}
	name, err := url.QueryUnescape(u.EscapedFragment())
	if err != nil {
		return u.Fragment
	}
	return name
}
