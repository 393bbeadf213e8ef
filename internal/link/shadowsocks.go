package link

import (
	"net/url"
	"strconv"
	"strings"

	"gozar/internal/domain"
)

const (
	defaultShadowsocksName = "Shadowsocks Connection"
	defaultShadowsocksPort = 8388
)

type Shadowsocks struct {
	Method   string
	Password string
	Host     string
	Port     int
	Name     string
}

func (s *Shadowsocks) Protocol() domain.Protocol { return domain.ProtocolShadowsocks }
func (s *Shadowsocks) Endpoint() (string, int) { return s.Host, s.Port }
func (s *Shadowsocks) DisplayName() string { return s.Name }
func (s *Shadowsocks) sealed() {}

// DecodeShadowsocks accepts ss://method:password@host:port, the SIP002 form
// with base64 user info, and the legacy ss://base64(method:password@host:port).
// Either may carry a #name fragment.
func DecodeShadowsocks(raw string) (*Shadowsocks, error) {
	raw = strings.TrimSpace(raw)

	if u, err := url.Parse(raw); err == nil && u.User != nil && u.Hostname() != "" {
		return decodeShadowsocksURI(u), nil
	}
	return decodeLegacyShadowsocks(raw)
}

func decodeShadowsocksURI(u *url.URL) *Shadowsocks {
	ss := &Shadowsocks{
		Host: u.Hostname(),
		Port: defaultShadowsocksPort,
		Name: displayName(u, defaultShadowsocksName),
	}
	if port, err := strconv.Atoi(u.Port()); err == nil && port > 0 {
		ss.Port = port
	}

	credentials := userInfo(u)
	if !strings.Contains(credentials, ":") {
		if decoded, err := decodeBase64(credentials); err == nil && strings.Contains(string(decoded), ":") {
			credentials = string(decoded)
		}
	}
	ss.Method, ss.Password = splitCredentials(credentials)
	return ss
}

func decodeLegacyShadowsocks(raw string) (*Shadowsocks, error) {
	body, fragment, _ := strings.Cut(strings.TrimPrefix(raw, shadowsocksScheme), "#")

	data, err := decodeBase64(body)
	if err != nil {
		return nil, newError(domain.ProtocolShadowsocks, ErrMalformedEncoding, "invalid base64 body", err)
	}

	ss := &Shadowsocks{
		Port: defaultShadowsocksPort,
		Name: defaultShadowsocksName,
	}
	if fragment != "" {
		ss.Name = fragment
		if name, err := url.QueryUnescape(fragment); err == nil {
			ss.Name = name
		}
	}

	decoded := string(data)
	at := strings.LastIndex(decoded, "@")
	if at < 0 {
		return ss, nil
	}

	ss.Method, ss.Password = splitCredentials(decoded[:at])
	host, portText, _ := strings.Cut(decoded[at+1:], ":")
	ss.Host = host
	if port, err := strconv.Atoi(portText); err == nil && port > 0 {
		ss.Port = port
	}
	return ss, nil
}

func splitCredentials(s string) (method, password string) {
	method, password, _ = strings.Cut(s, ":")
	return method, password
}
