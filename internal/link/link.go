package link

import (
	"strings"

	"gozar/internal/domain"
)

const (
	vmessScheme       = "vmess://"
	vlessScheme       = "vless://"
	trojanScheme      = "trojan://"
	shadowsocksScheme = "ss://"
)

// Link is a decoded share link. The set of implementations is closed:
// *VMess, *VLESS, *Trojan and *Shadowsocks.
type Link interface {
	Protocol() domain.Protocol
	// Endpoint returns the server host and port. Either may be zero when
	// the link does not carry them.
	Endpoint() (host string, port int)
	DisplayName() string

	sealed()
}

// Decode trims raw and decodes it with the decoder matching its scheme.
func Decode(raw string) (Link, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case strings.HasPrefix(raw, vmessScheme):
		l, err := DecodeVMess(raw)
		if err != nil {
			return nil, err
		}
		return l, nil
	case strings.HasPrefix(raw, vlessScheme):
		l, err := DecodeVLESS(raw)
		if err != nil {
			return nil, err
		}
		return l, nil
	case strings.HasPrefix(raw, trojanScheme):
		l, err := DecodeTrojan(raw)
		if err != nil {
			return nil, err
		}
		return l, nil
	case strings.HasPrefix(raw, shadowsocksScheme):
		l, err := DecodeShadowsocks(raw)
		if err != nil {
			return nil, err
		}
		return l, nil
	default:
		return nil, newError("", ErrUnsupportedProtocol,
			"only vmess://, vless://, trojan:// and ss:// links are supported", nil)
	}
}
