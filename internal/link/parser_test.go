package link

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gozar/internal/domain"
	"gozar/internal/policy"
)

func vmessLink(t *testing.T, payload map[string]any, enc *base64.Encoding) string {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return "vmess://" + enc.EncodeToString(data)
}

func TestParseAndValidate(t *testing.T) {
	parser := NewParser(policy.New(policy.DefaultRootDomain))

	tests := []struct {
		name      string
		link      string
		expectErr error
		validate  func(*testing.T, domain.ParsedConnection)
	}{
		{
			name: "VMess round trip",
			link: vmessLink(t, map[string]any{
				"add":  "server.persiangames.online",
				"port": 443,
				"aid":  0,
				"id":   "test-uuid",
				"ps":   "Test Connection",
			}, base64.StdEncoding),
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, domain.ProtocolVMess, p.Protocol)
				assert.Equal(t, "server.persiangames.online", p.ServerHost)
				assert.Equal(t, 443, p.ServerPort)
				assert.Equal(t, "Test Connection", p.Name)
			},
		},
		{
			name: "VMess URL-safe without padding and string port",
			link: vmessLink(t, map[string]any{
				"add":  "persiangames.online",
				"port": "8443",
			}, base64.RawURLEncoding),
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, 8443, p.ServerPort)
				assert.Equal(t, "VMess Connection", p.Name)
			},
		},
		{
			name:      "VMess missing add",
			link:      vmessLink(t, map[string]any{"port": 443}, base64.StdEncoding),
			expectErr: ErrMissingField,
		},
		{
			name:      "VMess missing port",
			link:      vmessLink(t, map[string]any{"add": "persiangames.online"}, base64.StdEncoding),
			expectErr: ErrMissingField,
		},
		{
			name:      "VMess invalid base64",
			link:      "vmess://!!not-base64!!",
			expectErr: ErrMalformedEncoding,
		},
		{
			name:      "VMess body is not JSON",
			link:      "vmess://" + base64.StdEncoding.EncodeToString([]byte("hello world")),
			expectErr: ErrMalformedEncoding,
		},
		{
			name:      "VMess host outside allow-list",
			link:      vmessLink(t, map[string]any{"add": "example.com", "port": 443}, base64.StdEncoding),
			expectErr: ErrDomainNotAllowed,
		},
		{
			name: "VLESS with percent-encoded name",
			link: "vless://uuid@server.persiangames.online:443?encryption=none&security=tls#Test%20VLESS",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, domain.ProtocolVLESS, p.Protocol)
				assert.Equal(t, "server.persiangames.online", p.ServerHost)
				assert.Equal(t, 443, p.ServerPort)
				assert.Equal(t, "Test VLESS", p.Name)
			},
		},
		{
			name: "VLESS exact domain",
			link: "vless://uuid@persiangames.online:443#Test",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, "persiangames.online", p.ServerHost)
				assert.Equal(t, "Test", p.Name)
			},
		},
		{
			name: "VLESS subdomain",
			link: "vless://uuid@sub.persiangames.online:443#Test",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, "sub.persiangames.online", p.ServerHost)
			},
		},
		{
			name: "VLESS default port and name",
			link: "vless://uuid@persiangames.online?security=reality",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, 443, p.ServerPort)
				assert.Equal(t, "VLESS Connection", p.Name)
			},
		},
		{
			name:      "VLESS missing host",
			link:      "vless://uuid@:443",
			expectErr: ErrMissingField,
		},
		{
			name:      "VLESS port out of range",
			link:      "vless://uuid@persiangames.online:70000",
			expectErr: ErrMalformedEncoding,
		},
		{
			name:      "VLESS lookalike domain",
			link:      "vless://uuid@notpersiangames.online:443#Test",
			expectErr: ErrDomainNotAllowed,
		},
		{
			name: "Trojan",
			link: "trojan://password@server.persiangames.online:443?security=tls#Test%20Trojan",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, domain.ProtocolTrojan, p.Protocol)
				assert.Equal(t, 443, p.ServerPort)
				assert.Equal(t, "Test Trojan", p.Name)
			},
		},
		{
			name: "Trojan default name",
			link: "trojan://password@persiangames.online:8443",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, 8443, p.ServerPort)
				assert.Equal(t, "Trojan Connection", p.Name)
			},
		},
		{
			name:      "Trojan foreign host",
			link:      "trojan://password@example.com:443",
			expectErr: ErrDomainNotAllowed,
		},
		{
			name: "Shadowsocks plain user info",
			link: "ss://aes-256-gcm:secret@ss.persiangames.online:8389#My%20SS",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, domain.ProtocolShadowsocks, p.Protocol)
				assert.Equal(t, "ss.persiangames.online", p.ServerHost)
				assert.Equal(t, 8389, p.ServerPort)
				assert.Equal(t, "My SS", p.Name)
			},
		},
		{
			name: "Shadowsocks without port",
			link: "ss://aes-256-gcm:secret@persiangames.online",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, 8388, p.ServerPort)
				assert.Equal(t, "Shadowsocks Connection", p.Name)
			},
		},
		{
			name: "Shadowsocks legacy base64",
			link: "ss://" + base64.StdEncoding.EncodeToString([]byte("aes-256-gcm:pass@sub.persiangames.online:8443")) + "#Legacy",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, "sub.persiangames.online", p.ServerHost)
				assert.Equal(t, 8443, p.ServerPort)
				assert.Equal(t, "Legacy", p.Name)
			},
		},
		{
			name: "Shadowsocks legacy without port",
			link: "ss://" + base64.RawURLEncoding.EncodeToString([]byte("aes-256-gcm:pass@persiangames.online")),
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, 8388, p.ServerPort)
			},
		},
		{
			name:      "Shadowsocks legacy without server",
			link:      "ss://" + base64.StdEncoding.EncodeToString([]byte("aes-256-gcm:pass")),
			expectErr: ErrMissingField,
		},
		{
			name:      "Shadowsocks legacy invalid base64",
			link:      "ss://%%%###",
			expectErr: ErrMalformedEncoding,
		},
		{
			name:      "Shadowsocks foreign host",
			link:      "ss://aes-256-gcm:secret@example.com:8388",
			expectErr: ErrDomainNotAllowed,
		},
		{
			name: "Surrounding whitespace is trimmed",
			link: "  \tvless://uuid@persiangames.online:443#Test\n",
			validate: func(t *testing.T, p domain.ParsedConnection) {
				assert.Equal(t, "vless://uuid@persiangames.online:443#Test", p.Link)
			},
		},
		{
			name:      "Unsupported scheme",
			link:      "http://persiangames.online",
			expectErr: ErrUnsupportedProtocol,
		},
		{
			name:      "Upper-case scheme",
			link:      "VLESS://uuid@persiangames.online:443",
			expectErr: ErrUnsupportedProtocol,
		},
		{
			name:      "Empty link",
			link:      "   ",
			expectErr: ErrUnsupportedProtocol,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := parser.ParseAndValidate(tt.link)
			if tt.expectErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.expectErr)
				return
			}

			require.NoError(t, err)
			if tt.validate != nil {
				tt.validate(t, parsed)
			}
		})
	}
}

func TestParseAndValidate_RejectsUnknownSchemes(t *testing.T) {
	parser := NewParser(policy.New(policy.DefaultRootDomain))

	for _, link := range []string{
		"socks://persiangames.online:1080",
		"hysteria2://pw@persiangames.online:443",
		"wireguard://key@persiangames.online:51820",
		"vmess:/missing-slash",
		"persiangames.online:443",
	} {
		_, err := parser.ParseAndValidate(link)
		assert.ErrorIs(t, err, ErrUnsupportedProtocol, link)
		assert.Equal(t, "unsupported_protocol", Reason(err))
	}
}

func TestParseAndValidate_CustomRoot(t *testing.T) {
	parser := NewParser(policy.New("example.org"))

	parsed, err := parser.ParseAndValidate("trojan://pw@edge.example.org:443")
	require.NoError(t, err)
	assert.Equal(t, "edge.example.org", parsed.ServerHost)

	_, err = parser.ParseAndValidate("trojan://pw@persiangames.online:443")
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
	assert.Contains(t, err.Error(), "example.org")
}

func TestDecode_Variants(t *testing.T) {
	t.Run("VMess TLS settings", func(t *testing.T) {
		l, err := Decode(vmessLink(t, map[string]any{
			"add": "persiangames.online", "port": 443, "id": "uid", "aid": "2",
			"net": "ws", "tls": "tls", "sni": "cdn.persiangames.online",
		}, base64.StdEncoding))
		require.NoError(t, err)

		v, ok := l.(*VMess)
		require.True(t, ok)
		assert.Equal(t, "uid", v.ID)
		assert.Equal(t, 2, v.AlterID)
		assert.Equal(t, "auto", v.Security)
		assert.Equal(t, "ws", v.Network)
		assert.True(t, v.TLS)
		assert.Equal(t, "cdn.persiangames.online", v.SNI)
	})

	t.Run("VMess ignores SNI without TLS", func(t *testing.T) {
		v, err := DecodeVMess(vmessLink(t, map[string]any{
			"add": "persiangames.online", "port": 443, "sni": "ignored",
		}, base64.StdEncoding))
		require.NoError(t, err)
		assert.False(t, v.TLS)
		assert.Empty(t, v.SNI)
		assert.Equal(t, "tcp", v.Network)
	})

	t.Run("VLESS query parameters", func(t *testing.T) {
		l, err := Decode("vless://uuid@persiangames.online:443?flow=xtls-rprx-vision&type=grpc&security=reality&sni=a.b&pbk=x=y&empty")
		require.NoError(t, err)

		v, ok := l.(*VLESS)
		require.True(t, ok)
		assert.Equal(t, "uuid", v.UUID)
		assert.Equal(t, "none", v.Encryption)
		assert.Equal(t, "xtls-rprx-vision", v.Flow)
		assert.Equal(t, "grpc", v.Network)
		assert.Equal(t, "reality", v.Security)
		assert.Equal(t, "a.b", v.SNI)
		assert.Equal(t, "x=y", v.Params["pbk"])
		value, ok := v.Params["empty"]
		assert.True(t, ok)
		assert.Empty(t, value)
	})

	t.Run("Trojan password keeps colons", func(t *testing.T) {
		tr, err := DecodeTrojan("trojan://pa:ss@persiangames.online:443?type=ws&sni=front.persiangames.online")
		require.NoError(t, err)
		assert.Equal(t, "pa:ss", tr.Password)
		assert.Equal(t, "ws", tr.Network)
		assert.Equal(t, "front.persiangames.online", tr.SNI)
	})

	t.Run("Shadowsocks SIP002 user info", func(t *testing.T) {
		creds := base64.RawURLEncoding.EncodeToString([]byte("chacha20-ietf-poly1305:pw"))
		l, err := Decode("ss://" + creds + "@persiangames.online:443#SIP")
		require.NoError(t, err)

		ss, ok := l.(*Shadowsocks)
		require.True(t, ok)
		assert.Equal(t, "chacha20-ietf-poly1305", ss.Method)
		assert.Equal(t, "pw", ss.Password)
		assert.Equal(t, 443, ss.Port)
		assert.Equal(t, "SIP", ss.DisplayName())
	})

	t.Run("Shadowsocks legacy credentials", func(t *testing.T) {
		ss, err := DecodeShadowsocks("ss://" + base64.StdEncoding.EncodeToString([]byte("aes-128-gcm:p@ss@persiangames.online:9000")))
		require.NoError(t, err)
		assert.Equal(t, "aes-128-gcm", ss.Method)
		assert.Equal(t, "p@ss", ss.Password)
		assert.Equal(t, "persiangames.online", ss.Host)
		assert.Equal(t, 9000, ss.Port)
	})
}

func TestError(t *testing.T) {
	parser := NewParser(policy.New(policy.DefaultRootDomain))

	_, err := parser.ParseAndValidate("vless://uuid@example.com:443")
	require.Error(t, err)

	var linkErr *Error
	require.ErrorAs(t, err, &linkErr)
	assert.Equal(t, domain.ProtocolVLESS, linkErr.Protocol)
	assert.ErrorIs(t, err, ErrDomainNotAllowed)
	assert.NotErrorIs(t, err, ErrMissingField)
	assert.Equal(t, "domain_not_allowed", Reason(err))
	assert.Contains(t, err.Error(), "got: example.com")

	_, err = parser.ParseAndValidate("vmess://%%%")
	assert.Equal(t, "malformed_encoding", Reason(err))
	assert.NotNil(t, errors.Unwrap(err))
}
