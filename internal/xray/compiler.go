package xray

import (
	"encoding/json"
	"fmt"

	"gozar/internal/domain"
	"gozar/internal/link"
)

const (
	DirectTag  = "direct"
	BlockedTag = "blocked"

	// SelectedOutboundTag is what the proxy routing rules point at. Generated
	// outbounds are tagged by connection id, so nothing carries this tag.
	// TODO: tag the selected connection's outbound once the intended
	// selection semantics are settled.
	SelectedOutboundTag = "outbound_selected"

	SocksInboundTag = "socks-in"
	HTTPInboundTag  = "http-in"

	defaultShadowsocksMethod = "aes-256-gcm"
)

// OutboundTag returns the tag of the outbound generated for a connection.
func OutboundTag(id int64) string {
	return fmt.Sprintf("outbound_%d", id)
}

// Compile builds the configuration document for connections and renders it
// as indented JSON.
func Compile(connections []domain.Connection, selectedID int64) (string, error) {
	cfg, err := Build(connections, selectedID)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal config: %w", err)
	}
	return string(data), nil
}

// Build assembles the configuration document. Every connection becomes an
// outbound, in order, whatever selectedID is. Protocol settings are decoded
// again from each stored link, and one undecodable link fails the whole
// build.
func Build(connections []domain.Connection, selectedID int64) (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			LogLevel: "warning",
		},
		DNS:       getDefaultDNS(),
		Routing:   getDefaultRouting(),
		Inbounds:  getDefaultInbounds(),
		Outbounds: make([]OutboundConfig, 0, len(connections)+2),
	}
	cfg.Outbounds = append(cfg.Outbounds, getDefaultOutbounds()...)

	for _, c := range connections {
		outbound, err := generateOutbound(c, OutboundTag(c.ID))
		if err != nil {
			return nil, fmt.Errorf("failed to generate outbound for connection %d (%s): %w", c.ID, c.Name, err)
		}
		cfg.Outbounds = append(cfg.Outbounds, outbound)
	}

	return cfg, nil
}

func generateOutbound(c domain.Connection, tag string) (OutboundConfig, error) {
	switch c.Protocol {
	case domain.ProtocolVMess:
		v, err := link.DecodeVMess(c.Link)
		if err != nil {
			return OutboundConfig{}, err
		}
		return vmessOutbound(c, v, tag), nil

	case domain.ProtocolVLESS:
		v, err := link.DecodeVLESS(c.Link)
		if err != nil {
			return OutboundConfig{}, err
		}
		return vlessOutbound(c, v, tag), nil

	case domain.ProtocolTrojan:
		t, err := link.DecodeTrojan(c.Link)
		if err != nil {
			return OutboundConfig{}, err
		}
		return trojanOutbound(c, t, tag), nil

	case domain.ProtocolShadowsocks:
		ss, err := link.DecodeShadowsocks(c.Link)
		if err != nil {
			return OutboundConfig{}, err
		}
		return shadowsocksOutbound(c, ss, tag), nil

	default:
		return OutboundConfig{
			Protocol: "freedom",
			Tag:      tag,
		}, nil
	}
}

func vmessOutbound(c domain.Connection, v *link.VMess, tag string) OutboundConfig {
	address := v.Address
	if address == "" {
		address = c.ServerHost
	}
	port := v.Port
	if port == 0 {
		port = c.ServerPort
	}

	stream := &StreamSettings{Network: v.Network}
	if v.TLS {
		stream.Security = "tls"
		stream.TLSSettings = &TLSSettings{ServerName: v.SNI}
	}

	return OutboundConfig{
		Protocol: string(domain.ProtocolVMess),
		Tag:      tag,
		Settings: VMessSettings{
			VNext: []VMessServer{{
				Address: address,
				Port:    port,
				Users: []VMessUser{{
					ID:       v.ID,
					AlterID:  v.AlterID,
					Security: v.Security,
				}},
			}},
		},
		StreamSettings: stream,
	}
}

func vlessOutbound(c domain.Connection, v *link.VLESS, tag string) OutboundConfig {
	stream := &StreamSettings{Network: v.Network}
	if v.Security == "tls" || v.Security == "reality" {
		stream.Security = v.Security
		stream.TLSSettings = &TLSSettings{ServerName: serverName(v.SNI, c.ServerHost)}
	}

	return OutboundConfig{
		Protocol: string(domain.ProtocolVLESS),
		Tag:      tag,
		Settings: VLESSSettings{
			VNext: []VLESSServer{{
				Address: c.ServerHost,
				Port:    c.ServerPort,
				Users: []VLESSUser{{
					ID:         v.UUID,
					Encryption: v.Encryption,
					Flow:       v.Flow,
				}},
			}},
		},
		StreamSettings: stream,
	}
}

func trojanOutbound(c domain.Connection, t *link.Trojan, tag string) OutboundConfig {
	return OutboundConfig{
		Protocol: string(domain.ProtocolTrojan),
		Tag:      tag,
		Settings: TrojanSettings{
			Servers: []TrojanServer{{
				Address:  c.ServerHost,
				Port:     c.ServerPort,
				Password: t.Password,
			}},
		},
		StreamSettings: &StreamSettings{
			Network:     t.Network,
			Security:    "tls",
			TLSSettings: &TLSSettings{ServerName: serverName(t.SNI, c.ServerHost)},
		},
	}
}

func shadowsocksOutbound(c domain.Connection, ss *link.Shadowsocks, tag string) OutboundConfig {
	method := ss.Method
	if method == "" {
		method = defaultShadowsocksMethod
	}

	return OutboundConfig{
		Protocol: "shadowsocks",
		Tag:      tag,
		Settings: ShadowsocksSettings{
			Servers: []ShadowsocksServer{{
				Address:  c.ServerHost,
				Port:     c.ServerPort,
				Method:   method,
				Password: ss.Password,
			}},
		},
	}
}

func serverName(sni, host string) string {
	if sni != "" {
		return sni
	}
	return host
}

func getDefaultDNS() DNSConfig {
	return DNSConfig{
		Servers: []string{
			"https://1.1.1.1/dns-query",
			"https://8.8.8.8/dns-query",
		},
		QueryStrategy: "UseIP",
	}
}

// getDefaultRouting returns the rules in evaluation order: ads and private
// destinations must be matched before anything is sent to the proxy.
func getDefaultRouting() RoutingConfig {
	return RoutingConfig{
		DomainStrategy: "AsIs",
		Rules: []RoutingRule{
			{
				Type:        "field",
				Domain:      []string{"geosite:category-ads-all"},
				OutboundTag: BlockedTag,
			},
			{
				Type:        "field",
				IP:          []string{"geoip:private"},
				OutboundTag: DirectTag,
			},
			{
				Type:        "field",
				Domain:      []string{"geosite:private", "geosite:category-local"},
				OutboundTag: DirectTag,
			},
			{
				Type:        "field",
				Domain:      []string{"geosite:geolocation-!cn"},
				OutboundTag: SelectedOutboundTag,
			},
			{
				Type:        "field",
				OutboundTag: SelectedOutboundTag,
			},
		},
	}
}

func getDefaultInbounds() []InboundConfig {
	return []InboundConfig{
		{
			Port:     10808,
			Listen:   "127.0.0.1",
			Protocol: "socks",
			Settings: &InboundSettings{
				Auth: "noauth",
				UDP:  true,
			},
			Tag: SocksInboundTag,
		},
		{
			Port:     10809,
			Listen:   "127.0.0.1",
			Protocol: "http",
			Tag:      HTTPInboundTag,
		},
	}
}

func getDefaultOutbounds() []OutboundConfig {
	return []OutboundConfig{
		{
			Protocol: "freedom",
			Tag:      DirectTag,
		},
		{
			Protocol: "blackhole",
			Tag:      BlockedTag,
		},
	}
}
