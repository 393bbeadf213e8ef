package xray

// Config structures for XRay
type (
	Config struct {
		Log       LogConfig        `json:"log"`
		DNS       DNSConfig        `json:"dns"`
		Routing   RoutingConfig    `json:"routing"`
		Inbounds  []InboundConfig  `json:"inbounds"`
		Outbounds []OutboundConfig `json:"outbounds"`
	}

	LogConfig struct {
		LogLevel string `json:"loglevel"`
	}

	DNSConfig struct {
		Servers       []string `json:"servers"`
		QueryStrategy string   `json:"queryStrategy"`
	}

	RoutingConfig struct {
		DomainStrategy string        `json:"domainStrategy"`
		Rules          []RoutingRule `json:"rules"`
	}

	// RoutingRule without Domain or IP matches everything.
	RoutingRule struct {
		Type        string   `json:"type"`
		Domain      []string `json:"domain,omitempty"`
		IP          []string `json:"ip,omitempty"`
		OutboundTag string   `json:"outboundTag"`
	}

	InboundConfig struct {
		Port     int              `json:"port"`
		Listen   string           `json:"listen"`
		Protocol string           `json:"protocol"`
		Settings *InboundSettings `json:"settings,omitempty"`
		Tag      string           `json:"tag"`
	}

	InboundSettings struct {
		Auth string `json:"auth"`
		UDP  bool   `json:"udp"`
	}

	OutboundConfig struct {
		Protocol       string           `json:"protocol"`
		Tag            string           `json:"tag"`
		Settings       OutboundSettings `json:"settings,omitempty"`
		StreamSettings *StreamSettings  `json:"streamSettings,omitempty"`
	}

	// OutboundSettings is implemented by the per-protocol settings below.
	OutboundSettings interface {
		outboundSettings()
	}

	VMessSettings struct {
		VNext []VMessServer `json:"vnext"`
	}

	VMessServer struct {
		Address string      `json:"address"`
		Port    int         `json:"port"`
		Users   []VMessUser `json:"users"`
	}

	VMessUser struct {
		ID       string `json:"id"`
		AlterID  int    `json:"alterId"`
		Security string `json:"security"`
	}

	VLESSSettings struct {
		VNext []VLESSServer `json:"vnext"`
	}

	VLESSServer struct {
		Address string      `json:"address"`
		Port    int         `json:"port"`
		Users   []VLESSUser `json:"users"`
	}

	VLESSUser struct {
		ID         string `json:"id"`
		Encryption string `json:"encryption"`
		Flow       string `json:"flow"`
	}

	TrojanSettings struct {
		Servers []TrojanServer `json:"servers"`
	}

	TrojanServer struct {
		Address  string `json:"address"`
		Port     int    `json:"port"`
		Password string `json:"password"`
	}

	ShadowsocksSettings struct {
		Servers []ShadowsocksServer `json:"servers"`
	}

	ShadowsocksServer struct {
		Address  string `json:"address"`
		Port     int    `json:"port"`
		Method   string `json:"method"`
		Password string `json:"password"`
	}

	StreamSettings struct {
		Network     string       `json:"network"`
		Security    string       `json:"security,omitempty"`
		TLSSettings *TLSSettings `json:"tlsSettings,omitempty"`
	}

	TLSSettings struct {
		ServerName string `json:"serverName,omitempty"`
	}
)

func (VMessSettings) outboundSettings() {}
func (VLESSSettings) outboundSettings() {}
func (TrojanSettings) outboundSettings() {}
func (ShadowsocksSettings) outboundSettings() {}
