package domain

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Protocol string

const (
	ProtocolVMess       Protocol = "vmess"
	ProtocolVLESS       Protocol = "vless"
	ProtocolTrojan      Protocol = "trojan"
	ProtocolShadowsocks Protocol = "ss"
)

// Known reports whether p is one of the four supported protocol tags.
func (p Protocol) Known() bool {
	switch p {
	case ProtocolVMess, ProtocolVLESS, ProtocolTrojan, ProtocolShadowsocks:
		return true
	default:
		return false
	}
}

// ParsedConnection is the result of validating a single share link.
type ParsedConnection struct {
	Protocol   Protocol
	ServerHost string
	ServerPort int
	Link       string
	Name       string
}

// Connection is a stored connection record. Link is kept verbatim and is
// the only input the config compiler reads protocol settings from.
type Connection struct {
	ID         int64     `json:"id" validate:"gt=0"`
	Name       string    `json:"name"`
	Link       string    `json:"link" validate:"required"`
	Protocol   Protocol  `json:"protocol" validate:"required,oneof=vmess vless trojan ss"`
	ServerHost string    `json:"serverHost" validate:"required"`
	ServerPort int       `json:"serverPort" validate:"min=1,max=65535"`
	AddedAt    time.Time `json:"addedAt"`
}

func NewConnection(id int64, parsed ParsedConnection, addedAt time.Time) Connection {
	return Connection{
		ID:         id,
		Name:       parsed.Name,
		Link:       parsed.Link,
		Protocol:   parsed.Protocol,
		ServerHost: parsed.ServerHost,
		ServerPort: parsed.ServerPort,
		AddedAt:    addedAt,
	}
}

func (c Connection) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid connection %d: %w", c.ID, err)
	}
	return nil
}
