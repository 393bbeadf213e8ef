package link

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gozar/internal/domain"
)

const defaultVMessName = "VMess Connection"

type VMess struct {
	Address  string
	Port     int
	ID       string
	AlterID  int
	Security string
	Name     string
	Network  string
	TLS      bool
	SNI      string
}

func (v *VMess) Protocol() domain.Protocol { return domain.ProtocolVMess }
func (v *VMess) Endpoint() (string, int) { return v.Address, v.Port }
func (v *VMess) DisplayName() string { return v.Name }
func (v *VMess) sealed() {}

// vmessPayload is the JSON object carried in the base64 body of a vmess link.
type vmessPayload struct {
	Add  string  `json:"add"`
	Port flexInt `json:"port"`
	ID   string  `json:"id"`
	Aid  flexInt `json:"aid"`
	Scy  string  `json:"scy"`
	Ps   string  `json:"ps"`
	Net  string  `json:"net"`
	TLS  string  `json:"tls"`
	SNI  string  `json:"sni"`
}

// flexInt accepts both 443 and "443"; clients disagree on which to emit.
type flexInt struct {
	value int
	set   bool
}

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "null" {
		return nil
	}
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = strings.TrimSpace(unquoted)
		if s == "" {
			return nil
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid integer %s", b)
	}
	f.value, f.set = n, true
	return nil
}

// DecodeVMess decodes a vmess:// link. Missing fields are left empty;
// only broken base64 or JSON is an error.
func DecodeVMess(raw string) (*VMess, error) {
	body := strings.TrimPrefix(strings.TrimSpace(raw), vmessScheme)

	data, err := decodeBase64(body)
	if err != nil {
		return nil, newError(domain.ProtocolVMess, ErrMalformedEncoding, "invalid base64 body", err)
	}

	var payload vmessPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, newError(domain.ProtocolVMess, ErrMalformedEncoding, "invalid JSON body", err)
	}

	v := &VMess{
		Address:  payload.Add,
		Port:     payload.Port.value,
		ID:       payload.ID,
		AlterID:  payload.Aid.value,
		Security: orDefault(payload.Scy, "auto"),
		Name:     orDefault(payload.Ps, defaultVMessName),
		Network:  orDefault(payload.Net, "tcp"),
		TLS:      payload.TLS == "tls",
	}
	if v.TLS {
		v.SNI = payload.SNI
	}
	return v, nil
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
