package link

import (
	"encoding/base64"
	"strings"
)

// decodeBase64 accepts both the standard and the URL-safe alphabet, with or
// without padding. Share links in the wild use all four combinations.
func decodeBase64(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "+")
	s = strings.ReplaceAll(s, "_", "/")
	s = strings.TrimRight(s, "=")
	return base64.RawStdEncoding.DecodeString(s)
}
