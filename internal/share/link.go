package share

import (
	"errors"
	"net/url"
	"strings"
)

// DefaultBaseURL is the wa.me click-to-chat endpoint.
const DefaultBaseURL = "https://wa.me"

var ErrEmptyDestination = errors.New("empty share destination")

// Linker builds click-to-chat links for the external share target.
type Linker struct {
	BaseURL string
}

// Link returns <base>/<destination>?text=<encoded message>. The destination
// is a phone-number-like token entered by the user; blank or whitespace-only
// input aborts the share.
func (l Linker) Link(destination, message string) (string, error) {
	dest := strings.TrimSpace(destination)
	if dest == "" {
		return "", ErrEmptyDestination
	}

	base := l.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	q := url.Values{"text": {message}}
	return strings.TrimRight(base, "/") + "/" + url.PathEscape(dest) + "?" + q.Encode(), nil
}
