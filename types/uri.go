package types

import (
	"fmt"
	"net/url"
)

// URI is an opaque resource locator.
// It's stored exactly as given and compared as a plain value.
type URI string

// ParseURI checks that s is a well-formed URI reference and returns it as a URI.
func ParseURI(s string) (URI, error) {
	if _, err := url.Parse(s); err != nil {
		return "", fmt.Errorf("%w: uri %q: %v", ErrMalformed, s, err)
	}
	return URI(s), nil
}

// URL parses the locator.
func (u URI) URL() (*url.URL, error) {
	return url.Parse(string(u))
}

func (u URI) String() string {
	return string(u)
}
