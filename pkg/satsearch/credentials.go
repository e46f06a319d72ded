package satsearch

import (
	"fmt"
	"net/url"
)

// DefaultBaseURI is the public SatSearch API endpoint.
const DefaultBaseURI = "https://api.satsearch.co"

// Credentials identify one account/endpoint pair. The struct is comparable
// and is used as a map key by ClientCache, so two values with the same
// tokens and base URI share one client.
type Credentials struct {
	APIToken         string
	ApplicationToken string
	BaseURI          string
}

// NewCredentials returns Credentials for the given tokens. An empty baseURI
// selects DefaultBaseURI.
func NewCredentials(apiToken, applicationToken, baseURI string) *Credentials {
	if baseURI == "" {
		baseURI = DefaultBaseURI
	}
	return &Credentials{
		APIToken:         apiToken,
		ApplicationToken: applicationToken,
		BaseURI:          baseURI,
	}
}

// Validate checks that both tokens are present and that the base URI is an
// absolute http or https URI.
func (c *Credentials) Validate() error {
	if c == nil {
		return fmt.Errorf("%w: credentials may not be nil", ErrInvalidCredentials)
	}
	if c.APIToken == "" {
		return fmt.Errorf("%w: api token may not be empty", ErrInvalidCredentials)
	}
	if c.ApplicationToken == "" {
		return fmt.Errorf("%w: application token may not be empty", ErrInvalidCredentials)
	}
	if _, err := parseBaseURI(c.BaseURI); err != nil {
		return err
	}
	return nil
}

// IsValidURI reports whether s parses as an absolute http or https URI.
func IsValidURI(s string) bool {
	_, err := parseBaseURI(s)
	return err == nil
}

// AssertHTTPScheme returns ErrInvalidURI unless u uses the http or https
// scheme.
func AssertHTTPScheme(u *url.URL) error {
	if u == nil {
		return fmt.Errorf("%w: nil URI", ErrInvalidURI)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: invalid scheme for %s", ErrInvalidURI, u)
	}
	return nil
}

func parseBaseURI(s string) (*url.URL, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURI, err)
	}
	if err := AssertHTTPScheme(u); err != nil {
		return nil, err
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host in %q", ErrInvalidURI, s)
	}
	return u, nil
}
