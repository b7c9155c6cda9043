package wpapi

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"path"
	"strings"
)

var errInvalidBaseURL = errors.New("base URL must be an absolute http(s) URL")

// NormalizeBaseURL returns the site root a REST path can be appended to:
//   - scheme and host are lower-cased and default ports are dropped
//   - the path is cleaned and loses its trailing slash
//   - a trailing /wp-json segment is removed
//   - query and fragment are removed
func NormalizeBaseURL(raw string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", fmt.Errorf("could not parse base URL: %w", err)
	}

	u.Scheme = strings.ToLower(u.Scheme)
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", errInvalidBaseURL
	}

	host := strings.ToLower(u.Host)
	if h, port, err := net.SplitHostPort(host); err == nil {
		if (u.Scheme == "http" && port == "80") || (u.Scheme == "https" && port == "443") {
			host = h
		}
	}
	u.Host = host

	p := "/"
	if u.Path != "" {
		p = path.Clean("/" + u.Path)
	}
	p = strings.TrimSuffix(p, "/wp-json")
	u.Path = strings.TrimRight(p, "/")
	u.RawPath = ""

	u.RawQuery = ""
	u.Fragment = ""
	u.User = nil

	return u.String(), nil
}
