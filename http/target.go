/*
Copyright 2026 The Kubernetes Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package http

import (
	"net"
	"net/url"
	"strconv"
	"strings"
)

// Scheme is one of the URL schemes the agent knows how to talk to.
type Scheme string

const (
	SchemeHTTP  Scheme = "http"
	SchemeHTTPS Scheme = "https"

	defaultHTTPSPort = 443
)

// Target is a parsed absolute URL the agent can send a GET request to. The
// zero value is not usable, targets are created with ParseTarget.
type Target struct {
	scheme   Scheme
	hostname string
	port     string
	path     string
	rawQuery string
	raw      string
}

// ParseTarget parses rawURL into a Target. Only absolute http and https URLs
// are accepted.
func ParseTarget(rawURL string) (Target, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return Target{}, &InvalidURLError{URL: rawURL, Err: err}
	}

	scheme := Scheme(strings.ToLower(u.Scheme))
	switch scheme {
	case SchemeHTTP, SchemeHTTPS:
	default:
		return Target{}, &InvalidSchemeError{URL: rawURL, Scheme: u.Scheme}
	}

	if u.Hostname() == "" {
		return Target{}, &InvalidURLError{URL: rawURL, Err: errMissingHost}
	}

	return Target{
		scheme:   scheme,
		hostname: u.Hostname(),
		port:     u.Port(),
		path:     u.EscapedPath(),
		rawQuery: u.RawQuery,
		raw:      rawURL,
	}, nil
}

// Scheme returns the target scheme.
func (t Target) Scheme() Scheme { return t.scheme }

// Hostname returns the host without port.
func (t Target) Hostname() string { return t.hostname }

// Port returns the port written in the URL, empty if none was given.
func (t Target) Port() string { return t.port }

// Path returns the escaped URL path.
func (t Target) Path() string { return t.path }

// String returns the URL the target was parsed from.
func (t Target) String() string { return t.raw }

// resolve builds the URL actually requested. port, when non nil, wins over
// the port written in the URL.
func (t Target) resolve(port *int) string {
	host := t.hostname
	switch {
	case port != nil:
		host = net.JoinHostPort(t.hostname, strconv.Itoa(*port))
	case t.port != "":
		host = net.JoinHostPort(t.hostname, t.port)
	case strings.Contains(host, ":"):
		// bare IPv6 literal
		host = "[" + host + "]"
	}

	u := url.URL{
		Scheme:   string(t.scheme),
		Host:     host,
		RawQuery: t.rawQuery,
	}
	if t.path != "" {
		if p, err := url.PathUnescape(t.path); err == nil {
			u.Path = p
			u.RawPath = t.path
		} else {
			u.Path = t.path
		}
	}
	return u.String()
}
