/*
Copyright 2021 The Kubernetes Authors.

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
	"context"
	"fmt"
	"io"
	"maps"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
)

//go:generate go tool counterfeiter -generate

// Agent is an http agent that fetches JSON documents.
type Agent struct {
	options *agentOptions
	AgentImplementation
}

// AgentImplementation is the actual implementation of the http calls
//
//counterfeiter:generate . AgentImplementation
type AgentImplementation interface {
	SendGetRequest(*http.Client, *http.Request) (*http.Response, error)
}

type defaultAgentImplementation struct{}

// agentOptions has the configurable bits of the agent.
type agentOptions struct {
	Timeout    time.Duration                // Timeout when fetching URLs, zero means none
	Transports map[Scheme]http.RoundTripper // Transport used for each URL scheme
}

// String returns a string representation of the options.
func (ao *agentOptions) String() string {
	return fmt.Sprintf("HTTP.Agent options: Timeout: %s", ao.Timeout)
}

func defaultAgentOptions() *agentOptions {
	return &agentOptions{
		Transports: map[Scheme]http.RoundTripper{
			SchemeHTTP:  newPlainTransport(),
			SchemeHTTPS: newTLSTransport(),
		},
	}
}

// newPlainTransport returns the transport for http URLs. It never negotiates TLS.
func newPlainTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ForceAttemptHTTP2 = false
	t.TLSClientConfig = nil
	return t
}

// newTLSTransport returns the transport for https URLs, using the platform
// TLS defaults.
func newTLSTransport() *http.Transport {
	return http.DefaultTransport.(*http.Transport).Clone()
}

// NewAgent return a new agent with default options.
func NewAgent() *Agent {
	return &Agent{
		AgentImplementation: &defaultAgentImplementation{},
		options:             defaultAgentOptions(),
	}
}

// SetImplementation sets the agent implementation.
func (a *Agent) SetImplementation(impl AgentImplementation) {
	a.AgentImplementation = impl
}

// WithTimeout sets the agent timeout.
func (a *Agent) WithTimeout(timeout time.Duration) *Agent {
	a.options.Timeout = timeout
	return a
}

// WithTransport sets the round tripper used for URLs of the given scheme.
func (a *Agent) WithTransport(scheme Scheme, transport http.RoundTripper) *Agent {
	transports := maps.Clone(a.options.Transports)
	transports[scheme] = transport
	a.options.Transports = transports
	return a
}

// Client returns a net/http client preconfigured with the agent options for
// URLs using scheme. Redirects are not followed.
func (a *Agent) Client(scheme Scheme) *http.Client {
	return &http.Client{
		Transport: a.options.Transports[scheme],
		Timeout:   a.options.Timeout,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Get parses rawURL and fetches it with GetJSON.
func (a *Agent) Get(ctx context.Context, rawURL string, opts RequestOptions) (any, error) {
	target, err := ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	return a.GetJSON(ctx, target, opts)
}

// GetJSON sends a single GET request to target and returns the decoded JSON
// body. Responses outside the 2xx range, bodies that are not JSON and transport
// failures are returned as *HTTPStatusError, *DecodeError and *TransportError.
func (a *Agent) GetJSON(ctx context.Context, target Target, opts RequestOptions) (any, error) {
	cfg := DefaultRequestOptions(target).Merge(opts)
	url := target.resolve(cfg.Port)

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, &InvalidURLError{URL: url, Err: err}
	}
	request.Header = cfg.Headers

	client := a.Client(target.Scheme())
	if cfg.Timeout != 0 {
		client.Timeout = cfg.Timeout
	}

	logrus.Debugf("Sending GET request to %s", url)
	response, err := a.AgentImplementation.SendGetRequest(client, request)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	if response.Body != nil {
		defer response.Body.Close()
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &HTTPStatusError{
			URL:        url,
			StatusCode: response.StatusCode,
			Status:     statusText(response),
		}
	}

	body, err := readBody(response)
	if err != nil {
		return nil, &TransportError{URL: url, Err: fmt.Errorf("reading response: %w", err)}
	}

	var decoded any
	if err := sonic.ConfigStd.Unmarshal(body, &decoded); err != nil {
		return nil, &DecodeError{URL: url, Body: body, Err: err}
	}
	logrus.Debugf("Got %d bytes of JSON from %s", len(body), url)
	return decoded, nil
}

// SendGetRequest performs the actual request.
func (impl *defaultAgentImplementation) SendGetRequest(client *http.Client, request *http.Request) (
	response *http.Response, err error,
) {
	response, err = client.Do(request)
	if err != nil {
		return response, fmt.Errorf("sending GET request: %w", err)
	}

	return response, nil
}

func readBody(response *http.Response) ([]byte, error) {
	if response.Body == nil {
		return nil, nil
	}
	return io.ReadAll(response.Body)
}

// statusText returns the reason phrase of the response, "Unauthorized" for
// a "401 Unauthorized" status line.
func statusText(response *http.Response) string {
	code := strconv.Itoa(response.StatusCode)
	if text, ok := strings.CutPrefix(response.Status, code+" "); ok {
		return text
	}
	if response.Status != "" {
		return response.Status
	}
	return http.StatusText(response.StatusCode)
}
