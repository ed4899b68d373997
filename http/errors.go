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
	"errors"
	"fmt"
)

// maxBodyInMessage caps how much of an undecodable body goes into an error message.
const maxBodyInMessage = 1024

var errMissingHost = errors.New("missing host")

// InvalidURLError is returned when a string cannot be parsed as an absolute URL.
type InvalidURLError struct {
	URL string
	Err error
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid URL %q: %v", e.URL, e.Err)
}

func (e *InvalidURLError) Unwrap() error { return e.Err }

// InvalidSchemeError is returned when a URL uses a scheme other than http or https.
type InvalidSchemeError struct {
	URL    string
	Scheme string
}

func (e *InvalidSchemeError) Error() string {
	return fmt.Sprintf("unsupported scheme %q in URL %s", e.Scheme, e.URL)
}

// TransportError wraps a connection level failure: DNS, refused or reset
// connections, timeouts and errors reading the response body.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("requesting %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// HTTPStatusError is returned when the server answers with a status code
// outside of the 2xx range.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf(
		"request to %s failed with status code %d: %s", e.URL, e.StatusCode, e.Status,
	)
}

// DecodeError is returned when a successful response body is not valid JSON.
// Body holds the complete response, the message only carries its first KiB.
type DecodeError struct {
	URL  string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	body := e.Body
	suffix := ""
	if len(body) > maxBodyInMessage {
		body = body[:maxBodyInMessage]
		suffix = "..."
	}
	return fmt.Sprintf("response from %s is not valid JSON: %s%s", e.URL, body, suffix)
}

func (e *DecodeError) Unwrap() error { return e.Err }
