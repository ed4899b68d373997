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
	"fmt"
	"net/http"
	"time"

	"k8s.io/utils/ptr"
)

const defaultAcceptHeader = "application/json"

// RequestOptions are the per request settings callers can pass to the agent.
// Values set here override the defaults the agent computes for each target.
type RequestOptions struct {
	// Headers are merged key by key into the default headers.
	Headers http.Header

	// Port overrides the port of the URL and the https default of 443.
	Port *int

	// Timeout overrides the agent timeout for the request when non zero.
	Timeout time.Duration
}

// DefaultRequestOptions returns the options the agent uses for target before
// caller overrides are applied.
func DefaultRequestOptions(target Target) RequestOptions {
	opts := RequestOptions{
		Headers: http.Header{},
	}
	opts.Headers.Set("Accept", defaultAcceptHeader)

	if target.Scheme() == SchemeHTTPS && target.Port() == "" {
		opts.Port = ptr.To(defaultHTTPSPort)
	}
	return opts
}

// Merge returns a new RequestOptions with override applied on top of o.
// Scalar fields in override win when set. Headers are merged key by key, a
// header present in override replaces all the values o has for it.
func (o RequestOptions) Merge(override RequestOptions) RequestOptions {
	merged := o.Clone()

	if merged.Headers == nil && len(override.Headers) > 0 {
		merged.Headers = http.Header{}
	}
	for key, values := range override.Headers {
		canonical := http.CanonicalHeaderKey(key)
		merged.Headers.Del(canonical)
		for _, v := range values {
			merged.Headers.Add(canonical, v)
		}
	}

	if override.Port != nil {
		merged.Port = ptr.To(*override.Port)
	}
	if override.Timeout != 0 {
		merged.Timeout = override.Timeout
	}
	return merged
}

// Clone returns a deep copy of the options.
func (o RequestOptions) Clone() RequestOptions {
	c := RequestOptions{
		Timeout: o.Timeout,
	}
	if o.Headers != nil {
		c.Headers = o.Headers.Clone()
	}
	if o.Port != nil {
		c.Port = ptr.To(*o.Port)
	}
	return c
}

// String returns a string representation of the options.
func (o RequestOptions) String() string {
	return fmt.Sprintf(
		"HTTP.RequestOptions: Port: %d - Timeout: %s - Headers: %v",
		ptr.Deref(o.Port, 0), o.Timeout, o.Headers,
	)
}
