/*
Copyright 2024 The Kubernetes Authors.

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

/*
Package http provides an agent that fetches a single JSON document over
http or https.

# Targets

URLs are parsed into a Target before anything goes on the wire. Only absolute
URLs with the http or https scheme are accepted, anything else fails with an
*InvalidSchemeError or *InvalidURLError:

	target, err := http.ParseTarget("https://example.com/api/v1/items")

# Request Options

RequestOptions carry the per request overrides. The agent starts from the
defaults for each target (an Accept: application/json header and, for https
URLs without an explicit port, port 443) and merges the caller options on top.
Headers are merged key by key, so adding an Authorization header keeps the
default Accept header in place:

	opts := http.RequestOptions{
		Headers: nethttp.Header{"Authorization": []string{"Bearer " + token}},
		Port:    ptr.To(8443),
	}

# Transports

Each scheme has its own transport: plain http URLs go through a transport that
never negotiates TLS, https URLs through one with the platform TLS defaults.
Either can be replaced with Agent.WithTransport, which is how tests point the
agent at an httptest TLS server.

# Failures

Every failure the agent returns is typed:

	*TransportError   connection failures and errors reading the body
	*HTTPStatusError  status outside 200-299, the body is not read
	*DecodeError      2xx response whose body is not valid JSON

Redirects are not followed, a 3xx response is an *HTTPStatusError. The agent
does not retry.
*/
package http
