/*
Copyright 2020 The Kubernetes Authors.

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

package http_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	khttp "sigs.k8s.io/fanout/http"
)

func jsonHandler(t *testing.T, body string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := io.WriteString(w, body); err != nil {
			t.Fail()
		}
	}
}

func TestAgentGetPlainServer(t *testing.T) {
	// Given
	accept := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			accept <- r.Header.Get("Accept")
			jsonHandler(t, `{"id":1,"tags":["a","b"]}`)(w, r)
		}))
	defer server.Close()

	// When
	actual, err := khttp.NewAgent().Get(context.Background(), server.URL+"/item", khttp.RequestOptions{})

	// Then
	require.NoError(t, err)
	require.Equal(t, map[string]any{"id": float64(1), "tags": []any{"a", "b"}}, actual)
	require.Equal(t, "application/json", <-accept)
}

func TestAgentGetTLSServer(t *testing.T) {
	// Given
	server := httptest.NewTLSServer(jsonHandler(t, `{"id":2}`))
	defer server.Close()

	plain := &countingTransport{next: http.DefaultTransport}
	secure := &countingTransport{next: server.Client().Transport}
	agent := khttp.NewAgent().
		WithTransport(khttp.SchemeHTTP, plain).
		WithTransport(khttp.SchemeHTTPS, secure)

	// When
	actual, err := agent.Get(context.Background(), server.URL, khttp.RequestOptions{})

	// Then
	require.NoError(t, err)
	require.Equal(t, map[string]any{"id": float64(2)}, actual)
	require.Equal(t, 1, secure.calls)
	require.Zero(t, plain.calls)
}

func TestAgentGetFailedStatus(t *testing.T) {
	// Given
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
	defer server.Close()

	// When
	_, err := khttp.NewAgent().Get(context.Background(), server.URL+"/secret", khttp.RequestOptions{})

	// Then
	var statusErr *khttp.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, server.URL+"/secret", statusErr.URL)
	require.Equal(t, "Unauthorized", statusErr.Status)
	require.Contains(t, err.Error(), "status code 401")
}

func TestAgentGetDoesNotFollowRedirects(t *testing.T) {
	// Given
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/old" {
				http.Redirect(w, r, "/new", http.StatusMovedPermanently)
				return
			}
			jsonHandler(t, `{}`)(w, r)
		}))
	defer server.Close()

	// When
	_, err := khttp.NewAgent().Get(context.Background(), server.URL+"/old", khttp.RequestOptions{})

	// Then
	var statusErr *khttp.HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusMovedPermanently, statusErr.StatusCode)
}

func TestAgentGetInvalidJSON(t *testing.T) {
	// Given
	server := httptest.NewServer(jsonHandler(t, "this is not json"))
	defer server.Close()

	// When
	_, err := khttp.NewAgent().Get(context.Background(), server.URL, khttp.RequestOptions{})

	// Then
	var decodeErr *khttp.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.Contains(t, err.Error(), "valid JSON")
	require.Contains(t, err.Error(), "this is not json")
}

func TestAgentGetConnectionRefused(t *testing.T) {
	// Given
	server := httptest.NewServer(jsonHandler(t, `{}`))
	url := server.URL
	server.Close()

	// When
	_, err := khttp.NewAgent().Get(context.Background(), url, khttp.RequestOptions{})

	// Then
	var transportErr *khttp.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.Equal(t, url, transportErr.URL)
}

func TestAgentGetTimeout(t *testing.T) {
	// Given
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-release:
			case <-r.Context().Done():
				return
			}
			_, _ = io.WriteString(w, `{}`)
		}))
	defer server.Close()
	defer close(release)

	// When
	_, err := khttp.NewAgent().Get(
		context.Background(), server.URL, khttp.RequestOptions{Timeout: 50 * time.Millisecond},
	)

	// Then
	var transportErr *khttp.TransportError
	require.ErrorAs(t, err, &transportErr)
}

func TestAgentGetContextCanceled(t *testing.T) {
	server := httptest.NewServer(jsonHandler(t, `{}`))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := khttp.NewAgent().Get(ctx, server.URL, khttp.RequestOptions{})
	require.Error(t, err)
	require.True(t, errors.Is(err, context.Canceled))
}
