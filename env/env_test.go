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

package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/fanout/env/internal"
	"sigs.k8s.io/fanout/env/internal/internalfakes"
)

func withLookup(t *testing.T, value string, set bool) {
	t.Helper()
	mock := &internalfakes.FakeImpl{}
	mock.LookupEnvReturns(value, set)
	previous := internal.Impl
	internal.Impl = mock
	t.Cleanup(func() { internal.Impl = previous })
}

func TestDefault(t *testing.T) {
	for name, tc := range map[string]struct {
		value    string
		set      bool
		expected string
	}{
		"unset":          {value: "", set: false, expected: "default"},
		"set but empty":  {value: "", set: true, expected: "default"},
		"value when set": {value: "value", set: true, expected: "value"},
	} {
		t.Run(name, func(t *testing.T) {
			withLookup(t, tc.value, tc.set)
			require.Equal(t, tc.expected, Default("FANOUT_MODEL", "default"))
		})
	}
}

func TestIsSet(t *testing.T) {
	withLookup(t, "", false)
	require.False(t, IsSet("FANOUT_MODEL"))

	withLookup(t, "", true)
	require.True(t, IsSet("FANOUT_MODEL"))
}

func TestInt(t *testing.T) {
	for name, tc := range map[string]struct {
		value    string
		set      bool
		expected int
	}{
		"unset":      {set: false, expected: 5},
		"number":     {value: "12", set: true, expected: 12},
		"not number": {value: "twelve", set: true, expected: 5},
	} {
		t.Run(name, func(t *testing.T) {
			withLookup(t, tc.value, tc.set)
			require.Equal(t, tc.expected, Int("FANOUT_MAX_PARALLEL", 5))
		})
	}
}

func TestDuration(t *testing.T) {
	for name, tc := range map[string]struct {
		value    string
		set      bool
		expected time.Duration
	}{
		"unset":   {set: false, expected: time.Second},
		"valid":   {value: "250ms", set: true, expected: 250 * time.Millisecond},
		"invalid": {value: "soon", set: true, expected: time.Second},
	} {
		t.Run(name, func(t *testing.T) {
			withLookup(t, tc.value, tc.set)
			require.Equal(t, tc.expected, Duration("FANOUT_TIMEOUT", time.Second))
		})
	}
}

func TestDefaultImplementation(t *testing.T) {
	t.Setenv("FANOUT_ENV_TEST", "from-env")
	require.Equal(t, "from-env", Default("FANOUT_ENV_TEST", "default"))
	require.True(t, IsSet("FANOUT_ENV_TEST"))
}
