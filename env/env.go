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
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fanout/env/internal"
)

// Default returns the value of the environment variable key, or def if it is
// unset or empty.
func Default(key, def string) string {
	value, ok := internal.Impl.LookupEnv(key)
	if !ok || value == "" {
		return def
	}
	return value
}

// IsSet reports whether the environment variable key is set, even if empty.
func IsSet(key string) bool {
	_, ok := internal.Impl.LookupEnv(key)
	return ok
}

// Int returns the integer value of key, or def if it is unset, empty or not
// a number.
func Int(key string, def int) int {
	value := Default(key, "")
	if value == "" {
		return def
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		logrus.Warnf("Ignoring %s=%q: not an integer", key, value)
		return def
	}
	return i
}

// Duration returns the time.Duration value of key, parsed with
// time.ParseDuration, or def if it is unset, empty or invalid.
func Duration(key string, def time.Duration) time.Duration {
	value := Default(key, "")
	if value == "" {
		return def
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		logrus.Warnf("Ignoring %s=%q: %v", key, value, err)
		return def
	}
	return d
}
