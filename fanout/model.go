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

package fanout

import (
	"fmt"
	"strings"
)

// ExecutionModel selects how the outcomes of a dispatch are combined into
// its result. The zero value is AllSucceeded.
type ExecutionModel int

const (
	// AllSucceeded resolves to every value in input order, or to the first
	// failure.
	AllSucceeded ExecutionModel = iota

	// AnySucceeded resolves to the first value, or to an *AggregateError when
	// every request failed.
	AnySucceeded

	// AllSettled waits for every request and resolves to one Settlement per
	// URL in input order.
	AllSettled

	// Race resolves to whatever settles first, value or failure.
	Race
)

var executionModelNames = map[ExecutionModel]string{
	AllSucceeded: "ALL_SUCCEEDED",
	AnySucceeded: "ANY_SUCCEEDED",
	AllSettled:   "ALL_SETTLED",
	Race:         "RACE",
}

// ExecutionModels returns all the known execution models.
func ExecutionModels() []ExecutionModel {
	return []ExecutionModel{AllSucceeded, AnySucceeded, AllSettled, Race}
}

func (m ExecutionModel) String() string {
	if name, ok := executionModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ExecutionModel(%d)", int(m))
}

// Validate returns an error wrapping ErrUnknownExecutionModel if m is not
// one of the declared models.
func (m ExecutionModel) Validate() error {
	if _, ok := executionModelNames[m]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownExecutionModel, int(m))
	}
	return nil
}

// ParseExecutionModel parses an execution model name. Matching ignores case,
// dashes and underscores so ALL_SETTLED, all-settled and allSettled are the
// same model.
func ParseExecutionModel(name string) (ExecutionModel, error) {
	key := normalizeModelName(name)
	for m, n := range executionModelNames {
		if normalizeModelName(n) == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownExecutionModel, name)
}

func normalizeModelName(name string) string {
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(strings.ToLower(name))
}

// MarshalText implements encoding.TextMarshaler.
func (m ExecutionModel) MarshalText() ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *ExecutionModel) UnmarshalText(text []byte) error {
	parsed, err := ParseExecutionModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
