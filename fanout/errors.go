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
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownExecutionModel is returned when an execution model outside
	// the declared set is used.
	ErrUnknownExecutionModel = errors.New("unknown execution model")

	// ErrNoOutcomes is returned by First when there is nothing to race.
	ErrNoOutcomes = errors.New("no outcomes to race")
)

// AggregateError is returned by AnySucceeded dispatches when every request
// failed. Errors are in input order.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "all requests failed: no requests were made"
	}
	msgs := make([]string, 0, len(e.Errors))
	for i, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("#%d: %v", i, err))
	}
	return fmt.Sprintf("all %d requests failed: %s", len(e.Errors), strings.Join(msgs, "; "))
}

// Unwrap makes errors.Is and errors.As look into every failure.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}
