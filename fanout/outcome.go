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
	"github.com/bytedance/sonic"
)

// Outcome is the result of one request of a dispatch. Index is the position
// of the URL in the dispatch input.
type Outcome[T any] struct {
	Index int
	Value T
	Err   error
}

// SettlementStatus tags a Settlement as fulfilled or rejected.
type SettlementStatus string

const (
	StatusFulfilled SettlementStatus = "fulfilled"
	StatusRejected  SettlementStatus = "rejected"
)

// Settlement records how a single request ended. Value is only meaningful
// when fulfilled and Reason only when rejected.
type Settlement[T any] struct {
	Status SettlementStatus
	Value  T
	Reason error
}

// Fulfilled reports whether the request produced a value.
func (s Settlement[T]) Fulfilled() bool {
	return s.Status == StatusFulfilled
}

func settle[T any](o Outcome[T]) Settlement[T] {
	if o.Err != nil {
		return Settlement[T]{Status: StatusRejected, Reason: o.Err}
	}
	return Settlement[T]{Status: StatusFulfilled, Value: o.Value}
}

type settlementJSON[T any] struct {
	Status SettlementStatus `json:"status"`
	Value  *T               `json:"value,omitempty"`
	Reason *string          `json:"reason,omitempty"`
}

// MarshalJSON renders {"status":"fulfilled","value":...} or
// {"status":"rejected","reason":"..."}.
func (s Settlement[T]) MarshalJSON() ([]byte, error) {
	out := settlementJSON[T]{Status: s.Status}
	if s.Status == StatusRejected {
		reason := ""
		if s.Reason != nil {
			reason = s.Reason.Error()
		}
		out.Reason = &reason
	} else {
		out.Value = &s.Value
	}
	return sonic.ConfigStd.Marshal(out)
}
