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

// The combinators below read exactly the outcomes they need from a channel
// fed by n independent requests. Every Outcome.Index must be in [0, n) and
// appear once. The channel must be able to hold all n outcomes without a
// reader, since a combinator that resolves early stops receiving.

// All returns the values of all n outcomes in index order. The first failure
// received is returned as is, without waiting for the remaining outcomes.
func All[T any](outcomes <-chan Outcome[T], n int) ([]T, error) {
	values := make([]T, n)
	for range n {
		o := <-outcomes
		if o.Err != nil {
			return nil, o.Err
		}
		values[o.Index] = o.Value
	}
	return values, nil
}

// Any returns the first successful value received. When all n outcomes
// failed it returns an *AggregateError holding every failure in index order.
func Any[T any](outcomes <-chan Outcome[T], n int) (T, error) {
	errs := make([]error, n)
	for range n {
		o := <-outcomes
		if o.Err == nil {
			return o.Value, nil
		}
		errs[o.Index] = o.Err
	}
	var zero T
	return zero, &AggregateError{Errors: errs}
}

// Settle waits for all n outcomes and returns their settlements in
// index order.
func Settle[T any](outcomes <-chan Outcome[T], n int) []Settlement[T] {
	settlements := make([]Settlement[T], n)
	for range n {
		o := <-outcomes
		settlements[o.Index] = settle(o)
	}
	return settlements
}

// First returns the first outcome received, whether it is a value or a failure.
func First[T any](outcomes <-chan Outcome[T], n int) (T, error) {
	if n == 0 {
		var zero T
		return zero, ErrNoOutcomes
	}
	o := <-outcomes
	return o.Value, o.Err
}
