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

package fanout_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sigs.k8s.io/fanout/fanout"
)

// feed returns a channel already holding outcomes, in the given completion order.
func feed(outcomes ...fanout.Outcome[int]) <-chan fanout.Outcome[int] {
	ch := make(chan fanout.Outcome[int], len(outcomes))
	for _, o := range outcomes {
		ch <- o
	}
	return ch
}

var (
	errOne = errors.New("one failed")
	errTwo = errors.New("two failed")
)

func TestAll(t *testing.T) {
	for name, tc := range map[string]struct {
		outcomes []fanout.Outcome[int]
		n        int
		expected []int
		err      error
	}{
		"preserves input order": {
			outcomes: []fanout.Outcome[int]{{Index: 2, Value: 30}, {Index: 0, Value: 10}, {Index: 1, Value: 20}},
			n:        3,
			expected: []int{10, 20, 30},
		},
		"first failure by completion wins": {
			outcomes: []fanout.Outcome[int]{{Index: 0, Value: 10}, {Index: 2, Err: errTwo}, {Index: 1, Err: errOne}},
			n:        3,
			err:      errTwo,
		},
		"resolves on failure without the remaining outcomes": {
			outcomes: []fanout.Outcome[int]{{Index: 1, Err: errOne}},
			n:        3,
			err:      errOne,
		},
		"empty": {
			n:        0,
			expected: []int{},
		},
	} {
		t.Run(name, func(t *testing.T) {
			values, err := fanout.All(feed(tc.outcomes...), tc.n)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				require.Nil(t, values)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, values)
		})
	}
}

func TestAny(t *testing.T) {
	value, err := fanout.Any(feed(
		fanout.Outcome[int]{Index: 0, Err: errOne},
		fanout.Outcome[int]{Index: 2, Value: 30},
	), 3)
	require.NoError(t, err)
	require.Equal(t, 30, value)

	value, err = fanout.Any(feed(
		fanout.Outcome[int]{Index: 1, Err: errTwo},
		fanout.Outcome[int]{Index: 0, Err: errOne},
	), 2)
	require.Zero(t, value)
	var aggregate *fanout.AggregateError
	require.ErrorAs(t, err, &aggregate)
	require.Equal(t, []error{errOne, errTwo}, aggregate.Errors)
	require.ErrorIs(t, err, errOne)
	require.ErrorIs(t, err, errTwo)
	require.Contains(t, err.Error(), "all 2 requests failed")

	_, err = fanout.Any(feed(), 0)
	require.ErrorAs(t, err, &aggregate)
	require.Empty(t, aggregate.Errors)
}

func TestSettle(t *testing.T) {
	settlements := fanout.Settle(feed(
		fanout.Outcome[int]{Index: 2, Value: 30},
		fanout.Outcome[int]{Index: 0, Err: errOne},
		fanout.Outcome[int]{Index: 1, Value: 20},
	), 3)

	require.Equal(t, []fanout.Settlement[int]{
		{Status: fanout.StatusRejected, Reason: errOne},
		{Status: fanout.StatusFulfilled, Value: 20},
		{Status: fanout.StatusFulfilled, Value: 30},
	}, settlements)
	require.False(t, settlements[0].Fulfilled())
	require.True(t, settlements[1].Fulfilled())

	require.Empty(t, fanout.Settle(feed(), 0))
}

func TestFirst(t *testing.T) {
	for name, tc := range map[string]struct {
		outcomes []fanout.Outcome[int]
		n        int
		expected int
		err      error
	}{
		"first value wins": {
			outcomes: []fanout.Outcome[int]{{Index: 2, Value: 30}, {Index: 0, Err: errOne}},
			n:        3,
			expected: 30,
		},
		"first failure wins": {
			outcomes: []fanout.Outcome[int]{{Index: 1, Err: errTwo}, {Index: 0, Value: 10}},
			n:        3,
			err:      errTwo,
		},
		"nothing to race": {
			n:   0,
			err: fanout.ErrNoOutcomes,
		},
	} {
		t.Run(name, func(t *testing.T) {
			value, err := fanout.First(feed(tc.outcomes...), tc.n)
			if tc.err != nil {
				// failures are passed through unwrapped
				require.Equal(t, tc.err, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, value)
		})
	}
}
