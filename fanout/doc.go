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

/*
Package fanout sends a group of JSON GET requests concurrently and combines
their outcomes into a single result.

# Execution Models

How the outcomes are combined is selected with an ExecutionModel:

	AllSucceeded  every value, in the order of the URLs, or the first failure
	AnySucceeded  the first value, or an *AggregateError if every request failed
	AllSettled    one Settlement per URL, fulfilled or rejected, in URL order
	Race          whatever settles first, value or failure

AllSucceeded is the zero value and therefore the default:

	res, err := fanout.Dispatch(ctx, fanout.Options{}, urls...)
	if err != nil {
		// One of the requests failed
	}
	for i, v := range res.Values {
		// v is the decoded JSON from urls[i]
	}

A single URL is just a one element group, Dispatch(ctx, opts, u) and
Dispatch(ctx, opts, []string{u}...) are the same call.

# Options

Options embeds the http.RequestOptions handed to every request. The execution
model is only read by the dispatcher:

	opts := fanout.Options{
		ExecutionModel: fanout.AllSettled,
		RequestOptions: http.RequestOptions{Timeout: 10 * time.Second},
	}

# Combinators

The four combinators (All, Any, Settle and First) back the four execution
models. They are exported and work on
any channel of Outcome values, so they can be used with executors other than
the http agent.

# Concurrency

Each URL gets its own goroutine unless the dispatcher is created with a cap:

	d := fanout.NewDispatcher().WithMaxParallel(4)

When the result is known before every request finished (Race, AnySucceeded,
or a failure under AllSucceeded) the remaining requests are canceled. The
dispatcher sets no timeout of its own, use the context or the request
options for that.
*/
package fanout
