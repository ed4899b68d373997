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
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/nozzle/throttler"
	"github.com/sirupsen/logrus"

	"sigs.k8s.io/fanout/http"
)

//go:generate go tool counterfeiter -generate

// Executor performs a single JSON GET request. *http.Agent implements it.
//
//counterfeiter:generate . Executor
type Executor interface {
	GetJSON(context.Context, http.Target, http.RequestOptions) (any, error)
}

// Options configure a single dispatch. ExecutionModel never reaches the
// executor, only the embedded RequestOptions do.
type Options struct {
	ExecutionModel ExecutionModel
	http.RequestOptions
}

// Result is what a successful dispatch returns. Which field is populated
// depends on Model: Values for AllSucceeded, Settlements for AllSettled and
// Value for AnySucceeded and Race.
type Result struct {
	Model       ExecutionModel
	Values      []any
	Value       any
	Settlements []Settlement[any]
}

// MarshalJSON renders only the field matching the execution model.
func (r *Result) MarshalJSON() ([]byte, error) {
	switch r.Model {
	case AllSucceeded:
		return sonic.ConfigStd.Marshal(r.Values)
	case AllSettled:
		return sonic.ConfigStd.Marshal(r.Settlements)
	case AnySucceeded, Race:
		return sonic.ConfigStd.Marshal(r.Value)
	}
	return nil, r.Model.Validate()
}

// Dispatcher fans GET requests out to an Executor and combines their outcomes.
// The zero value is ready to use and sends its requests with a default http
// agent.
type Dispatcher struct {
	options *dispatcherOptions
	Executor
}

type dispatcherOptions struct {
	MaxParallel uint // Maximum number of requests in flight, zero means one per URL
}

// NewDispatcher returns a dispatcher backed by a default http agent.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Executor: http.NewAgent(),
		options:  &dispatcherOptions{},
	}
}

// SetExecutor sets the executor used for each request.
func (d *Dispatcher) SetExecutor(executor Executor) {
	d.Executor = executor
}

// WithMaxParallel caps how many requests are in flight at once.
func (d *Dispatcher) WithMaxParallel(workers int) *Dispatcher {
	if d.options == nil {
		d.options = &dispatcherOptions{}
	}
	d.options.MaxParallel = uint(max(workers, 0))
	return d
}

func (d *Dispatcher) executor() Executor {
	if d.Executor == nil {
		return http.NewAgent()
	}
	return d.Executor
}

func (d *Dispatcher) maxParallel() int {
	if d.options == nil {
		return 0
	}
	return int(d.options.MaxParallel)
}

// Dispatch sends one GET request per URL concurrently and combines the
// outcomes following opts.ExecutionModel. URLs that cannot be parsed fail
// like any other request. An unknown execution model is reported before
// any request is sent.
//
// Once the result is known the remaining requests are canceled and their
// outcomes discarded.
func Dispatch(ctx context.Context, opts Options, urls ...string) (*Result, error) {
	return NewDispatcher().Dispatch(ctx, opts, urls...)
}

// Dispatch is the method form of the package level Dispatch.
func (d *Dispatcher) Dispatch(ctx context.Context, opts Options, urls ...string) (*Result, error) {
	model := opts.ExecutionModel
	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("dispatching requests: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	log := logrus.WithFields(logrus.Fields{
		"dispatch": uuid.NewString(),
		"model":    model.String(),
		"urls":     len(urls),
	})
	log.Debug("Dispatching requests")

	outcomes := d.fanOut(ctx, log, d.executor(), opts.RequestOptions.Clone(), urls)

	result := &Result{Model: model}
	var err error
	switch model {
	case AllSucceeded:
		result.Values, err = All(outcomes, len(urls))
	case AnySucceeded:
		result.Value, err = Any(outcomes, len(urls))
	case AllSettled:
		result.Settlements = Settle(outcomes, len(urls))
	case Race:
		result.Value, err = First(outcomes, len(urls))
	}
	if err != nil {
		log.WithError(err).Debug("Dispatch failed")
		return nil, err
	}
	log.Debug("Dispatch resolved")
	return result, nil
}

// GetAll dispatches urls with the AllSucceeded model.
func (d *Dispatcher) GetAll(ctx context.Context, opts http.RequestOptions, urls ...string) ([]any, error) {
	res, err := d.Dispatch(ctx, Options{ExecutionModel: AllSucceeded, RequestOptions: opts}, urls...)
	if err != nil {
		return nil, err
	}
	return res.Values, nil
}

// GetAny dispatches urls with the AnySucceeded model.
func (d *Dispatcher) GetAny(ctx context.Context, opts http.RequestOptions, urls ...string) (any, error) {
	res, err := d.Dispatch(ctx, Options{ExecutionModel: AnySucceeded, RequestOptions: opts}, urls...)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// GetAllSettled dispatches urls with the AllSettled model. Failed requests
// are rejected settlements, the error is only set when nothing was dispatched.
func (d *Dispatcher) GetAllSettled(
	ctx context.Context, opts http.RequestOptions, urls ...string,
) ([]Settlement[any], error) {
	res, err := d.Dispatch(ctx, Options{ExecutionModel: AllSettled, RequestOptions: opts}, urls...)
	if err != nil {
		return nil, err
	}
	return res.Settlements, nil
}

// GetRace dispatches urls with the Race model.
func (d *Dispatcher) GetRace(ctx context.Context, opts http.RequestOptions, urls ...string) (any, error) {
	res, err := d.Dispatch(ctx, Options{ExecutionModel: Race, RequestOptions: opts}, urls...)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// fanOut starts one request per URL and returns the channel their outcomes
// are sent to. The channel is buffered for every URL so requests nobody waits
// for anymore can still finish.
func (d *Dispatcher) fanOut(
	ctx context.Context, log *logrus.Entry, executor Executor, opts http.RequestOptions, urls []string,
) <-chan Outcome[any] {
	outcomes := make(chan Outcome[any], len(urls))
	if len(urls) == 0 {
		return outcomes
	}

	workers := len(urls)
	if limit := d.maxParallel(); limit > 0 && limit < workers {
		workers = limit
	}

	go func() {
		t := throttler.New(workers, len(urls))
		for i, rawURL := range urls {
			go func() {
				value, err := execute(ctx, executor, rawURL, opts)
				if err != nil {
					log.Debugf("Request #%d to %s failed: %v", i, rawURL, err)
				}
				outcomes <- Outcome[any]{Index: i, Value: value, Err: err}
				t.Done(err)
			}()
			t.Throttle()
		}
	}()
	return outcomes
}

func execute(ctx context.Context, executor Executor, rawURL string, opts http.RequestOptions) (any, error) {
	target, err := http.ParseTarget(rawURL)
	if err != nil {
		return nil, err
	}
	// queued requests are not started once the dispatch has resolved
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("skipping %s: %w", rawURL, err)
	}
	return executor.GetJSON(ctx, target, opts)
}
