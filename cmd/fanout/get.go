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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/moby/term"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/tidwall/gjson"
	"k8s.io/utils/ptr"

	"sigs.k8s.io/fanout/env"
	"sigs.k8s.io/fanout/fanout"
	"sigs.k8s.io/fanout/http"
	"sigs.k8s.io/fanout/util"
)

const (
	outputJSON  = "json"
	outputTable = "table"
	outputAuto  = "auto"
)

type getOptions struct {
	model       string
	headers     []string
	port        int
	timeout     time.Duration
	maxParallel int
	output      string
	query       string
}

func newGetCommand() *cobra.Command {
	opts := &getOptions{}
	cmd := &cobra.Command{
		Use:   "get URL [URL...]",
		Short: "GET every URL concurrently and print the combined JSON result",
		Long: `GET every URL concurrently and print the combined JSON result.

The execution model decides what is printed:

  all-succeeded  a JSON array with every document, fails if any request fails
  any-succeeded  the first document received, fails if all requests fail
  all-settled    an array of {"status":"fulfilled","value":...} and
                 {"status":"rejected","reason":"..."} records
  race           whatever finishes first, document or failure`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.applyEnv(cmd.Flags())
			return opts.run(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	opts.addFlags(cmd.Flags())
	return cmd
}

func (o *getOptions) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.model, "model", "m", "all-succeeded",
		fmt.Sprintf("execution model, one of %v (env %s)", fanout.ExecutionModels(), envModel))
	fs.StringArrayVarP(&o.headers, "header", "H", nil,
		`extra request header as "Name: value", may be repeated`)
	fs.IntVar(&o.port, "port", 0, "port to connect to, overriding the URL and the https default")
	fs.DurationVar(&o.timeout, "timeout", 0,
		fmt.Sprintf("per request timeout, zero means none (env %s)", envTimeout))
	fs.IntVar(&o.maxParallel, "max-parallel", 0,
		fmt.Sprintf("maximum requests in flight, zero means all at once (env %s)", envMaxParallel))
	fs.StringVarP(&o.output, "output", "o", outputJSON,
		fmt.Sprintf("output format: %s, %s or %s (table on a terminal, json otherwise)",
			outputJSON, outputTable, outputAuto))
	fs.StringVarP(&o.query, "query", "q", "",
		"gjson path evaluated against the JSON result, eg '#.id'")
}

// applyEnv fills the options not set on the command line from the
// environment. Flags always win.
func (o *getOptions) applyEnv(fs *pflag.FlagSet) {
	fromEnv := func(flag, key string) bool {
		return !fs.Changed(flag) && env.IsSet(key)
	}
	if fromEnv("model", envModel) {
		o.model = env.Default(envModel, o.model)
	}
	if fromEnv("timeout", envTimeout) {
		o.timeout = env.Duration(envTimeout, o.timeout)
	}
	if fromEnv("max-parallel", envMaxParallel) {
		o.maxParallel = env.Int(envMaxParallel, o.maxParallel)
	}
}

func (o *getOptions) dispatchOptions() (fanout.Options, error) {
	model, err := fanout.ParseExecutionModel(o.model)
	if err != nil {
		return fanout.Options{}, err
	}

	headers, err := parseHeaders(o.headers)
	if err != nil {
		return fanout.Options{}, err
	}

	opts := fanout.Options{
		ExecutionModel: model,
		RequestOptions: http.RequestOptions{
			Headers: headers,
			Timeout: o.timeout,
		},
	}
	if o.port != 0 {
		opts.Port = ptr.To(o.port)
	}
	return opts, nil
}

func (o *getOptions) run(ctx context.Context, out io.Writer, urls []string) error {
	opts, err := o.dispatchOptions()
	if err != nil {
		return err
	}

	logrus.Debugf("Fetching %d URLs with %s (%s)", len(urls), opts.ExecutionModel, opts.RequestOptions)
	res, err := fanout.NewDispatcher().
		WithMaxParallel(o.maxParallel).
		Dispatch(ctx, opts, urls...)
	if err != nil {
		return fmt.Errorf("fetching %d URLs: %w", len(urls), err)
	}

	format := o.output
	if format == outputAuto {
		format = outputJSON
		if _, isTerminal := term.GetFdInfo(out); isTerminal {
			format = outputTable
		}
	}

	switch {
	case o.query != "":
		return writeQuery(out, res, o.query)
	case format == outputJSON:
		return writeJSON(out, res)
	case format == outputTable:
		return writeTable(out, res, urls)
	}
	return fmt.Errorf("unknown output format %q", o.output)
}

// parseHeaders turns "Name: value" or "Name=value" strings into a header map.
func parseHeaders(raw []string) (nethttp.Header, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	headers := nethttp.Header{}
	for _, h := range raw {
		name, value, ok := strings.Cut(h, ":")
		if !ok {
			name, value, ok = strings.Cut(h, "=")
		}
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid header %q, expected \"Name: value\"", h)
		}
		headers.Add(name, strings.TrimSpace(value))
	}
	return headers, nil
}

func writeJSON(out io.Writer, res *fanout.Result) error {
	b, err := sonic.ConfigStd.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	_, err = fmt.Fprintln(out, string(b))
	return err
}

var errNoMatch = errors.New("query matched nothing")

func writeQuery(out io.Writer, res *fanout.Result, query string) error {
	b, err := sonic.ConfigStd.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshaling result: %w", err)
	}
	match := gjson.GetBytes(b, query)
	if !match.Exists() {
		return fmt.Errorf("%w: %s", errNoMatch, query)
	}
	_, err = fmt.Fprintln(out, match.Raw)
	return err
}

func writeTable(out io.Writer, res *fanout.Result, urls []string) error {
	table := util.NewTableWriter(out)
	table.Header("#", "URL", "Status", "Result")

	switch res.Model {
	case fanout.AllSucceeded:
		for i, v := range res.Values {
			if err := table.Append([]string{fmt.Sprint(i), urls[i], string(fanout.StatusFulfilled), compact(v)}); err != nil {
				return err
			}
		}
	case fanout.AllSettled:
		for i, s := range res.Settlements {
			detail := ""
			if s.Fulfilled() {
				detail = compact(s.Value)
			} else if s.Reason != nil {
				detail = s.Reason.Error()
			}
			if err := table.Append([]string{fmt.Sprint(i), urls[i], string(s.Status), detail}); err != nil {
				return err
			}
		}
	case fanout.AnySucceeded, fanout.Race:
		if err := table.Append([]string{"-", "-", string(fanout.StatusFulfilled), compact(res.Value)}); err != nil {
			return err
		}
	}
	return table.Render()
}

// compact renders v as single line JSON for table cells.
func compact(v any) string {
	b, err := sonic.ConfigStd.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
