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
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sigs.k8s.io/fanout/env"
)

const (
	envLogLevel    = "FANOUT_LOG_LEVEL"
	envModel       = "FANOUT_MODEL"
	envTimeout     = "FANOUT_TIMEOUT"
	envMaxParallel = "FANOUT_MAX_PARALLEL"
)

type rootOptions struct {
	logLevel string
	envFile  string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "fanout",
		Short:         "Fetch JSON documents from many URLs concurrently",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	cmd.PersistentFlags().StringVar(
		&opts.logLevel, "log-level", "info",
		fmt.Sprintf("the logging verbosity, either %v (env %s)", logLevels(), envLogLevel),
	)
	cmd.PersistentFlags().StringVar(
		&opts.envFile, "env-file", "",
		"a dotenv file to load FANOUT_* settings from",
	)

	cmd.AddCommand(newGetCommand(), newVersionCommand())
	return cmd
}

// setup loads the env file and configures logging. It runs before any
// subcommand reads its env defaults.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("loading env file %s: %w", o.envFile, err)
		}
	}

	if !cmd.Flags().Changed("log-level") {
		o.logLevel = env.Default(envLogLevel, o.logLevel)
	}
	lvl, err := logrus.ParseLevel(o.logLevel)
	if err != nil {
		return fmt.Errorf("setting log level: %w", err)
	}
	logrus.SetLevel(lvl)
	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return nil
}

func logLevels() []string {
	levels := make([]string, 0, len(logrus.AllLevels))
	for _, l := range logrus.AllLevels {
		levels = append(levels, l.String())
	}
	return levels
}
