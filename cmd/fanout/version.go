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

	"github.com/spf13/cobra"

	"sigs.k8s.io/fanout/version"
)

func newVersionCommand() *cobra.Command {
	var outputJSON, outputSemver bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Prints the version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.GetVersionInfo()
			info.WithASCIIName("fanout").
				WithName("fanout").
				WithDescription("concurrent JSON GET requests with completion policies")

			if outputSemver {
				v, err := info.Semver()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), v.String())
				return nil
			}

			if outputJSON {
				s, err := info.JSONString()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), s)
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), info.String())
			return nil
		},
	}
	cmd.Flags().BoolVar(&outputJSON, "json", false, "print JSON instead of text")
	cmd.Flags().BoolVar(&outputSemver, "semver", false,
		"print only the semantic version, failing for development builds")
	cmd.MarkFlagsMutuallyExclusive("json", "semver")
	return cmd
}
