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

package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
	"text/tabwriter"

	"github.com/blang/semver/v4"
	"github.com/bytedance/sonic"
	"github.com/common-nighthawk/go-figure"
)

const unknown = "unknown"

// Set through ldflags, eg:
//
//	-X sigs.k8s.io/fanout/version.gitVersion=v1.2.3
var (
	gitVersion = "devel"
	gitCommit  = unknown
	buildDate  = unknown
)

// Info contains the build and runtime versioning information.
type Info struct {
	GitVersion string `json:"gitVersion"`
	GitCommit  string `json:"gitCommit"`
	BuildDate  string `json:"buildDate"`
	GoVersion  string `json:"goVersion"`
	Compiler   string `json:"compiler"`
	Platform   string `json:"platform"`

	ASCIIName   string `json:"-"`
	Name        string `json:"-"`
	Description string `json:"-"`
}

// GetVersionInfo returns the version information of the running binary.
// Values not set at link time are taken from the module build info.
func GetVersionInfo() Info {
	info := Info{
		GitVersion: gitVersion,
		GitCommit:  gitCommit,
		BuildDate:  buildDate,
		GoVersion:  runtime.Version(),
		Compiler:   runtime.Compiler,
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}

	if bi, ok := debug.ReadBuildInfo(); ok {
		if info.GitVersion == "devel" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			info.GitVersion = bi.Main.Version
		}
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.GitCommit == unknown {
					info.GitCommit = s.Value
				}
			case "vcs.time":
				if info.BuildDate == unknown {
					info.BuildDate = s.Value
				}
			}
		}
	}
	return info
}

// WithASCIIName sets the name rendered as ASCII art on top of String().
func (i *Info) WithASCIIName(name string) *Info {
	i.ASCIIName = name
	return i
}

// WithName sets the binary name.
func (i *Info) WithName(name string) *Info {
	i.Name = name
	return i
}

// WithDescription sets a one line description of the binary.
func (i *Info) WithDescription(desc string) *Info {
	i.Description = desc
	return i
}

// Semver parses GitVersion as a semantic version. A leading "v" is accepted.
func (i *Info) Semver() (semver.Version, error) {
	v, err := semver.ParseTolerant(i.GitVersion)
	if err != nil {
		return semver.Version{}, fmt.Errorf("parsing version %q: %w", i.GitVersion, err)
	}
	return v, nil
}

// String returns the string representation of the version info.
func (i *Info) String() string {
	b := strings.Builder{}
	w := tabwriter.NewWriter(&b, 0, 0, 2, ' ', 0)

	if i.ASCIIName != "" {
		f := figure.NewFigure(strings.ToUpper(i.ASCIIName), "", true)
		_, _ = fmt.Fprint(w, f.String())
	}
	if i.Name != "" {
		_, _ = fmt.Fprint(w, i.Name)
		if i.Description != "" {
			_, _ = fmt.Fprintf(w, ": %s", i.Description)
		}
		_, _ = fmt.Fprint(w, "\n\n")
	}

	_, _ = fmt.Fprintf(w, "GitVersion:\t%s\n", i.GitVersion)
	_, _ = fmt.Fprintf(w, "GitCommit:\t%s\n", i.GitCommit)
	_, _ = fmt.Fprintf(w, "BuildDate:\t%s\n", i.BuildDate)
	_, _ = fmt.Fprintf(w, "GoVersion:\t%s\n", i.GoVersion)
	_, _ = fmt.Fprintf(w, "Compiler:\t%s\n", i.Compiler)
	_, _ = fmt.Fprintf(w, "Platform:\t%s\n", i.Platform)

	_ = w.Flush()
	return b.String()
}

// JSONString returns the JSON representation of the version info.
func (i *Info) JSONString() (string, error) {
	b, err := sonic.ConfigStd.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling version info: %w", err)
	}
	return string(b), nil
}
