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

package internal

import "os"

//go:generate go tool counterfeiter -generate

// Impl is the implementation used by the env package. Tests replace it.
var Impl impl = &defaultImpl{}

//counterfeiter:generate -o internalfakes/fake_impl.go --fake-name FakeImpl . impl
type impl interface {
	LookupEnv(key string) (string, bool)
}

type defaultImpl struct{}

func (*defaultImpl) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}
