// Copyright 2026 The Inspektor Gadget authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arch

import (
	"fmt"
	"runtime"
	"slices"
	"strings"
)

var catalogs = map[string]Catalog{
	ARM.Name():     ARM,
	AArch64.Name(): AArch64,
	X86_64.Name():  X86_64,
	PPC64LE.Name(): PPC64LE,
	RISCV64.Name(): RISCV64,
}

// GOARCH spellings that differ from the architecture names.
var aliases = map[string]string{
	"amd64": "x86_64",
	"arm64": "aarch64",
}

// Get returns the catalog of the named architecture. Both the catalog names
// and the GOARCH spellings are accepted.
func Get(name string) (Catalog, error) {
	name = strings.ToLower(name)
	if alias, ok := aliases[name]; ok {
		name = alias
	}
	c, ok := catalogs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (supported: %s)", ErrUnknownArch, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names returns the supported architectures, sorted.
func Names() []string {
	names := make([]string, 0, len(catalogs))
	for name := range catalogs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Host returns the catalog of the architecture this binary was built for.
func Host() (Catalog, error) {
	if host == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownArch, runtime.GOARCH)
	}
	return host, nil
}
