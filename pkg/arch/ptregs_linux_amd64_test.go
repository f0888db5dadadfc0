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
	"reflect"
	"strings"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// user_regs_struct starts with the pt_regs slots, in the same order.
func TestX86MatchesPtraceRegs(t *testing.T) {
	var regs unix.PtraceRegs
	typ := reflect.TypeOf(regs)
	raw := X86_64.RawFields()
	require.GreaterOrEqual(t, typ.NumField(), len(raw))

	for i, name := range raw {
		f := typ.Field(i)
		assert.Equal(t, name, strings.ToLower(f.Name))
		assert.Equal(t, uintptr(i*X86_64.RegisterSize()), f.Offset, "field %s", f.Name)
	}
	assert.Equal(t, int(unsafe.Sizeof(regs.Rip)), X86_64.RegisterSize())
}
