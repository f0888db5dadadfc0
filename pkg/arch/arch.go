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

// Package arch describes where registers live inside the register dump
// (struct pt_regs) the kernel hands to probes on each supported CPU
// architecture.
//
// Offsets returned by a Catalog are positions in that structure expressed
// in register-sized slots, not bytes. The position of a name in the
// catalog's table is the offset: the canonical and raw-field tables of an
// architecture are parallel and must stay aligned entry by entry.
//
// Catalogs are immutable and safe for concurrent use.
package arch

import (
	"errors"
	"fmt"
	"slices"
)

// NotFound is returned by Catalog.Offset for names unknown to the
// architecture. It is never a valid offset.
const NotFound = -1

var (
	ErrUnknownRegister = errors.New("unknown register")
	ErrUnknownArch     = errors.New("unsupported architecture")
)

// Catalog answers register queries for a single architecture.
type Catalog interface {
	// Name returns the lowercase identifier of the architecture, e.g. "arm".
	Name() string

	// Offset returns the slot of the register called name, looking at the
	// canonical names first and at the pt_regs field spellings second. It
	// returns NotFound when neither table has an exact match.
	Offset(name string) int

	// MaxArg returns the highest argument index passed in a register.
	// Arguments past it live on the stack.
	MaxArg() int

	// ArgOffset returns the slot holding argument n. It panics if n is not
	// in [0, MaxArg()].
	ArgOffset(n int) int

	RetOffset() int
	PCOffset() int
	SPOffset() int

	// ArgStackOffset returns the distance, in slots, between the stack
	// pointer and the first argument passed on the stack.
	ArgStackOffset() int

	// InvalidWatchpointModes returns the access modes the hardware
	// breakpoint facility of the architecture cannot enforce.
	InvalidWatchpointModes() []string

	Registers() []string
	RawFields() []string
	ArgRegisters() []string

	// RegisterSize is the size of a pt_regs slot in bytes.
	RegisterSize() int
}

// RegisterError reports a register name that no table of the architecture
// knows about.
type RegisterError struct {
	Arch string
	Name string
}

func (e *RegisterError) Error() string {
	return fmt.Sprintf("unknown register %q for architecture %s", e.Name, e.Arch)
}

func (e *RegisterError) Is(target error) bool {
	return target == ErrUnknownRegister
}

// Resolve is Offset with the miss turned into an error naming the register
// and the architecture.
func Resolve(c Catalog, name string) (int, error) {
	off := c.Offset(name)
	if off == NotFound {
		return NotFound, &RegisterError{Arch: c.Name(), Name: name}
	}
	return off, nil
}

// layout is the compiled-in description of one architecture. registers and
// rawFields are built from fixed-size arrays of the same length.
type layout struct {
	name          string
	registers     []string
	rawFields     []string
	args          []string
	ret           string
	pc            string
	sp            string
	argStackBytes int
	regSize       int
	invalidModes  []string
}

type catalog struct {
	l       layout
	argOffs []int
	retOff  int
	pcOff   int
	spOff   int
}

// newCatalog checks the layout and precomputes the role offsets. Any
// inconsistency is a bug in the tables, so it panics.
func newCatalog(l layout) *catalog {
	if len(l.registers) != len(l.rawFields) {
		panic(fmt.Sprintf("arch %s: %d registers but %d raw fields", l.name, len(l.registers), len(l.rawFields)))
	}
	// a short array literal leaves trailing empty names behind
	for i := range l.registers {
		if l.registers[i] == "" || l.rawFields[i] == "" {
			panic(fmt.Sprintf("arch %s: slot %d has no name", l.name, i))
		}
	}
	if len(l.args) == 0 {
		panic(fmt.Sprintf("arch %s: no argument registers", l.name))
	}
	if l.regSize <= 0 {
		panic(fmt.Sprintf("arch %s: invalid register size %d", l.name, l.regSize))
	}

	c := &catalog{l: l}
	canonical := func(role, reg string) int {
		off := slices.Index(l.registers, reg)
		if off < 0 {
			panic(fmt.Sprintf("arch %s: %s register %q is not in the register table", l.name, role, reg))
		}
		return off
	}
	for i, reg := range l.args {
		c.argOffs = append(c.argOffs, canonical(fmt.Sprintf("argument %d", i), reg))
	}
	c.retOff = canonical("return", l.ret)
	c.pcOff = canonical("program counter", l.pc)
	c.spOff = canonical("stack pointer", l.sp)

	seen := map[string]bool{}
	for _, m := range l.invalidModes {
		if seen[m] {
			panic(fmt.Sprintf("arch %s: duplicated watchpoint mode %q", l.name, m))
		}
		seen[m] = true
	}
	return c
}

func (c *catalog) Name() string {
	return c.l.name
}

func (c *catalog) Offset(name string) int {
	if i := slices.Index(c.l.registers, name); i >= 0 {
		return i
	}
	// pt_regs field spellings, as found in USDT probe arguments
	if i := slices.Index(c.l.rawFields, name); i >= 0 {
		return i
	}
	return NotFound
}

func (c *catalog) MaxArg() int {
	return len(c.argOffs) - 1
}

func (c *catalog) ArgOffset(n int) int {
	if n < 0 || n > c.MaxArg() {
		panic(fmt.Sprintf("arch %s: argument %d is not passed in a register (max %d)", c.l.name, n, c.MaxArg()))
	}
	return c.argOffs[n]
}

func (c *catalog) RetOffset() int {
	return c.retOff
}

func (c *catalog) PCOffset() int {
	return c.pcOff
}

func (c *catalog) SPOffset() int {
	return c.spOff
}

func (c *catalog) ArgStackOffset() int {
	return c.l.argStackBytes / c.l.regSize
}

func (c *catalog) InvalidWatchpointModes() []string {
	return slices.Clone(c.l.invalidModes)
}

func (c *catalog) Registers() []string {
	return slices.Clone(c.l.registers)
}

func (c *catalog) RawFields() []string {
	return slices.Clone(c.l.rawFields)
}

func (c *catalog) ArgRegisters() []string {
	return slices.Clone(c.l.args)
}

func (c *catalog) RegisterSize() int {
	return c.l.regSize
}
