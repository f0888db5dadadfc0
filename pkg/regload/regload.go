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

// Package regload emits eBPF instructions that read registers out of the
// struct pt_regs a probe receives as its context.
package regload

import (
	"errors"
	"fmt"
	"math"

	"github.com/cilium/ebpf/asm"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

var ErrStackArgument = errors.New("argument is passed on the stack")

func slotSize(c arch.Catalog) (asm.Size, error) {
	switch c.RegisterSize() {
	case 4:
		return asm.Word, nil
	case 8:
		return asm.DWord, nil
	}
	return asm.InvalidSize, fmt.Errorf("arch %s: unsupported register size %d", c.Name(), c.RegisterSize())
}

func byteOffset(c arch.Catalog, slot int) (int16, error) {
	off := slot * c.RegisterSize()
	if off < 0 || off > math.MaxInt16 {
		return 0, fmt.Errorf("arch %s: slot %d is out of range", c.Name(), slot)
	}
	return int16(off), nil
}

func loadSlot(c arch.Catalog, dst, ctx asm.Register, slot int) (asm.Instructions, error) {
	size, err := slotSize(c)
	if err != nil {
		return nil, err
	}
	off, err := byteOffset(c, slot)
	if err != nil {
		return nil, err
	}
	return asm.Instructions{asm.LoadMem(dst, ctx, off, size)}, nil
}

// LoadRegister loads the register called name into dst. ctx must point to
// the pt_regs of the probe.
func LoadRegister(c arch.Catalog, dst, ctx asm.Register, name string) (asm.Instructions, error) {
	slot, err := arch.Resolve(c, name)
	if err != nil {
		return nil, err
	}
	return loadSlot(c, dst, ctx, slot)
}

// LoadArg loads argument n. Arguments past c.MaxArg() are not in pt_regs
// and return ErrStackArgument; use StackArgAddress for them.
func LoadArg(c arch.Catalog, dst, ctx asm.Register, n int) (asm.Instructions, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid argument index %d", n)
	}
	if n > c.MaxArg() {
		return nil, fmt.Errorf("arch %s: argument %d: %w", c.Name(), n, ErrStackArgument)
	}
	return loadSlot(c, dst, ctx, c.ArgOffset(n))
}

func LoadRet(c arch.Catalog, dst, ctx asm.Register) (asm.Instructions, error) {
	return loadSlot(c, dst, ctx, c.RetOffset())
}

func LoadPC(c arch.Catalog, dst, ctx asm.Register) (asm.Instructions, error) {
	return loadSlot(c, dst, ctx, c.PCOffset())
}

func LoadSP(c arch.Catalog, dst, ctx asm.Register) (asm.Instructions, error) {
	return loadSlot(c, dst, ctx, c.SPOffset())
}

// StackArgAddress computes into dst the user-space address of argument n,
// which must be one passed on the stack. Reading it is up to the caller,
// typically through bpf_probe_read_user.
func StackArgAddress(c arch.Catalog, dst, ctx asm.Register, n int) (asm.Instructions, error) {
	if n <= c.MaxArg() {
		return nil, fmt.Errorf("arch %s: argument %d is passed in a register", c.Name(), n)
	}

	insns, err := LoadSP(c, dst, ctx)
	if err != nil {
		return nil, err
	}
	slot := c.ArgStackOffset() + n - c.MaxArg() - 1
	off := int64(slot) * int64(c.RegisterSize())
	if off > math.MaxInt32 {
		return nil, fmt.Errorf("arch %s: argument %d is out of range", c.Name(), n)
	}
	if off != 0 {
		insns = append(insns, asm.Add.Imm(dst, int32(off)))
	}
	return insns, nil
}
