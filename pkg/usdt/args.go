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

// Package usdt reads USDT probe notes out of ELF files and turns their
// argument descriptions into pt_regs locations.
package usdt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

var ErrInvalidArg = errors.New("invalid USDT argument")

type ArgKind int

const (
	ArgConst ArgKind = iota
	ArgReg
	ArgRegDeref
)

func (k ArgKind) String() string {
	switch k {
	case ArgConst:
		return "const"
	case ArgReg:
		return "reg"
	case ArgRegDeref:
		return "reg_deref"
	}
	return fmt.Sprintf("ArgKind(%d)", int(k))
}

func (k ArgKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Arg is the location of one USDT argument.
type Arg struct {
	Str    string  `json:"str"`
	Kind   ArgKind `json:"kind"`
	Size   int     `json:"size"`
	Signed bool    `json:"signed"`
	// Reg is the register spelling that resolved, after aliases were
	// applied, and Offset its pt_regs slot.
	Reg    string `json:"reg,omitempty"`
	Offset int    `json:"offset"`
	// Value is the constant for ArgConst and the displacement from the
	// register for ArgRegDeref.
	Value int64 `json:"value"`
}

// Registers narrower than a slot share the slot of their full-width register.
var regAliases = map[string]map[string]string{
	"x86_64":  x86Aliases(),
	"aarch64": func() map[string]string {
		m := map[string]string{"wsp": "sp", "fp": "x29", "lr": "x30"}
		for i := 0; i <= 30; i++ {
			m[fmt.Sprintf("w%d", i)] = fmt.Sprintf("x%d", i)
		}
		return m
	}(),
}

func x86Aliases() map[string]string {
	m := map[string]string{"eip": "rip", "ip": "rip"}
	for _, r := range []string{"ax", "bx", "cx", "dx"} {
		full := "r" + r
		m["e"+r] = full
		m[r] = full
		m[r[:1]+"l"] = full
	}
	for _, r := range []string{"si", "di", "bp", "sp"} {
		full := "r" + r
		m["e"+r] = full
		m[r] = full
		m[r+"l"] = full
	}
	for i := 8; i <= 15; i++ {
		full := fmt.Sprintf("r%d", i)
		for _, suffix := range []string{"d", "w", "b"} {
			m[full+suffix] = full
		}
	}
	return m
}

// ParseArgs parses the space separated argument list of a USDT note.
func ParseArgs(c arch.Catalog, s string) ([]*Arg, error) {
	var args []*Arg
	for _, field := range splitArgs(s) {
		arg, err := ParseArg(c, field)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

// splitArgs splits on whitespace outside of brackets: arm memory operands
// look like [sp, 60].
func splitArgs(s string) []string {
	var fields []string
	depth, start := 0, -1
	for i, r := range s {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case unicode.IsSpace(r) && depth == 0:
			if start >= 0 {
				fields = append(fields, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

// ParseArg parses a single [-]SIZE@OPERAND argument. A missing size means
// an unsigned argument as wide as a register.
func ParseArg(c arch.Catalog, s string) (*Arg, error) {
	arg := &Arg{Str: s, Size: c.RegisterSize()}

	operand := s
	if sizeStr, rest, ok := strings.Cut(s, "@"); ok {
		operand = rest
		if strings.HasPrefix(sizeStr, "-") {
			arg.Signed = true
			sizeStr = sizeStr[1:]
		}
		size, err := strconv.Atoi(sizeStr)
		if err != nil {
			return nil, fmt.Errorf("%w %q: parsing size: %w", ErrInvalidArg, s, err)
		}
		switch size {
		case 1, 2, 4, 8:
		default:
			return nil, fmt.Errorf("%w %q: size must be 1, 2, 4 or 8", ErrInvalidArg, s)
		}
		arg.Size = size
	}
	if operand == "" {
		return nil, fmt.Errorf("%w %q: missing operand", ErrInvalidArg, s)
	}

	var reg, disp string
	switch {
	case operand[0] == '$' || operand[0] == '#':
		return constArg(arg, operand[1:])
	case operand[0] == '[':
		// arm: [reg], [reg, #disp], [reg, disp]
		if !strings.HasSuffix(operand, "]") {
			return nil, fmt.Errorf("%w %q: unterminated memory operand", ErrInvalidArg, s)
		}
		reg, disp, _ = strings.Cut(operand[1:len(operand)-1], ",")
		disp = strings.TrimPrefix(strings.TrimSpace(disp), "#")
		arg.Kind = ArgRegDeref
	case strings.HasSuffix(operand, ")"):
		// at&t: disp(%reg)
		var ok bool
		disp, reg, ok = strings.Cut(operand[:len(operand)-1], "(")
		if !ok {
			return nil, fmt.Errorf("%w %q: unbalanced parenthesis", ErrInvalidArg, s)
		}
		if strings.Contains(reg, ",") {
			return nil, fmt.Errorf("%w %q: indexed addressing is not supported", ErrInvalidArg, s)
		}
		arg.Kind = ArgRegDeref
	default:
		if _, err := strconv.ParseInt(operand, 0, 64); err == nil {
			return constArg(arg, operand)
		}
		reg = operand
		arg.Kind = ArgReg
	}

	if disp != "" {
		v, err := strconv.ParseInt(disp, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w %q: parsing displacement: %w", ErrInvalidArg, s, err)
		}
		arg.Value = v
	}

	reg = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(reg), "%"))
	if full, ok := regAliases[c.Name()][reg]; ok {
		reg = full
	}
	off, err := arch.Resolve(c, reg)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrInvalidArg, s, err)
	}
	arg.Reg = reg
	arg.Offset = off
	return arg, nil
}

func constArg(arg *Arg, s string) (*Arg, error) {
	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: parsing constant: %w", ErrInvalidArg, arg.Str, err)
	}
	arg.Kind = ArgConst
	arg.Value = v
	arg.Offset = arch.NotFound
	return arg, nil
}
