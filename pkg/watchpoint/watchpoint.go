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

// Package watchpoint parses hardware watchpoint requests and rejects the
// access modes an architecture cannot enforce.
package watchpoint

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

// DefaultMode is used when a watchpoint spec does not name one.
const DefaultMode Mode = "rw"

var (
	ErrInvalidMode     = errors.New("invalid watchpoint mode")
	ErrUnsupportedMode = errors.New("unsupported watchpoint mode")
	ErrInvalidSpec     = errors.New("invalid watchpoint")
)

// Mode is a combination of read (r), write (w) and execute (x) access,
// always spelled in that order.
type Mode string

func (m Mode) Read() bool {
	return strings.Contains(string(m), "r")
}

func (m Mode) Write() bool {
	return strings.Contains(string(m), "w")
}

func (m Mode) Execute() bool {
	return strings.Contains(string(m), "x")
}

// ModeError reports a mode the architecture refuses.
type ModeError struct {
	Mode Mode
	Arch string
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("watchpoint mode %q is not supported on %s", string(e.Mode), e.Arch)
}

func (e *ModeError) Is(target error) bool {
	return target == ErrUnsupportedMode
}

// ParseMode accepts each of r, w and x at most once, in any order.
func ParseMode(s string) (Mode, error) {
	if s == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidMode)
	}

	var r, w, x bool
	for _, c := range s {
		var seen *bool
		switch c {
		case 'r':
			seen = &r
		case 'w':
			seen = &w
		case 'x':
			seen = &x
		default:
			return "", fmt.Errorf("%w %q: unknown access %q", ErrInvalidMode, s, c)
		}
		if *seen {
			return "", fmt.Errorf("%w %q: access %q given twice", ErrInvalidMode, s, c)
		}
		*seen = true
	}

	var sb strings.Builder
	if r {
		sb.WriteByte('r')
	}
	if w {
		sb.WriteByte('w')
	}
	if x {
		sb.WriteByte('x')
	}
	return Mode(sb.String()), nil
}

// ValidateMode parses s and checks it against the modes c refuses.
func ValidateMode(c arch.Catalog, s string) (Mode, error) {
	m, err := ParseMode(s)
	if err != nil {
		return "", err
	}
	if slices.Contains(c.InvalidWatchpointModes(), string(m)) {
		return "", &ModeError{Mode: m, Arch: c.Name()}
	}
	return m, nil
}

// Watchpoint is a validated request to trap accesses to Len bytes at Addr.
type Watchpoint struct {
	Addr uint64 `json:"addr"`
	Len  uint64 `json:"len"`
	Mode Mode   `json:"mode"`
}

func (w *Watchpoint) String() string {
	return fmt.Sprintf("0x%x:%d:%s", w.Addr, w.Len, w.Mode)
}

// Parse reads ADDR:LEN[:MODE]. ADDR is decimal or 0x-prefixed hex, LEN one
// of 1, 2, 4 or 8 and MODE defaults to DefaultMode.
func Parse(c arch.Catalog, spec string) (*Watchpoint, error) {
	parts := strings.Split(spec, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return nil, fmt.Errorf("%w %q: expected ADDR:LEN[:MODE]", ErrInvalidSpec, spec)
	}

	addr, err := strconv.ParseUint(parts[0], 0, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: parsing address: %w", ErrInvalidSpec, spec, err)
	}
	if addr == 0 {
		return nil, fmt.Errorf("%w %q: address must not be zero", ErrInvalidSpec, spec)
	}

	length, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w %q: parsing length: %w", ErrInvalidSpec, spec, err)
	}
	switch length {
	case 1, 2, 4, 8:
	default:
		return nil, fmt.Errorf("%w %q: length must be 1, 2, 4 or 8", ErrInvalidSpec, spec)
	}

	modeStr := string(DefaultMode)
	if len(parts) == 3 {
		modeStr = parts[2]
	}
	mode, err := ValidateMode(c, modeStr)
	if err != nil {
		return nil, err
	}

	return &Watchpoint{Addr: addr, Len: length, Mode: mode}, nil
}
