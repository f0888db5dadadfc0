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

package usdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

func TestParseArg(t *testing.T) {
	type test struct {
		arch     arch.Catalog
		in       string
		expected Arg
	}

	tests := []test{
		{
			arch:     arch.X86_64,
			in:       "-4@%edi",
			expected: Arg{Kind: ArgReg, Size: 4, Signed: true, Reg: "rdi", Offset: arch.X86_64.Offset("di")},
		},
		{
			arch:     arch.X86_64,
			in:       "8@%rax",
			expected: Arg{Kind: ArgReg, Size: 8, Reg: "rax", Offset: arch.X86_64.RetOffset()},
		},
		{
			arch:     arch.X86_64,
			in:       "2@%r9w",
			expected: Arg{Kind: ArgReg, Size: 2, Reg: "r9", Offset: arch.X86_64.ArgOffset(5)},
		},
		{
			arch:     arch.X86_64,
			in:       "-8@-8(%rbp)",
			expected: Arg{Kind: ArgRegDeref, Size: 8, Signed: true, Reg: "rbp", Offset: 4, Value: -8},
		},
		{
			arch:     arch.X86_64,
			in:       "8@(%rsp)",
			expected: Arg{Kind: ArgRegDeref, Size: 8, Reg: "rsp", Offset: arch.X86_64.SPOffset()},
		},
		{
			arch:     arch.X86_64,
			in:       "4@$5",
			expected: Arg{Kind: ArgConst, Size: 4, Offset: arch.NotFound, Value: 5},
		},
		{
			arch:     arch.X86_64,
			in:       "%rsi",
			expected: Arg{Kind: ArgReg, Size: 8, Reg: "rsi", Offset: arch.X86_64.ArgOffset(1)},
		},
		{
			arch:     arch.AArch64,
			in:       "8@x0",
			expected: Arg{Kind: ArgReg, Size: 8, Reg: "x0", Offset: 0},
		},
		{
			arch:     arch.AArch64,
			in:       "-4@w1",
			expected: Arg{Kind: ArgReg, Size: 4, Signed: true, Reg: "x1", Offset: 1},
		},
		{
			arch:     arch.AArch64,
			in:       "4@[sp, 12]",
			expected: Arg{Kind: ArgRegDeref, Size: 4, Reg: "sp", Offset: 31, Value: 12},
		},
		{
			arch:     arch.AArch64,
			in:       "-4@[x29, #-20]",
			expected: Arg{Kind: ArgRegDeref, Size: 4, Signed: true, Reg: "x29", Offset: 29, Value: -20},
		},
		{
			arch:     arch.ARM,
			in:       "4@r0",
			expected: Arg{Kind: ArgReg, Size: 4, Reg: "r0", Offset: 0},
		},
		{
			arch:     arch.ARM,
			in:       "4@uregs[2]",
			expected: Arg{Kind: ArgReg, Size: 4, Reg: "uregs[2]", Offset: 2},
		},
		{
			arch:     arch.ARM,
			in:       "-4@[fp, #-8]",
			expected: Arg{Kind: ArgRegDeref, Size: 4, Signed: true, Reg: "fp", Offset: 11, Value: -8},
		},
		{
			arch:     arch.ARM,
			in:       "1@#-1",
			expected: Arg{Kind: ArgConst, Size: 1, Offset: arch.NotFound, Value: -1},
		},
		{
			arch:     arch.RISCV64,
			in:       "8@a0",
			expected: Arg{Kind: ArgReg, Size: 8, Reg: "a0", Offset: 10},
		},
		{
			arch:     arch.RISCV64,
			in:       "-4@-20(s0)",
			expected: Arg{Kind: ArgRegDeref, Size: 4, Signed: true, Reg: "s0", Offset: 8, Value: -20},
		},
	}

	for _, test := range tests {
		t.Run(test.arch.Name()+"/"+test.in, func(t *testing.T) {
			arg, err := ParseArg(test.arch, test.in)
			require.NoError(t, err)

			test.expected.Str = test.in
			assert.Equal(t, &test.expected, arg)
		})
	}
}

func TestParseArgErrors(t *testing.T) {
	tests := []struct {
		in         string
		unknownReg bool
	}{
		{in: "3@%rdi"},
		{in: "x@%rdi"},
		{in: "8@"},
		{in: "8@$zz"},
		{in: "8@-8(%rbp"},
		{in: "8@foo(%rip)"},
		{in: "8@[rsp"},
		{in: "8@%xmm0", unknownReg: true},
		{in: "8@-8(%foo)", unknownReg: true},
		{in: "8@w0", unknownReg: true},
	}

	for _, test := range tests {
		t.Run(test.in, func(t *testing.T) {
			_, err := ParseArg(arch.X86_64, test.in)
			require.ErrorIs(t, err, ErrInvalidArg)
			assert.Contains(t, err.Error(), test.in)
			if test.unknownReg {
				assert.ErrorIs(t, err, arch.ErrUnknownRegister)
				assert.Contains(t, err.Error(), "x86_64")
			}
		})
	}
}

func TestParseArgs(t *testing.T) {
	args, err := ParseArgs(arch.X86_64, "-4@%edi 8@-16(%rbp)  4@$1")
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.Equal(t, ArgReg, args[0].Kind)
	assert.Equal(t, ArgRegDeref, args[1].Kind)
	assert.Equal(t, ArgConst, args[2].Kind)

	args, err = ParseArgs(arch.X86_64, "")
	require.NoError(t, err)
	assert.Empty(t, args)

	_, err = ParseArgs(arch.X86_64, "8@%rdi 8@%bogus")
	require.ErrorIs(t, err, arch.ErrUnknownRegister)
}

func TestParseArgsBracketedOperands(t *testing.T) {
	args, err := ParseArgs(arch.AArch64, "-4@[sp, 60] 8@x1  4@[x29, #-20]\t-8@[sp]")
	require.NoError(t, err)
	require.Len(t, args, 4)

	assert.Equal(t, "-4@[sp, 60]", args[0].Str)
	assert.Equal(t, ArgRegDeref, args[0].Kind)
	assert.Equal(t, arch.AArch64.SPOffset(), args[0].Offset)
	assert.Equal(t, int64(60), args[0].Value)
	assert.Equal(t, ArgReg, args[1].Kind)
	assert.Equal(t, 1, args[1].Offset)
	assert.Equal(t, 29, args[2].Offset)
	assert.Equal(t, int64(-20), args[2].Value)
	assert.Equal(t, "-8@[sp]", args[3].Str)

	args, err = ParseArgs(arch.ARM, "4@r0 -4@[fp, #-8] 4@[sp, 4]")
	require.NoError(t, err)
	require.Len(t, args, 3)
	assert.Equal(t, "-4@[fp, #-8]", args[1].Str)
	assert.Equal(t, 11, args[1].Offset)
	assert.Equal(t, int64(-8), args[1].Value)
	assert.Equal(t, arch.ARM.SPOffset(), args[2].Offset)
	assert.Equal(t, int64(4), args[2].Value)
}

func TestSplitArgs(t *testing.T) {
	tests := map[string][]string{
		"":                        nil,
		"   ":                     nil,
		"8@x0":                    {"8@x0"},
		" -4@[sp, 60]  8@x1 ":     {"-4@[sp, 60]", "8@x1"},
		"4@[x0, #8] 4@[x1,  #16]": {"4@[x0, #8]", "4@[x1,  #16]"},
		"-4@%edi 8@-8(%rbp)":      {"-4@%edi", "8@-8(%rbp)"},
	}

	for in, expected := range tests {
		assert.Equal(t, expected, splitArgs(in), "%q", in)
	}
}

func TestAArch64RegisterAliases(t *testing.T) {
	arg, err := ParseArg(arch.AArch64, "8@[fp, -16]")
	require.NoError(t, err)
	assert.Equal(t, "x29", arg.Reg)
	assert.Equal(t, 29, arg.Offset)

	arg, err = ParseArg(arch.AArch64, "8@lr")
	require.NoError(t, err)
	assert.Equal(t, "x30", arg.Reg)
	assert.Equal(t, 30, arg.Offset)
}

func TestParseArgIndexedAddressing(t *testing.T) {
	_, err := ParseArg(arch.X86_64, "8@(%rax,%rbx,8)")
	require.ErrorIs(t, err, ErrInvalidArg)
	assert.ErrorContains(t, err, "indexed addressing")
	assert.NotErrorIs(t, err, arch.ErrUnknownRegister)

	_, err = ParseArg(arch.X86_64, "4@-4(%rbp,%rcx,4)")
	assert.ErrorContains(t, err, "indexed addressing")
}

func TestArgKindText(t *testing.T) {
	text, err := ArgRegDeref.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "reg_deref", string(text))
	assert.Equal(t, "ArgKind(7)", ArgKind(7).String())
}
