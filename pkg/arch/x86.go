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

// X86_64 describes x86-64. The slot order matches struct pt_regs in
// arch/x86/include/asm/ptrace.h; the raw spellings are the ones of
// struct user_regs_struct, which USDT arguments use.
var X86_64 Catalog = newCatalog(layout{
	name:      "x86_64",
	registers: x86Registers[:],
	rawFields: x86RawFields[:],
	args:      []string{"di", "si", "dx", "cx", "r8", "r9"},
	ret:       "ax",
	pc:        "ip",
	sp:        "sp",
	// the return address sits between sp and the first stack argument
	argStackBytes: 8,
	regSize:       8,
	// Only execute, write and read-write breakpoints exist, see
	// arch/x86/kernel/hw_breakpoint.c:arch_build_bp_info
	invalidModes: []string{"r", "rx", "wx", "rwx"},
})

var x86Registers = [21]string{
	"r15",
	"r14",
	"r13",
	"r12",
	"bp",
	"bx",
	"r11",
	"r10",
	"r9",
	"r8",
	"ax",
	"cx",
	"dx",
	"si",
	"di",
	"orig_ax",
	"ip",
	"cs",
	"flags",
	"sp",
	"ss",
}

var x86RawFields = [len(x86Registers)]string{
	"r15",
	"r14",
	"r13",
	"r12",
	"rbp",
	"rbx",
	"r11",
	"r10",
	"r9",
	"r8",
	"rax",
	"rcx",
	"rdx",
	"rsi",
	"rdi",
	"orig_rax",
	"rip",
	"cs",
	"eflags",
	"rsp",
	"ss",
}
