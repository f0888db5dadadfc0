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

// RISCV64 describes 64-bit RISC-V. Slot 0 holds the faulting pc (epc in
// struct pt_regs), the general purpose registers follow in x1..x31 order
// under their ABI names.
var RISCV64 Catalog = newCatalog(layout{
	name:      "riscv64",
	registers: riscv64Registers[:],
	rawFields: riscv64RawFields[:],
	args:      []string{"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7"},
	ret:       "a0",
	pc:        "pc",
	sp:        "sp",
	regSize:   8,
	// arch/riscv/kernel/hw_breakpoint.c:arch_build_bp_info
	invalidModes: []string{"rx", "wx", "rwx"},
})

var riscv64Registers = [36]string{
	"pc",
	"ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
	"status",
	"badaddr",
	"cause",
	"orig_a0",
}

var riscv64RawFields = [len(riscv64Registers)]string{
	"epc",
	"ra", "sp", "gp", "tp",
	"t0", "t1", "t2",
	"s0", "s1",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
	"s2", "s3", "s4", "s5", "s6", "s7", "s8", "s9", "s10", "s11",
	"t3", "t4", "t5", "t6",
	"status",
	"badaddr",
	"cause",
	"orig_a0",
}
