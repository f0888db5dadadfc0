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

// AArch64 describes 64-bit ARM. The slots are the user_pt_regs members
// (regs[31], sp, pc, pstate) followed by orig_x0.
var AArch64 Catalog = newCatalog(layout{
	name:      "aarch64",
	registers: aarch64Registers[:],
	rawFields: aarch64RawFields[:],
	args:      []string{"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7"},
	ret:       "x0",
	pc:        "pc",
	sp:        "sp",
	regSize:   8,
	// arch/arm64/kernel/hw_breakpoint.c:arch_build_bp_info
	invalidModes: []string{"rx", "wx", "rwx"},
})

var aarch64Registers = [35]string{
	"x0", "x1", "x2", "x3", "x4", "x5", "x6", "x7",
	"x8", "x9", "x10", "x11", "x12", "x13", "x14", "x15",
	"x16", "x17", "x18", "x19", "x20", "x21", "x22", "x23",
	"x24", "x25", "x26", "x27", "x28", "x29", "x30",
	"sp",
	"pc",
	"pstate",
	"orig_x0",
}

var aarch64RawFields = [len(aarch64Registers)]string{
	"regs[0]", "regs[1]", "regs[2]", "regs[3]", "regs[4]", "regs[5]", "regs[6]", "regs[7]",
	"regs[8]", "regs[9]", "regs[10]", "regs[11]", "regs[12]", "regs[13]", "regs[14]", "regs[15]",
	"regs[16]", "regs[17]", "regs[18]", "regs[19]", "regs[20]", "regs[21]", "regs[22]", "regs[23]",
	"regs[24]", "regs[25]", "regs[26]", "regs[27]", "regs[28]", "regs[29]", "regs[30]",
	"sp",
	"pc",
	"pstate",
	"orig_x0",
}
