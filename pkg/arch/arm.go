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

// ARM describes 32-bit ARM, where struct pt_regs is an array of 18 words.
var ARM Catalog = newCatalog(layout{
	name:      "arm",
	registers: armRegisters[:],
	rawFields: armRawFields[:],
	args:      []string{"r0", "r1", "r2", "r3"},
	ret:       "lr",
	pc:        "pc",
	sp:        "sp",
	// sp points to the first argument passed on the stack
	argStackBytes: 0,
	regSize:       4,
	// arch/arm/kernel/hw_breakpoint.c:arch_build_bp_info
	invalidModes: []string{"rx", "wx", "rwx"},
})

var armRegisters = [18]string{
	"r0",
	"r1",
	"r2",
	"r3",
	"r4",
	"r5",
	"r6",
	"r7",
	"r8",
	"r9",
	"r10",
	"fp",
	"ip",
	"sp",
	"lr",
	"pc",
	"cpsr",
	"orig_r0",
}

var armRawFields = [len(armRegisters)]string{
	"uregs[0]",
	"uregs[1]",
	"uregs[2]",
	"uregs[3]",
	"uregs[4]",
	"uregs[5]",
	"uregs[6]",
	"uregs[7]",
	"uregs[8]",
	"uregs[9]",
	"uregs[10]",
	"uregs[11]",
	"uregs[12]",
	"uregs[13]",
	"uregs[14]",
	"uregs[15]",
	"uregs[16]",
	"uregs[17]",
}
