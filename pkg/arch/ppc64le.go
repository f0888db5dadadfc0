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

// PPC64LE describes little-endian 64-bit PowerPC (ELFv2 ABI).
var PPC64LE Catalog = newCatalog(layout{
	name:      "ppc64le",
	registers: ppc64Registers[:],
	rawFields: ppc64RawFields[:],
	args:      []string{"r3", "r4", "r5", "r6", "r7", "r8", "r9", "r10"},
	ret:       "r3",
	pc:        "nip",
	sp:        "r1",
	// back chain, CR, LR and TOC save words (32 bytes) plus the parameter
	// save area for the 8 register arguments
	argStackBytes: 96,
	regSize:       8,
	// DAWR matches loads and stores only
	invalidModes: []string{"x", "rx", "wx", "rwx"},
})

var ppc64Registers = [44]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"r16", "r17", "r18", "r19", "r20", "r21", "r22", "r23",
	"r24", "r25", "r26", "r27", "r28", "r29", "r30", "r31",
	"nip",
	"msr",
	"orig_gpr3",
	"ctr",
	"link",
	"xer",
	"ccr",
	"softe",
	"trap",
	"dar",
	"dsisr",
	"result",
}

var ppc64RawFields = [len(ppc64Registers)]string{
	"gpr[0]", "gpr[1]", "gpr[2]", "gpr[3]", "gpr[4]", "gpr[5]", "gpr[6]", "gpr[7]",
	"gpr[8]", "gpr[9]", "gpr[10]", "gpr[11]", "gpr[12]", "gpr[13]", "gpr[14]", "gpr[15]",
	"gpr[16]", "gpr[17]", "gpr[18]", "gpr[19]", "gpr[20]", "gpr[21]", "gpr[22]", "gpr[23]",
	"gpr[24]", "gpr[25]", "gpr[26]", "gpr[27]", "gpr[28]", "gpr[29]", "gpr[30]", "gpr[31]",
	"nip",
	"msr",
	"orig_gpr3",
	"ctr",
	"link",
	"xer",
	"ccr",
	"softe",
	"trap",
	"dar",
	"dsisr",
	"result",
}
