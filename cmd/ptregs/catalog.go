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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

type archInfo struct {
	Name                   string   `json:"name"`
	Registers              int      `json:"registers"`
	RegisterSize           int      `json:"registerSize"`
	ArgRegisters           []string `json:"argRegisters"`
	InvalidWatchpointModes []string `json:"invalidWatchpointModes"`
}

func newArchesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "arches",
		Short: "List the supported architectures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var infos []archInfo
			t := &table{header: []string{"NAME", "REGISTERS", "SIZE", "ARGS", "INVALID WATCHPOINT MODES"}}
			for _, name := range arch.Names() {
				c, err := arch.Get(name)
				if err != nil {
					return err
				}
				info := archInfo{
					Name:                   c.Name(),
					Registers:              len(c.Registers()),
					RegisterSize:           c.RegisterSize(),
					ArgRegisters:           c.ArgRegisters(),
					InvalidWatchpointModes: c.InvalidWatchpointModes(),
				}
				infos = append(infos, info)
				t.rows = append(t.rows, []string{
					info.Name,
					strconv.Itoa(info.Registers),
					strconv.Itoa(info.RegisterSize),
					strings.Join(info.ArgRegisters, ","),
					strings.Join(info.InvalidWatchpointModes, ","),
				})
			}
			return opts.print(cmd.OutOrStdout(), infos, t)
		},
	}
}

type registerInfo struct {
	Offset     int      `json:"offset"`
	ByteOffset int      `json:"byteOffset"`
	Name       string   `json:"name"`
	RawField   string   `json:"rawField"`
	Roles      []string `json:"roles,omitempty"`
}

func roles(c arch.Catalog) map[int][]string {
	ret := map[int][]string{}
	for i := 0; i <= c.MaxArg(); i++ {
		off := c.ArgOffset(i)
		ret[off] = append(ret[off], fmt.Sprintf("arg%d", i))
	}
	ret[c.RetOffset()] = append(ret[c.RetOffset()], "ret")
	ret[c.PCOffset()] = append(ret[c.PCOffset()], "pc")
	ret[c.SPOffset()] = append(ret[c.SPOffset()], "sp")
	return ret
}

func newRegistersCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "registers",
		Short: "List the registers of an architecture in pt_regs order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			r := roles(c)
			raw := c.RawFields()
			var infos []registerInfo
			t := &table{header: []string{"OFFSET", "BYTES", "NAME", "RAW FIELD", "ROLES"}}
			for i, name := range c.Registers() {
				info := registerInfo{
					Offset:     i,
					ByteOffset: i * c.RegisterSize(),
					Name:       name,
					RawField:   raw[i],
					Roles:      r[i],
				}
				infos = append(infos, info)
				t.rows = append(t.rows, []string{
					strconv.Itoa(info.Offset),
					strconv.Itoa(info.ByteOffset),
					info.Name,
					info.RawField,
					strings.Join(info.Roles, ","),
				})
			}
			return opts.print(cmd.OutOrStdout(), infos, t)
		},
	}
}

type offsetInfo struct {
	Arch       string `json:"arch"`
	Name       string `json:"name"`
	Offset     int    `json:"offset"`
	ByteOffset int    `json:"byteOffset"`
}

func newOffsetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "offset REGISTER...",
		Short: "Resolve register names, canonical or pt_regs field spellings, to offsets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			var infos []offsetInfo
			t := &table{header: []string{"NAME", "OFFSET", "BYTES"}}
			for _, name := range args {
				off, err := arch.Resolve(c, name)
				if err != nil {
					return err
				}
				info := offsetInfo{Arch: c.Name(), Name: name, Offset: off, ByteOffset: off * c.RegisterSize()}
				infos = append(infos, info)
				t.rows = append(t.rows, []string{name, strconv.Itoa(off), strconv.Itoa(info.ByteOffset)})
			}
			return opts.print(cmd.OutOrStdout(), infos, t)
		},
	}
}

type argInfo struct {
	Index    int    `json:"index"`
	Register string `json:"register"`
	Offset   int    `json:"offset"`
}

type argsInfo struct {
	Arch string    `json:"arch"`
	Args []argInfo `json:"args"`
	// StackOffset is the slot distance from sp to the first stack argument
	StackOffset int `json:"stackOffset"`
}

func newArgsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "args",
		Short: "Show where function arguments are found",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			info := argsInfo{Arch: c.Name(), StackOffset: c.ArgStackOffset()}
			t := &table{header: []string{"ARG", "LOCATION", "OFFSET"}}
			regs := c.ArgRegisters()
			for i := 0; i <= c.MaxArg(); i++ {
				a := argInfo{Index: i, Register: regs[i], Offset: c.ArgOffset(i)}
				info.Args = append(info.Args, a)
				t.rows = append(t.rows, []string{strconv.Itoa(i), a.Register, strconv.Itoa(a.Offset)})
			}
			t.rows = append(t.rows, []string{
				fmt.Sprintf("%d+", c.MaxArg()+1),
				"stack",
				fmt.Sprintf("sp+%d", info.StackOffset),
			})
			return opts.print(cmd.OutOrStdout(), info, t)
		},
	}
}
