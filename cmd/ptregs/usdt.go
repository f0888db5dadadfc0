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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/ptregs/pkg/usdt"
)

func newUsdtCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "usdt",
		Short: "Resolve USDT probe arguments",
	}
	cmd.AddCommand(newUsdtArgsCmd(opts), newUsdtNotesCmd(opts))
	return cmd
}

func argRow(a *usdt.Arg) []string {
	reg, off := "-", "-"
	if a.Kind != usdt.ArgConst {
		reg = a.Reg
		off = strconv.Itoa(a.Offset)
	}
	return []string{
		a.Str,
		a.Kind.String(),
		strconv.Itoa(a.Size),
		strconv.FormatBool(a.Signed),
		reg,
		off,
		strconv.FormatInt(a.Value, 10),
	}
}

var argHeader = []string{"ARG", "KIND", "SIZE", "SIGNED", "REG", "OFFSET", "VALUE"}

func newUsdtArgsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "args ARG...",
		Short: "Parse USDT argument descriptions such as -4@%edi",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			var parsed []*usdt.Arg
			t := &table{header: argHeader}
			for _, s := range args {
				a, err := usdt.ParseArg(c, s)
				if err != nil {
					return err
				}
				parsed = append(parsed, a)
				t.rows = append(t.rows, argRow(a))
			}
			return opts.print(cmd.OutOrStdout(), parsed, t)
		},
	}
}

type probeInfo struct {
	usdt.Probe
	ParsedArgs []*usdt.Arg `json:"parsedArgs,omitempty"`
}

func newUsdtNotesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "notes FILE [PROVIDER:NAME]",
		Short: "List the USDT probes of an ELF file",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			var probes []usdt.Probe
			if len(args) == 2 {
				p, err := usdt.FindProbe(args[0], args[1])
				if err != nil {
					return err
				}
				probes = append(probes, *p)
			} else {
				probes, err = usdt.ReadNotes(args[0])
				if err != nil {
					return err
				}
			}

			var infos []probeInfo
			t := &table{header: []string{"PROVIDER", "NAME", "LOCATION", "SEMAPHORE", "ARGS"}}
			for _, p := range probes {
				parsed, err := usdt.ParseArgs(c, p.Args)
				if err != nil {
					log.Warnf("probe %s:%s: %s", p.Provider, p.Name, err)
				}
				infos = append(infos, probeInfo{Probe: p, ParsedArgs: parsed})
				t.rows = append(t.rows, []string{
					p.Provider,
					p.Name,
					fmt.Sprintf("0x%x", p.Location),
					fmt.Sprintf("0x%x", p.Semaphore),
					p.Args,
				})
			}
			return opts.print(cmd.OutOrStdout(), infos, t)
		},
	}
}
