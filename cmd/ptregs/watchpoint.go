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

	"github.com/inspektor-gadget/ptregs/pkg/watchpoint"
)

type watchpointInfo struct {
	Arch string `json:"arch"`
	Spec string `json:"spec"`
	*watchpoint.Watchpoint
}

func newWatchpointCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watchpoint MODE|ADDR:LEN[:MODE]...",
		Short: "Check watchpoint modes or full watchpoint specs against an architecture",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.catalog()
			if err != nil {
				return err
			}

			var infos []watchpointInfo
			t := &table{header: []string{"SPEC", "ADDR", "LEN", "MODE"}}
			for _, spec := range args {
				var wp *watchpoint.Watchpoint
				if strings.Contains(spec, ":") {
					wp, err = watchpoint.Parse(c, spec)
				} else {
					var mode watchpoint.Mode
					mode, err = watchpoint.ValidateMode(c, spec)
					wp = &watchpoint.Watchpoint{Mode: mode}
				}
				if err != nil {
					return err
				}

				infos = append(infos, watchpointInfo{Arch: c.Name(), Spec: spec, Watchpoint: wp})
				addr, length := "-", "-"
				if wp.Addr != 0 {
					addr = fmt.Sprintf("0x%x", wp.Addr)
					length = strconv.FormatUint(wp.Len, 10)
				}
				t.rows = append(t.rows, []string{spec, addr, length, string(wp.Mode)})
			}
			return opts.print(cmd.OutOrStdout(), infos, t)
		},
	}
}
