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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/ptregs/internal/version"
	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

func newVersionCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetBuildInfo()
			if host, err := arch.Host(); err == nil {
				log.Debugf("host architecture: %s", host.Name())
			}

			t := &table{
				header: []string{"VERSION", "GO VERSION", "COMPILER", "PLATFORM"},
				rows:   [][]string{{info.Version, info.GoVersion, info.Compiler, info.Platform}},
			}
			if err := opts.print(cmd.OutOrStdout(), info, t); err != nil {
				return fmt.Errorf("printing version: %w", err)
			}
			return nil
		},
	}
}
