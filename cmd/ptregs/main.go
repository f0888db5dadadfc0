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
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/inspektor-gadget/ptregs/pkg/arch"
)

type rootOptions struct {
	OutputConfig

	configPath string
	arch       string
}

// catalog returns the catalog selected with --arch, the host one otherwise.
func (o *rootOptions) catalog() (arch.Catalog, error) {
	if o.arch == "" {
		return arch.Host()
	}
	return arch.Get(o.arch)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           "ptregs",
		Short:         "Inspect where probes find registers in struct pt_regs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initConfig(opts.configPath, cmd.Root().PersistentFlags()); err != nil {
				return err
			}
			return opts.ParseOutputConfig()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file to use")
	flags.StringVarP(&opts.arch, "arch", "a", "", "architecture to describe (default: the host one)")
	flags.StringVarP(&opts.OutputMode, "output", "o", OutputModeColumns, "Output format. One of: columns, json, yaml")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Print debug information")

	rootCmd.AddCommand(
		newArchesCmd(opts),
		newRegistersCmd(opts),
		newOffsetCmd(opts),
		newArgsCmd(opts),
		newWatchpointCmd(opts),
		newUsdtCmd(opts),
		newVersionCmd(opts),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}
