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
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

const (
	OutputModeColumns = "columns"
	OutputModeJSON    = "json"
	OutputModeYAML    = "yaml"
)

var SupportedOutputModes = []string{OutputModeColumns, OutputModeJSON, OutputModeYAML}

// OutputConfig contains the flags that describe how to print results
type OutputConfig struct {
	// OutputMode specifies the format output should be printed
	OutputMode string

	// Verbose prints additional information
	Verbose bool
}

func (config *OutputConfig) ParseOutputConfig() error {
	if config.Verbose {
		log.StandardLogger().SetLevel(log.DebugLevel)
	}

	switch config.OutputMode {
	case OutputModeColumns, OutputModeJSON, OutputModeYAML:
		return nil
	default:
		return fmt.Errorf("invalid argument '--output / -o': %q is not a valid output format (one of: %s)",
			config.OutputMode, strings.Join(SupportedOutputModes, ", "))
	}
}

// table is the columns rendering of a result; obj is marshalled for the
// other modes.
type table struct {
	header []string
	rows   [][]string
}

func (config *OutputConfig) print(w io.Writer, obj any, t *table) error {
	switch config.OutputMode {
	case OutputModeJSON:
		b, err := json.MarshalIndent(obj, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling output: %w", err)
		}
		fmt.Fprintf(w, "%s\n", b)
	case OutputModeYAML:
		b, err := yaml.Marshal(obj)
		if err != nil {
			return fmt.Errorf("marshalling output: %w", err)
		}
		fmt.Fprintf(w, "%s", b)
	default:
		tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(t.header, "\t"))
		for _, row := range t.rows {
			fmt.Fprintln(tw, strings.Join(row, "\t"))
		}
		return tw.Flush()
	}
	return nil
}
