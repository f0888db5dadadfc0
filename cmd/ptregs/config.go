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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PTREGS"

func newConfig(path string) *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	if path != "" {
		v.SetConfigFile(path)
		return v
	}

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "ptregs"))
	}
	return v
}

// initConfig reads the config file and sets the flags the user didn't
// set on the command line from it.
func initConfig(configPath string, flags *pflag.FlagSet) error {
	config := newConfig(configPath)

	// we do not want to fail if the config file is not found unless it is explicitly provided
	if err := config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("reading config: %w", err)
		}
	} else {
		log.Debugf("using config file %s", config.ConfigFileUsed())
	}

	var flagErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" {
			return
		}

		if err := setFlagFromConfig(config, f); err != nil {
			flagErr = errors.Join(flagErr, err)
		}
	})

	return flagErr
}

// setFlagFromConfig sets the flag from the config if the flag is not changed
// The precedence order (coming from viper): flag > env > config > default
func setFlagFromConfig(config *viper.Viper, f *pflag.Flag) error {
	// bind env vars to the flags, if set will override the config file values
	if err := config.BindEnv(f.Name); err != nil {
		return fmt.Errorf("binding env var %s: %w", f.Name, err)
	}

	if !f.Changed && config.IsSet(f.Name) {
		val := config.GetString(f.Name)
		if val == f.DefValue {
			return nil
		}

		if err := f.Value.Set(val); err != nil {
			return fmt.Errorf("setting flag %s: %w", f.Name, err)
		}
	}
	return nil
}
