// Copyright (c) 2026 Cisco and/or its affiliates.
//
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at:
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package flags

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvReplacer - replacer that replaces '-' with '_'
var EnvReplacer = strings.NewReplacer("-", "_")

// KeyToEnvVariable - translate a flag key to its environment variable
func KeyToEnvVariable(key string) string {
	return fmt.Sprintf("%s_%s", EnvPrefix, EnvReplacer.Replace(strings.ToUpper(key)))
}

// FromEnv - wires up the provided flags with viper and returns a function that when invoked
// copies every non empty matching environment variable into its flag.
// Flags given on the command line afterwards still win.
func FromEnv(envPrefix string, envReplacer *strings.Replacer, flagSet *pflag.FlagSet) func() error {
	v := viper.New()
	_ = v.BindPFlags(flagSet)
	v.SetEnvPrefix(envPrefix)
	if envReplacer != nil {
		v.SetEnvKeyReplacer(envReplacer)
	}
	v.AutomaticEnv()
	return func() error {
		var err error
		flagSet.VisitAll(func(f *pflag.Flag) {
			if err != nil || !v.IsSet(f.Name) || v.GetString(f.Name) == "" {
				return
			}
			if setErr := flagSet.Set(f.Name, v.GetString(f.Name)); setErr != nil {
				err = errors.Wrapf(setErr, "invalid value of %s", KeyToEnvVariable(f.Name))
			}
		})
		return err
	}
}
