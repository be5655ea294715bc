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
	"bytes"
	"encoding/csv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const keySliceType = "key-slice"

// keySliceValue is a comma separated list of names. Blanks around names are trimmed and empty names dropped.
type keySliceValue struct {
	values  *[]string
	changed bool
}

// NewKeySliceValue - create new value for lists of names
func NewKeySliceValue(p *[]string) pflag.Value {
	*p = []string{}
	return &keySliceValue{values: p}
}

func readKeys(val string) ([]string, error) {
	if strings.TrimSpace(val) == "" {
		return []string{}, nil
	}
	fields, err := csv.NewReader(strings.NewReader(val)).Read()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse list %q", val)
	}
	return cleanKeys(fields), nil
}

func cleanKeys(fields []string) []string {
	result := make([]string, 0, len(fields))
	for _, f := range fields {
		if f = strings.TrimSpace(f); f != "" {
			result = append(result, f)
		}
	}
	return result
}

// String - return the list in CSV form
func (s *keySliceValue) String() string {
	b := &bytes.Buffer{}
	w := csv.NewWriter(b)
	if err := w.Write(*s.values); err != nil {
		return ""
	}
	w.Flush()
	return strings.TrimSuffix(b.String(), "\n")
}

// Set - the first call replaces the default, later calls append
func (s *keySliceValue) Set(val string) error {
	keys, err := readKeys(val)
	if err != nil {
		return err
	}
	if !s.changed {
		*s.values = keys
		s.changed = true
		return nil
	}
	*s.values = append(*s.values, keys...)
	return nil
}

// Type - return type == key-slice
func (s *keySliceValue) Type() string {
	return keySliceType
}

// Append - append one name
func (s *keySliceValue) Append(val string) error {
	keys := cleanKeys([]string{val})
	if len(keys) == 0 {
		return errors.Errorf("empty name %q", val)
	}
	*s.values = append(*s.values, keys...)
	s.changed = true
	return nil
}

// Replace - replace the whole list
func (s *keySliceValue) Replace(val []string) error {
	*s.values = cleanKeys(val)
	s.changed = true
	return nil
}

// GetSlice - return the names
func (s *keySliceValue) GetSlice() []string {
	return append([]string(nil), *s.values...)
}

// KeySliceVarP - defines a list of names flag with specified name, shorthand, default value, and usage string.
func KeySliceVarP(flags *pflag.FlagSet, p *[]string, name, shorthand string, value []string, usage string) {
	v := NewKeySliceValue(p)
	*p = append(*p, value...)
	flags.VarP(v, name, shorthand, usage)
}

// GetKeySlice - return the names of flag name
func GetKeySlice(flags *pflag.FlagSet, name string) ([]string, error) {
	f := flags.Lookup(name)
	if f == nil {
		return nil, errors.Errorf("flag %q is not defined", name)
	}
	v, ok := f.Value.(*keySliceValue)
	if !ok {
		return nil, errors.Errorf("flag %q has type %s, not %s", name, f.Value.Type(), keySliceType)
	}
	return v.GetSlice(), nil
}
