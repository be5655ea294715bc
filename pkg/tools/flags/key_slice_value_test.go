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

package flags_test

import (
	"fmt"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/flags"
)

const fmtArg = "--ks=%s"

func setUpKSFlagSet(ksp *[]string, defaults ...string) *pflag.FlagSet {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.KeySliceVarP(f, ksp, "ks", "k", defaults, "Comma separated list!")
	return f
}

func TestEmptyKS(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks)
	require.NoError(t, f.Parse([]string{}))
	require.Empty(t, ks)

	require.NoError(t, f.Parse([]string{"--ks="}))
	got, err := flags.GetKeySlice(f, "ks")
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestKSTrimsAndDropsEmpty(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks)
	require.NoError(t, f.Parse([]string{fmt.Sprintf(fmtArg, " us-east-1 ,, us-west-2,")}))
	require.Equal(t, []string{"us-east-1", "us-west-2"}, ks)
}

func TestKSDefault(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks, "prod", "dev")
	require.NoError(t, f.Parse([]string{}))
	require.Equal(t, []string{"prod", "dev"}, ks)

	require.NoError(t, f.Parse([]string{fmt.Sprintf(fmtArg, "qa")}))
	require.Equal(t, []string{"qa"}, ks)
}

func TestKSCalledTwice(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks)
	require.NoError(t, f.Parse([]string{fmt.Sprintf(fmtArg, "a,b"), fmt.Sprintf(fmtArg, "c")}))
	require.Equal(t, []string{"a", "b", "c"}, ks)
}

func TestKSWithComma(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks)
	require.NoError(t, f.Parse([]string{fmt.Sprintf(fmtArg, `"Sales, EMEA",Ops`)}))
	require.Equal(t, []string{"Sales, EMEA", "Ops"}, ks)
	require.Equal(t, `"Sales, EMEA",Ops`, f.Lookup("ks").Value.String())
}

func TestKSAsSliceValue(t *testing.T) {
	var ks []string
	f := setUpKSFlagSet(&ks)
	require.NoError(t, f.Parse([]string{fmt.Sprintf(fmtArg, "one,two")}))

	f.VisitAll(func(f *pflag.Flag) {
		if val, ok := f.Value.(pflag.SliceValue); ok {
			_ = val.Replace([]string{" three "})
		}
	})
	require.Equal(t, []string{"three"}, ks)
}

func TestGetKeySlice_WrongType(t *testing.T) {
	f := pflag.NewFlagSet("test", pflag.ContinueOnError)
	f.String("name", "", "")
	_, err := flags.GetKeySlice(f, "name")
	require.Error(t, err)
	_, err = flags.GetKeySlice(f, "missing")
	require.Error(t, err)
}
