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

package policy_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/policy"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

func input(t *testing.T, topCIDR string, regions ...string) *policy.Input {
	return inputWithTarget(t, ipam.DefaultEnvPrefixTarget, topCIDR, regions...)
}

func inputWithTarget(t *testing.T, envPrefixTarget int, topCIDR string, regions ...string) *policy.Input {
	req := ipam.NewRequest(topCIDR, regions...)
	req.IncludeBusinessUnits = false
	req.Environments = []string{"prod", "dev"}
	req.EnvPrefixTarget = envPrefixTarget
	tree, err := allocator.Allocate(log.WithLog(context.Background(), log.Empty()), &req)
	require.NoError(t, err)
	return policy.NewInput(tree)
}

func TestNewInput(t *testing.T) {
	in := input(t, "10.192.0.0/12", "us-east-1", "us-west-2")

	require.Equal(t, "10.192.0.0/12", in.TopCIDR)
	require.Equal(t, []string{"us-east-1", "us-west-2"}, in.Regions)
	require.Len(t, in.Pools, 6)
	require.Equal(t, policy.Pool{
		Path:         "us-east-1/Default/prod",
		Level:        "environment",
		CIDR:         "10.192.0.0/14",
		Prefix:       14,
		Size:         1 << 18,
		ReservedCIDR: "10.194.0.0/15",
	}, in.Pools[1])
}

func TestDefaults(t *testing.T) {
	policies, err := policy.Defaults()
	require.NoError(t, err)

	var names []string
	for _, p := range policies {
		names = append(names, p.Name())
	}
	require.Equal(t, []string{"environment_size", "private_top", "reserved_inside"}, names)

	require.NoError(t, policy.CheckAll(context.Background(), input(t, "10.192.0.0/12", "us-east-1"), policies...))
}

func TestDefaults_UndersizedEnvironment(t *testing.T) {
	policies, err := policy.Defaults()
	require.NoError(t, err)

	// the allocator leaves the target unclamped, so a /26 target yields /26 environments
	err = policy.CheckAll(context.Background(), inputWithTarget(t, 26, "10.0.0.0/24", "us-east-1", "us-west-2"), policies...)
	require.Error(t, err)
	require.True(t, errors.Is(err, policy.ErrViolation))
	require.Contains(t, err.Error(), "environment_size")

	err = policy.CheckAll(context.Background(), &policy.Input{
		TopCIDR: "10.0.0.0/24",
		Pools:   []policy.Pool{{Path: "us-east-1/Default/prod", Level: "environment", CIDR: "10.0.0.0/25", Prefix: 25}},
	}, policies...)
	require.Error(t, err)
	require.Contains(t, err.Error(), "environment_size")
}

func TestDefaults_IgnoreWorkingDirectory(t *testing.T) {
	const override = `
package ipam.private_top

import rego.v1

default valid := false
`
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "private_top.rego"), []byte(override), 0o600))
	t.Chdir(dir)

	policies, err := policy.Defaults()
	require.NoError(t, err)
	require.Len(t, policies, 3)
	require.NoError(t, policy.CheckAll(context.Background(), &policy.Input{TopCIDR: "10.0.0.0/8", Pools: []policy.Pool{}}, policies...))
}

func TestFromSource(t *testing.T) {
	const source = `
package ipam.regions

import rego.v1

default valid := false

valid if {
	count(input.regions) <= 2
}
`
	p := policy.FromSource("regions", source, "")

	require.NoError(t, p.Check(context.Background(), input(t, "10.0.0.0/8", "us-east-1", "us-west-2")))

	err := p.Check(context.Background(), input(t, "10.0.0.0/8", "us-east-1", "us-west-2", "eu-west-1"))
	require.True(t, errors.Is(err, policy.ErrViolation))
}

func TestFromFile(t *testing.T) {
	const source = `
package test

default valid = true
`
	policyPath := filepath.Join(t.TempDir(), "policy.rego")
	require.NoError(t, os.WriteFile(policyPath, []byte(source), 0o600))

	p, err := policy.FromFile(policyPath)
	require.NoError(t, err)
	require.Equal(t, "policy", p.Name())
	require.NoError(t, p.Check(context.Background(), nil))
}

func TestFromFile_Embedded(t *testing.T) {
	p, err := policy.FromFile("private_top.rego")
	require.NoError(t, err)
	require.NoError(t, p.Check(context.Background(), &policy.Input{TopCIDR: "192.168.0.0/16"}))
	require.True(t, errors.Is(p.Check(context.Background(), &policy.Input{TopCIDR: "8.8.0.0/16"}), policy.ErrViolation))

	_, err = policy.FromFile("missing.rego")
	require.Error(t, err)
}

func TestCheck_BrokenPolicies(t *testing.T) {
	err := policy.FromSource("nopkg", "default valid = true", "").Check(context.Background(), nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missed package")

	err = policy.FromSource("number", "package test\n\nvalid = 1", "").Check(context.Background(), nil)
	require.Error(t, err)
	require.False(t, errors.Is(err, policy.ErrViolation))
}
