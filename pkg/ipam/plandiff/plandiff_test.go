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

package plandiff_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/plandiff"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

func allocate(t *testing.T, req *ipam.Request) *allocator.Tree {
	tree, err := allocator.Allocate(log.WithLog(context.Background(), log.Empty()), req)
	require.NoError(t, err)
	return tree
}

func regionsOnly(regions ...string) *ipam.Request {
	req := ipam.NewRequest("10.0.0.0/8", regions...)
	req.IncludeBusinessUnits = false
	req.IncludeEnvironments = false
	return &req
}

func TestCompare_Identical(t *testing.T) {
	req := regionsOnly("us-east-1", "us-west-2")
	report, err := plandiff.Compare(allocate(t, req), allocate(t, req))
	require.NoError(t, err)
	require.True(t, report.Empty())
	require.False(t, report.Relabeling)
}

func TestCompare_Reorder(t *testing.T) {
	prev := allocate(t, regionsOnly("us-east-1", "us-west-2"))
	req := regionsOnly("us-east-1", "us-west-2")
	req.PrimaryRegion = "us-west-2"
	next := allocate(t, req)

	report, err := plandiff.Compare(prev, next)
	require.NoError(t, err)
	require.True(t, report.Relabeling)
	require.Equal(t, []plandiff.Change{
		{Type: "update", Path: "us-east-1", From: "10.0.0.0/9", To: "10.128.0.0/9"},
		{Type: "update", Path: "us-west-2", From: "10.128.0.0/9", To: "10.0.0.0/9"},
	}, report.Changes)
	require.Equal(t, "~ us-east-1 10.0.0.0/9 -> 10.128.0.0/9\n~ us-west-2 10.128.0.0/9 -> 10.0.0.0/9", report.String())
}

func TestCompare_AddRegion(t *testing.T) {
	prev := allocate(t, regionsOnly("us-east-1", "us-west-2"))
	next := allocate(t, regionsOnly("us-east-1", "us-west-2", "eu-west-1"))

	report, err := plandiff.Compare(prev, next)
	require.NoError(t, err)
	require.False(t, report.Relabeling)
	require.Equal(t, []plandiff.Change{
		{Type: "create", Path: "eu-west-1", To: "10.128.0.0/10"},
		{Type: "update", Path: "us-east-1", From: "10.0.0.0/9", To: "10.0.0.0/10"},
		{Type: "update", Path: "us-west-2", From: "10.128.0.0/9", To: "10.64.0.0/10"},
	}, report.Changes)
}

func TestCompare_FromNothing(t *testing.T) {
	report, err := plandiff.Compare(nil, allocate(t, regionsOnly("us-east-1")))
	require.NoError(t, err)
	require.Len(t, report.Changes, 2)
	require.Equal(t, "+ / 10.0.0.0/8", report.Changes[0].String())
}

func TestFlatten(t *testing.T) {
	req := ipam.NewRequest("10.192.0.0/12", "us-east-1")
	req.IncludeBusinessUnits = false
	req.Environments = []string{"prod"}

	require.Equal(t, map[string]string{
		"/":                               "10.192.0.0/12",
		"us-east-1":                       "10.192.0.0/12",
		"us-east-1/Default/prod":          "10.192.0.0/12",
		"us-east-1/Default/prod#reserved": "10.200.0.0/13",
	}, plandiff.Flatten(allocate(t, &req)))
}
