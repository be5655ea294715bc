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

package verify_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/verify"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

func allocate(t *testing.T) *allocator.Tree {
	req := ipam.NewRequest("10.0.0.0/8", "us-east-1", "us-west-2", "eu-west-1")
	req.BusinessUnits = []string{"abc", "xyz"}
	req.Environments = []string{"core", "prod", "dev"}
	tree, err := allocator.Allocate(context.Background(), &req)
	require.NoError(t, err)
	return tree
}

func TestTree_Valid(t *testing.T) {
	require.NoError(t, verify.Tree(allocate(t)))
}

func TestTree_Overlap(t *testing.T) {
	tree := allocate(t)
	tree.Lookup("us-west-2").Block = tree.Lookup("us-east-1").Block
	err := verify.Tree(tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "child us-west-2 10.0.0.0/10 overlaps a sibling")
}

func TestTree_Outside(t *testing.T) {
	tree := allocate(t)
	tree.Lookup("us-east-1", "abc").Block = cidr.MustParse("10.128.0.0/11")
	err := verify.Tree(tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "is outside")
}

func TestTree_UnequalSiblings(t *testing.T) {
	tree := allocate(t)
	tree.Lookup("us-east-1", "xyz").Block = cidr.MustParse("10.32.0.0/12")
	require.Error(t, verify.Tree(tree))
}

func TestTree_ReservedOutside(t *testing.T) {
	tree := allocate(t)
	bad := cidr.MustParse("192.168.0.0/24")
	tree.Lookup("us-east-1", "abc", "dev").Reserved = &bad
	err := verify.Tree(tree)
	require.Error(t, err)
	require.Contains(t, err.Error(), "us-east-1/abc/dev: reserved block")
}

func TestUtilization(t *testing.T) {
	u := verify.Utilization(allocate(t))
	// 3 regions take 3 of 4 /10 children
	require.InDelta(t, 0.75, u[""], 1e-9)
	require.InDelta(t, 1.0, u["us-east-1"], 1e-9)
	require.InDelta(t, 0.75, u["us-east-1/abc"], 1e-9)
	_, leaf := u["us-east-1/abc/core"]
	require.False(t, leaf)
}
