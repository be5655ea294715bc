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

package stats_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/stats"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

func allocate(t *testing.T, req *ipam.Request) *allocator.Tree {
	tree, err := allocator.Allocate(log.WithLog(context.Background(), log.Empty()), req)
	require.NoError(t, err)
	return tree
}

func TestCompute(t *testing.T) {
	req := ipam.NewRequest("10.192.0.0/12", "us-east-1", "us-west-2", "eu-west-1")
	req.BusinessUnits = []string{"abc", "xyz"}
	req.Environments = []string{"prod", "dev"}

	s := stats.Compute(allocate(t, &req))

	require.Equal(t, []stats.Row{
		{Level: "Top", TotalIPs: 1 << 20, Count: 1, AverageSize: 1 << 20, Share: 100},
		{Level: "Regional", TotalIPs: 3 << 18, Count: 3, AverageSize: 1 << 18, Share: 75},
		{Level: "Business Unit", TotalIPs: 6 << 17, Count: 6, AverageSize: 1 << 17, Share: 75},
		{Level: "Environment", TotalIPs: 12 << 16, Count: 12, AverageSize: 1 << 16, Share: 75},
	}, s.Rows)
	require.Equal(t, uint64(1<<20), s.TotalIPs)
	require.Equal(t, uint64(3<<18), s.AllocatedIPs)
	require.InDelta(t, 75.0, s.Utilization, 1e-9)
	require.Equal(t, []string{"10.204.0.0/14"}, s.Spare)
}

func TestCompute_PlaceholderNotCounted(t *testing.T) {
	req := ipam.NewRequest("10.192.0.0/12", "us-east-1", "us-west-2")
	req.IncludeBusinessUnits = false
	req.Environments = []string{"prod", "dev"}

	s := stats.Compute(allocate(t, &req))

	var levels []string
	for _, r := range s.Rows {
		levels = append(levels, r.Level)
	}
	require.Equal(t, []string{"Top", "Regional", "Environment"}, levels)
	require.InDelta(t, 100.0, s.Utilization, 1e-9)
	require.Empty(t, s.Spare)
}

func TestLargestSmallest(t *testing.T) {
	req := ipam.NewRequest("10.0.0.0/16", "us-east-1")
	req.IncludeBusinessUnits = false
	req.IncludeEnvironments = false
	tree := allocate(t, &req)

	require.Equal(t, uint64(1<<16), stats.Largest(tree, ipam.Regional))
	require.Equal(t, uint64(1<<16), stats.Smallest(tree, ipam.Regional))
	require.Zero(t, stats.Largest(tree, ipam.Environment))
}

func TestFormatCount(t *testing.T) {
	for count, want := range map[uint64]string{
		0:        "0",
		999:      "999",
		1000:     "1.00K",
		4096:     "4.10K",
		65536:    "65.54K",
		1048576:  "1.05M",
		16777216: "16.78M",
	} {
		require.Equal(t, want, stats.FormatCount(count), count)
	}
}

func TestWriteTable(t *testing.T) {
	req := ipam.NewRequest("10.0.0.0/16", "us-east-1", "us-west-2")
	req.IncludeBusinessUnits = false
	req.IncludeEnvironments = false

	var buf bytes.Buffer
	require.NoError(t, stats.Compute(allocate(t, &req)).WriteTable(&buf))
	require.Contains(t, buf.String(), "Regional")
	require.Contains(t, buf.String(), "65.54K")
	require.Regexp(t, `Utilization\s+100\.0%`, buf.String())
}

func TestWriteHierarchy(t *testing.T) {
	req := ipam.NewRequest("10.192.0.0/12", "us-east-1", "us-west-2")
	req.IncludeBusinessUnits = false
	req.Environments = []string{"prod", "dev"}

	var b bytes.Buffer
	require.NoError(t, stats.WriteHierarchy(&b, allocate(t, &req)))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 8)
	require.Equal(t, []string{"Level", "Pool", "CIDR", "IP", "Range", "Usable", "IPs", "Reserved"}, strings.Fields(lines[0]))
	require.Equal(t, []string{"top", "top", "10.192.0.0/12", "10.192.0.0", "-", "10.207.255.255", "1.05M", "-"}, strings.Fields(lines[1]))
	require.Equal(t, []string{"region", "us-east-1", "10.192.0.0/13", "10.192.0.0", "-", "10.199.255.255", "524.29K", "-"}, strings.Fields(lines[2]))
	require.Equal(t, []string{"environment", "us-east-1/Default/prod", "10.192.0.0/14", "10.192.0.0", "-", "10.195.255.255", "262.14K", "10.194.0.0/15"}, strings.Fields(lines[3]))
	require.Equal(t, []string{"environment", "us-west-2/Default/dev", "10.204.0.0/14", "10.204.0.0", "-", "10.207.255.255", "262.14K", "10.206.0.0/15"}, strings.Fields(lines[7]))
}
