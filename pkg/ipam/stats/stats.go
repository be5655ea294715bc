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

// Package stats summarizes how much address space each level of an allocation tree holds
package stats

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

// Row is the summary of one level
type Row struct {
	Level       string  `json:"level"`
	TotalIPs    uint64  `json:"totalIps"`
	Count       int     `json:"count"`
	AverageSize uint64  `json:"averageSize"`
	Share       float64 `json:"share"`
}

// Summary is the allocation overview of a tree
type Summary struct {
	Rows []Row `json:"rows"`

	TotalIPs     uint64  `json:"totalIps"`
	AllocatedIPs uint64  `json:"allocatedIps"`
	Utilization  float64 `json:"utilization"`
	// Spare lists the parts of the top block no region uses
	Spare []string `json:"spare,omitempty"`
}

var levels = []struct {
	level ipam.Level
	label string
}{
	{ipam.Regional, "Regional"},
	{ipam.BusinessUnit, "Business Unit"},
	{ipam.Environment, "Environment"},
}

// Compute builds the summary of tree. Levels without pools are left out.
// Allocated space is what the regional pools cover.
func Compute(tree *allocator.Tree) *Summary {
	total := tree.Top.Block.Size()
	s := &Summary{
		Rows:     []Row{{Level: "Top", TotalIPs: total, Count: 1, AverageSize: total, Share: 100}},
		TotalIPs: total,
	}

	for _, l := range levels {
		sizes := sizesOf(tree, l.level)
		if len(sizes) == 0 {
			continue
		}
		sum := uint64(floats.Sum(sizes))
		s.Rows = append(s.Rows, Row{
			Level:       l.label,
			TotalIPs:    sum,
			Count:       len(sizes),
			AverageSize: sum / uint64(len(sizes)),
			Share:       percent(sum, total),
		})
		if l.level == ipam.Regional {
			s.AllocatedIPs = sum
		}
	}

	s.Utilization = percent(s.AllocatedIPs, total)

	regions := make([]cidr.Block, 0, len(tree.Regions()))
	for _, r := range tree.Regions() {
		regions = append(regions, r.Block)
	}
	for _, b := range cidr.Exclude(tree.Top.Block, regions...) {
		s.Spare = append(s.Spare, b.String())
	}
	return s
}

// Largest returns the size of the biggest pool at level, 0 when there is none
func Largest(tree *allocator.Tree, level ipam.Level) uint64 {
	sizes := sizesOf(tree, level)
	if len(sizes) == 0 {
		return 0
	}
	return uint64(floats.Max(sizes))
}

// Smallest returns the size of the smallest pool at level, 0 when there is none
func Smallest(tree *allocator.Tree, level ipam.Level) uint64 {
	sizes := sizesOf(tree, level)
	if len(sizes) == 0 {
		return 0
	}
	return uint64(floats.Min(sizes))
}

// WriteTable prints the summary as an aligned table
func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Pool Level\tTotal IPs\tAllocation Count\tAverage Size")
	for _, r := range s.Rows {
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", r.Level, FormatCount(r.TotalIPs), r.Count, FormatCount(r.AverageSize))
	}
	_, _ = fmt.Fprintf(tw, "\nTotal IP Space\t%s\n", FormatCount(s.TotalIPs))
	_, _ = fmt.Fprintf(tw, "Allocated IPs\t%s\n", FormatCount(s.AllocatedIPs))
	_, _ = fmt.Fprintf(tw, "Utilization\t%.1f%%\n", s.Utilization)
	if len(s.Spare) > 0 {
		_, _ = fmt.Fprintf(tw, "Spare blocks\t%s\n", strings.Join(s.Spare, ", "))
	}
	return tw.Flush()
}

// FormatCount renders an address count the short way: 1.05M, 4.10K, 512
func FormatCount(count uint64) string {
	switch {
	case count >= 1000000:
		return fmt.Sprintf("%.2fM", float64(count)/1000000)
	case count >= 1000:
		return fmt.Sprintf("%.2fK", float64(count)/1000)
	default:
		return strconv.FormatUint(count, 10)
	}
}

func sizesOf(tree *allocator.Tree, level ipam.Level) []float64 {
	var sizes []float64
	for _, b := range tree.Blocks(level) {
		sizes = append(sizes, float64(b.Size()))
	}
	return sizes
}

func percent(part, whole uint64) float64 {
	if whole == 0 || part == whole {
		return 100
	}
	return float64(part) / float64(whole) * 100
}
