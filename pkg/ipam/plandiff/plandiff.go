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

// Package plandiff reports how pool assignments moved between two plans
package plandiff

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/r3labs/diff"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
)

// ReservedSuffix marks reserved blocks in change paths
const ReservedSuffix = "#reserved"

// Change is one pool whose block was added, removed or moved
type Change struct {
	Type string `json:"type"`
	Path string `json:"path"`
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

func (c Change) String() string {
	switch c.Type {
	case diff.CREATE:
		return fmt.Sprintf("+ %s %s", c.Path, c.To)
	case diff.DELETE:
		return fmt.Sprintf("- %s %s", c.Path, c.From)
	default:
		return fmt.Sprintf("~ %s %s -> %s", c.Path, c.From, c.To)
	}
}

// Report is the difference between two plans
type Report struct {
	Changes []Change `json:"changes"`
	// Relabeling is true when both plans use the same set of blocks and only the owners moved
	Relabeling bool `json:"relabeling"`
}

// Empty reports whether the plans are identical
func (r *Report) Empty() bool {
	return len(r.Changes) == 0
}

func (r *Report) String() string {
	lines := make([]string, 0, len(r.Changes))
	for _, c := range r.Changes {
		lines = append(lines, c.String())
	}
	return strings.Join(lines, "\n")
}

// Compare diffs the pools of prev and next, sorted by path. A nil prev compares against an empty plan.
func Compare(prev, next *allocator.Tree) (*Report, error) {
	from, to := Flatten(prev), Flatten(next)
	changelog, err := diff.Diff(from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to diff plans")
	}

	report := &Report{Changes: make([]Change, 0, len(changelog))}
	for _, c := range changelog {
		report.Changes = append(report.Changes, Change{
			Type: c.Type,
			Path: strings.Join(c.Path, "."),
			From: str(c.From),
			To:   str(c.To),
		})
	}
	sort.Slice(report.Changes, func(i, j int) bool { return report.Changes[i].Path < report.Changes[j].Path })
	report.Relabeling = len(report.Changes) > 0 && sameBlocks(from, to)
	return report, nil
}

// Flatten maps every pool path to its CIDR. Reserved blocks get ReservedSuffix, placeholder nodes are skipped.
func Flatten(tree *allocator.Tree) map[string]string {
	result := map[string]string{}
	if tree == nil {
		return result
	}
	tree.Walk(func(path []string, n *allocator.Node) {
		if n.Placeholder {
			return
		}
		key := strings.Join(path, allocator.PathSeparator)
		if len(path) == 0 {
			key = allocator.PathSeparator
		}
		result[key] = n.CIDR()
		if n.Reserved != nil {
			result[key+ReservedSuffix] = n.Reserved.String()
		}
	})
	return result
}

func sameBlocks(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	counts := make(map[string]int, len(a))
	for _, v := range a {
		counts[v]++
	}
	for _, v := range b {
		counts[v]--
	}
	for _, n := range counts {
		if n != 0 {
			return false
		}
	}
	return true
}

func str(v interface{}) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}
