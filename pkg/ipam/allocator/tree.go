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

package allocator

import (
	"net"
	"strings"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

// PathSeparator joins keys into a node path, e.g. "us-east-1/abc/prod"
const PathSeparator = "/"

// Node is one pool of the allocation tree
type Node struct {
	Key   string
	Level ipam.Level
	Block cidr.Block

	// Reserved is set on environment nodes only
	Reserved *cidr.Block

	// Placeholder marks the "Default" business unit used when the BU level is off.
	// It shares its region's block.
	Placeholder bool

	Children []*Node
}

// CIDR returns the node block in CIDR notation
func (n *Node) CIDR() string {
	return n.Block.String()
}

// NetworkAddress returns the first address of the node block
func (n *Node) NetworkAddress() net.IP {
	return n.Block.Network()
}

// BroadcastAddress returns the last address of the node block
func (n *Node) BroadcastAddress() net.IP {
	return n.Block.Broadcast()
}

// UsableIPs returns how many addresses the pool can hand out. IPAM pools allocate the whole block.
func (n *Node) UsableIPs() uint64 {
	return n.Block.Size()
}

// Child returns the direct child with the given key
func (n *Node) Child(key string) *Node {
	for _, c := range n.Children {
		if c.Key == key {
			return c
		}
	}
	return nil
}

// Tree is the immutable result of one allocation
type Tree struct {
	Top *Node

	IncludeBusinessUnits bool
	IncludeEnvironments  bool

	ReservedStrategy   ipam.ReservedStrategy
	ReservedPercentage int
	EnvPrefixTarget    int
}

// Regions returns the region nodes in allocation order
func (t *Tree) Regions() []*Node {
	return t.Top.Children
}

// RegionKeys returns the region keys in allocation order
func (t *Tree) RegionKeys() []string {
	keys := make([]string, 0, len(t.Top.Children))
	for _, r := range t.Top.Children {
		keys = append(keys, r.Key)
	}
	return keys
}

// BusinessUnits returns the business unit nodes of region, nil when the level is off
func (t *Tree) BusinessUnits(region string) []*Node {
	if !t.IncludeBusinessUnits {
		return nil
	}
	if r := t.Top.Child(region); r != nil {
		return r.Children
	}
	return nil
}

// Groups returns the nodes environments hang under for region: its business units,
// or the single placeholder when the BU level is off. Nil when environments are off.
func (t *Tree) Groups(region string) []*Node {
	if !t.IncludeEnvironments {
		return nil
	}
	if r := t.Top.Child(region); r != nil {
		return r.Children
	}
	return nil
}

// Environments returns the environment nodes under region and business unit
// (ipam.PlaceholderBusinessUnit when the BU level is off)
func (t *Tree) Environments(region, bu string) []*Node {
	if n := t.Lookup(region, bu); n != nil && t.IncludeEnvironments {
		return n.Children
	}
	return nil
}

// Lookup returns the node at path, starting below the top node
func (t *Tree) Lookup(path ...string) *Node {
	n := t.Top
	for _, key := range path {
		if n = n.Child(key); n == nil {
			return nil
		}
	}
	return n
}

// Walk visits every node depth first in allocation order. path excludes the top node.
func (t *Tree) Walk(fn func(path []string, n *Node)) {
	var walk func(path []string, n *Node)
	walk = func(path []string, n *Node) {
		fn(path, n)
		for _, c := range n.Children {
			walk(append(append([]string{}, path...), c.Key), c)
		}
	}
	walk(nil, t.Top)
}

// Blocks returns the blocks assigned at level keyed by node path.
// Placeholder nodes are skipped.
func (t *Tree) Blocks(level ipam.Level) map[string]cidr.Block {
	result := make(map[string]cidr.Block)
	t.Walk(func(path []string, n *Node) {
		if n.Level == level && !n.Placeholder {
			result[strings.Join(path, PathSeparator)] = n.Block
		}
	})
	return result
}

// ReservedBlocks returns the reserved block of every environment keyed by node path
func (t *Tree) ReservedBlocks() map[string]cidr.Block {
	result := make(map[string]cidr.Block)
	t.Walk(func(path []string, n *Node) {
		if n.Reserved != nil {
			result[strings.Join(path, PathSeparator)] = *n.Reserved
		}
	})
	return result
}
