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

// Package verify checks the structural invariants of an allocation tree:
// children lie inside their parent, siblings are disjoint and of equal size,
// and every reserved block lies inside its environment block.
package verify

import (
	"strings"

	"github.com/RoaringBitmap/roaring"
	"github.com/pkg/errors"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

func bitmapOf(b cidr.Block) *roaring.Bitmap {
	bm := roaring.New()
	bm.AddRange(uint64(b.Base), uint64(b.Last())+1)
	return bm
}

// Tree returns an error describing the first broken invariant of tree, or nil
func Tree(tree *allocator.Tree) error {
	var err error
	tree.Walk(func(path []string, n *allocator.Node) {
		if err != nil {
			return
		}
		err = node(path, n)
	})
	return err
}

func node(path []string, n *allocator.Node) error {
	name := strings.Join(path, allocator.PathSeparator)
	if name == "" {
		name = n.Key
	}

	parent := bitmapOf(n.Block)
	if n.Reserved != nil {
		if !roaring.AndNot(bitmapOf(*n.Reserved), parent).IsEmpty() {
			return errors.Errorf("%s: reserved block %v is outside %v", name, *n.Reserved, n.Block)
		}
	}

	seen := roaring.New()
	for _, c := range n.Children {
		if c.Block.Size() != n.Children[0].Block.Size() {
			return errors.Errorf("%s: child %s is %v, siblings are /%d", name, c.Key, c.Block, n.Children[0].Block.Prefix)
		}
		child := bitmapOf(c.Block)
		if !roaring.AndNot(child, parent).IsEmpty() {
			return errors.Errorf("%s: child %s %v is outside %v", name, c.Key, c.Block, n.Block)
		}
		if c.Placeholder {
			continue
		}
		if seen.Intersects(child) {
			return errors.Errorf("%s: child %s %v overlaps a sibling", name, c.Key, c.Block)
		}
		seen.Or(child)
	}
	return nil
}

// Utilization returns the share of each node's block handed to its children, keyed by node path.
// Leaf nodes are left out.
func Utilization(tree *allocator.Tree) map[string]float64 {
	result := make(map[string]float64)
	tree.Walk(func(path []string, n *allocator.Node) {
		if len(n.Children) == 0 {
			return
		}
		used := roaring.New()
		for _, c := range n.Children {
			used.Or(bitmapOf(c.Block))
		}
		result[strings.Join(path, allocator.PathSeparator)] = float64(used.GetCardinality()) / float64(n.Block.Size())
	})
	return result
}
