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

// Package allocator subdivides a top-level IPv4 block into region, business unit and
// environment pools of equal power-of-two size, assigned to siblings in caller order.
package allocator

import (
	"context"
	"strings"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

// step is one active level of the hierarchy
type step struct {
	level ipam.Level
	keys  []string
	// inherit gives the single child its parent's block (placeholder business unit)
	inherit bool
}

type allocator struct {
	ctx   context.Context
	req   ipam.Request
	steps []step
}

// Allocate computes the allocation tree for req. Any failure aborts the whole call.
// Tuning values left at zero take their defaults.
func Allocate(ctx context.Context, req *ipam.Request) (*Tree, error) {
	logger := log.FromContext(ctx).WithField("allocator", "Allocate")

	top, err := cidr.Parse(req.TopCIDR)
	if err != nil {
		return nil, &ipam.Error{Kind: ipam.InvalidCidrFormat, CIDR: req.TopCIDR, Err: err}
	}

	a := &allocator{
		ctx:   ctx,
		req:   req.WithDefaults(),
		steps: resolveSteps(req),
	}

	root := &Node{Key: top.String(), Level: ipam.Top, Block: top}
	if err := a.subdivide(root, nil, a.steps); err != nil {
		logger.Warnf("allocation of %v failed: %v", top, err)
		return nil, err
	}

	logger.Debugf("allocated %v for %d regions", top, len(root.Children))
	return &Tree{
		Top:                  root,
		IncludeBusinessUnits: a.req.IncludeBusinessUnits,
		IncludeEnvironments:  a.req.IncludeEnvironments,
		ReservedStrategy:     a.req.ReservedStrategy,
		ReservedPercentage:   a.req.ReservedPercentage,
		EnvPrefixTarget:      a.req.EnvPrefixTarget,
	}, nil
}

// resolveSteps resolves the ordering lists once and returns the active levels, root first
func resolveSteps(req *ipam.Request) []step {
	regions := ipam.WithPrimary(ipam.MergeOrder(req.RegionOrder, req.Regions), req.PrimaryRegion)
	steps := []step{{level: ipam.Regional, keys: regions}}

	switch {
	case req.IncludeBusinessUnits:
		steps = append(steps, step{level: ipam.BusinessUnit, keys: ipam.MergeOrder(req.BusinessUnitOrder, req.BusinessUnits)})
	case req.IncludeEnvironments:
		steps = append(steps, step{level: ipam.BusinessUnit, keys: []string{ipam.PlaceholderBusinessUnit}, inherit: true})
	}
	if req.IncludeEnvironments {
		steps = append(steps, step{level: ipam.Environment, keys: ipam.MergeOrder(req.EnvironmentOrder, req.Environments)})
	}
	return steps
}

func (a *allocator) subdivide(parent *Node, path []string, steps []step) error {
	if len(steps) == 0 {
		return nil
	}
	s := steps[0]

	if s.inherit {
		for _, key := range s.keys {
			child := &Node{Key: key, Level: s.level, Block: parent.Block, Placeholder: true}
			parent.Children = append(parent.Children, child)
			if err := a.subdivide(child, append(append([]string{}, path...), key), steps[1:]); err != nil {
				return err
			}
		}
		return nil
	}

	prefix := parent.Block.Prefix + cidr.BitsFor(len(s.keys))
	if s.level == ipam.Environment && prefix > a.req.EnvPrefixTarget {
		prefix = a.req.EnvPrefixTarget
	}

	for i, key := range s.keys {
		block, err := parent.Block.Subnet(prefix, uint64(i))
		if err != nil {
			return a.noSpace(key, s.level, path, parent.Block, err)
		}
		child := &Node{Key: key, Level: s.level, Block: block}
		if s.level == ipam.Environment {
			reserved, err := a.reserve(block)
			if err != nil {
				return a.noSpace(key, s.level, path, parent.Block, err)
			}
			child.Reserved = &reserved
		}
		parent.Children = append(parent.Children, child)

		if err := a.subdivide(child, append(append([]string{}, path...), key), steps[1:]); err != nil {
			return err
		}
	}
	return nil
}

// reserve returns the reserved sub-block of an environment block
func (a *allocator) reserve(env cidr.Block) (cidr.Block, error) {
	if a.req.ReservedStrategy == ipam.StrategyPercentage {
		extra := ReservedBits(a.req.ReservedPercentage)
		return env.Subnet(env.Prefix+extra, (uint64(1)<<uint(extra))-1)
	}
	return env.Subnet(env.Prefix+1, 1)
}

// ReservedBits returns how many prefix bits the percentage strategy splits an environment block by.
// The block is cut into clamp(100/percentage, 2, 10) parts, rounded up to a power of two.
func ReservedBits(percentage int) int {
	if percentage <= 0 {
		percentage = ipam.DefaultReservedPercentage
	}
	count := 100 / percentage
	if count < 2 {
		count = 2
	}
	if count > 10 {
		count = 10
	}
	if extra := cidr.BitsFor(count); extra > 1 {
		return extra
	}
	return 1
}

func (a *allocator) noSpace(key string, level ipam.Level, path []string, parent cidr.Block, cause error) error {
	log.FromContext(a.ctx).WithField("allocator", "subdivide").Debugf("%s %s does not fit %v: %v", level, key, parent, cause)
	return &ipam.Error{
		Kind:   ipam.NotEnoughSubnetSpace,
		Key:    key,
		Path:   strings.Join(path, PathSeparator),
		Level:  level,
		Parent: parent,
		Err:    cause,
	}
}
