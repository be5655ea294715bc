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

// Package validator checks that a requested hierarchy can fit its top-level block
// before any subdivision is attempted.
package validator

import (
	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

// TargetPrefix is the smallest environment pool the capacity check plans for.
// It is fixed and does not follow Request.EnvPrefixTarget.
const TargetPrefix = 18

// Validate runs the checks in order and returns the first failure as *ipam.Error.
// The capacity check is approximate: it ignores the environment prefix clamp
// the allocator applies, so the allocator still guards against overflow.
func Validate(req *ipam.Request) error {
	top, err := cidr.Parse(req.TopCIDR)
	if err != nil {
		return &ipam.Error{Kind: ipam.InvalidCidrFormat, CIDR: req.TopCIDR, Err: err}
	}
	if !top.IsPrivate() {
		return &ipam.Error{Kind: ipam.NotPrivateRange, CIDR: req.TopCIDR}
	}
	if len(req.Regions) == 0 {
		return &ipam.Error{Kind: ipam.NoRegionsSelected}
	}
	if req.IncludeBusinessUnits && len(req.BusinessUnits) == 0 {
		return &ipam.Error{Kind: ipam.NoBusinessUnits}
	}
	if req.IncludeEnvironments && len(req.Environments) == 0 {
		return &ipam.Error{Kind: ipam.NoEnvironments}
	}

	if required := top.Prefix + RequiredBits(req); required > TargetPrefix {
		return &ipam.Error{
			Kind:      ipam.InsufficientAddressSpace,
			CIDR:      req.TopCIDR,
			MinPrefix: top.Prefix - (required - TargetPrefix),
		}
	}
	return nil
}

// RequiredBits returns how many prefix bits the enabled levels need below the top block.
// Repeated keys are counted once, as the allocator places them once.
func RequiredBits(req *ipam.Request) int {
	n := cidr.BitsFor(distinct(req.Regions))
	if req.IncludeBusinessUnits {
		n += cidr.BitsFor(distinct(req.BusinessUnits))
	}
	if req.IncludeEnvironments {
		n += cidr.BitsFor(distinct(req.Environments))
	}
	return n
}

func distinct(keys []string) int {
	return len(ipam.MergeOrder(nil, keys))
}
