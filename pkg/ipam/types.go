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

// Package ipam holds the types shared by the IPAM planner: the request, hierarchy levels,
// reservation strategies, ordering helpers and typed errors.
package ipam

import (
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultEnvPrefixTarget - default longest prefix an environment pool may get
	DefaultEnvPrefixTarget = 18
	// MinEnvPrefixTarget - smallest environment prefix target a caller may choose
	MinEnvPrefixTarget = 16
	// MaxEnvPrefixTarget - largest environment prefix target a caller may choose
	MaxEnvPrefixTarget = 24

	// DefaultReservedPercentage - percentage used when the percentage strategy gets none
	DefaultReservedPercentage = 25
	// MinReservedPercentage - lower bound of the reserved percentage
	MinReservedPercentage = 10
	// MaxReservedPercentage - upper bound of the reserved percentage
	MaxReservedPercentage = 50

	// PlaceholderBusinessUnit - business unit key environments hang under when the BU level is off
	PlaceholderBusinessUnit = "Default"
)

// Level is a tier of the allocation hierarchy
type Level int

// Hierarchy levels, from the root down
const (
	Top Level = iota
	Regional
	BusinessUnit
	Environment
)

func (l Level) String() string {
	switch l {
	case Top:
		return "top"
	case Regional:
		return "region"
	case BusinessUnit:
		return "business unit"
	case Environment:
		return "environment"
	}
	return "unknown"
}

// ReservedStrategy selects how the reserved sub-block of an environment pool is sized
type ReservedStrategy string

const (
	// StrategyHalf reserves the upper half of every environment block
	StrategyHalf ReservedStrategy = "half"
	// StrategyPercentage reserves the last of N equal children, N derived from a percentage
	StrategyPercentage ReservedStrategy = "percentage"
)

// ParseReservedStrategy accepts both the short names and the long labels ("Half of subnet", "Custom percentage")
func ParseReservedStrategy(s string) (ReservedStrategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(StrategyHalf), "half of subnet":
		return StrategyHalf, nil
	case string(StrategyPercentage), "custom percentage", "custom":
		return StrategyPercentage, nil
	}
	return "", errors.Errorf("unknown reserved strategy %q", s)
}

// Request is everything needed to plan one IPAM hierarchy
type Request struct {
	TopCIDR       string   `json:"topCidr"`
	Regions       []string `json:"regions"`
	BusinessUnits []string `json:"businessUnits,omitempty"`
	Environments  []string `json:"environments,omitempty"`

	RegionOrder       []string `json:"regionOrder,omitempty"`
	BusinessUnitOrder []string `json:"businessUnitOrder,omitempty"`
	EnvironmentOrder  []string `json:"environmentOrder,omitempty"`

	IncludeBusinessUnits bool   `json:"includeBusinessUnits"`
	IncludeEnvironments  bool   `json:"includeEnvironments"`
	PrimaryRegion        string `json:"primaryRegion,omitempty"`

	EnvPrefixTarget    int              `json:"envPrefixTarget,omitempty"`
	ReservedStrategy   ReservedStrategy `json:"reservedStrategy,omitempty"`
	ReservedPercentage int              `json:"reservedPercentage,omitempty"`
}

// NewRequest returns a request with both optional levels enabled and default tuning
func NewRequest(topCIDR string, regions ...string) Request {
	return Request{
		TopCIDR:              topCIDR,
		Regions:              regions,
		IncludeBusinessUnits: true,
		IncludeEnvironments:  true,
		EnvPrefixTarget:      DefaultEnvPrefixTarget,
		ReservedStrategy:     StrategyHalf,
		ReservedPercentage:   DefaultReservedPercentage,
	}
}

// WithDefaults fills zero tuning values with their defaults
func (r Request) WithDefaults() Request {
	if r.EnvPrefixTarget == 0 {
		r.EnvPrefixTarget = DefaultEnvPrefixTarget
	}
	if r.ReservedStrategy == "" {
		r.ReservedStrategy = StrategyHalf
	}
	if r.ReservedPercentage == 0 {
		r.ReservedPercentage = DefaultReservedPercentage
	}
	return r
}

// ActiveLevels returns the levels below Top that take part in the allocation, root first
func (r *Request) ActiveLevels() []Level {
	levels := []Level{Regional}
	if r.IncludeBusinessUnits {
		levels = append(levels, BusinessUnit)
	}
	if r.IncludeEnvironments {
		levels = append(levels, Environment)
	}
	return levels
}

// ClampPercentage bounds p to [MinReservedPercentage, MaxReservedPercentage]
func ClampPercentage(p int) int {
	return clamp(p, MinReservedPercentage, MaxReservedPercentage)
}

// ClampEnvPrefixTarget bounds p to [MinEnvPrefixTarget, MaxEnvPrefixTarget]
func ClampEnvPrefixTarget(p int) int {
	return clamp(p, MinEnvPrefixTarget, MaxEnvPrefixTarget)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
