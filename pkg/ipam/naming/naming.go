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

// Package naming generates the names and descriptions of IPAM pools.
// Names depend only on the position of a pool in the hierarchy, never on its block.
package naming

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/regions"
)

const (
	topName        = "ipam-top"
	topDescription = "Top-Level Multi-Region IPAM Pool"
)

// Name is the generated name and description of one pool
type Name struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Names holds the generated names of every pool of a hierarchy
type Names struct {
	Top           Name                                  `json:"top"`
	Regional      map[string]Name                       `json:"regional"`
	BusinessUnits map[string]map[string]Name            `json:"businessUnits"`
	Environments  map[string]map[string]map[string]Name `json:"environments"`
}

// Generate names every pool of the hierarchy. Environments hang under
// ipam.PlaceholderBusinessUnit when includeBU is false.
func Generate(regionCodes, bus, envs []string, includeBU, includeEnv bool) *Names {
	names := &Names{
		Top:           Name{Name: topName, Description: topDescription},
		Regional:      make(map[string]Name, len(regionCodes)),
		BusinessUnits: map[string]map[string]Name{},
		Environments:  map[string]map[string]map[string]Name{},
	}
	withBU := includeBU && len(bus) > 0
	withEnv := includeEnv && len(envs) > 0

	for _, region := range regionCodes {
		display := regions.DisplayName(region)
		names.Regional[region] = Name{
			Name:        fmt.Sprintf("ipam-regional-%s", region),
			Description: fmt.Sprintf("Regional IPAM Pool for %s", display),
		}

		if withBU {
			names.BusinessUnits[region] = make(map[string]Name, len(bus))
			for _, bu := range bus {
				names.BusinessUnits[region][bu] = Name{
					Name:        fmt.Sprintf("ipam-bu-%s-%s", lower(bu), region),
					Description: fmt.Sprintf("%s Business Unit IPAM Pool for %s", bu, display),
				}
			}
		}

		if !withEnv {
			continue
		}
		names.Environments[region] = map[string]map[string]Name{}
		if !withBU {
			group := make(map[string]Name, len(envs))
			for _, env := range envs {
				group[env] = Name{
					Name:        fmt.Sprintf("ipam-%s-%s", lower(env), region),
					Description: fmt.Sprintf("%s Environment IPAM Pool for %s", Capitalize(env), display),
				}
			}
			names.Environments[region][ipam.PlaceholderBusinessUnit] = group
			continue
		}
		for _, bu := range bus {
			group := make(map[string]Name, len(envs))
			for _, env := range envs {
				group[env] = Name{
					Name:        fmt.Sprintf("ipam-%s-%s-%s", lower(env), lower(bu), region),
					Description: fmt.Sprintf("%s Environment IPAM Pool for %s in %s", Capitalize(env), bu, display),
				}
			}
			names.Environments[region][bu] = group
		}
	}
	return names
}

// Region returns the name of a regional pool
func (n *Names) Region(region string) Name {
	return n.Regional[region]
}

// BusinessUnit returns the name of a business unit pool
func (n *Names) BusinessUnit(region, bu string) Name {
	return n.BusinessUnits[region][bu]
}

// Environment returns the name of an environment pool
func (n *Names) Environment(region, bu, env string) Name {
	return n.Environments[region][bu][env]
}

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// Capitalize upper-cases the first letter of s and lower-cases the rest ("PROD-east" -> "Prod-east")
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Title(language.Und).String(s[:size]) + lower(s[size:])
}
