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

// Package renderer turns an allocation tree and its pool names into Terraform variable text
package renderer

import (
	"fmt"
	"strings"

	"github.com/OneOfOne/xxhash"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/naming"
)

// ShareName is the RAM share name the Terraform module expects
const ShareName = "global-aws-ipam-specification"

// Render returns the tfvars document for tree. Sections are always written in the same order:
// provider and regions, top pool, regional pools, business unit pools, environment pools.
// A disabled level is written as an empty map.
func Render(tree *allocator.Tree, names *naming.Names, includeBU, includeEnv bool) string {
	var sb strings.Builder
	regionKeys := tree.RegionKeys()

	provider := ""
	if len(regionKeys) > 0 {
		provider = regionKeys[0]
	}
	fmt.Fprintf(&sb, "provider_region   = %q\n", provider)
	fmt.Fprintf(&sb, "operating_regions = %s\n", quotedList(regionKeys...))
	fmt.Fprintf(&sb, "share_name = %q\n", ShareName)
	fmt.Fprintf(&sb, "top_name        = %q\n", names.Top.Name)
	fmt.Fprintf(&sb, "top_description = %q\n", names.Top.Description)
	fmt.Fprintf(&sb, "top_cidr        = %s\n", quotedList(tree.Top.CIDR()))

	sb.WriteString("reg_ipam_configs = {\n")
	for _, region := range tree.Regions() {
		name := names.Region(region.Key)
		fmt.Fprintf(&sb, "  %s = {\n", region.Key)
		fmt.Fprintf(&sb, "    name        = %q\n", name.Name)
		fmt.Fprintf(&sb, "    description = %q\n", name.Description)
		fmt.Fprintf(&sb, "    cidr        = %s\n", quotedList(region.CIDR()))
		fmt.Fprintf(&sb, "    locale      = %q\n", region.Key)
		sb.WriteString("  }\n")
	}
	sb.WriteString("}\n")

	if includeBU && tree.IncludeBusinessUnits && hasChildren(tree) {
		sb.WriteString("bu_ipam_configs = {\n")
		for _, region := range tree.Regions() {
			fmt.Fprintf(&sb, "  %s = {\n", region.Key)
			for _, bu := range tree.BusinessUnits(region.Key) {
				name := names.BusinessUnit(region.Key, bu.Key)
				fmt.Fprintf(&sb, "    %q = {\n", bu.Key)
				fmt.Fprintf(&sb, "      name        = %q\n", name.Name)
				fmt.Fprintf(&sb, "      description = %q\n", name.Description)
				fmt.Fprintf(&sb, "      cidr        = %s\n", quotedList(bu.CIDR()))
				sb.WriteString("    }\n")
			}
			sb.WriteString("  }\n")
		}
		sb.WriteString("}\n")
	} else {
		sb.WriteString("bu_ipam_configs = {}\n")
	}

	if includeEnv && tree.IncludeEnvironments && hasChildren(tree) {
		sb.WriteString("env_ipam_configs = {\n")
		for _, region := range tree.Regions() {
			fmt.Fprintf(&sb, "  %s = {\n", region.Key)
			for _, group := range tree.Groups(region.Key) {
				fmt.Fprintf(&sb, "    %s = {\n", group.Key)
				for _, env := range group.Children {
					name := names.Environment(region.Key, group.Key, env.Key)
					reserved := ""
					if env.Reserved != nil {
						reserved = env.Reserved.String()
					}
					fmt.Fprintf(&sb, "      %s = {\n", env.Key)
					fmt.Fprintf(&sb, "        name          = %q\n", name.Name)
					fmt.Fprintf(&sb, "        description   = %q\n", name.Description)
					fmt.Fprintf(&sb, "        cidr          = %s\n", quotedList(env.CIDR()))
					fmt.Fprintf(&sb, "        reserved_cidr = %q\n", reserved)
					sb.WriteString("      }\n")
				}
				sb.WriteString("    }\n")
			}
			sb.WriteString("  }\n")
		}
		sb.WriteString("}")
	} else {
		sb.WriteString("env_ipam_configs = {}")
	}

	return sb.String()
}

// Fingerprint returns a stable digest of rendered text
func Fingerprint(text string) uint64 {
	return xxhash.Checksum64([]byte(text))
}

func hasChildren(tree *allocator.Tree) bool {
	for _, r := range tree.Regions() {
		if len(r.Children) > 0 {
			return true
		}
	}
	return false
}

func quotedList(values ...string) string {
	quoted := make([]string, 0, len(values))
	for _, v := range values {
		quoted = append(quoted, fmt.Sprintf("%q", v))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
