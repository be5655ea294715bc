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

package ipam

// MergeOrder merges a caller supplied ordering list with the current key set.
// Members of order that are still keys come first, in their given sequence; keys missing from
// order follow in their original sequence. Stale entries and repeats are dropped.
func MergeOrder(order, keys []string) []string {
	valid := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		valid[k] = struct{}{}
	}

	result := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	add := func(k string) {
		if _, ok := valid[k]; !ok {
			return
		}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		result = append(result, k)
	}
	for _, k := range order {
		add(k)
	}
	for _, k := range keys {
		add(k)
	}
	return result
}

// WithPrimary moves primary to the front of regions if it is one of them
func WithPrimary(regions []string, primary string) []string {
	result := make([]string, 0, len(regions))
	found := false
	for _, r := range regions {
		if r == primary && primary != "" {
			found = true
			continue
		}
		result = append(result, r)
	}
	if !found {
		return append([]string(nil), regions...)
	}
	return append([]string{primary}, result...)
}
