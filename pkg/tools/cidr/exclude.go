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

package cidr

// Exclude returns what is left of b once every used block is taken out, as the fewest
// aligned blocks in address order. Used blocks outside b are ignored.
func Exclude(b Block, used ...Block) []Block {
	var overlapping []Block
	for _, u := range used {
		if u.Contains(b) {
			return nil
		}
		if b.Overlaps(u) {
			overlapping = append(overlapping, u)
		}
	}
	if len(overlapping) == 0 {
		return []Block{b}
	}
	// b is wider than every overlapping block here, so b.Prefix < MaxPrefix
	lower := Block{Base: b.Base, Prefix: b.Prefix + 1}
	upper := Block{Base: b.Base | 1<<uint(MaxPrefix-b.Prefix-1), Prefix: b.Prefix + 1}
	return append(Exclude(lower, overlapping...), Exclude(upper, overlapping...)...)
}
