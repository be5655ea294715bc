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

package stats

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
)

// TopPool is how the top node is named in the hierarchy table
const TopPool = "top"

// WriteHierarchy prints every pool of tree, depth first, with its address range and usable IPs.
// Placeholder business units share their region's block and are left out.
func WriteHierarchy(w io.Writer, tree *allocator.Tree) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "Level\tPool\tCIDR\tIP Range\tUsable IPs\tReserved")
	tree.Walk(func(path []string, n *allocator.Node) {
		if n.Placeholder {
			return
		}
		pool := strings.Join(path, allocator.PathSeparator)
		if pool == "" {
			pool = TopPool
		}
		reserved := "-"
		if n.Reserved != nil {
			reserved = n.Reserved.String()
		}
		_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s - %s\t%s\t%s\n",
			n.Level, pool, n.CIDR(), n.NetworkAddress(), n.BroadcastAddress(), FormatCount(n.UsableIPs()), reserved)
	})
	return tw.Flush()
}
