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

package policy

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
)

// Pool is one allocated pool as policies see it
type Pool struct {
	Path         string `json:"path"`
	Level        string `json:"level"`
	CIDR         string `json:"cidr"`
	Prefix       int    `json:"prefix"`
	Size         uint64 `json:"size"`
	ReservedCIDR string `json:"reservedCidr"`
}

// Input is the document a policy is evaluated against
type Input struct {
	TopCIDR              string   `json:"topCidr"`
	Regions              []string `json:"regions"`
	IncludeBusinessUnits bool     `json:"includeBusinessUnits"`
	IncludeEnvironments  bool     `json:"includeEnvironments"`
	EnvPrefixTarget      int      `json:"envPrefixTarget"`
	ReservedStrategy     string   `json:"reservedStrategy"`
	Pools                []Pool   `json:"pools"`
}

// NewInput flattens tree into a policy input. Placeholder business units are left out.
func NewInput(tree *allocator.Tree) *Input {
	in := &Input{
		TopCIDR:              tree.Top.CIDR(),
		Regions:              tree.RegionKeys(),
		IncludeBusinessUnits: tree.IncludeBusinessUnits,
		IncludeEnvironments:  tree.IncludeEnvironments,
		EnvPrefixTarget:      tree.EnvPrefixTarget,
		ReservedStrategy:     string(tree.ReservedStrategy),
	}
	tree.Walk(func(path []string, n *allocator.Node) {
		if len(path) == 0 || n.Placeholder {
			return
		}
		p := Pool{
			Path:   strings.Join(path, allocator.PathSeparator),
			Level:  n.Level.String(),
			CIDR:   n.CIDR(),
			Prefix: n.Block.Prefix,
			Size:   n.Block.Size(),
		}
		if n.Reserved != nil {
			p.ReservedCIDR = n.Reserved.String()
		}
		in.Pools = append(in.Pools, p)
	})
	return in
}

// toMap converts model to the generic form rego evaluates
func toMap(model interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(model)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v to map", model)
	}
	var rv map[string]interface{}
	if err := json.Unmarshal(b, &rv); err != nil {
		return nil, errors.Wrapf(err, "cannot convert %v to map", model)
	}
	if rv == nil {
		rv = make(map[string]interface{})
	}
	return rv, nil
}
