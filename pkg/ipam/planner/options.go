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

package planner

import (
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/policy"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/metrics"
)

// Option is an option pattern for New
type Option func(p *Planner)

// WithPolicies - every plan has to satisfy policies
func WithPolicies(policies ...*policy.Policy) Option {
	return func(p *Planner) {
		p.policies = append(p.policies, policies...)
	}
}

// WithMetrics - record calculations into m
func WithMetrics(m *metrics.Metrics) Option {
	return func(p *Planner) {
		p.metrics = m
	}
}
