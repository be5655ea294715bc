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

// Package planner runs the whole planning pipeline for a request and keeps the last good plan
package planner

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/allocator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/naming"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/plandiff"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/policy"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/renderer"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/stats"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/validator"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/verify"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/clock"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/metrics"
)

// Failure kinds recorded for errors that are not *ipam.Error
const (
	KindPolicyViolation = "PolicyViolation"
	KindInternal        = "Internal"
)

// Result is one successful plan
type Result struct {
	ID         string    `json:"id"`
	Generation uint64    `json:"generation"`
	CreatedAt  time.Time `json:"createdAt"`

	Request ipam.Request    `json:"request"`
	Tree    *allocator.Tree `json:"-"`
	Names   *naming.Names   `json:"names"`

	TFVars         string `json:"tfvars"`
	ModulePatch    string `json:"modulePatch,omitempty"`
	HasModulePatch bool   `json:"hasModulePatch"`
	Fingerprint    uint64 `json:"fingerprint"`

	Stats *stats.Summary `json:"stats"`
	// Changes is the difference to the previous good plan, nil for the first one
	Changes *plandiff.Report `json:"changes,omitempty"`
}

// Planner calculates plans. It is safe for concurrent use.
type Planner struct {
	policies []*policy.Policy
	metrics  *metrics.Metrics

	mu         sync.Mutex
	last       atomic.Value
	generation atomic.Uint64
}

// New creates a planner
func New(opts ...Option) *Planner {
	p := &Planner{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Calculate validates req, allocates it, renders it and checks it against the policies.
// The plan becomes the last good one only when every step succeeds.
func (p *Planner) Calculate(ctx context.Context, req *ipam.Request) (*Result, error) {
	logger := log.FromContext(ctx).WithField("planner", "Calculate")
	start := clock.FromContext(ctx).Now()

	result, err := p.calculate(ctx, req)
	elapsed := clock.FromContext(ctx).Since(start)
	if err != nil {
		logger.Warnf("plan for %s failed: %v", req.TopCIDR, err)
		if p.metrics != nil {
			p.metrics.ObserveFailure(elapsed, kindOf(err))
		}
		return nil, err
	}

	p.mu.Lock()
	prev := p.Last()
	if result.Changes, err = Diff(prev, result); err != nil {
		p.mu.Unlock()
		return nil, err
	}
	result.Generation = p.generation.Inc()
	result.ID = uuid.New().String()
	result.CreatedAt = start
	p.last.Store(result)
	p.mu.Unlock()

	if p.metrics != nil {
		p.metrics.ObserveSuccess(elapsed, result.Generation, poolCounts(result.Stats), result.Stats.Utilization)
	}
	logger.WithField("id", result.ID).Infof("plan %d for %s: %d regions, fingerprint %x",
		result.Generation, req.TopCIDR, len(result.Tree.Regions()), result.Fingerprint)
	return result, nil
}

func (p *Planner) calculate(ctx context.Context, req *ipam.Request) (*Result, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	tree, err := allocator.Allocate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := verify.Tree(tree); err != nil {
		return nil, errors.Wrap(err, "allocation produced an inconsistent tree")
	}
	if err := policy.CheckAll(ctx, policy.NewInput(tree), p.policies...); err != nil {
		return nil, err
	}

	names := naming.Generate(tree.RegionKeys(), req.BusinessUnits, req.Environments, req.IncludeBusinessUnits, req.IncludeEnvironments)
	text := renderer.Render(tree, names, req.IncludeBusinessUnits, req.IncludeEnvironments)
	patch, hasPatch := renderer.ModulePatch(req.IncludeBusinessUnits, req.IncludeEnvironments)

	return &Result{
		Request:        req.WithDefaults(),
		Tree:           tree,
		Names:          names,
		TFVars:         text,
		ModulePatch:    patch,
		HasModulePatch: hasPatch,
		Fingerprint:    renderer.Fingerprint(text),
		Stats:          stats.Compute(tree),
	}, nil
}

// Last returns the last good plan, nil before the first success
func (p *Planner) Last() *Result {
	if r, ok := p.last.Load().(*Result); ok {
		return r
	}
	return nil
}

// Generation returns how many plans have succeeded
func (p *Planner) Generation() uint64 {
	return p.generation.Load()
}

// Diff reports how pools moved from prev to next. A nil prev yields a nil report.
func Diff(prev, next *Result) (*plandiff.Report, error) {
	if prev == nil || next == nil {
		return nil, nil
	}
	return plandiff.Compare(prev.Tree, next.Tree)
}

func kindOf(err error) string {
	var ipamErr *ipam.Error
	switch {
	case errors.As(err, &ipamErr):
		return ipamErr.Kind.String()
	case errors.Is(err, policy.ErrViolation):
		return KindPolicyViolation
	default:
		return KindInternal
	}
}

func poolCounts(s *stats.Summary) map[string]int {
	counts := make(map[string]int, len(s.Rows))
	for _, r := range s.Rows {
		counts[r.Level] = r.Count
	}
	return counts
}
