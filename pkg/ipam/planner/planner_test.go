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

package planner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/planner"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/policy"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/renderer"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/clock"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/metrics"
)

func testContext() context.Context {
	return log.WithLog(context.Background(), log.Empty())
}

func request(regions ...string) *ipam.Request {
	req := ipam.NewRequest("10.192.0.0/12", regions...)
	req.IncludeBusinessUnits = false
	req.Environments = []string{"prod", "dev"}
	return &req
}

func TestCalculate(t *testing.T) {
	mock := bclock.NewMock()
	mock.Set(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	ctx := clock.WithClock(testContext(), mock)

	p := planner.New()
	require.Nil(t, p.Last())

	result, err := p.Calculate(ctx, request("us-east-1", "us-west-2"))
	require.NoError(t, err)

	require.NotEmpty(t, result.ID)
	require.Equal(t, uint64(1), result.Generation)
	require.Equal(t, mock.Now(), result.CreatedAt)
	require.Equal(t, renderer.Fingerprint(result.TFVars), result.Fingerprint)
	require.Contains(t, result.TFVars, `provider_region   = "us-east-1"`)
	require.True(t, result.HasModulePatch)
	require.Contains(t, result.ModulePatch, `resource "aws_vpc_ipam_pool" "env"`)
	require.Equal(t, "ipam-prod-us-east-1", result.Names.Environment("us-east-1", ipam.PlaceholderBusinessUnit, "prod").Name)
	require.InDelta(t, 100.0, result.Stats.Utilization, 1e-9)
	require.Nil(t, result.Changes)
	require.Same(t, result, p.Last())
}

func TestCalculate_KeepsLastGood(t *testing.T) {
	p := planner.New()
	good, err := p.Calculate(testContext(), request("us-east-1"))
	require.NoError(t, err)

	bad := request("us-east-1")
	bad.TopCIDR = "8.8.8.0/24"
	_, err = p.Calculate(testContext(), bad)
	require.True(t, errors.Is(err, ipam.ErrNotPrivateRange))

	require.Same(t, good, p.Last())
	require.Equal(t, uint64(1), p.Generation())
}

func TestCalculate_Changes(t *testing.T) {
	p := planner.New()
	_, err := p.Calculate(testContext(), request("us-east-1", "us-west-2"))
	require.NoError(t, err)

	req := request("us-east-1", "us-west-2")
	req.PrimaryRegion = "us-west-2"
	result, err := p.Calculate(testContext(), req)
	require.NoError(t, err)

	require.Equal(t, uint64(2), result.Generation)
	require.NotNil(t, result.Changes)
	require.True(t, result.Changes.Relabeling)
	require.Contains(t, result.TFVars, `provider_region   = "us-west-2"`)
}

func TestCalculate_Policy(t *testing.T) {
	const source = `
package ipam.single_region

import rego.v1

default valid := false

valid if {
	count(input.regions) == 1
}
`
	m := metrics.New()
	p := planner.New(
		planner.WithPolicies(policy.FromSource("single_region", source, "")),
		planner.WithMetrics(m),
	)

	_, err := p.Calculate(testContext(), request("us-east-1"))
	require.NoError(t, err)

	_, err = p.Calculate(testContext(), request("us-east-1", "us-west-2"))
	require.True(t, errors.Is(err, policy.ErrViolation))
	require.Equal(t, uint64(1), p.Generation())

	_, err = p.Calculate(testContext(), request())
	require.True(t, errors.Is(err, ipam.ErrNoRegionsSelected))

	count, err := testutil.GatherAndCount(m.Gatherer(), "ipam_planner_plan_failures_total")
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestDiff_Nil(t *testing.T) {
	report, err := planner.Diff(nil, nil)
	require.NoError(t, err)
	require.Nil(t, report)
}

func TestWatch(t *testing.T) {
	t.Cleanup(func() { goleak.VerifyNone(t) })

	path := filepath.Join(t.TempDir(), "request.yaml")
	require.NoError(t, os.WriteFile(path, []byte("topCidr: 10.0.0.0/8\nregions: [us-east-1]\nincludeBusinessUnits: false\nincludeEnvironments: false\n"), 0o600))

	ctx, cancel := context.WithCancel(testContext())
	defer cancel()

	p := planner.New()
	results := p.Watch(ctx, path, func(req *ipam.Request) {
		req.PrimaryRegion = "us-east-1"
	})

	next := func() *planner.Result {
		select {
		case r := <-results:
			return r
		case <-time.After(time.Second * 5):
			t.Fatal("timeout waiting for a plan")
		}
		return nil
	}

	first := next()
	require.Equal(t, []string{"us-east-1"}, first.Tree.RegionKeys())
	require.Equal(t, "us-east-1", first.Request.PrimaryRegion)

	require.NoError(t, os.WriteFile(path, []byte("topCidr: 10.0.0.0/8\nregions: [us-east-1, eu-west-1]\nincludeBusinessUnits: false\nincludeEnvironments: false\n"), 0o600))
	for r := next(); len(r.Tree.RegionKeys()) != 2; r = next() {
	}
	require.Equal(t, []string{"us-east-1", "eu-west-1"}, p.Last().Tree.RegionKeys())

	cancel()
	for range results {
	}
}
