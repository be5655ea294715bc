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

// Package policy evaluates OPA Rego policies against allocation plans
package policy

import (
	"context"
	"embed"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/open-policy-agent/opa/rego"
	"github.com/pkg/errors"
)

// DefaultQuery is the rule every policy must define
const DefaultQuery = "valid"

// ErrViolation is returned when a plan does not satisfy a policy
var ErrViolation = errors.New("plan violates policy")

//go:embed policies/*.rego
var policiesFS embed.FS

// CheckFunc checks rego result. Returns whether the plan is accepted. Returns error if something was wrong
type CheckFunc func(result rego.ResultSet) (bool, error)

// True returns the default checker: the query must be present in the result set and be true
func True(query string) CheckFunc {
	return func(rs rego.ResultSet) (bool, error) {
		for _, r := range rs {
			for _, e := range r.Expressions {
				if !strings.HasSuffix(e.Text, query) {
					continue
				}
				t, ok := e.Value.(bool)
				if !ok {
					return false, errors.New("policy contains non boolean expression")
				}
				return t, nil
			}
		}
		return false, errors.Errorf("result is not found for query %v", query)
	}
}

// Policy is a Rego module compiled on first use
type Policy struct {
	name    string
	source  string
	pkg     string
	query   string
	checker CheckFunc

	once      sync.Once
	initErr   error
	evalQuery *rego.PreparedEvalQuery
}

// FromSource creates a policy from rego source. The query defaults to DefaultQuery when empty.
func FromSource(name, source, query string) *Policy {
	if query == "" {
		query = DefaultQuery
	}
	return &Policy{
		name:    name,
		source:  strings.TrimSpace(source),
		query:   query,
		checker: True(query),
	}
}

// FromFile reads a policy from disk, falling back to the embedded policies with that name
func FromFile(p string) (*Policy, error) {
	b, err := os.ReadFile(filepath.Clean(p))
	if err != nil {
		var embeddedErr error
		if b, embeddedErr = policiesFS.ReadFile(path.Join("policies", path.Base(p))); embeddedErr != nil {
			return nil, errors.Wrapf(err, "cannot read policy %s", p)
		}
	}
	name := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
	return FromSource(name, string(b), DefaultQuery), nil
}

// Defaults returns the embedded policies sorted by name. Files on disk never replace them.
func Defaults() ([]*Policy, error) {
	entries, err := policiesFS.ReadDir("policies")
	if err != nil {
		return nil, errors.Wrap(err, "cannot list embedded policies")
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var result []*Policy
	for _, e := range entries {
		b, err := policiesFS.ReadFile(path.Join("policies", e.Name()))
		if err != nil {
			return nil, errors.Wrapf(err, "cannot read embedded policy %s", e.Name())
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		result = append(result, FromSource(name, string(b), DefaultQuery))
	}
	return result, nil
}

// Name returns the policy name
func (p *Policy) Name() string {
	return p.name
}

// Check returns nil if the plan described by input satisfies the policy
func (p *Policy) Check(ctx context.Context, input interface{}) error {
	doc, err := toMap(input)
	if err != nil {
		return err
	}
	if err := p.init(); err != nil {
		return err
	}
	rs, err := p.evalQuery.Eval(ctx, rego.EvalInput(doc))
	if err != nil {
		return errors.Wrapf(err, "policy %s evaluation failed", p.name)
	}
	ok, err := p.checker(rs)
	if err != nil {
		return errors.Wrapf(err, "policy %s", p.name)
	}
	if !ok {
		return errors.Wrapf(ErrViolation, "policy %s", p.name)
	}
	return nil
}

// CheckAll checks input against every policy and returns the first failure
func CheckAll(ctx context.Context, input interface{}, policies ...*Policy) error {
	for _, p := range policies {
		if err := p.Check(ctx, input); err != nil {
			return err
		}
	}
	return nil
}

func (p *Policy) init() error {
	p.once.Do(func() {
		if p.initErr = p.findPackage(); p.initErr != nil {
			return
		}
		var r rego.PreparedEvalQuery
		r, p.initErr = rego.New(
			rego.Query(strings.Join([]string{"data", p.pkg, p.query}, ".")),
			rego.Module(p.name+".rego", p.source)).PrepareForEval(context.Background())
		if p.initErr != nil {
			p.initErr = errors.Wrapf(p.initErr, "cannot compile policy %s", p.name)
			return
		}
		p.evalQuery = &r
	})
	return p.initErr
}

func (p *Policy) findPackage() error {
	const pkg = "package"
	for _, line := range strings.Split(p.source, "\n") {
		if strings.HasPrefix(line, pkg) {
			p.pkg = strings.TrimSpace(line[len(pkg):])
			return nil
		}
	}
	return errors.Errorf("policy %s: missed package", p.name)
}
