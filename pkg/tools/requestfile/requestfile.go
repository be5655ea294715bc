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

// Package requestfile reads planning requests from YAML or JSON documents
package requestfile

import (
	"os"
	"path/filepath"

	"github.com/ghodss/yaml"
	"github.com/pkg/errors"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
)

// Load reads the request stored at path
func Load(path string) (*ipam.Request, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read request file %s", path)
	}
	req, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid request file %s", path)
	}
	return req, nil
}

// Decode parses a YAML or JSON request. Fields left out keep the defaults of ipam.NewRequest.
// Tuning values are normalized: the strategy accepts its display names and numbers are clamped.
func Decode(data []byte) (*ipam.Request, error) {
	req := ipam.NewRequest("")
	if err := yaml.Unmarshal(data, &req); err != nil {
		return nil, errors.Wrap(err, "failed to decode request")
	}
	if err := Normalize(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Normalize canonicalizes the strategy and clamps the tuning values of req into their ranges
func Normalize(req *ipam.Request) error {
	strategy, err := ipam.ParseReservedStrategy(string(req.ReservedStrategy))
	if err != nil {
		return err
	}
	req.ReservedStrategy = strategy
	if req.EnvPrefixTarget != 0 {
		req.EnvPrefixTarget = ipam.ClampEnvPrefixTarget(req.EnvPrefixTarget)
	}
	if req.ReservedPercentage != 0 {
		req.ReservedPercentage = ipam.ClampPercentage(req.ReservedPercentage)
	}
	return nil
}

// Encode renders req as YAML
func Encode(req *ipam.Request) ([]byte, error) {
	b, err := yaml.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode request")
	}
	return b, nil
}
