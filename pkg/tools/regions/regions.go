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

// Package regions provides the catalog of AWS regions that support VPC IPAM
package regions

// Region is an AWS region code with its display name
type Region struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var catalog = []Region{
	{Code: "us-east-1", Name: "US East (N. Virginia)"},
	{Code: "us-east-2", Name: "US East (Ohio)"},
	{Code: "us-west-1", Name: "US West (N. California)"},
	{Code: "us-west-2", Name: "US West (Oregon)"},
	{Code: "ca-central-1", Name: "Canada (Central)"},
	{Code: "eu-north-1", Name: "EU North (Stockholm)"},
	{Code: "eu-west-1", Name: "EU West (Ireland)"},
	{Code: "eu-west-2", Name: "EU West (London)"},
	{Code: "eu-west-3", Name: "EU West (Paris)"},
	{Code: "eu-central-1", Name: "EU Central (Frankfurt)"},
	{Code: "eu-south-1", Name: "EU South (Milan)"},
	{Code: "ap-northeast-1", Name: "AP Northeast (Tokyo)"},
	{Code: "ap-northeast-2", Name: "AP Northeast (Seoul)"},
	{Code: "ap-northeast-3", Name: "AP Northeast (Osaka)"},
	{Code: "ap-southeast-1", Name: "AP Southeast (Singapore)"},
	{Code: "ap-southeast-2", Name: "AP Southeast (Sydney)"},
	{Code: "ap-south-1", Name: "AP South (Mumbai)"},
	{Code: "sa-east-1", Name: "SA East (São Paulo)"},
	{Code: "af-south-1", Name: "Africa (Cape Town)"},
	{Code: "me-south-1", Name: "Middle East (Bahrain)"},
}

var byCode = func() map[string]string {
	m := make(map[string]string, len(catalog))
	for _, r := range catalog {
		m[r.Code] = r.Name
	}
	return m
}()

// All returns a copy of the catalog in its fixed order
func All() []Region {
	return append([]Region(nil), catalog...)
}

// DisplayName returns the human readable name of code, or code itself when it is not in the catalog
func DisplayName(code string) string {
	if name, ok := byCode[code]; ok {
		return name
	}
	return code
}

// Known reports whether code is in the catalog
func Known(code string) bool {
	_, ok := byCode[code]
	return ok
}
