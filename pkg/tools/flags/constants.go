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

// Package flags provides the flags of the ipam-planner command and their environment bindings
package flags

const (
	// EnvPrefix - prefix for planner environment variables
	EnvPrefix = "IPAM"

	// RequestKey - key for flag for the request file
	RequestKey = "request"
	// RequestShortHand - shorthand for flag for the request file
	RequestShortHand = "f"
	// RequestUsageDefault - default usage for flag for the request file
	RequestUsageDefault = "YAML or JSON file with the planning request, flags override its values"

	// TopCIDRKey - key for flag for the top-level block
	TopCIDRKey = "top-cidr"
	// TopCIDRShortHand - shorthand for flag for the top-level block
	TopCIDRShortHand = "c"
	// TopCIDRUsageDefault - default usage for flag for the top-level block
	TopCIDRUsageDefault = "Private IPv4 block to subdivide, e.g. 10.0.0.0/8"

	// RegionsKey - key for flag for operating regions
	RegionsKey = "regions"
	// RegionsShortHand - shorthand for flag for operating regions
	RegionsShortHand = "r"
	// RegionsUsageDefault - default usage for flag for operating regions
	RegionsUsageDefault = "Comma separated AWS regions in allocation order"

	// BusinessUnitsKey - key for flag for business units
	BusinessUnitsKey = "business-units"
	// BusinessUnitsShortHand - shorthand for flag for business units
	BusinessUnitsShortHand = "b"
	// BusinessUnitsUsageDefault - default usage for flag for business units
	BusinessUnitsUsageDefault = "Comma separated business units in allocation order"

	// EnvironmentsKey - key for flag for environments
	EnvironmentsKey = "environments"
	// EnvironmentsShortHand - shorthand for flag for environments
	EnvironmentsShortHand = "e"
	// EnvironmentsUsageDefault - default usage for flag for environments
	EnvironmentsUsageDefault = "Comma separated environments in allocation order"

	// PrimaryRegionKey - key for flag for the primary region
	PrimaryRegionKey = "primary-region"
	// PrimaryRegionUsageDefault - default usage for flag for the primary region
	PrimaryRegionUsageDefault = "Region that always gets the first block and hosts the provider"

	// SkipBusinessUnitsKey - key for flag that drops the business unit level
	SkipBusinessUnitsKey = "skip-business-units"
	// SkipBusinessUnitsUsageDefault - default usage for flag that drops the business unit level
	SkipBusinessUnitsUsageDefault = "Hang environments directly under regions"

	// SkipEnvironmentsKey - key for flag that drops the environment level
	SkipEnvironmentsKey = "skip-environments"
	// SkipEnvironmentsUsageDefault - default usage for flag that drops the environment level
	SkipEnvironmentsUsageDefault = "Stop the hierarchy at business units (or regions)"

	// EnvPrefixTargetKey - key for flag for the environment prefix target
	EnvPrefixTargetKey = "env-prefix-target"
	// EnvPrefixTargetUsageDefault - default usage for flag for the environment prefix target
	EnvPrefixTargetUsageDefault = "Longest prefix an environment pool gets, 16-24"

	// ReservedStrategyKey - key for flag for the reservation strategy
	ReservedStrategyKey = "reserved-strategy"
	// ReservedStrategyUsageDefault - default usage for flag for the reservation strategy
	ReservedStrategyUsageDefault = "How environment pools reserve space: half or percentage"

	// ReservedPercentageKey - key for flag for the reserved percentage
	ReservedPercentageKey = "reserved-percentage"
	// ReservedPercentageUsageDefault - default usage for flag for the reserved percentage
	ReservedPercentageUsageDefault = "Share of an environment pool to reserve with the percentage strategy, 10-50"

	// OutputDirKey - key for flag for the output directory
	OutputDirKey = "output-dir"
	// OutputDirShortHand - shorthand for flag for the output directory
	OutputDirShortHand = "o"
	// OutputDirDefault - default output directory
	OutputDirDefault = "./"
	// OutputDirUsageDefault - default usage for flag for the output directory
	OutputDirUsageDefault = "Directory for ipam.auto.tfvars and module_patch.tf"

	// PolicyFileKey - key for flag for policyFile
	PolicyFileKey = "policy-file"
	// PolicyFileShortHand - shorthand for flag for policyFile
	PolicyFileShortHand = "a"
	// PolicyFileUsageDefault - default policyFile usage
	PolicyFileUsageDefault = "File containing an OPA policy every plan must satisfy"

	// DefaultPoliciesKey - key for flag that enables the built-in policies
	DefaultPoliciesKey = "default-policies"
	// DefaultPoliciesUsageDefault - default usage for flag that enables the built-in policies
	DefaultPoliciesUsageDefault = "Check plans against the built-in policies as well"

	// MetricsTextfileKey - key for flag for the metrics textfile
	MetricsTextfileKey = "metrics-textfile"
	// MetricsTextfileUsageDefault - default usage for flag for the metrics textfile
	MetricsTextfileUsageDefault = "Write planner metrics to this file in the node exporter textfile format"

	// MetricsListenOnKey - key for flag for the metrics listen address
	MetricsListenOnKey = "metrics-listen-on"
	// MetricsListenOnUsageDefault - default usage for flag for the metrics listen address
	MetricsListenOnUsageDefault = "Serve /metrics on this address while watching, e.g. :9090"

	// WatchKey - key for flag for watch mode
	WatchKey = "watch"
	// WatchShortHand - shorthand for flag for watch mode
	WatchShortHand = "w"
	// WatchUsageDefault - default usage for flag for watch mode
	WatchUsageDefault = "Re-plan every time the request file changes"

	// LogLevelKey - key for flag for log level
	LogLevelKey = "log-level"
	// LogLevelDefault - default log level
	LogLevelDefault = "INFO"
	// LogLevelUsageDefault - default usage for flag for log level
	LogLevelUsageDefault = "Log level: TRACE, DEBUG, INFO, WARN, ERROR"
)
