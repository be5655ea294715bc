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

package renderer

// regionToEnvironmentPatch replaces the environment pools of the Terraform module so that they hang
// directly off the regional pools.
const regionToEnvironmentPatch = `# Modified module/ipam/main.tf for Region -> Environment hierarchy (skipping BU level)

# Note: Replace this section in your modules/ipam/main.tf file

########################################################
# Environment Pools (directly under Regional Pools)
########################################################

resource "aws_vpc_ipam_pool" "env" {
  for_each = local.flattened_env_ipam_configs

  ipam_scope_id       = aws_vpc_ipam.this.private_default_scope_id
  description         = each.value.description
  address_family      = "ipv4"
  auto_import         = false
  locale              = each.value.region
  source_ipam_pool_id = aws_vpc_ipam_pool.regional[each.value.region].id

  depends_on = [
    aws_vpc_ipam_pool_cidr.regional_cidr
  ]

  # Merge existing tags with "ipam" tag
  tags = merge(
    var.tags,
    {
      ipam = "ipam-pool-${each.value.env}-${each.value.region}"
    }
  )
}

resource "aws_vpc_ipam_pool_cidr" "env_cidr" {
  for_each = local.flattened_env_ipam_configs

  ipam_pool_id = aws_vpc_ipam_pool.env[each.key].id
  cidr         = each.value.cidr[0]

  depends_on = [
    aws_vpc_ipam_pool.env
  ]
}

# Add this to modules/ipam/locals.tf

locals {
  # Flatten Environment IPAM configs into a list of objects (without BU level)
  flattened_env_ipam_list = flatten([
    for region, env_configs in var.env_ipam_configs : [
      for bu, bu_envs in env_configs : [
        for env, env_config in bu_envs : merge(
          env_config,
          {
            region = region,
            bu     = bu,
            env    = env
          }
        )
      ]
    ]
  ])

  # Convert the flattened list into a map
  flattened_env_ipam_configs = {
    for env_config in local.flattened_env_ipam_list :
    "${env_config.region}-${env_config.env}" => env_config
  }
}`

const skipEnvironmentNote = `# No Terraform module modifications are needed if you're only skipping the Environment level.
# The existing module will work correctly with the modified input variables.`

// ModulePatch returns the Terraform module change needed for the chosen hierarchy. The second result is
// false when the stock module works unchanged.
func ModulePatch(includeBU, includeEnv bool) (string, bool) {
	switch {
	case includeBU && includeEnv:
		return "", false
	case includeEnv:
		return regionToEnvironmentPatch, true
	default:
		return skipEnvironmentNote, true
	}
}
