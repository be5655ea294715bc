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

package flags

import (
	"github.com/spf13/pflag"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
)

type strategyValue ipam.ReservedStrategy

// NewStrategyValue - create new value for reservation strategies
func NewStrategyValue(p *ipam.ReservedStrategy) pflag.Value {
	return (*strategyValue)(p)
}

func (sv *strategyValue) String() string {
	return string(*sv)
}

func (sv *strategyValue) Set(s string) error {
	strategy, err := ipam.ParseReservedStrategy(s)
	if err != nil {
		return err
	}
	*sv = strategyValue(strategy)
	return nil
}

func (sv *strategyValue) Type() string {
	return "strategy"
}

// StrategyVarP - defines a reservation strategy flag with specified name, shorthand, default value, and usage string.
func StrategyVarP(flags *pflag.FlagSet, p *ipam.ReservedStrategy, name, shorthand string, value ipam.ReservedStrategy, usage string) {
	*p = value
	flags.VarP(NewStrategyValue(p), name, shorthand, usage)
}
