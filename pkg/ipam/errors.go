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

package ipam

import (
	"fmt"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/cidr"
)

// ErrorKind classifies planning failures
type ErrorKind int

// Error kinds returned by the validator and the allocator
const (
	InvalidCidrFormat ErrorKind = iota + 1
	NotPrivateRange
	NoRegionsSelected
	NoBusinessUnits
	NoEnvironments
	InsufficientAddressSpace
	NotEnoughSubnetSpace
)

func (k ErrorKind) String() string {
	switch k {
	case InvalidCidrFormat:
		return "InvalidCidrFormat"
	case NotPrivateRange:
		return "NotPrivateRange"
	case NoRegionsSelected:
		return "NoRegionsSelected"
	case NoBusinessUnits:
		return "NoBusinessUnits"
	case NoEnvironments:
		return "NoEnvironments"
	case InsufficientAddressSpace:
		return "InsufficientAddressSpace"
	case NotEnoughSubnetSpace:
		return "NotEnoughSubnetSpace"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels for errors.Is. They match any *Error of the same kind.
var (
	ErrInvalidCidrFormat        = &Error{Kind: InvalidCidrFormat}
	ErrNotPrivateRange          = &Error{Kind: NotPrivateRange}
	ErrNoRegionsSelected        = &Error{Kind: NoRegionsSelected}
	ErrNoBusinessUnits          = &Error{Kind: NoBusinessUnits}
	ErrNoEnvironments           = &Error{Kind: NoEnvironments}
	ErrInsufficientAddressSpace = &Error{Kind: InsufficientAddressSpace}
	ErrNotEnoughSubnetSpace     = &Error{Kind: NotEnoughSubnetSpace}
)

// Error is a planning failure. Only the fields relevant to Kind are set.
type Error struct {
	Kind ErrorKind
	CIDR string

	// MinPrefix is the longest top prefix that would fit (InsufficientAddressSpace)
	MinPrefix int

	// Key, Path, Level and Parent describe the entity that did not fit (NotEnoughSubnetSpace)
	Key    string
	Path   string
	Level  Level
	Parent cidr.Block

	Err error
}

func (e *Error) Error() string {
	switch e.Kind {
	case InvalidCidrFormat:
		if e.Err != nil {
			return fmt.Sprintf("invalid CIDR format: %v", e.Err)
		}
		return fmt.Sprintf("invalid CIDR format: %q", e.CIDR)
	case NotPrivateRange:
		return fmt.Sprintf("top CIDR %s should be in private IP space (10.0.0.0/8, 172.16.0.0/12, or 192.168.0.0/16)", e.CIDR)
	case NoRegionsSelected:
		return "at least one AWS region must be selected"
	case NoBusinessUnits:
		return "at least one business unit must be specified"
	case NoEnvironments:
		return "at least one environment must be specified"
	case InsufficientAddressSpace:
		return fmt.Sprintf("top CIDR %s is too small for the requested hierarchy, need at least a /%d CIDR", e.CIDR, e.MinPrefix)
	case NotEnoughSubnetSpace:
		if e.Path != "" {
			return fmt.Sprintf("not enough subnet space for %s %s in %s (%s)", e.Level, e.Key, e.Path, e.Parent.String())
		}
		return fmt.Sprintf("not enough subnet space for %s %s in %s", e.Level, e.Key, e.Parent.String())
	}
	return e.Kind.String()
}

// Unwrap returns the underlying cause, if any
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error with the same Kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
