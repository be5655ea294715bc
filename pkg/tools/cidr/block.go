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

package cidr

import (
	"encoding/binary"
	"net"

	"github.com/pkg/errors"
)

// MaxPrefix is the longest IPv4 prefix length
const MaxPrefix = 32

// Block is an IPv4 network. Base never has host bits set.
type Block struct {
	Base   uint32
	Prefix int
}

// private ranges defined by RFC 1918
var privateBlocks = []Block{
	{Base: 0x0a000000, Prefix: 8},
	{Base: 0xac100000, Prefix: 12},
	{Base: 0xc0a80000, Prefix: 16},
}

// Parse parses s as an IPv4 network in CIDR notation. Addresses with host bits set are rejected.
func Parse(s string) (Block, error) {
	ip, ipNet, err := net.ParseCIDR(s)
	if err != nil {
		return Block{}, errors.Wrapf(err, "failed to parse %q", s)
	}
	ip4 := ip.To4()
	if ip4 == nil {
		return Block{}, errors.Errorf("%q is not an IPv4 network", s)
	}
	if !ip4.Equal(ipNet.IP.To4()) {
		return Block{}, errors.Errorf("%q has host bits set", s)
	}
	return FromIPNet(ipNet)
}

// MustParse is like Parse but panics on error
func MustParse(s string) Block {
	b, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return b
}

// FromIPNet converts an IPv4 *net.IPNet into a Block
func FromIPNet(ipNet *net.IPNet) (Block, error) {
	ip4 := NetworkAddress(ipNet).To4()
	ones, size := ipNet.Mask.Size()
	if ip4 == nil || size != 8*net.IPv4len {
		return Block{}, errors.Errorf("%v is not an IPv4 network", ipNet)
	}
	return Block{Base: binary.BigEndian.Uint32(ip4), Prefix: ones}, nil
}

// IPNet returns b as a *net.IPNet
func (b Block) IPNet() *net.IPNet {
	ip := make(net.IP, net.IPv4len)
	binary.BigEndian.PutUint32(ip, b.Base)
	return &net.IPNet{IP: ip, Mask: net.CIDRMask(b.Prefix, MaxPrefix)}
}

func (b Block) String() string {
	return b.IPNet().String()
}

// Size returns the number of addresses in b
func (b Block) Size() uint64 {
	return uint64(1) << uint(MaxPrefix-b.Prefix)
}

// Last returns the highest address of b as an integer
func (b Block) Last() uint32 {
	return b.Base + uint32(b.Size()-1)
}

// Network returns the network address of b
func (b Block) Network() net.IP {
	return NetworkAddress(b.IPNet())
}

// Broadcast returns the broadcast address of b
func (b Block) Broadcast() net.IP {
	return BroadcastAddress(b.IPNet())
}

// Contains reports whether other lies wholly inside b
func (b Block) Contains(other Block) bool {
	return other.Prefix >= b.Prefix && other.Base >= b.Base && other.Last() <= b.Last()
}

// Overlaps reports whether b and other share any address
func (b Block) Overlaps(other Block) bool {
	return b.Contains(other) || other.Contains(b)
}

// IsPrivate reports whether b lies inside 10.0.0.0/8, 172.16.0.0/12 or 192.168.0.0/16
func (b Block) IsPrivate() bool {
	for _, p := range privateBlocks {
		if p.Contains(b) {
			return true
		}
	}
	return false
}

// SubnetCount returns how many children of the given prefix length b splits into
func (b Block) SubnetCount(newPrefix int) (uint64, error) {
	if newPrefix < b.Prefix || newPrefix > MaxPrefix {
		return 0, errors.Errorf("new prefix /%d is not valid for %v", newPrefix, b)
	}
	return uint64(1) << uint(newPrefix-b.Prefix), nil
}

// Subnet returns the index-th child of b with the given prefix length, in address order
func (b Block) Subnet(newPrefix int, index uint64) (Block, error) {
	count, err := b.SubnetCount(newPrefix)
	if err != nil {
		return Block{}, err
	}
	if index >= count {
		return Block{}, errors.Errorf("%v has only %d /%d subnets, index %d requested", b, count, newPrefix, index)
	}
	step := uint64(1) << uint(MaxPrefix-newPrefix)
	return Block{Base: b.Base + uint32(index*step), Prefix: newPrefix}, nil
}

// Subnets returns all children of b with the given prefix length, in address order
func (b Block) Subnets(newPrefix int) ([]Block, error) {
	count, err := b.SubnetCount(newPrefix)
	if err != nil {
		return nil, err
	}
	result := make([]Block, 0, count)
	for i := uint64(0); i < count; i++ {
		sub, err := b.Subnet(newPrefix, i)
		if err != nil {
			return nil, err
		}
		result = append(result, sub)
	}
	return result, nil
}
