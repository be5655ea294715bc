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

// Package clock provides tools for accessing time functions
package clock

import (
	"context"
	"time"

	bclock "github.com/benbjohnson/clock"
)

// Clock is an interface for accessing time functions. *clock.Mock from github.com/benbjohnson/clock
// satisfies it, so tests can pin plan timestamps.
type Clock interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

type contextKeyType string

const clockKey contextKeyType = "Clock"

var realClock Clock = bclock.New()

// WithClock wraps parent in a new context with Clock
func WithClock(parent context.Context, c Clock) context.Context {
	if parent == nil {
		panic("cannot create context from nil parent")
	}
	return context.WithValue(parent, clockKey, c)
}

// FromContext returns Clock from context, the wall clock when none is set
func FromContext(ctx context.Context) Clock {
	if rv, ok := ctx.Value(clockKey).(Clock); ok {
		return rv
	}
	return realClock
}
