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

package clock_test

import (
	"context"
	"testing"
	"time"

	bclock "github.com/benbjohnson/clock"
	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/clock"
)

func TestFromContext(t *testing.T) {
	mock := bclock.NewMock()
	mock.Set(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))

	ctx := clock.WithClock(context.Background(), mock)
	require.Equal(t, mock.Now(), clock.FromContext(ctx).Now())

	start := clock.FromContext(ctx).Now()
	mock.Add(time.Minute)
	require.Equal(t, time.Minute, clock.FromContext(ctx).Since(start))
}

func TestFromContext_Default(t *testing.T) {
	before := time.Now()
	require.False(t, clock.FromContext(context.Background()).Now().Before(before))
}
