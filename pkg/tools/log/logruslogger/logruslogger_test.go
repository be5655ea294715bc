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

package logruslogger_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log/logruslogger"
)

func TestLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logruslogger.NewForOutput(context.Background(), &buf, "debug", logrus.Fields{"name": "planner"})
	require.NoError(t, err)

	ctx := log.WithLog(context.Background(), logger)
	log.FromContext(ctx).WithField("request", "r1").Infof("allocated %d regions", 2)
	log.FromContext(ctx).Debug("debug line")

	out := buf.String()
	require.Contains(t, out, "[INFO]")
	require.Contains(t, out, "name:planner")
	require.Contains(t, out, "request:r1")
	require.Contains(t, out, "allocated 2 regions")
	require.Contains(t, out, "debug line")
}

func TestLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logruslogger.NewForOutput(context.Background(), &buf, "warn")
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")
	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")

	_, err = logruslogger.NewForOutput(context.Background(), &buf, "loud")
	require.Error(t, err)
}
