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

package planner

import (
	"context"

	"github.com/edwarnicke/serialize"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/fs"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/requestfile"
)

// Override adjusts a request read from file before it is planned, e.g. with command line values
type Override func(req *ipam.Request)

// Watch plans the request stored at path and plans it again every time the file changes.
// Recalculations run one at a time in file change order. Failed plans are logged and skipped,
// Last keeps the previous good plan. The channel is closed once ctx is done and pending
// recalculations have finished.
func (p *Planner) Watch(ctx context.Context, path string, overrides ...Override) <-chan *Result {
	logger := log.FromContext(ctx).WithField("planner", "Watch")
	out := make(chan *Result)

	updates := fs.WatchFile(ctx, path)
	go func() {
		var executor serialize.Executor
		for data := range updates {
			data := data
			executor.AsyncExec(func() {
				if data == nil {
					logger.Warnf("request file %s is missing", path)
					return
				}
				req, err := requestfile.Decode(data)
				if err != nil {
					logger.Errorf("request file %s: %v", path, err)
					return
				}
				for _, o := range overrides {
					o(req)
				}
				result, err := p.Calculate(ctx, req)
				if err != nil {
					return
				}
				select {
				case out <- result:
				case <-ctx.Done():
				}
			})
		}
		<-executor.AsyncExec(func() {})
		close(out)
	}()
	return out
}
