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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/networkservicemesh/ipamplanner/pkg/ipam/planner"
	"github.com/networkservicemesh/ipamplanner/pkg/ipam/stats"
	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

const (
	tfvarsFile      = "ipam.auto.tfvars"
	modulePatchFile = "module_patch.tf"
)

// writeResult writes the tfvars and module patch of result into dir and prints its summary to w.
// A module patch left over from an earlier plan is removed when the new plan needs none.
func writeResult(ctx context.Context, dir string, result *planner.Result, w io.Writer) error {
	logger := log.FromContext(ctx).WithField("cmd", "writeResult")

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "failed to create output directory %s", dir)
	}

	tfvars := filepath.Join(dir, tfvarsFile)
	if err := os.WriteFile(tfvars, []byte(result.TFVars), 0o600); err != nil {
		return errors.Wrapf(err, "failed to write %s", tfvars)
	}
	logger.Infof("wrote %s", tfvars)

	patch := filepath.Join(dir, modulePatchFile)
	if result.HasModulePatch {
		if err := os.WriteFile(patch, []byte(result.ModulePatch), 0o600); err != nil {
			return errors.Wrapf(err, "failed to write %s", patch)
		}
		logger.Infof("wrote %s", patch)
	} else if err := os.Remove(patch); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "failed to remove stale %s", patch)
	}

	_, _ = fmt.Fprintf(w, "Plan %d (%s) for %s\n\n", result.Generation, result.ID, result.Tree.Top.CIDR())
	if err := stats.WriteHierarchy(w, result.Tree); err != nil {
		return errors.Wrap(err, "failed to print pool hierarchy")
	}
	_, _ = fmt.Fprintln(w)
	if err := result.Stats.WriteTable(w); err != nil {
		return errors.Wrap(err, "failed to print allocation summary")
	}
	if result.Changes != nil && !result.Changes.Empty() {
		_, _ = fmt.Fprintf(w, "\nChanges since plan %d:\n%s\n", result.Generation-1, result.Changes)
	}
	return nil
}
