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

// Package fs provides filesystem helpers for the planner
package fs

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

const retryInterval = 50 * time.Millisecond

// WatchFile sends the content of filePath first on start and then on every change.
// The file does not have to exist: nil is sent while it is missing or after it is removed.
// The parent directory is created if needed. The channel is closed when ctx is done or
// the watcher fails.
func WatchFile(ctx context.Context, filePath string) <-chan []byte {
	result := make(chan []byte)
	logger := log.FromContext(ctx).WithField("fs.WatchFile", filePath)

	filePath = filepath.Clean(filePath)
	dir := filepath.Dir(filePath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		logger.Errorf("can not create watcher: %v", err)
		close(result)
		return result
	}
	if err = os.MkdirAll(dir, os.ModePerm); err == nil {
		err = watcher.Add(dir)
	}
	if err != nil {
		logger.Errorf("can not watch directory %q: %v", dir, err)
		_ = watcher.Close()
		close(result)
		return result
	}

	go func() {
		defer func() { _ = watcher.Close() }()
		defer close(result)
		monitorFile(ctx, filePath, watcher, result)
	}()
	return result
}

func monitorFile(ctx context.Context, filePath string, watcher *fsnotify.Watcher, notifyCh chan<- []byte) {
	logger := log.FromContext(ctx).WithField("fs.monitorFile", filePath)

	data, _ := os.ReadFile(filePath)
	if !send(ctx, notifyCh, data) {
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(e.Name) != filePath {
				continue
			}
			if e.Has(fsnotify.Remove) || e.Has(fsnotify.Rename) {
				logger.Warn("removed")
				if !send(ctx, notifyCh, nil) {
					return
				}
				continue
			}
			if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
				continue
			}
			data, ok := readFile(ctx, filePath)
			if !ok || !send(ctx, notifyCh, data) {
				return
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			logger.Error(err.Error())
			return
		}
	}
}

// readFile retries until the file can be read, a writer may still hold it
func readFile(ctx context.Context, filePath string) ([]byte, bool) {
	for {
		data, err := os.ReadFile(filePath)
		if err == nil {
			return data, true
		}
		if os.IsNotExist(err) {
			return nil, true
		}
		log.FromContext(ctx).WithField("fs.readFile", filePath).Warn(err.Error())
		select {
		case <-ctx.Done():
			return nil, false
		case <-time.After(retryInterval):
		}
	}
}

func send(ctx context.Context, notifyCh chan<- []byte, data []byte) bool {
	select {
	case notifyCh <- data:
		return true
	case <-ctx.Done():
		return false
	}
}
