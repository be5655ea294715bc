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

package log

import "os"

type emptyLogger struct{}

// Empty - provides a logger that does nothing
func Empty() Logger {
	return &emptyLogger{}
}

func (s *emptyLogger) Info(v ...interface{})                   {}
func (s *emptyLogger) Infof(format string, v ...interface{})   {}
func (s *emptyLogger) Warn(v ...interface{})                   {}
func (s *emptyLogger) Warnf(format string, v ...interface{})   {}
func (s *emptyLogger) Error(v ...interface{})                  {}
func (s *emptyLogger) Errorf(format string, v ...interface{})  {}
func (s *emptyLogger) Fatal(v ...interface{})                  { os.Exit(1) }
func (s *emptyLogger) Fatalf(format string, v ...interface{})  { os.Exit(1) }
func (s *emptyLogger) Debug(v ...interface{})                  {}
func (s *emptyLogger) Debugf(format string, v ...interface{})  {}
func (s *emptyLogger) Object(k, v interface{})                 {}
func (s *emptyLogger) WithField(key, value interface{}) Logger { return s }
