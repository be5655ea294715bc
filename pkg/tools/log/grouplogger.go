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

type groupLogger struct {
	loggers []Logger
}

// Combine - returns a Logger writing to every one of loggers
func Combine(loggers ...Logger) Logger {
	if len(loggers) == 1 {
		return loggers[0]
	}
	return &groupLogger{loggers: loggers}
}

func (j *groupLogger) each(f func(l Logger)) {
	for _, l := range j.loggers {
		f(l)
	}
}

func (j *groupLogger) Info(v ...interface{}) { j.each(func(l Logger) { l.Info(v...) }) }
func (j *groupLogger) Infof(format string, v ...interface{}) {
	j.each(func(l Logger) { l.Infof(format, v...) })
}
func (j *groupLogger) Warn(v ...interface{}) { j.each(func(l Logger) { l.Warn(v...) }) }
func (j *groupLogger) Warnf(format string, v ...interface{}) {
	j.each(func(l Logger) { l.Warnf(format, v...) })
}
func (j *groupLogger) Error(v ...interface{}) { j.each(func(l Logger) { l.Error(v...) }) }
func (j *groupLogger) Errorf(format string, v ...interface{}) {
	j.each(func(l Logger) { l.Errorf(format, v...) })
}
func (j *groupLogger) Fatal(v ...interface{}) { j.each(func(l Logger) { l.Fatal(v...) }) }
func (j *groupLogger) Fatalf(format string, v ...interface{}) {
	j.each(func(l Logger) { l.Fatalf(format, v...) })
}
func (j *groupLogger) Debug(v ...interface{}) { j.each(func(l Logger) { l.Debug(v...) }) }
func (j *groupLogger) Debugf(format string, v ...interface{}) {
	j.each(func(l Logger) { l.Debugf(format, v...) })
}
func (j *groupLogger) Object(k, v interface{}) { j.each(func(l Logger) { l.Object(k, v) }) }

func (j *groupLogger) WithField(key, value interface{}) Logger {
	loggers := make([]Logger, len(j.loggers))
	for i, l := range j.loggers {
		loggers[i] = l.WithField(key, value)
	}
	return &groupLogger{loggers: loggers}
}
