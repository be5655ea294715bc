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

// Package logruslogger provides wrapper for logrus logger
// which is consistent with Logger interface
package logruslogger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	nested "github.com/antonfisher/nested-logrus-formatter"
	"github.com/sirupsen/logrus"

	"github.com/networkservicemesh/ipamplanner/pkg/tools/log"
)

type logrusLogger struct {
	entry *logrus.Entry
}

func newFormatter() *nested.Formatter {
	return &nested.Formatter{
		FieldsOrder:     []string{"id", "name", "request"},
		TimestampFormat: "2006-01-02 15:04:05.000",
		NoColors:        true,
	}
}

// New - creates a logruslogger writing to the logrus standard logger and returns it
func New(ctx context.Context, fields ...logrus.Fields) log.Logger {
	return NewWithLogger(ctx, logrus.StandardLogger(), fields...)
}

// NewWithLogger - creates a logruslogger on top of the given *logrus.Logger
func NewWithLogger(_ context.Context, logger *logrus.Logger, fields ...logrus.Fields) log.Logger {
	logger.SetFormatter(newFormatter())
	entry := logrus.NewEntry(logger)
	for _, f := range fields {
		entry = entry.WithFields(f)
	}
	return &logrusLogger{entry: entry}
}

// NewForOutput - creates a logruslogger with its own *logrus.Logger writing to out at the given level
func NewForOutput(ctx context.Context, out io.Writer, level string, fields ...logrus.Fields) (log.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(lvl)
	return NewWithLogger(ctx, logger, fields...), nil
}

func (s *logrusLogger) Info(v ...interface{}) {
	s.entry.Info(v...)
}

func (s *logrusLogger) Infof(format string, v ...interface{}) {
	s.entry.Infof(format, v...)
}

func (s *logrusLogger) Warn(v ...interface{}) {
	s.entry.Warn(v...)
}

func (s *logrusLogger) Warnf(format string, v ...interface{}) {
	s.entry.Warnf(format, v...)
}

func (s *logrusLogger) Error(v ...interface{}) {
	s.entry.Error(v...)
}

func (s *logrusLogger) Errorf(format string, v ...interface{}) {
	s.entry.Errorf(format, v...)
}

func (s *logrusLogger) Fatal(v ...interface{}) {
	s.entry.Fatal(v...)
}

func (s *logrusLogger) Fatalf(format string, v ...interface{}) {
	s.entry.Fatalf(format, v...)
}

func (s *logrusLogger) Debug(v ...interface{}) {
	s.entry.Debug(v...)
}

func (s *logrusLogger) Debugf(format string, v ...interface{}) {
	s.entry.Debugf(format, v...)
}

func (s *logrusLogger) Object(k, v interface{}) {
	msg := ""
	cc, err := json.Marshal(v)
	if err == nil {
		msg = string(cc)
	} else {
		msg = fmt.Sprint(v)
	}
	s.Infof("%v=%s", k, msg)
}

func (s *logrusLogger) WithField(key, value interface{}) log.Logger {
	return &logrusLogger{
		entry: s.entry.WithField(fmt.Sprint(key), value),
	}
}
