// Copyright 2025 The Spatial4j Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

// Package log is a context-aware logging facade. Messages are prefixed with
// the logging tags attached to the context (see logtags.AddTag) and written
// through a logrus logger.
package log

import (
	"context"
	"io"
	"os"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Level specifies a level of verbosity for V logs.
type Level int32

var verbosity atomic.Int32

var logger = newLogger(os.Stderr)

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetLevel(logrus.DebugLevel)
	l.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableColors:    true,
	})
	return l
}

// SetOutput redirects all log output to w. It returns a function restoring
// the previous output.
func SetOutput(w io.Writer) (restore func()) {
	prev := logger.Out
	logger.SetOutput(w)
	return func() { logger.SetOutput(prev) }
}

// SetVerbosity sets the threshold for V logs and returns the previous one.
func SetVerbosity(level Level) Level {
	return Level(verbosity.Swap(int32(level)))
}

// V returns true if the logging verbosity is set to the specified level or
// higher.
func V(level Level) bool {
	return Level(verbosity.Load()) >= level
}

// Infof logs to the INFO severity.
func Infof(ctx context.Context, format string, args ...interface{}) {
	logger.Info(FormatWithContextTags(ctx, format, args...))
}

// Warningf logs to the WARNING severity.
func Warningf(ctx context.Context, format string, args ...interface{}) {
	logger.Warn(FormatWithContextTags(ctx, format, args...))
}

// Errorf logs to the ERROR severity.
func Errorf(ctx context.Context, format string, args ...interface{}) {
	logger.Error(FormatWithContextTags(ctx, format, args...))
}

// VEventf logs at the DEBUG severity if the verbosity is at least level.
func VEventf(ctx context.Context, level Level, format string, args ...interface{}) {
	if V(level) {
		logger.Debug(FormatWithContextTags(ctx, format, args...))
	}
}
