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

package log

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/logtags"
	"github.com/stretchr/testify/require"
)

func TestFormatWithContextTags(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, "hello 1", FormatWithContextTags(ctx, "hello %d", 1))
	require.Equal(t, "100%", FormatWithContextTags(ctx, "%d%%", 100))
	require.Equal(t, "50% done", FormatWithContextTags(ctx, "%s done", "50%"))

	ctx = logtags.AddTag(ctx, "shape", "POLYGON")
	ctx = logtags.AddTag(ctx, "n", 1)
	require.Equal(t, "[shape=POLYGON,n1] hello", FormatWithContextTags(ctx, "hello"))
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	defer SetOutput(&buf)()
	defer SetVerbosity(SetVerbosity(0))

	ctx := logtags.AddTag(context.Background(), "op", "relate")
	Infof(ctx, "info %s", "message")
	Warningf(ctx, "careful")
	Errorf(ctx, "broken")
	VEventf(ctx, 2, "hidden")

	out := buf.String()
	require.Contains(t, out, "level=info")
	require.Contains(t, out, "[op=relate] info message")
	require.Contains(t, out, "level=warning")
	require.Contains(t, out, "level=error")
	require.NotContains(t, out, "hidden")

	SetVerbosity(2)
	require.True(t, V(2))
	require.False(t, V(3))
	VEventf(ctx, 2, "shown")
	require.Contains(t, buf.String(), "shown")
}

func TestEveryN(t *testing.T) {
	defer SetVerbosity(SetVerbosity(0))

	start := time.Now()
	e := Every(time.Minute)
	require.True(t, e.shouldLog(start))
	require.False(t, e.shouldLog(start.Add(time.Second)))
	require.True(t, e.shouldLog(start.Add(time.Minute)))

	SetVerbosity(2)
	require.True(t, e.shouldLog(start.Add(time.Minute+time.Second)))
}
