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

package exit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCodes(t *testing.T) {
	require.Equal(t, 0, Success().ToInt())
	require.Equal(t, "1", UnspecifiedError().String())
	require.Equal(t, 4, CommandLineFlagError().ToInt())
	require.Equal(t, "125", ValidationFailed().String())
	require.NotEqual(t, UnspecifiedError(), UnspecifiedGoPanic())
}
