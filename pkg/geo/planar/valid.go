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

package planar

import "github.com/twpayne/go-geom"

// IsValid returns whether t is a valid geometry in the OGC sense. If it is
// not, the reason is returned as well.
func IsValid(t geom.T) (bool, string) {
	g, err := toSF(t)
	if err != nil {
		return false, err.Error()
	}
	if err := g.Validate(); err != nil {
		return false, err.Error()
	}
	return true, ""
}
