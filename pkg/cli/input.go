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

package cli

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/clierror"
	"github.com/nknize/spatial4j/pkg/cli/exit"
	"github.com/nknize/spatial4j/pkg/spatial"
	"github.com/spf13/cobra"
)

// stdinArg is the argument standing for one shape per line of stdin.
const stdinArg = "-"

// maxLineSize bounds the length of a WKT line read from stdin.
const maxLineSize = 16 << 20

// readShape parses a shape argument.
func (c *cliContext) readShape(arg string) (spatial.Shape, error) {
	s, err := c.sc.ReadShapeFromWKT(strings.TrimSpace(arg))
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", abbreviate(arg))
	}
	return s, nil
}

// forEachShape calls fn with the shape of arg, or with the shape of every
// non-blank line of stdin if arg is "-".
func (c *cliContext) forEachShape(
	cmd *cobra.Command, arg string, fn func(spatial.Shape) error,
) error {
	if arg != stdinArg {
		s, err := c.readShape(arg)
		if err != nil {
			return err
		}
		return fn(s)
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Buffer(nil, maxLineSize)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		s, err := c.readShape(text)
		if err == nil {
			err = fn(s)
		}
		if err != nil {
			return errors.Wrapf(err, "line %d", line)
		}
	}
	return errors.Wrap(scanner.Err(), "reading stdin")
}

// abbreviate shortens long WKT for error messages.
func abbreviate(s string) string {
	const maxLen = 40
	s = strings.TrimSpace(s)
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// parseFloatArg parses a numeric argument.
func parseFloatArg(name, arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, clierror.NewError(
			errors.Wrapf(err, "invalid %s", name),
			exit.CommandLineFlagError(),
		)
	}
	return v, nil
}

// formatFloat writes v with the fewest digits that represent it exactly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
