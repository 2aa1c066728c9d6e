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

// Package cli implements the spatial4j command, which relates, measures and
// encodes shapes given as WKT on the command line or on stdin.
package cli

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/clierror"
	"github.com/nknize/spatial4j/pkg/cli/exit"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/spf13/cobra"
)

func init() {
	cobra.EnableCommandSorting = false
}

// Main is the entry point for the spatial4j command.
func Main() {
	// Default to showing help information if no arguments are given.
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"help"}
	}
	exit.WithCode(Run(args, os.Stdin, os.Stdout, os.Stderr))
}

// Run executes the command line args and returns the exit code of the
// process. Errors and log events are written to stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) exit.Code {
	defer log.SetOutput(stderr)()
	defer log.SetVerbosity(log.SetVerbosity(0))

	err := execute(args, stdin, stdout, stderr)
	if err != nil {
		clierror.OutputError(stderr, err, true /* showSeverity */, false /* verbose */)
	}
	return clierror.ExitCode(err)
}

func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	defer func() {
		// Invalid environment variables are reported while the flags are
		// registered.
		if r := recover(); r != nil {
			if e, ok := r.(error); ok && errors.HasType(e, (*clierror.Error)(nil)) {
				err = e
				return
			}
			panic(r)
		}
	}()

	root := newRootCmd(&cliContext{})
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	return root.Execute()
}

func newRootCmd(c *cliContext) *cobra.Command {
	root := &cobra.Command{
		Use:   "spatial4j [command] (flags)",
		Short: "spatial4j dateline-aware shape tool",
		Long: `
Relate, measure and encode shapes in a geographic or planar coordinate
system. Shapes are given as WKT, or as ENVELOPE(minX, maxX, maxY, minY)
for rectangles. A shape argument of "-" reads one shape per line from
stdin.
`,
		// Disable automatic printing of usage information whenever an error
		// occurs. Many errors are not the result of a bad command invocation,
		// and the usage is noise there.
		SilenceUsage: true,
		// Errors are printed by Run, with their hints.
		SilenceErrors: true,
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return clierror.NewError(err, exit.CommandLineFlagError())
	})
	c.registerContextFlags(root.PersistentFlags())
	AddPersistentPreRunE(root, c.initContext)

	root.AddCommand(
		newRelateCmd(c),
		newDistanceCmd(c),
		newBBoxCmd(c),
		newAreaCmd(c),
		newUnwrapCmd(c),
		newValidateCmd(c),
		newNormalizeCmd(c),
		newEncodeCmd(c),
	)
	return root
}
