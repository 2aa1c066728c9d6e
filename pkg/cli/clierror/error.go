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

// Package clierror attaches exit codes to errors and prints errors the
// way the spatial4j command reports them.
package clierror

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/exit"
)

// Error wraps an error with the exit code the process should terminate
// with.
type Error struct {
	exitCode exit.Code
	cause    error
}

// NewError wraps cause with an exit code.
func NewError(cause error, exitCode exit.Code) error {
	return &Error{exitCode: exitCode, cause: cause}
}

// GetExitCode returns the exit code of the error.
func (e *Error) GetExitCode() exit.Code { return e.exitCode }

// Error implements the error interface.
func (e *Error) Error() string { return e.cause.Error() }

// Cause implements causer.
func (e *Error) Cause() error { return e.cause }

// Unwrap implements the Go 1.13 wrapper protocol.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter.
func (e *Error) Format(s fmt.State, verb rune) { errors.FormatError(e, s, verb) }

// FormatError implements errors.Formatter.
func (e *Error) FormatError(p errors.Printer) error {
	if p.Detail() {
		p.Printf("error with exit code: %s", e.exitCode)
	}
	return e.cause
}

// ExitCode returns the exit code of the outermost *Error in the chain
// of err, and exit.UnspecifiedError if there is none.
func ExitCode(err error) exit.Code {
	if err == nil {
		return exit.Success()
	}
	var cliErr *Error
	if errors.As(err, &cliErr) {
		return cliErr.GetExitCode()
	}
	return exit.UnspecifiedError()
}

// OutputError prints err to w along with its details and hints. With
// verbose set the full error chain is printed.
func OutputError(w io.Writer, err error, showSeverity, verbose bool) {
	var b strings.Builder
	if showSeverity {
		b.WriteString("ERROR: ")
	}
	if verbose {
		fmt.Fprintf(&b, "%+v", err)
	} else {
		b.WriteString(err.Error())
	}
	b.WriteByte('\n')
	for _, d := range errors.GetAllDetails(err) {
		fmt.Fprintf(&b, "DETAIL: %s\n", d)
	}
	if h := errors.FlattenHints(err); h != "" {
		fmt.Fprintf(&b, "HINT: %s\n", h)
	}
	fmt.Fprint(w, b.String())
}
