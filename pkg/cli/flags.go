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
	"context"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/nknize/spatial4j/pkg/cli/clierror"
	"github.com/nknize/spatial4j/pkg/cli/cliflags"
	"github.com/nknize/spatial4j/pkg/cli/exit"
	"github.com/nknize/spatial4j/pkg/spatial"
	"github.com/nknize/spatial4j/pkg/util/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// cliContext holds the values of the command line flags of one
// invocation.
type cliContext struct {
	configFile     string
	geo            bool
	normWrap       bool
	datelineRule   spatial.DatelineRule
	validationRule spatial.ValidationRule
	verbosity      int

	// relate
	expect string

	// distance
	withinKm float64

	// area
	geodesic bool
	areaUnit string

	// encode
	format      string
	precision   int
	byteOrder   string
	includeBBox bool

	// sc is set by the persistent pre-run hook of the root command.
	sc *spatial.Context
}

// AddPersistentPreRunE add 'fn' as a persistent pre-run function to 'cmd'.
// If the command has an existing pre-run function, it is saved and will be called
// at the beginning of 'fn'.
func AddPersistentPreRunE(cmd *cobra.Command, fn func(*cobra.Command, []string) error) {
	// Save any existing hooks.
	wrapped := cmd.PersistentPreRunE

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		// Run the previous hook if it exists.
		if wrapped != nil {
			if err := wrapped(cmd, args); err != nil {
				return err
			}
		}

		// Now we can call the new function.
		return fn(cmd, args)
	}
}

// setFlagFromEnv applies the environment variable of a flag. The command
// line is parsed afterwards, so explicit flags take precedence. An invalid
// value panics with a *clierror.Error, which Run reports like a flag error.
func setFlagFromEnv(f *pflag.FlagSet, flagInfo cliflags.FlagInfo) {
	if flagInfo.EnvVar != "" {
		if value, set := os.LookupEnv(flagInfo.EnvVar); set {
			if err := f.Set(flagInfo.Name, value); err != nil {
				panic(clierror.NewError(
					errors.Wrapf(err, "invalid value for %s", flagInfo.EnvVar),
					exit.CommandLineFlagError(),
				))
			}
		}
	}
}

// StringFlag creates a string flag and registers it with the FlagSet.
func StringFlag(f *pflag.FlagSet, valPtr *string, flagInfo cliflags.FlagInfo, defaultVal string) {
	f.StringVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// IntFlag creates an int flag and registers it with the FlagSet.
func IntFlag(f *pflag.FlagSet, valPtr *int, flagInfo cliflags.FlagInfo, defaultVal int) {
	f.IntVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// BoolFlag creates a bool flag and registers it with the FlagSet.
func BoolFlag(f *pflag.FlagSet, valPtr *bool, flagInfo cliflags.FlagInfo, defaultVal bool) {
	f.BoolVarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// Float64Flag creates a float64 flag and registers it with the FlagSet.
func Float64Flag(f *pflag.FlagSet, valPtr *float64, flagInfo cliflags.FlagInfo, defaultVal float64) {
	f.Float64VarP(valPtr, flagInfo.Name, flagInfo.Shorthand, defaultVal, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// VarFlag creates a custom-variable flag and registers it with the FlagSet.
func VarFlag(f *pflag.FlagSet, value pflag.Value, flagInfo cliflags.FlagInfo) {
	f.VarP(value, flagInfo.Name, flagInfo.Shorthand, flagInfo.Usage())

	setFlagFromEnv(f, flagInfo)
}

// registerContextFlags adds the flags configuring the spatial context.
func (c *cliContext) registerContextFlags(f *pflag.FlagSet) {
	StringFlag(f, &c.configFile, cliflags.Config, "")
	BoolFlag(f, &c.geo, cliflags.Geo, true)
	BoolFlag(f, &c.normWrap, cliflags.NormWrapLongitude, false)
	VarFlag(f, &c.datelineRule, cliflags.DatelineRule)
	VarFlag(f, &c.validationRule, cliflags.ValidationRule)
	IntFlag(f, &c.verbosity, cliflags.Verbosity, 0)
}

// initContext sets the log verbosity and builds the spatial context: the
// defaults, then the config file, then the flags that were set explicitly.
func (c *cliContext) initContext(cmd *cobra.Command, _ []string) error {
	log.SetVerbosity(log.Level(c.verbosity))

	cfg := spatial.DefaultConfig()
	if c.configFile != "" {
		f, err := os.Open(c.configFile)
		if err != nil {
			return clierror.NewError(err, exit.CommandLineFlagError())
		}
		defer f.Close()
		if cfg, err = spatial.LoadConfig(f); err != nil {
			return clierror.NewError(
				errors.Wrapf(err, "loading %s", c.configFile),
				exit.CommandLineFlagError(),
			)
		}
		log.Infof(context.Background(), "loaded %s", c.configFile)
	}

	fs := cmd.Flags()
	if fs.Changed(cliflags.Geo.Name) {
		cfg.Geo = c.geo
	}
	if fs.Changed(cliflags.NormWrapLongitude.Name) {
		cfg.NormWrapLongitude = c.normWrap
	}
	if fs.Changed(cliflags.DatelineRule.Name) {
		cfg.DatelineRule = c.datelineRule
	}
	if fs.Changed(cliflags.ValidationRule.Name) {
		cfg.ValidationRule = c.validationRule
	}
	c.sc = spatial.NewContext(cfg)
	log.VEventf(c.sc.LogContext(), 1, "geo=%t dateline_rule=%s validation_rule=%s",
		cfg.Geo, c.sc.Config().DatelineRule, cfg.ValidationRule)
	return nil
}
