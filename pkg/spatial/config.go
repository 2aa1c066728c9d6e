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

package spatial

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// DatelineRule controls how geometries crossing the dateline are handled
// at construction.
type DatelineRule int

const (
	// DatelineRuleWidth180 unwraps geometries whose consecutive vertices are
	// more than 180 degrees apart, interpreting such edges as crossing the
	// dateline.
	DatelineRuleWidth180 DatelineRule = iota
	// DatelineRuleNone keeps the coordinates as given.
	DatelineRuleNone
)

var datelineRuleNames = map[DatelineRule]string{
	DatelineRuleWidth180: "width180",
	DatelineRuleNone:     "none",
}

// ValidationRule controls what happens to geometries that are not valid
// after construction.
type ValidationRule int

const (
	// ValidationRuleNone accepts invalid geometries; Geometry.IsValid reports
	// them.
	ValidationRuleNone ValidationRule = iota
	// ValidationRuleError rejects invalid geometries with ErrInvalidShape.
	ValidationRuleError
)

var validationRuleNames = map[ValidationRule]string{
	ValidationRuleNone:  "none",
	ValidationRuleError: "error",
}

var _ pflag.Value = (*DatelineRule)(nil)
var _ pflag.Value = (*ValidationRule)(nil)

// String implements the pflag.Value interface.
func (r DatelineRule) String() string { return datelineRuleNames[r] }

// Type implements the pflag.Value interface.
func (r *DatelineRule) Type() string { return "<dateline rule>" }

// Set implements the pflag.Value interface.
func (r *DatelineRule) Set(v string) error {
	for rule, name := range datelineRuleNames {
		if name == v {
			*r = rule
			return nil
		}
	}
	return errors.Newf("unknown dateline rule: %q", v)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (r *DatelineRule) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.Set(s)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (r DatelineRule) MarshalYAML() (interface{}, error) { return r.String(), nil }

// String implements the pflag.Value interface.
func (r ValidationRule) String() string { return validationRuleNames[r] }

// Type implements the pflag.Value interface.
func (r *ValidationRule) Type() string { return "<validation rule>" }

// Set implements the pflag.Value interface.
func (r *ValidationRule) Set(v string) error {
	for rule, name := range validationRuleNames {
		if name == v {
			*r = rule
			return nil
		}
	}
	return errors.Newf("unknown validation rule: %q", v)
}

// UnmarshalYAML implements the yaml.Unmarshaler interface.
func (r *ValidationRule) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return r.Set(s)
}

// MarshalYAML implements the yaml.Marshaler interface.
func (r ValidationRule) MarshalYAML() (interface{}, error) { return r.String(), nil }

// Config configures a Context.
type Config struct {
	// Geo selects the geographic coordinate system, where x is a longitude
	// wrapping at the dateline and y a latitude. Otherwise coordinates are
	// planar and unbounded.
	Geo bool `yaml:"geo"`
	// NormWrapLongitude normalizes out of range longitudes and latitudes
	// instead of rejecting them.
	NormWrapLongitude bool `yaml:"norm_wrap_longitude"`
	// DatelineRule is only meaningful for geographic contexts.
	DatelineRule DatelineRule `yaml:"dateline_rule"`
	// ValidationRule applies to geometries.
	ValidationRule ValidationRule `yaml:"validation_rule"`
}

// DefaultConfig returns the configuration of GEO.
func DefaultConfig() Config {
	return Config{
		Geo:            true,
		DatelineRule:   DatelineRuleWidth180,
		ValidationRule: ValidationRuleNone,
	}
}

// LoadConfig reads a YAML configuration. Fields that are not set keep the
// value of DefaultConfig; unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrap(err, "parsing spatial context config")
	}
	return cfg, nil
}
