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
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoadConfig(t *testing.T) {
	testCases := []struct {
		desc     string
		in       string
		expected Config
		err      string
	}{
		{
			desc:     "empty",
			in:       "",
			expected: DefaultConfig(),
		},
		{
			desc: "all fields",
			in: `
geo: false
norm_wrap_longitude: true
dateline_rule: none
validation_rule: error
`,
			expected: Config{
				Geo:               false,
				NormWrapLongitude: true,
				DatelineRule:      DatelineRuleNone,
				ValidationRule:    ValidationRuleError,
			},
		},
		{
			desc: "partial",
			in:   "norm_wrap_longitude: true\n",
			expected: Config{
				Geo:               true,
				NormWrapLongitude: true,
				DatelineRule:      DatelineRuleWidth180,
				ValidationRule:    ValidationRuleNone,
			},
		},
		{
			desc: "unknown field",
			in:   "geodesic: true\n",
			err:  "parsing spatial context config",
		},
		{
			desc: "unknown rule",
			in:   "dateline_rule: width90\n",
			err:  `unknown dateline rule: "width90"`,
		},
		{
			desc: "unknown validation rule",
			in:   "validation_rule: repair\n",
			err:  `unknown validation rule: "repair"`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			cfg, err := LoadConfig(strings.NewReader(tc.in))
			if tc.err != "" {
				require.Error(t, err)
				require.Contains(t, err.Error(), tc.err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expected, cfg)
		})
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Config{Geo: true, NormWrapLongitude: true, DatelineRule: DatelineRuleNone, ValidationRule: ValidationRuleError}
	out, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.Equal(t, "geo: true\nnorm_wrap_longitude: true\ndateline_rule: none\nvalidation_rule: error\n", string(out))

	back, err := LoadConfig(strings.NewReader(string(out)))
	require.NoError(t, err)
	require.Equal(t, cfg, back)
}

func TestRuleFlags(t *testing.T) {
	cfg := DefaultConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Var(&cfg.DatelineRule, "dateline-rule", "")
	fs.Var(&cfg.ValidationRule, "validation-rule", "")

	require.NoError(t, fs.Parse([]string{"--dateline-rule=none", "--validation-rule=error"}))
	require.Equal(t, DatelineRuleNone, cfg.DatelineRule)
	require.Equal(t, ValidationRuleError, cfg.ValidationRule)
	require.Equal(t, "none", fs.Lookup("dateline-rule").Value.String())

	require.Error(t, fs.Parse([]string{"--dateline-rule=bogus"}))
	require.Error(t, fs.Parse([]string{"--validation-rule=bogus"}))
}
