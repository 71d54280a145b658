/* Copyright 2023 The swtch Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package tools provides switch analysis and rendering utilities: the
// stuff that's good to have around a switch but isn't dispatch
// itself.
package tools

import (
	"encoding/json"
	"sort"

	"github.com/tablewalk/swtch/core"

	"gopkg.in/yaml.v2"
)

// SwitchAnalysis reports on the structure of a Switch.
//
// Most findings here are lint, not errors: the dispatcher happily
// runs a switch with shadowed cases, but the author probably wants to
// know.
type SwitchAnalysis struct {
	s *core.Switch

	Errors       []string `json:"errors,omitempty" yaml:",omitempty"`
	CaseCount    int      `json:"caseCount" yaml:"caseCount"`
	HasDefault   bool     `json:"hasDefault" yaml:"hasDefault"`
	Handlers     int      `json:"handlers" yaml:",omitempty"`
	Interpreters []string `json:"interpreters,omitempty" yaml:",omitempty"`

	// Shadowed lists case values (as JSON) declared more than
	// once.  Only the first declaration of each is ever reachable.
	Shadowed []string `json:"shadowed,omitempty" yaml:",omitempty"`
}

// Analyze scrutinizes the given Switch.
func Analyze(s *core.Switch) (*SwitchAnalysis, error) {

	a := SwitchAnalysis{
		s:          s,
		CaseCount:  len(s.Cases),
		HasDefault: s.Default != nil || s.DefaultSource != nil,
		Errors:     make([]string, 0, 8),
	}

	interpreters := make(map[string]bool)
	shadowed := make(map[string]bool)

	for i, c := range s.Cases {
		if c == nil {
			continue
		}
		if c.Handler != nil || c.HandlerSource != nil {
			a.Handlers++
			if c.HandlerSource != nil {
				interpreters[c.HandlerSource.Interpreter] = true
			}
		} else {
			a.Errors = append(a.Errors, "case "+stringify(c.When)+" has no handler")
		}

		for _, earlier := range s.Cases[:i] {
			if earlier == nil {
				continue
			}
			if core.Equal(earlier.When, c.When) {
				shadowed[stringify(c.When)] = true
				break
			}
		}
	}

	if s.DefaultSource != nil {
		interpreters[s.DefaultSource.Interpreter] = true
	}

	a.Interpreters = keysToStringSlice(interpreters)
	a.Shadowed = keysToStringSlice(shadowed)

	return &a, nil
}

// YAML renders the analysis.
func (a *SwitchAnalysis) YAML() (string, error) {
	bs, err := yaml.Marshal(a)
	if err != nil {
		return "", err
	}
	return string(bs), nil
}

func keysToStringSlice(m map[string]bool) []string {
	acc := make([]string, 0, len(m))
	for k := range m {
		acc = append(acc, k)
	}
	sort.Strings(acc)
	return acc
}

func stringify(x interface{}) string {
	bs, err := json.Marshal(&x)
	if err != nil {
		return "<opaque>"
	}
	return string(bs)
}
