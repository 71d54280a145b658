// Package def reads switch definitions from YAML (or JSON, which is
// YAML enough).
//
// A definition looks like
//
//	name: guard-brain
//	doc: |
//	  What a guard does all day.
//	cases:
//	- when: idle
//	  run:
//	    interpreter: ecmascript
//	    source: |
//	      return "attack";
//	- when: attack
//	  run:
//	    interpreter: ecmascript
//	    source: |
//	      return "sleep";
//	default:
//	  interpreter: ecmascript
//	  source: |
//	    return "__finish__";
//
// The default can also be declared marker-style as a case with
// when: "__default__"; Compile hoists it.  Either way, at most one
// declaration may claim the default.
//
// The core stays free of file IO; this package is a front-end
// collaborator that merely produces a *core.Switch for the caller to
// Compile.
package def

import (
	"os"

	"github.com/tablewalk/swtch/core"

	"github.com/jsccast/yaml"
)

// FromYAML parses a switch definition.
//
// The result is not compiled.
func FromYAML(bs []byte) (*core.Switch, error) {
	var s core.Switch
	if err := yaml.Unmarshal(bs, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// FromFile reads and parses a switch definition from the named file.
func FromFile(filename string) (*core.Switch, error) {
	bs, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return FromYAML(bs)
}
