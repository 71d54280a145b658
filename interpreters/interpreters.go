// Package interpreters gathers the handler interpreters that ship
// with this repo.
package interpreters

import (
	"github.com/tablewalk/swtch/core"
	"github.com/tablewalk/swtch/interpreters/ecmascript"
	"github.com/tablewalk/swtch/interpreters/noop"
)

// Standard returns the standard map of named interpreters.
func Standard() map[string]core.Interpreter {
	is := make(map[string]core.Interpreter)

	es := ecmascript.NewInterpreter()
	is["ecmascript"] = es
	is["ecmascript-5.1"] = es

	ext := ecmascript.NewInterpreter()
	ext.Extended = true
	is["ecmascript-ext"] = ext
	is["ecmascript-5.1-ext"] = ext
	is["goja"] = ext // For backwards compatibility

	is["noop"] = noop.NewInterpreter()

	return is
}
