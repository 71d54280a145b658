package noop

import (
	"context"
	"log"

	"github.com/tablewalk/swtch/core"
)

// Interpreter is a core.Interpreter which just returns the dispatched
// value without modification.
type Interpreter struct {
	// Silent, if false, will suppress warning log messages.
	Silent bool
}

func (i *Interpreter) Compile(ctx context.Context, code interface{}) (interface{}, error) {
	if !i.Silent {
		log.Printf("warning: Using noop Interpreter for compilation")
	}
	return nil, nil
}

func (i *Interpreter) Exec(ctx context.Context, value interface{}, props core.Props, code interface{}, compiled interface{}) (interface{}, error) {
	if !i.Silent {
		log.Printf("warning: Using noop Interpreter for execution")
	}
	return value, nil
}

func NewInterpreter() *Interpreter {
	return &Interpreter{}
}
