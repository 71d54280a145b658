package core

import (
	"context"
	"errors"
)

var (
	// InterpreterNotFound occurs when you try to Compile a
	// HandlerSource, and the required interpreter isn't in the
	// given map of interpreters.
	InterpreterNotFound = errors.New("interpreter not found")

	// DefaultInterpreters will be used in HandlerSource.Compile
	// if given nil interpreters.
	DefaultInterpreters = make(map[string]Interpreter)
)

// Props are static properties exposed to handlers alongside the
// dispatched value.  The dispatcher passes them through untouched.
type Props map[string]interface{}

func (ps Props) Copy() Props {
	acc := make(Props, len(ps))
	for p, v := range ps {
		acc[p] = v
	}
	return acc
}

// Interpreter can optionally compile and execute code for handlers.
type Interpreter interface {
	// Compile can make something that helps when Exec()ing the
	// code later.
	Compile(ctx context.Context, code interface{}) (interface{}, error)

	// Exec executes the code with the dispatched value and
	// returns the next value.  The result of a previous Compile()
	// might be provided.
	Exec(ctx context.Context, value interface{}, props Props, code interface{}, compiled interface{}) (interface{}, error)
}

// Handler is the routine bound to a case value.
//
// A handler receives the value the caller threaded into the dispatch
// and returns the next value, which the dispatcher hands back to the
// caller unchanged.  Any side effects are the handler's own business;
// the dispatcher neither knows nor cares.
type Handler interface {
	// Run executes this handler.
	//
	// Third argument is for properties (which a handler may
	// expose in its dynamic environment).
	Run(context.Context, interface{}, Props) (interface{}, error)
}

// FuncHandler is a Handler wrapped around a Go function.
type FuncHandler struct {
	F func(context.Context, interface{}, Props) (interface{}, error) `json:"-" yaml:"-"`
}

// Run runs the given handler.
//
// A nil FuncHandler just returns the value unchanged.
func (h *FuncHandler) Run(ctx context.Context, value interface{}, props Props) (interface{}, error) {
	if h == nil || h.F == nil {
		return value, nil
	}
	return h.F(ctx, value, props)
}

// HandlerSource can be compiled to a Handler.
type HandlerSource struct {
	Interpreter string      `json:"interpreter,omitempty" yaml:",omitempty"`
	Source      interface{} `json:"source" yaml:"source"`
}

// Copy makes a shallow copy.
//
// Needed for Switch.Copy().
func (hs *HandlerSource) Copy() *HandlerSource {
	if hs == nil {
		return nil
	}
	return &HandlerSource{
		Interpreter: hs.Interpreter,
		Source:      hs.Source,
	}
}

// Compile attempts to compile the HandlerSource into a Handler using
// the given interpreters, which defaults to DefaultInterpreters.
func (hs *HandlerSource) Compile(ctx context.Context, interpreters map[string]Interpreter) (Handler, error) {
	if interpreters == nil {
		interpreters = DefaultInterpreters
	}

	interpreter, have := interpreters[hs.Interpreter]
	if !have {
		return nil, InterpreterNotFound
	}

	x, err := interpreter.Compile(ctx, hs.Source)
	if err != nil {
		return nil, err
	}

	return &FuncHandler{
		F: func(ctx context.Context, value interface{}, props Props) (interface{}, error) {
			return interpreter.Exec(ctx, value, props, hs.Source, x)
		},
	}, nil
}
