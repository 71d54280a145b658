package core

import (
	"context"
)

var (
	// DefaultControl will be used by Switch.Run if the given
	// control is nil.
	DefaultControl = &Control{
		Limit: 100,
	}
)

// StopReason represents the possible reasons for a Run to terminate.
type StopReason int

//go:generate stringer -type=StopReason

const (
	Finished          StopReason = iota // The value reached the sentinel.
	Limited                             // Too many steps.
	BreakpointReached                   // During a Run.
)

// Breakpoint is a predicate over the current value.
//
// When a Breakpoint returns true for a value, then a Run should stop
// at that point.
type Breakpoint func(context.Context, interface{}) bool

// Control influences how Run() operates.
//
// The dispatcher itself imposes no step limit; whatever bound a Run
// has, the caller chose it here.
type Control struct {
	// Limit is the maximum number of dispatches that a Run() can
	// make.  Zero or negative means no limit, in which case an
	// ill-formed table that never reaches the sentinel loops
	// forever.  That's a usage defect, not a dispatcher fault.
	Limit       int
	Breakpoints map[string]Breakpoint
}

func (c *Control) Copy() *Control {
	bs := make(map[string]Breakpoint, len(c.Breakpoints))
	for id, b := range c.Breakpoints {
		bs[id] = b
	}
	return &Control{
		Limit:       c.Limit,
		Breakpoints: bs,
	}
}

// Dispatch selects and invokes exactly one handler for the given
// value.
//
// Cases are scanned in declaration order, and the scan stops at the
// first case whose value Equals the given value: an ordered,
// first-match policy, so a later case with a duplicate value is just
// dead code.  When no case matches, the Default handler (if any) runs
// instead; otherwise Dispatch fails with a *NoMatchError naming the
// unmatched value.
//
// The selected handler gets state as its input, and its output is
// returned unchanged.  A handler error propagates unwrapped: to the
// caller it looks exactly like a direct call failure.
//
// Dispatch never mutates the Switch.
func (s *Switch) Dispatch(ctx context.Context, value interface{}, state interface{}, props Props) (interface{}, error) {

	if !s.compiled {
		return nil, &NotCompiled{s}
	}

	for _, c := range s.Cases {
		if !Equal(c.When, value) {
			continue
		}
		if c.Handler == nil {
			return nil, &UncompiledHandler{s, c.When}
		}
		return c.Handler.Run(ctx, state, props)
	}

	if s.Default != nil {
		return s.Default.Run(ctx, state, props)
	}

	return nil, &NoMatchError{
		Switch: s,
		Value:  value,
	}
}

// Evaluate is the single-shot entry point: it dispatches on value
// using value itself as the handler input, returning the selected
// handler's output.
//
// An uncompiled Switch is compiled first (with DefaultInterpreters),
// so Evaluate can be handed a bare table literal.
func Evaluate(ctx context.Context, s *Switch, value interface{}) (interface{}, error) {
	if !s.compiled {
		if err := s.Compile(ctx, nil, false); err != nil {
			return nil, err
		}
	}
	return s.Dispatch(ctx, value, value, nil)
}

// Stride represents one dispatch that Run has taken.
type Stride struct {
	// From is the value that was dispatched on.
	From interface{} `json:"from,omitempty" yaml:",omitempty"`

	// To is the value the selected handler returned.
	To interface{} `json:"to,omitempty" yaml:",omitempty"`
}

// Ran represents a sequence of strides taken by a Run().
type Ran struct {
	// Strides contains each Stride taken, in order.
	Strides []*Stride `json:"strides" yaml:",omitempty"`

	// StoppedBecause reports the reason why the Run stopped.
	StoppedBecause StopReason `json:"stoppedBecause,omitempty" yaml:",omitempty"`

	// BreakpointId is the id of the breakpoint, if any, that
	// caused this Run to stop.
	BreakpointId string `json:"breakpoint,omitempty" yaml:",omitempty"`
}

// From returns the value the Run started with.
func (r *Ran) From() interface{} {
	if 0 == len(r.Strides) {
		return nil
	}
	return r.Strides[0].From
}

// To returns the last value the Run produced.
func (r *Ran) To() interface{} {
	if 0 == len(r.Strides) {
		return nil
	}
	return r.Strides[len(r.Strides)-1].To
}

func newRan(siz int) *Ran {
	max := 1024
	if siz < 0 || max < siz {
		siz = max
	}
	return &Ran{
		Strides: make([]*Stride, 0, siz),
	}
}

func (r *Ran) add(s *Stride) {
	r.Strides = append(r.Strides, s)
}

// Run drives the Switch as a state machine: the evolving value is
// used simultaneously as the comparison key and as the handler input,
// so each handler both acts and names the next state.
//
// The loop terminates when the value Equals the given sentinel
// (StoppedBecause Finished), when the Control's Limit is exhausted
// (Limited), or when a Breakpoint fires (BreakpointReached).  A nil
// control means DefaultControl.
//
// Any error -- no match, or a handler failure -- stops the Run
// immediately; the error is returned unchanged along with the strides
// taken so far.
func (s *Switch) Run(ctx context.Context, state interface{}, sentinel interface{}, c *Control, props Props) (*Ran, error) {

	if c == nil {
		c = DefaultControl
	}

	ran := newRan(c.Limit)

	for i := 0; c.Limit <= 0 || i < c.Limit; i++ {
		for id, breakpoint := range c.Breakpoints {
			if breakpoint(ctx, state) {
				ran.StoppedBecause = BreakpointReached
				ran.BreakpointId = id
				return ran, nil
			}
		}

		if Equal(state, sentinel) {
			ran.StoppedBecause = Finished
			return ran, nil
		}

		next, err := s.Dispatch(ctx, state, state, props)
		if err != nil {
			return ran, err
		}

		ran.add(&Stride{
			From: state,
			To:   next,
		})

		state = next
	}

	// We hit the c.Limit.  That's a problem.
	ran.StoppedBecause = Limited

	return ran, nil
}
