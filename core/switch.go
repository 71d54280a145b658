package core

import (
	"context"
	"errors"
)

// DefaultMarker is the reserved case value that marks a case as the
// fallback in marker-style definitions.
//
// A Switch doesn't actually store its default as a case.  Compile
// hoists a case declared with this marker into the Switch's Default
// slot, so the marker itself never participates in matching and can't
// shadow a real case value.
const DefaultMarker = "__default__"

// Switch is a labeled-branch dispatch table.
//
// A Switch gives the structure of the table: its cases in declaration
// order and an optional default handler.  This data does not include
// any state; the value threaded through handlers belongs to the
// caller.
//
// If a Switch includes Cases with HandlerSources, then the Switch
// should be Compiled before use.
type Switch struct {
	// Name is the generic name for this switch.  Something like
	// "door-command" or "guard-brain".
	Name string `json:"name,omitempty" yaml:",omitempty"`

	// Version is the version of this switch.  Something like
	// "1.2".
	Version string `json:"version,omitempty" yaml:",omitempty"`

	// Doc is general documentation about how this switch works.
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// Cases is the ordered list of (case value, handler)
	// bindings.  Declaration order is significant: Dispatch scans
	// this list front to back and stops at the first match.
	Cases []*Case `json:"cases,omitempty" yaml:",omitempty"`

	// Default is the optional handler that runs when no case
	// matches.  An explicit slot rather than a reserved case
	// value, so a real case value can never collide with it.
	Default Handler `json:"-" yaml:"-"`

	// DefaultSource, if given, is compiled to the Default
	// handler.  See Switch.Compile.
	DefaultSource *HandlerSource `json:"default,omitempty" yaml:"default,omitempty"`

	// defaultClaims counts how many declarations have claimed the
	// default slot.  More than one is a configuration error that
	// Compile reports.
	defaultClaims int

	compiled bool
}

// Case associates one case value with one handler.
//
// Within a Switch, a Case has no identity beyond its slot in the
// Cases list.
type Case struct {
	Doc string `json:"doc,omitempty" yaml:",omitempty"`

	// When is the case value that Dispatch compares its input
	// against.  Should be a scalar or string; see Equal for the
	// comparison rules.
	When interface{} `json:"when" yaml:"when"`

	// Handler runs when this case is selected.
	Handler Handler `json:"-" yaml:"-"`

	// HandlerSource, if given, can be compiled to a Handler.  See
	// Switch.Compile.
	HandlerSource *HandlerSource `json:"run,omitempty" yaml:"run,omitempty"`
}

// Copy makes a shallow copy of the Case.
func (c *Case) Copy() *Case {
	if c == nil {
		return nil
	}
	return &Case{
		Doc:           c.Doc,
		When:          c.When,
		Handler:       c.Handler,
		HandlerSource: c.HandlerSource.Copy(),
	}
}

// NewSwitch makes an empty Switch with the given name.
//
// Use On and Else to declare cases, then Compile.
func NewSwitch(name string) *Switch {
	return &Switch{
		Name:  name,
		Cases: make([]*Case, 0, 8),
	}
}

// On appends a case binding the given value to the given handler.
//
// Order of On calls is part of the contract: the first matching case
// wins at dispatch time.
func (s *Switch) On(value interface{}, h Handler) *Switch {
	s.Cases = append(s.Cases, &Case{
		When:    value,
		Handler: h,
	})
	return s
}

// OnFunc is On with a bare Go function.
func (s *Switch) OnFunc(value interface{}, f func(ctx context.Context, value interface{}, props Props) (interface{}, error)) *Switch {
	return s.On(value, &FuncHandler{F: f})
}

// Else claims the default slot for the given handler.
//
// Claiming the slot more than once is not reported here.  Compile
// reports it (as a *DuplicateDefaultError), so that a bad declaration
// fails when the table is built and never at dispatch time.
func (s *Switch) Else(h Handler) *Switch {
	s.Default = h
	s.defaultClaims++
	return s
}

// ElseFunc is Else with a bare Go function.
func (s *Switch) ElseFunc(f func(ctx context.Context, value interface{}, props Props) (interface{}, error)) *Switch {
	return s.Else(&FuncHandler{F: f})
}

// Copy makes a deep copy of the Switch.
//
// The copy is not compiled, even if the receiver was.
func (s *Switch) Copy(version string) *Switch {
	if version == "" {
		version = s.Version
	}
	cs := make([]*Case, len(s.Cases))
	for i, c := range s.Cases {
		cs[i] = c.Copy()
	}

	return &Switch{
		Name:          s.Name,
		Version:       version,
		Doc:           s.Doc,
		Cases:         cs,
		Default:       s.Default,
		DefaultSource: s.DefaultSource.Copy(),
	}
}

// NoHandler occurs when a compiled case has neither a Handler nor a
// HandlerSource.
var NoHandler = errors.New("case has no handler")

// Compile builds the Switch's dispatch table: handler sources become
// handlers, case values are canonicalized, and a marker-style default
// case (see DefaultMarker) is hoisted into the Default slot.
//
// All configuration errors surface here, before any dispatch: a
// switch that claims more than one default gets a
// *DuplicateDefaultError, and a case with no handler at all gets
// NoHandler.  Duplicate case values are deliberately not errors; the
// first declared one shadows the rest (tools.Analyze reports them).
func (s *Switch) Compile(ctx context.Context, interpreters map[string]Interpreter, force bool) error {

	if s.DefaultSource != nil && (force || s.Default == nil) {
		h, err := s.DefaultSource.Compile(ctx, interpreters)
		if err != nil {
			return err
		}
		if s.Default == nil {
			s.defaultClaims++
		}
		s.Default = h
	} else if s.Default != nil && s.defaultClaims == 0 {
		// Default given literally (struct literal rather than
		// Else).  Still exactly one claim.
		s.defaultClaims = 1
	}

	if s.Cases == nil {
		s.Cases = make([]*Case, 0)
	}

	kept := make([]*Case, 0, len(s.Cases))
	for _, c := range s.Cases {

		if c == nil {
			continue
		}

		if c.Handler == nil && c.HandlerSource == nil {
			return errors.New(NoHandler.Error() + `: switch "` + s.Name + `" case ` + stringify(c.When))
		}

		if c.HandlerSource != nil && (force || c.Handler == nil) {
			h, err := c.HandlerSource.Compile(ctx, interpreters)
			if err != nil {
				src := "<opaque>"
				if str, is := c.HandlerSource.Source.(string); is {
					src = str
				}
				return errors.New(err.Error() + ": case: " + stringify(c.When) + " source:\n" + src)
			}
			c.Handler = h
		}

		if str, _ := c.When.(string); str == DefaultMarker {
			// Marker-style default.  Hoist it out of the
			// case list.
			s.Default = c.Handler
			s.DefaultSource = c.HandlerSource
			s.defaultClaims++
			continue
		}

		x, err := Canonicalize(c.When)
		if err != nil {
			return err
		}
		c.When = x

		kept = append(kept, c)
	}
	s.Cases = kept

	if 1 < s.defaultClaims {
		return &DuplicateDefaultError{s}
	}

	s.compiled = true

	return nil
}

// Compiled reports whether Compile has succeeded on this Switch.
func (s *Switch) Compiled() bool {
	return s.compiled
}
