package core

// These errors are user errors, not internal errors.  They're all
// synchronous: construction errors surface from Compile, and dispatch
// errors surface from Dispatch (or whatever called it).  Nothing is
// retried, logged, or swallowed on the way up.

// NotCompiled occurs when a Switch is used (say via Dispatch())
// before it has been Compile()ed.
type NotCompiled struct {
	Switch *Switch
}

func (e *NotCompiled) Error() string {
	return `switch "` + e.Switch.Name + `" not compiled`
}

// DuplicateDefaultError occurs when more than one declaration claims
// the default slot: two marker-style default cases, or a marker case
// on top of an explicit Else/Default.
//
// Compile reports this error when the table is built.  It is never
// deferred to dispatch time.
type DuplicateDefaultError struct {
	Switch *Switch
}

func (e *DuplicateDefaultError) Error() string {
	return `switch "` + e.Switch.Name + `" claims more than one default`
}

// NoMatchError occurs at dispatch time when no case matches the given
// value and the Switch has no default handler.
//
// The caller decides what to do: propagate, log, or fall back.
type NoMatchError struct {
	Switch *Switch
	Value  interface{}
}

func (e *NoMatchError) Error() string {
	return `no case in switch "` + e.Switch.Name + `" matches ` + stringify(e.Value)
}

// UncompiledHandler occurs when a dispatch selects a case whose
// HandlerSource hasn't been Compile()ed.  Usually, this compilation
// happens as part of Switch.Compile().
type UncompiledHandler struct {
	Switch *Switch
	When   interface{}
}

func (e *UncompiledHandler) Error() string {
	return `uncompiled handler for case ` + stringify(e.When) + ` in switch "` + e.Switch.Name + `"`
}
