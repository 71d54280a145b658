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


// Package core provides the core gear for declarative switch tables:
// ordered (case value, handler) bindings with an optional default
// handler, and a dispatcher that selects and invokes exactly one
// handler per evaluation.
//
// The primary type is Switch, and the primary methods are Dispatch()
// and Run().  A Switch holds its Cases in declaration order; Dispatch
// scans those cases and invokes the handler of the first case whose
// value equals the given value.  If no case matches, the Switch's
// Default handler (if any) runs instead.
//
// A handler takes an opaque value and returns the next value.  That
// contract makes a Switch double as a small state machine: Run()
// repeatedly dispatches on the evolving value until it equals a
// caller-chosen sentinel.
//
// A Switch can use arbitrary Go code for handlers (see FuncHandler),
// or handlers can be given as HandlerSources, each of which names an
// Interpreter that knows how to Compile and Exec the source.  A
// Switch with HandlerSources should be Compiled before use.
//
// Dispatch itself performs no IO and never mutates the Switch, so a
// compiled Switch is safe to share across goroutines.  Whatever a
// handler does with the world is the handler's business.
//
// To use this package, make a Switch (literally or with On/Else).
// Then Compile() it.  Then Dispatch() a value, or Run() the loop.
//
// See https://github.com/tablewalk/swtch for an overview.
package core
