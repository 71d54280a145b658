// Package swtch provides declarative switch tables: ordered case-to-handler
// dispatch that can also be driven in a loop as a little state machine.
//
// The core code is in package 'core', and some command-line tools are in `cmd`.
//
// See https://github.com/tablewalk/swtch/blob/master/README.md for more.
package swtch
