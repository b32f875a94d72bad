// Package session routes calculator input tokens: it owns the entry buffer,
// the expression echo, the error latch and the history, and calls into calc
// for arithmetic.
//
// Step is a pure function over State; Session wraps it with a History and is
// the single entry point for the presentation layer.
package session
