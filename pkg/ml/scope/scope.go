// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scope implements NameScope, a stack of name prefixes used when naming model parameters.
//
// A name scope is a prefix made of elements terminated by Separator, e.g. "encoder/layer_0/".
// The root scope is the empty string. Entering a scope either appends to the current prefix,
// or, if reset, replaces it:
//
//	ns := scope.New()
//	ns.With("encoder", false, func() {
//		ns.Scoped("w")  // "encoder/w"
//		ns.With("attention", true, func() {
//			ns.Scoped("w")  // "attention/w"
//		})
//	})
//	ns.Scoped("w")  // "w"
package scope

import (
	"strings"
	"sync"
)

// Separator terminates each element of a name scope.
const Separator = "/"

// NameScope holds the current name prefix. It is safe for concurrent use, but notice
// that the current scope is shared by all goroutines using the same NameScope.
type NameScope struct {
	mu      sync.Mutex
	current string
}

// New returns a NameScope set to the root scope.
func New() *NameScope {
	return &NameScope{}
}

var defaultNameScope = New()

// Default returns the process wide NameScope, used by model helpers not configured with their own.
func Default() *NameScope {
	return defaultNameScope
}

// Normalize appends the Separator to prefix if it is not empty and doesn't yet end with it.
func Normalize(prefix string) string {
	if prefix == "" || strings.HasSuffix(prefix, Separator) {
		return prefix
	}
	return prefix + Separator
}

// Current returns the current name scope: "" for the root or a prefix ending with Separator.
func (ns *NameScope) Current() string {
	ns.mu.Lock()
	defer ns.mu.Unlock()
	return ns.current
}

// Scoped returns name prefixed by the current scope.
func (ns *NameScope) Scoped(name string) string {
	return ns.Current() + name
}

// Enter the name scope given by prefix. If reset is true, the new scope is prefix itself,
// otherwise prefix is appended to the current scope. An empty prefix with reset moves to the
// root scope, and without reset leaves the scope unchanged.
//
// It returns the function that restores the scope that was current before the call, usually deferred:
//
//	defer ns.Enter("decoder", false)()
func (ns *NameScope) Enter(prefix string, reset bool) (exit func()) {
	prefix = Normalize(prefix)
	ns.mu.Lock()
	defer ns.mu.Unlock()
	previous := ns.current
	if reset {
		ns.current = prefix
	} else {
		ns.current = previous + prefix
	}
	return func() {
		ns.mu.Lock()
		defer ns.mu.Unlock()
		ns.current = previous
	}
}

// With runs fn inside the name scope given by prefix (see Enter), and restores the previous
// scope afterward, even if fn panics.
func (ns *NameScope) With(prefix string, reset bool, fn func()) {
	exit := ns.Enter(prefix, reset)
	defer exit()
	fn()
}
