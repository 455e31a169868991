// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package scoped provides a mapping from a string to any data type that is "scoped".
package scoped

import (
	"strings"

	"github.com/rohithkrn/rocm-caffe2/pkg/support/xslices"
)

// Params provides a mapping from string to any data type that is "scoped":
//
//   - For every scope there is a map of string to data.
//   - Accessing a key triggers a search from the current scope up to the root scope, the
//     first result found is returned.
//
// Scopes are name prefixes: the root scope is the empty string "", and every other scope
// is a sequence of elements each terminated by the Separator. E.g.: "encoder/", "encoder/layer_0/".
//
// Example: let's say the current Params hold:
//
//	Scope: "": { "x":10, "y": 20, "z": 40 }
//	Scope: "a/": { "y": 30 }
//	Scope: "a/b/": { "x": 100 }
//
//	Params.Get("a/b/", "x") -> 100
//	Params.Get("a/b/", "y") -> 30
//	Params.Get("a/b/", "z") -> 40
//	Params.Get("a/b/", "w") -> Not found.
//
// The ModelHelper uses Params to store the engine argument overrides set within name scopes.
type Params struct {
	Separator  string
	scopeToMap map[string]map[string]any
}

// New create an empty scoped Params.
func New(scopeSeparator string) *Params {
	return &Params{
		Separator:  scopeSeparator,
		scopeToMap: make(map[string]map[string]any),
	}
}

// Set sets the value for the given key, in the given scope.
func (p *Params) Set(scope, key string, value any) {
	dataMap, found := p.scopeToMap[scope]
	if !found {
		dataMap = make(map[string]any)
		p.scopeToMap[scope] = dataMap
	}
	dataMap[key] = value
}

// Delete removes the key from the given scope only. Parent scopes are not touched.
func (p *Params) Delete(scope, key string) {
	dataMap, found := p.scopeToMap[scope]
	if !found {
		return
	}
	delete(dataMap, key)
	if len(dataMap) == 0 {
		delete(p.scopeToMap, scope)
	}
}

// Parent returns the enclosing scope of scope, and false if scope is already the root.
// E.g.: Parent("a/b/") -> "a/", Parent("a/") -> "".
func (p *Params) Parent(scope string) (string, bool) {
	if scope == "" {
		return "", false
	}
	trimmed := strings.TrimSuffix(scope, p.Separator)
	idx := strings.LastIndex(trimmed, p.Separator)
	if idx < 0 {
		return "", true
	}
	return trimmed[:idx+len(p.Separator)], true
}

// Get retrieves the value for the given key in the given scope or any parent scope.
// E.g: Get("a/b/", "myKey") will search for "myKey" in scopes "a/b/", "a/" and ""
// consecutively until "myKey" is found.
//
// It returns the first value found if any, and whether some value was found.
func (p *Params) Get(scope, key string) (value any, found bool) {
	for {
		if dataMap, ok := p.scopeToMap[scope]; ok {
			if value, found = dataMap[key]; found {
				return
			}
		}
		var hasParent bool
		scope, hasParent = p.Parent(scope)
		if !hasParent {
			return nil, false
		}
	}
}

// Enumerate enumerates all parameters stored in the Params structure and calls the given closure with
// them. Scopes and keys are visited in sorted order.
func (p *Params) Enumerate(fn func(scope, key string, value any)) {
	for _, scope := range xslices.SortedKeys(p.scopeToMap) {
		keyValues := p.scopeToMap[scope]
		for _, key := range xslices.SortedKeys(keyValues) {
			fn(scope, key, keyValues[key])
		}
	}
}
