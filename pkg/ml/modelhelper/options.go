// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package modelhelper

import (
	"maps"

	"github.com/rohithkrn/rocm-caffe2/pkg/ml/scope"
)

// DefaultName of a ModelHelper, if none is given with WithName.
const DefaultName = "model"

type config struct {
	name       string
	initParams bool
	argScope   ArgScope
	nameScope  *scope.NameScope
}

// Option configures a ModelHelper created with New.
type Option func(cfg *config)

func collectOptions(options ...Option) *config {
	cfg := &config{
		name:       DefaultName,
		initParams: true,
		argScope:   DefaultArgScope(),
		nameScope:  scope.Default(),
	}
	for _, option := range options {
		if option != nil {
			option(cfg)
		}
	}
	return cfg
}

// WithName sets the name of the model. It is also used to name its nets.
func WithName(name string) Option {
	return func(cfg *config) {
		if name != "" {
			cfg.name = name
		}
	}
}

// WithInitParams sets whether the parameters are initialized by ParamInitNet (the default), or
// whether they are expected to be fed to Net as external inputs (e.g.: when they are loaded from elsewhere).
func WithInitParams(initParams bool) Option {
	return func(cfg *config) {
		cfg.initParams = initParams
	}
}

// WithArgScope merges the given engine arguments over the current ones.
func WithArgScope(argScope ArgScope) Option {
	return func(cfg *config) {
		maps.Copy(cfg.argScope, argScope)
	}
}

// WithArg sets one engine argument. See ArgScope.
func WithArg(key string, value any) Option {
	return func(cfg *config) {
		cfg.argScope[key] = value
	}
}

// WithNameScope configures the NameScope used to name new parameters. The default is scope.Default().
func WithNameScope(ns *scope.NameScope) Option {
	return func(cfg *config) {
		if ns != nil {
			cfg.nameScope = ns
		}
	}
}

type paramConfig struct {
	trainable  bool
	shape      []int
	initOp     string
	initOpArgs map[string]any
	hasInitOp  bool
}

// ParamOption configures a parameter added with ModelHelper.AddParam.
type ParamOption func(cfg *paramConfig)

func collectParamOptions(options ...ParamOption) *paramConfig {
	cfg := &paramConfig{
		trainable: true,
		shape:     []int{1},
	}
	for _, option := range options {
		option(cfg)
	}
	return cfg
}

// Trainable sets whether the parameter participates in optimization. Default is true.
func Trainable(trainable bool) ParamOption {
	return func(cfg *paramConfig) {
		cfg.trainable = trainable
	}
}

// WithShape sets the dimensions of the parameter. Default is a single element ([1]).
func WithShape(dims ...int) ParamOption {
	return func(cfg *paramConfig) {
		cfg.shape = dims
	}
}

// WithInitializer sets the operator used to initialize the parameter in ParamInitNet, and its arguments.
// It cannot be combined with a constant initial value, and args cannot hold "shape": the
// shape given by WithShape is always used.
func WithInitializer(opType string, args map[string]any) ParamOption {
	return func(cfg *paramConfig) {
		cfg.initOp = opType
		cfg.initOpArgs = args
		cfg.hasInitOp = true
	}
}
