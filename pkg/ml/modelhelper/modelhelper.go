// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package modelhelper defines the ModelHelper and Param types: ModelHelper organizes the named parameters
// of a model being constructed, and records how each of them is initialized.
//
// Parameters are named within name scopes (see package scope): a parameter added while the name scope
// "encoder/" is current is named "encoder/<name>". The registry of parameters is permanent: scopes only
// affect naming and grouping, and any parameter can be retrieved after its scope is closed.
//
// Example:
//
//	ns := scope.New()
//	m := modelhelper.New(modelhelper.WithName("translator"), modelhelper.WithNameScope(ns))
//	step := m.AddParam("global_step", int64(0), modelhelper.Trainable(false))
//	ns.With("encoder", false, func() {
//		m.AddParam("embeddings", nil, modelhelper.WithShape(vocabSize, embedDim),
//			modelhelper.WithInitializer("XavierFill", nil))
//		m.NonTrainableParams()  // -> []: only parameters of "encoder/".
//	})
//	m.NonTrainableParams()  // -> [global_step]
//
// Programming errors, like adding a parameter twice or with an unsupported initial value, panic
// with an error that includes a stack trace. Use exceptions.TryCatch[error] to convert it back to an error.
package modelhelper

import (
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
	"github.com/rohithkrn/rocm-caffe2/internal/scoped"
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/scope"
	"github.com/rohithkrn/rocm-caffe2/pkg/support/xslices"
	"k8s.io/klog/v2"
)

// ModelHelper represents one model-construction session.
//
// It is not safe for concurrent use.
type ModelHelper struct {
	name       string
	initParams bool

	// argScope holds the engine configuration given at creation, and argOverrides
	// those set within name scopes with SetArg.
	argScope     ArgScope
	argOverrides *scoped.Params

	nameScope *scope.NameScope

	paramInitNet, net *Net

	// params is a plain list of all parameters, in creation order.
	params       []*Param
	paramsByName map[string]*Param
}

// New creates a ModelHelper configured by the given options.
//
// By default, it is named DefaultName, parameters are initialized by ParamInitNet, the engine
// arguments are DefaultArgScope() and names are scoped by scope.Default(). Nil options are ignored.
func New(options ...Option) *ModelHelper {
	cfg := collectOptions(options...)
	m := &ModelHelper{
		name:         cfg.name,
		initParams:   cfg.initParams,
		argScope:     cfg.argScope,
		argOverrides: scoped.New(scope.Separator),
		nameScope:    cfg.nameScope,
		net:          NewNet(cfg.name),
		paramInitNet: NewNet(cfg.name + "_init"),
		paramsByName: make(map[string]*Param),
	}
	klog.V(1).Infof("ModelHelper %q created: initParams=%v, argScope=%v", m.name, m.initParams, m.argScope)
	return m
}

// Name of the model.
func (m *ModelHelper) Name() string { return m.name }

// InitParams returns whether parameters are initialized by ParamInitNet. If false, parameters are
// external inputs of Net.
func (m *ModelHelper) InitParams() bool { return m.initParams }

// NameScope used to name new parameters.
func (m *ModelHelper) NameScope() *scope.NameScope { return m.nameScope }

// Net returns the net holding the model.
func (m *ModelHelper) Net() *Net { return m.net }

// ParamInitNet returns the net holding the parameters' initialization operators.
func (m *ModelHelper) ParamInitNet() *Net { return m.paramInitNet }

// AddParam registers a new parameter named name in the current name scope, and returns its handle.
//
// If initValue is not nil, the parameter is filled with this constant: it must be an integer, a float
// (including float16.Float16) or a string. Alternatively, initValue can be nil and an initializer operator
// be given with WithInitializer. By default, parameters are trainable, see Trainable.
//
// If InitParams is true, the initialization operator is added to ParamInitNet, otherwise the parameter
// is added as an external input to Net and the initializer is not used.
//
// It panics if the parameter already exists, if name is empty or contains scope.Separator, or if the
// initialization is invalid. The shape always comes from WithShape: initializer args cannot set "shape".
func (m *ModelHelper) AddParam(name string, initValue any, options ...ParamOption) *Param {
	if name == "" {
		exceptions.Panicf("ModelHelper %q: cannot add a parameter with an empty name", m.name)
	}
	if strings.Contains(name, scope.Separator) {
		exceptions.Panicf("ModelHelper %q: cannot use separator %q in parameter name %q, use a name scope instead",
			m.name, scope.Separator, name)
	}
	cfg := collectParamOptions(options...)
	nameScope := m.nameScope.Current()
	fullName := nameScope + name
	if _, found := m.paramsByName[fullName]; found {
		exceptions.Panicf("ModelHelper %q: parameter %q already exists", m.name, fullName)
	}
	if initValue != nil && cfg.hasInitOp {
		exceptions.Panicf("ModelHelper %q: parameter %q given both an initial value (%v) and an initializer (%q)",
			m.name, fullName, initValue, cfg.initOp)
	}
	if _, found := cfg.initOpArgs["shape"]; found {
		exceptions.Panicf("ModelHelper %q: parameter %q initializer %q args cannot set \"shape\", use WithShape instead",
			m.name, fullName, cfg.initOp)
	}

	p := &Param{
		name:      fullName,
		baseName:  name,
		nameScope: nameScope,
		trainable: cfg.trainable,
		shape:     xslices.Copy(cfg.shape),
		initValue: initValue,
		dtype:     dtypes.InvalidDType,
	}
	if initValue != nil {
		dtype, err := initValueDType(initValue)
		if err != nil {
			panic(errors.WithMessagef(err, "ModelHelper %q: parameter %q", m.name, fullName))
		}
		p.dtype = dtype
	}

	if m.initParams {
		p.initializer = m.addInitializer(p, cfg)
	} else {
		if initValue != nil || cfg.hasInitOp {
			klog.Warningf("ModelHelper %q: parameter %q initializer ignored, since InitParams is false", m.name, fullName)
		}
		m.net.AddExternalInput(fullName)
	}

	m.params = append(m.params, p)
	m.paramsByName[fullName] = p
	klog.V(1).Infof("ModelHelper %q: added parameter %q (trainable=%v, shape=%v)", m.name, fullName, p.trainable, p.shape)
	return p
}

// addInitializer adds the operator that initializes p to ParamInitNet.
func (m *ModelHelper) addInitializer(p *Param, cfg *paramConfig) *OperatorDef {
	outputs := []string{p.name}
	if cfg.hasInitOp {
		args := make(map[string]any, len(cfg.initOpArgs)+1)
		args["shape"] = xslices.Copy(p.shape)
		for key, value := range cfg.initOpArgs {
			args[key] = value
		}
		return m.paramInitNet.AddOp(cfg.initOp, nil, outputs, args)
	}
	if p.initValue == nil {
		exceptions.Panicf("ModelHelper %q: parameter %q needs either an initial value or an initializer, "+
			"since InitParams is true", m.name, p.name)
	}
	args := map[string]any{
		"shape": xslices.Copy(p.shape),
		"value": p.initValue,
	}
	if p.dtype != dtypes.InvalidDType {
		args["dtype"] = p.dtype
	}
	return m.paramInitNet.AddOp(OpConstantFill, nil, outputs, args)
}

// Param returns the parameter with the given full name (including the name scope).
func (m *ModelHelper) Param(fullName string) (p *Param, found bool) {
	p, found = m.paramsByName[fullName]
	return
}

// NumParams returns the number of registered parameters.
func (m *ModelHelper) NumParams() int { return len(m.params) }

// AllParams returns all registered parameters, in the order they were added.
// It returns a new slice at every call, nil if there are no parameters.
func (m *ModelHelper) AllParams() []*Param {
	return xslices.Copy(m.params)
}

// ParamsIn returns the parameters added in the given name scope, in the order they were added.
// The root scope "" returns all parameters. A missing trailing scope.Separator is added to namescope.
//
// Only exact matches are returned: parameters of "encoder/layer_0/" are not part of "encoder/".
func (m *ModelHelper) ParamsIn(namescope string) []*Param {
	return m.filterParams(namescope, nil)
}

// TrainableParams returns the trainable parameters of the current name scope, in the order they were added.
// At the root scope it returns all trainable parameters.
func (m *ModelHelper) TrainableParams() []*Param {
	return m.filterParams(m.nameScope.Current(), func(p *Param) bool { return p.trainable })
}

// NonTrainableParams returns the non-trainable parameters of the current name scope, in the order they were
// added. At the root scope it returns all non-trainable parameters.
func (m *ModelHelper) NonTrainableParams() []*Param {
	return m.filterParams(m.nameScope.Current(), func(p *Param) bool { return !p.trainable })
}

func (m *ModelHelper) filterParams(namescope string, keep func(p *Param) bool) []*Param {
	namescope = scope.Normalize(namescope)
	return xslices.Filter(m.params, func(p *Param) bool {
		if namescope != "" && p.nameScope != namescope {
			return false
		}
		return keep == nil || keep(p)
	})
}

// EnumerateParams calls fn for each parameter, in the order they were added.
func (m *ModelHelper) EnumerateParams(fn func(p *Param)) {
	for _, p := range m.params {
		fn(p)
	}
}
