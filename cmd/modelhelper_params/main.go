// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// modelhelper_params builds the parameters of a small seq2seq model (embeddings, encoder and decoder
// layers) with the seq2seq ModelHelper, and prints a report of them.
//
// Usage:
//
//	modelhelper_params -vocab=30000 -embed=256 -layers=2 -frozen_embeddings
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/muesli/termenv"
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/modelhelper"
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/scope"
	"github.com/rohithkrn/rocm-caffe2/pkg/ml/seq2seq"
	"k8s.io/klog/v2"
)

var (
	flagName      = flag.String("name", "seq2seq", "Name of the model.")
	flagVocab     = flag.Int("vocab", 1000, "Size of the source and target vocabularies.")
	flagEmbed     = flag.Int("embed", 64, "Embedding dimension, also used as the size of the recurrent layers.")
	flagLayers    = flag.Int("layers", 1, "Number of encoder and decoder layers.")
	flagFrozen    = flag.Bool("frozen_embeddings", false, "Make the embeddings non-trainable.")
	flagNoInit    = flag.Bool("no_init", false, "Parameters are expected as external inputs, instead of initialized.")
	flagWorkspace = flag.Int64("workspace", 0, "GPU engine workspace limit in bytes. 0 for no limit.")
	flagScope     = flag.String("scope", "", "If set, list only the parameters in this name scope (e.g. \"encoder/layer_0\").")
	flagNoColor   = flag.Bool("no_color", false, "Disable colors in the output.")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	if *flagNoColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	if *flagVocab <= 0 || *flagEmbed <= 0 || *flagLayers < 0 {
		klog.Errorf("-vocab and -embed must be positive, and -layers non-negative. See 'modelhelper_params -help'.")
		os.Exit(1)
	}

	ns := scope.New()
	m := seq2seq.New(
		modelhelper.WithName(*flagName),
		modelhelper.WithNameScope(ns),
		modelhelper.WithInitParams(!*flagNoInit),
		seq2seq.WorkspaceLimit(*flagWorkspace))
	err := exceptions.TryCatch[error](func() { buildParams(m, ns, *flagVocab, *flagEmbed, *flagLayers, *flagFrozen) })
	must.M(err)

	if *flagScope == "" {
		fmt.Println(m.Summary())
		return
	}
	table := modelhelper.NewTable().Headers("Name", "Trainable", "Shape")
	for _, p := range m.ParamsIn(*flagScope) {
		table.Row(p.Name(), fmt.Sprintf("%v", p.Trainable()), fmt.Sprintf("%v", p.Shape()))
	}
	fmt.Println(table.Render())
}

// buildParams adds the seq2seq parameters to m, naming them with ns. It panics on errors.
func buildParams(m *modelhelper.ModelHelper, ns *scope.NameScope, vocab, embed, layers int, frozenEmbeddings bool) {
	xavier := modelhelper.WithInitializer("XavierFill", nil)
	m.AddParam("global_step", int64(0), modelhelper.Trainable(false))

	for _, side := range []string{"encoder", "decoder"} {
		ns.With(side, false, func() {
			m.AddParam("embeddings", nil, modelhelper.WithShape(vocab, embed), xavier,
				modelhelper.Trainable(!frozenEmbeddings))
			for layer := range layers {
				ns.With(fmt.Sprintf("layer_%d", layer), false, func() {
					m.AddParam("w", nil, modelhelper.WithShape(4*embed, 2*embed), xavier)
					m.AddParam("b", 0.0, modelhelper.WithShape(4*embed))
				})
			}
		})
	}
	ns.With("output", false, func() {
		m.AddParam("w", nil, modelhelper.WithShape(vocab, embed), xavier)
		m.AddParam("b", 0.0, modelhelper.WithShape(vocab))
	})
	klog.V(1).Infof("built %d parameters, %d trainable", m.NumParams(), len(m.TrainableParams()))
}
