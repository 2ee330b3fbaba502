// Package witabi renders interface-definition documents into cross-linked
// markdown annotated with canonical size and alignment information.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	wit-abi/             Root package with file-level convenience entry points
//	├── witx/            Typed graph model: type definitions, resources, functions
//	├── abi/             ABI variant selector and alignment arithmetic
//	├── layout/          Size/alignment calculator bound to (graph, variant)
//	├── markdown/        The renderer: sections, type printer, anchor map
//	├── witconv/         Component-model (go.bytecodealliance.org/wit) frontend
//	├── errors/          Structured error types
//	└── cmd/witdoc/      CLI: directory walking, check mode, TUI browser
//
// # Quick Start
//
// Render a wit-parser JSON document:
//
//	doc, err := witabi.RenderFile("clocks.wit.json", abi.Caller)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("clocks.abi.md", []byte(doc.Text), 0o644)
//
// Or build a graph directly and render it:
//
//	iface := &witx.Interface{ ... }
//	doc, err := markdown.Render(iface, abi.Callee)
//
// # Output Contract
//
// Anchors embedded in the markdown are derived from entity names alone
// (lowercase, underscore separators), so other documents can link to a
// type's section by predicting its anchor from the name. The anchor map
// returned alongside the text is an artifact of the pass, never an input
// to it.
//
// # Determinism
//
// One render pass processes one document synchronously on a single
// goroutine. For a fixed graph and ABI variant the output is
// byte-identical across runs, which is what makes check mode meaningful.
package witabi
