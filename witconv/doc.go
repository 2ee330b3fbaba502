// Package witconv converts component-model type graphs from
// go.bytecodealliance.org/wit into the witx model consumed by the
// renderer.
//
// Parsing of interface-definition source stays external: wasm-tools emits
// wit-parser JSON, DecodeJSON turns that into a resolved component-model
// graph, and this package maps the already-validated graph onto the legacy
// vocabulary. Own and borrow handles collapse to plain resource handles,
// result becomes expected, and the string primitive becomes the character
// list the printer documents as `string`.
//
// Buffer and pointer kinds never come out of this path; they only exist in
// graphs built directly against the witx package.
package witconv
