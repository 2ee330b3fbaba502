// Package markdown renders a witx interface graph into cross-linked
// markdown documentation annotated with canonical size and alignment.
//
// Render is the sole entry point. It walks named type definitions, then
// functions, in declaration order, and produces one Document: the markdown
// text plus the anchor map built as a side effect of rendering each named
// entity. Anchors are derived deterministically from names alone
// (lowercase, underscore-separated), so other documents can predict them
// without consulting the map.
//
// Rendering is single-threaded and deterministic: the same graph and ABI
// variant always yield byte-identical output. Structural impossibilities in
// the input graph (dangling type ids, unknown resources, un-normalizable
// variants) abort the whole pass; there is no partial output.
package markdown
