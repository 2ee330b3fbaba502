// Package witx defines the typed graph consumed by the documentation
// renderer: named and anonymous type definitions, resources, and functions
// of one interface document.
//
// The model mirrors the legacy interface-definition type system. A Type is
// a reference form: a primitive, a resource handle, or a TypeID pointing
// into the interface's definition table. A TypeDef carries an optional name
// and a Kind drawn from a closed set; anonymous definitions (empty name)
// are only ever inlined at their use sites, named ones get their own
// anchored documentation section.
//
// Graphs are built by a parsing frontend (see the witconv package) or
// constructed directly, and are treated as immutable once rendering starts.
// Cycles may only occur through named definitions.
package witx
