// Package layout computes size and alignment for witx types.
//
// A SizeAlign is bound to one interface graph and one ABI variant and
// answers size/align queries for any type reference in that graph. The
// rules follow the canonical layout model:
//
//   - Primitives: size equals alignment (u8=1, u32=4, u64=8, ...)
//   - Records/tuples: fields laid out sequentially with alignment padding
//   - Variants/unions: discriminant followed by the largest payload case
//   - Lists: (pointer, length) pair; the content lives elsewhere
//   - Buffers: (pointer, length) under the caller variant, a handle index
//     under the callee variant
//
// Results are cached per type definition, so repeated queries over a
// shared sub-graph are cheap.
package layout
