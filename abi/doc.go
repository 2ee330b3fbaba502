// Package abi defines the calling-convention variant selector and the
// alignment arithmetic shared by the layout calculator.
//
// A Variant names which side of a call owns the representation of
// marshalled parameters and results. Pointer and buffer kinds only occur
// under the caller-owned representation; the callee-owned representation
// passes them as opaque handle indices.
package abi
