package abi

// Variant selects which side of the interface boundary owns the
// representation of marshalled parameters and results.
type Variant uint8

const (
	// Caller documents the caller-owned representation: functions have a
	// single optional result, and pointer/buffer kinds appear in params.
	Caller Variant = iota
	// Callee documents the callee-owned representation: functions have a
	// named results list, and buffers pass as handle indices.
	Callee
)

var variantNames = [...]string{
	Caller: "caller",
	Callee: "callee",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// Parse maps a variant name to its selector.
func Parse(s string) (Variant, bool) {
	switch s {
	case "caller":
		return Caller, true
	case "callee":
		return Callee, true
	}
	return 0, false
}

// AlignTo rounds offset up to the next multiple of align.
func AlignTo(offset, align uint32) uint32 {
	if align == 0 {
		return offset
	}
	return (offset + align - 1) &^ (align - 1)
}

// DiscriminantSize is 1 byte for <=256 cases, 2 for <=65536, else 4.
func DiscriminantSize(numCases int) uint32 {
	switch {
	case numCases <= 1<<8:
		return 1
	case numCases <= 1<<16:
		return 2
	default:
		return 4
	}
}
