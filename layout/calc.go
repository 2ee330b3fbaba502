package layout

import (
	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/witx"
)

// Info is the layout of one type.
type Info struct {
	Size  uint32
	Align uint32
}

// SizeAlign answers size/alignment queries for one interface graph under
// one ABI variant. It is a pure function of (type, variant); the cache
// only memoizes.
type SizeAlign struct {
	iface   *witx.Interface
	cache   map[witx.TypeID]Info
	variant abi.Variant
}

// New binds a calculator to a graph and variant.
func New(iface *witx.Interface, variant abi.Variant) *SizeAlign {
	return &SizeAlign{
		iface:   iface,
		variant: variant,
		cache:   make(map[witx.TypeID]Info),
	}
}

// Size returns the byte size of t.
func (s *SizeAlign) Size(t witx.Type) uint32 {
	return s.Calculate(t).Size
}

// Align returns the alignment of t.
func (s *SizeAlign) Align(t witx.Type) uint32 {
	return s.Calculate(t).Align
}

// Calculate returns the full layout of t.
func (s *SizeAlign) Calculate(t witx.Type) Info {
	switch typ := t.(type) {
	case witx.Bool, witx.U8, witx.S8, witx.Byte:
		return Info{Size: 1, Align: 1}
	case witx.U16, witx.S16:
		return Info{Size: 2, Align: 2}
	case witx.U32, witx.S32, witx.F32, witx.Char, witx.Usize:
		return Info{Size: 4, Align: 4}
	case witx.U64, witx.S64, witx.F64:
		return Info{Size: 8, Align: 8}
	case witx.Handle:
		return Info{Size: 4, Align: 4}
	case witx.TypeID:
		return s.calculateTypeDef(typ)
	default:
		return Info{Size: 0, Align: 1}
	}
}

func (s *SizeAlign) calculateTypeDef(id witx.TypeID) Info {
	if cached, ok := s.cache[id]; ok {
		return cached
	}

	td, ok := s.iface.TypeDef(id)
	if !ok {
		return Info{Size: 0, Align: 1}
	}

	var info Info

	switch kind := td.Kind.(type) {
	case *witx.Alias:
		info = s.Calculate(kind.Type)
	case *witx.Record:
		info = s.calculateFields(fieldTypes(kind.Fields))
	case *witx.Tuple:
		info = s.calculateFields(kind.Types)
	case *witx.Variant:
		info = s.calculateCases(caseTypes(kind.Cases), len(kind.Cases))
	case *witx.Union:
		info = s.calculateCases(unionTypes(kind.Cases), len(kind.Cases))
	case *witx.Enum:
		size := abi.DiscriminantSize(len(kind.Cases))
		info = Info{Size: size, Align: size}
	case *witx.Flags:
		info = calculateFlags(len(kind.Flags))
	case *witx.List:
		info = Info{Size: 8, Align: 4}
	case *witx.Option:
		info = s.calculateCases([]witx.Type{nil, kind.Type}, 2)
	case *witx.Expected:
		info = s.calculateCases([]witx.Type{kind.OK, kind.Err}, 2)
	case *witx.Future, *witx.Stream:
		// Pending asynchronous values pass as handle indices.
		info = Info{Size: 4, Align: 4}
	case *witx.Pointer, *witx.ConstPointer:
		info = Info{Size: 4, Align: 4}
	case *witx.PushBuffer, *witx.PullBuffer:
		info = s.calculateBuffer()
	default:
		info = Info{Size: 0, Align: 1}
	}

	s.cache[id] = info
	return info
}

// calculateBuffer is the one place variant choice changes a number: the
// caller passes (ptr, len), the callee sees an opaque buffer index.
func (s *SizeAlign) calculateBuffer() Info {
	if s.variant == abi.Caller {
		return Info{Size: 8, Align: 4}
	}
	return Info{Size: 4, Align: 4}
}

func (s *SizeAlign) calculateFields(types []witx.Type) Info {
	if len(types) == 0 {
		return Info{Size: 0, Align: 1}
	}

	maxAlign := uint32(1)
	offset := uint32(0)

	for _, ft := range types {
		fl := s.Calculate(ft)
		offset = abi.AlignTo(offset, fl.Align)
		if fl.Align > maxAlign {
			maxAlign = fl.Align
		}
		offset += fl.Size
	}

	return Info{
		Size:  abi.AlignTo(offset, maxAlign),
		Align: maxAlign,
	}
}

func (s *SizeAlign) calculateCases(payloads []witx.Type, numCases int) Info {
	if numCases == 0 {
		return Info{Size: 0, Align: 1}
	}

	discSize := abi.DiscriminantSize(numCases)

	maxAlign := discSize
	maxSize := uint32(0)

	for _, pt := range payloads {
		if pt == nil {
			continue
		}
		cl := s.Calculate(pt)
		if cl.Align > maxAlign {
			maxAlign = cl.Align
		}
		if cl.Size > maxSize {
			maxSize = cl.Size
		}
	}

	payloadOffset := abi.AlignTo(discSize, maxAlign)
	return Info{
		Size:  abi.AlignTo(payloadOffset+maxSize, maxAlign),
		Align: maxAlign,
	}
}

func calculateFlags(numFlags int) Info {
	switch {
	case numFlags == 0:
		return Info{Size: 0, Align: 1}
	case numFlags <= 8:
		return Info{Size: 1, Align: 1}
	case numFlags <= 16:
		return Info{Size: 2, Align: 2}
	case numFlags <= 32:
		return Info{Size: 4, Align: 4}
	case numFlags <= 64:
		return Info{Size: 8, Align: 8}
	default:
		// >64 flags spill into multiple u32s.
		numU32s := (numFlags + 31) / 32
		return Info{Size: uint32(numU32s * 4), Align: 4}
	}
}

func fieldTypes(fields []witx.Field) []witx.Type {
	types := make([]witx.Type, len(fields))
	for i, f := range fields {
		types[i] = f.Type
	}
	return types
}

func caseTypes(cases []witx.Case) []witx.Type {
	types := make([]witx.Type, len(cases))
	for i, c := range cases {
		types[i] = c.Type
	}
	return types
}

func unionTypes(cases []witx.UnionCase) []witx.Type {
	types := make([]witx.Type, len(cases))
	for i, c := range cases {
		types[i] = c.Type
	}
	return types
}
