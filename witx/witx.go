package witx

// Type is a type reference: a primitive, a resource handle, or an index
// into the interface's type definition table.
type Type interface {
	isType()
}

// Primitive type tags. Each renders as a fixed literal token.
type (
	// Bool is the boolean type.
	Bool struct{}
	// U8 is an unsigned 8-bit integer.
	U8 struct{}
	// S8 is a signed 8-bit integer.
	S8 struct{}
	// U16 is an unsigned 16-bit integer.
	U16 struct{}
	// S16 is a signed 16-bit integer.
	S16 struct{}
	// U32 is an unsigned 32-bit integer.
	U32 struct{}
	// S32 is a signed 32-bit integer.
	S32 struct{}
	// U64 is an unsigned 64-bit integer.
	U64 struct{}
	// S64 is a signed 64-bit integer.
	S64 struct{}
	// F32 is a 32-bit float.
	F32 struct{}
	// F64 is a 64-bit float.
	F64 struct{}
	// Char is a Unicode scalar value.
	Char struct{}
	// Byte is a raw octet, distinct from U8 only in intent.
	Byte struct{}
	// Usize is the pointer-width unsigned integer.
	Usize struct{}
)

func (Bool) isType()  {}
func (U8) isType()    {}
func (S8) isType()    {}
func (U16) isType()   {}
func (S16) isType()   {}
func (U32) isType()   {}
func (S32) isType()   {}
func (U64) isType()   {}
func (S64) isType()   {}
func (F32) isType()   {}
func (F64) isType()   {}
func (Char) isType()  {}
func (Byte) isType()  {}
func (Usize) isType() {}

// ResourceID indexes the interface's resource table.
type ResourceID int

// Handle references a resource by identity.
type Handle struct {
	Resource ResourceID
}

func (Handle) isType() {}

// TypeID indexes the interface's type definition table.
type TypeID int

func (TypeID) isType() {}

// Resource is an opaque host-managed entity referenced through handles.
type Resource struct {
	Name string
	Docs string
}

// TypeDef is one entry in the definition table. An empty Name marks an
// anonymous definition that is inlined wherever it is referenced.
type TypeDef struct {
	Kind Kind
	Name string
	Docs string
}

// Named reports whether the definition gets its own document section.
func (td *TypeDef) Named() bool {
	return td.Name != ""
}

// Kind is the closed set of definition shapes.
type Kind interface {
	isKind()
}

// Alias renames another type.
type Alias struct {
	Type Type
}

// Record is an aggregate with named fields.
type Record struct {
	Fields []Field
}

// Field is one named member of a record.
type Field struct {
	Type Type
	Name string
	Docs string
}

// Tuple is an aggregate with positional members.
type Tuple struct {
	Types []Type
}

// Variant is a tagged union with named cases and optional payloads.
type Variant struct {
	Cases []Case
}

// Case is one alternative of a variant. A nil Type means the case carries
// no payload.
type Case struct {
	Type Type
	Name string
	Docs string
}

// Union is a tagged union discriminated by payload type alone.
type Union struct {
	Cases []UnionCase
}

// UnionCase is one alternative of a union.
type UnionCase struct {
	Type Type
	Docs string
}

// Enum is a pure enumeration: named cases, no payloads.
type Enum struct {
	Cases []EnumCase
}

// EnumCase is one constant of an enum.
type EnumCase struct {
	Name string
	Docs string
}

// Flags is a set of named bits in declaration order.
type Flags struct {
	Flags []Flag
}

// Flag is one named bit.
type Flag struct {
	Name string
	Docs string
}

// List is a growable sequence. A list of Char documents as a string.
type List struct {
	Type Type
}

// Option is a value that may be absent.
type Option struct {
	Type Type
}

// Expected is a success-or-error value. A nil side carries no payload.
type Expected struct {
	OK  Type
	Err Type
}

// Future is a value that becomes available asynchronously. A nil Type
// means completion carries no payload.
type Future struct {
	Type Type
}

// Stream is an asynchronous sequence of Element values terminated by an
// End payload. A nil End means the stream closes without a payload.
type Stream struct {
	Element Type
	End     Type
}

// Pointer is a mutable out-parameter pointer. Caller-representation only.
type Pointer struct {
	Type Type
}

// ConstPointer is a read-only parameter pointer. Caller-representation only.
type ConstPointer struct {
	Type Type
}

// PushBuffer is a caller-supplied buffer the callee writes into.
type PushBuffer struct {
	Type Type
}

// PullBuffer is a caller-supplied buffer the callee reads from.
type PullBuffer struct {
	Type Type
}

func (*Alias) isKind()        {}
func (*Record) isKind()       {}
func (*Tuple) isKind()        {}
func (*Variant) isKind()      {}
func (*Union) isKind()        {}
func (*Enum) isKind()         {}
func (*Flags) isKind()        {}
func (*List) isKind()         {}
func (*Option) isKind()       {}
func (*Expected) isKind()     {}
func (*Future) isKind()       {}
func (*Stream) isKind()       {}
func (*Pointer) isKind()      {}
func (*ConstPointer) isKind() {}
func (*PushBuffer) isKind()   {}
func (*PullBuffer) isKind()   {}

// Param is a named function parameter or result.
type Param struct {
	Type Type
	Name string
}

// Function is one operation of the interface. Under the caller-owned ABI
// variant a function documents at most one unnamed result; under the
// callee-owned variant it documents the named Results list.
type Function struct {
	Name    string
	Docs    string
	Params  []Param
	Results []Param
}

// Interface is one complete interface document: its definition table,
// resource table, and functions, all in declaration order.
type Interface struct {
	Name      string
	TypeDefs  []*TypeDef
	Resources []*Resource
	Functions []*Function
}

// TypeDef resolves a TypeID. The second return is false for a dangling
// reference, which indicates a bug in the graph producer.
func (i *Interface) TypeDef(id TypeID) (*TypeDef, bool) {
	if id < 0 || int(id) >= len(i.TypeDefs) {
		return nil, false
	}
	return i.TypeDefs[id], true
}

// Resource resolves a ResourceID.
func (i *Interface) Resource(id ResourceID) (*Resource, bool) {
	if id < 0 || int(id) >= len(i.Resources) {
		return nil, false
	}
	return i.Resources[id], true
}
