package witconv

import (
	cmwit "go.bytecodealliance.org/wit"

	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/witx"
)

// Converter incrementally builds one witx graph from component-model
// typedefs. Shared sub-types convert once; cycles through named types
// terminate because a definition reserves its slot before its kind is
// filled in.
type Converter struct {
	iface     *witx.Interface
	typeIDs   map[*cmwit.TypeDef]witx.TypeID
	resources map[*cmwit.TypeDef]witx.ResourceID
	stringID  witx.TypeID
	hasString bool
}

// NewConverter starts an empty graph for the named interface.
func NewConverter(name string) *Converter {
	return &Converter{
		iface:     &witx.Interface{Name: name},
		typeIDs:   make(map[*cmwit.TypeDef]witx.TypeID),
		resources: make(map[*cmwit.TypeDef]witx.ResourceID),
	}
}

// Interface returns the graph built so far.
func (c *Converter) Interface() *witx.Interface {
	return c.iface
}

// FromTypeDefs converts a declaration-ordered list of typedefs into a
// complete interface graph.
func FromTypeDefs(name string, tds []*cmwit.TypeDef) (*witx.Interface, error) {
	c := NewConverter(name)
	for _, td := range tds {
		if err := c.Add(td); err != nil {
			return nil, err
		}
	}
	return c.iface, nil
}

// Add converts one typedef. Resource typedefs populate the resource table;
// everything else lands in the definition table.
func (c *Converter) Add(td *cmwit.TypeDef) error {
	if _, isResource := td.Kind.(*cmwit.Resource); isResource {
		_, err := c.addResource(td)
		return err
	}
	_, err := c.addTypeDef(td)
	return err
}

// AddFunction converts one function. A component-model function carries
// either a single anonymous result or multiple named results; an anonymous
// result documents under the name "result" so the callee-owned variant has
// a name to anchor.
func (c *Converter) AddFunction(f *cmwit.Function) error {
	fn := &witx.Function{
		Name: f.Name,
		Docs: f.Docs.Contents,
	}
	for _, p := range f.Params {
		pt, err := c.convType(p.Type)
		if err != nil {
			return err
		}
		fn.Params = append(fn.Params, witx.Param{Name: p.Name, Type: pt})
	}
	for _, res := range f.Results {
		rt, err := c.convType(res.Type)
		if err != nil {
			return err
		}
		name := res.Name
		if name == "" {
			name = "result"
		}
		fn.Results = append(fn.Results, witx.Param{Name: name, Type: rt})
	}
	c.iface.Functions = append(c.iface.Functions, fn)
	return nil
}

func (c *Converter) addTypeDef(td *cmwit.TypeDef) (witx.TypeID, error) {
	if id, ok := c.typeIDs[td]; ok {
		return id, nil
	}

	def := &witx.TypeDef{Docs: td.Docs.Contents}
	if td.Name != nil {
		def.Name = *td.Name
	}

	id := witx.TypeID(len(c.iface.TypeDefs))
	c.iface.TypeDefs = append(c.iface.TypeDefs, def)
	c.typeIDs[td] = id

	kind, err := c.convKind(td)
	if err != nil {
		return 0, err
	}
	def.Kind = kind
	return id, nil
}

func (c *Converter) addResource(td *cmwit.TypeDef) (witx.ResourceID, error) {
	if id, ok := c.resources[td]; ok {
		return id, nil
	}
	res := &witx.Resource{Docs: td.Docs.Contents}
	if td.Name != nil {
		res.Name = *td.Name
	}
	if res.Name == "" {
		return 0, errors.InvalidData(errors.PhaseConvert, nil, "resource without a name")
	}
	id := witx.ResourceID(len(c.iface.Resources))
	c.iface.Resources = append(c.iface.Resources, res)
	c.resources[td] = id
	return id, nil
}

func (c *Converter) convKind(td *cmwit.TypeDef) (witx.Kind, error) {
	switch kind := td.Kind.(type) {
	case *cmwit.Record:
		record := &witx.Record{Fields: make([]witx.Field, 0, len(kind.Fields))}
		for _, f := range kind.Fields {
			ft, err := c.convType(f.Type)
			if err != nil {
				return nil, err
			}
			record.Fields = append(record.Fields, witx.Field{
				Name: f.Name,
				Type: ft,
				Docs: f.Docs.Contents,
			})
		}
		return record, nil

	case *cmwit.Variant:
		variant := &witx.Variant{Cases: make([]witx.Case, 0, len(kind.Cases))}
		for _, cs := range kind.Cases {
			var payload witx.Type
			if cs.Type != nil {
				var err error
				payload, err = c.convType(cs.Type)
				if err != nil {
					return nil, err
				}
			}
			variant.Cases = append(variant.Cases, witx.Case{
				Name: cs.Name,
				Type: payload,
				Docs: cs.Docs.Contents,
			})
		}
		return variant, nil

	case *cmwit.Enum:
		enum := &witx.Enum{Cases: make([]witx.EnumCase, 0, len(kind.Cases))}
		for _, cs := range kind.Cases {
			enum.Cases = append(enum.Cases, witx.EnumCase{
				Name: cs.Name,
				Docs: cs.Docs.Contents,
			})
		}
		return enum, nil

	case *cmwit.Flags:
		flags := &witx.Flags{Flags: make([]witx.Flag, 0, len(kind.Flags))}
		for _, f := range kind.Flags {
			flags.Flags = append(flags.Flags, witx.Flag{
				Name: f.Name,
				Docs: f.Docs.Contents,
			})
		}
		return flags, nil

	case *cmwit.Tuple:
		tuple := &witx.Tuple{Types: make([]witx.Type, 0, len(kind.Types))}
		for _, t := range kind.Types {
			tt, err := c.convType(t)
			if err != nil {
				return nil, err
			}
			tuple.Types = append(tuple.Types, tt)
		}
		return tuple, nil

	case *cmwit.List:
		et, err := c.convType(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.List{Type: et}, nil

	case *cmwit.Option:
		pt, err := c.convType(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.Option{Type: pt}, nil

	case *cmwit.Result:
		okTy, err := c.convOptionalType(kind.OK)
		if err != nil {
			return nil, err
		}
		errTy, err := c.convOptionalType(kind.Err)
		if err != nil {
			return nil, err
		}
		return &witx.Expected{OK: okTy, Err: errTy}, nil

	case *cmwit.Future:
		pt, err := c.convOptionalType(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.Future{Type: pt}, nil

	case *cmwit.Stream:
		et, err := c.convType(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.Stream{Element: et}, nil

	case *cmwit.Own:
		h, err := c.handle(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.Alias{Type: h}, nil

	case *cmwit.Borrow:
		h, err := c.handle(kind.Type)
		if err != nil {
			return nil, err
		}
		return &witx.Alias{Type: h}, nil

	case *cmwit.Resource:
		return nil, errors.Unsupported(errors.PhaseConvert, "resource in type position")

	case cmwit.Type:
		// A typedef whose kind is itself a type is an alias.
		target, err := c.convType(kind)
		if err != nil {
			return nil, err
		}
		return &witx.Alias{Type: target}, nil

	default:
		return nil, errors.New(errors.PhaseConvert, errors.KindUnsupported).
			Detail("typedef kind %T", td.Kind).
			Build()
	}
}

func (c *Converter) convType(t cmwit.Type) (witx.Type, error) {
	switch t := t.(type) {
	case cmwit.Bool:
		return witx.Bool{}, nil
	case cmwit.U8:
		return witx.U8{}, nil
	case cmwit.S8:
		return witx.S8{}, nil
	case cmwit.U16:
		return witx.U16{}, nil
	case cmwit.S16:
		return witx.S16{}, nil
	case cmwit.U32:
		return witx.U32{}, nil
	case cmwit.S32:
		return witx.S32{}, nil
	case cmwit.U64:
		return witx.U64{}, nil
	case cmwit.S64:
		return witx.S64{}, nil
	case cmwit.F32:
		return witx.F32{}, nil
	case cmwit.F64:
		return witx.F64{}, nil
	case cmwit.Char:
		return witx.Char{}, nil
	case cmwit.String:
		return c.stringType(), nil
	case *cmwit.TypeDef:
		// Anonymous handles collapse straight to the handle form; they
		// need no definition slot of their own.
		if t.Name == nil {
			switch kind := t.Kind.(type) {
			case *cmwit.Own:
				return c.handle(kind.Type)
			case *cmwit.Borrow:
				return c.handle(kind.Type)
			}
		}
		return c.addTypeDef(t)
	default:
		return nil, errors.New(errors.PhaseConvert, errors.KindUnsupported).
			Detail("type reference %T", t).
			Build()
	}
}

func (c *Converter) convOptionalType(t cmwit.Type) (witx.Type, error) {
	if t == nil {
		return nil, nil
	}
	return c.convType(t)
}

func (c *Converter) handle(res *cmwit.TypeDef) (witx.Type, error) {
	if res == nil {
		return nil, errors.InvalidData(errors.PhaseConvert, nil, "handle without a resource")
	}
	id, err := c.addResource(res)
	if err != nil {
		return nil, err
	}
	return witx.Handle{Resource: id}, nil
}

// stringType interns the anonymous character list that stands in for the
// string primitive.
func (c *Converter) stringType() witx.Type {
	if !c.hasString {
		c.stringID = witx.TypeID(len(c.iface.TypeDefs))
		c.iface.TypeDefs = append(c.iface.TypeDefs, &witx.TypeDef{
			Kind: &witx.List{Type: witx.Char{}},
		})
		c.hasString = true
	}
	return c.stringID
}
