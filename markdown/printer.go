package markdown

import (
	"fmt"

	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/witx"
)

// printTy appends the canonical inline form of a type reference. When
// skipName is false and the reference resolves to a named definition, a
// link to that definition's section is emitted instead of expanding it;
// the link target is derived from the name alone, matching the anchor the
// section header registers. Anonymous definitions always expand
// structurally.
//
// printTy never touches the anchor map: only named-entity headers do.
func (r *renderer) printTy(t witx.Type, skipName bool) error {
	switch t := t.(type) {
	case witx.Bool:
		r.src.WriteString("`bool`")
	case witx.U8:
		r.src.WriteString("`u8`")
	case witx.S8:
		r.src.WriteString("`s8`")
	case witx.U16:
		r.src.WriteString("`u16`")
	case witx.S16:
		r.src.WriteString("`s16`")
	case witx.U32:
		r.src.WriteString("`u32`")
	case witx.S32:
		r.src.WriteString("`s32`")
	case witx.U64:
		r.src.WriteString("`u64`")
	case witx.S64:
		r.src.WriteString("`s64`")
	case witx.F32:
		r.src.WriteString("`float32`")
	case witx.F64:
		r.src.WriteString("`float64`")
	case witx.Char:
		r.src.WriteString("`char`")
	case witx.Byte:
		r.src.WriteString("`byte`")
	case witx.Usize:
		r.src.WriteString("`usize`")
	case witx.Handle:
		res, ok := r.iface.Resource(t.Resource)
		if !ok {
			return errors.UnknownResource(errors.PhaseRender, nil, int(t.Resource))
		}
		r.src.WriteString("handle<")
		r.src.WriteString(res.Name)
		r.src.WriteString(">")
	case witx.TypeID:
		return r.printTypeDef(t, skipName)
	default:
		return errors.New(errors.PhaseRender, errors.KindInvalidShape).
			Detail("unknown type reference %T", t).
			Build()
	}
	return nil
}

func (r *renderer) printTypeDef(id witx.TypeID, skipName bool) error {
	td, ok := r.iface.TypeDef(id)
	if !ok {
		return errors.UnresolvedType(errors.PhaseRender, nil, int(id))
	}

	if !skipName && td.Named() {
		fmt.Fprintf(&r.src, "[`%s`](#%s)", td.Name, anchorName(td.Name))
		return nil
	}

	switch kind := td.Kind.(type) {
	case *witx.Alias:
		return r.printTy(kind.Type, false)

	case *witx.Tuple:
		r.src.WriteString("(")
		for i, t := range kind.Types {
			if i > 0 {
				r.src.WriteString(", ")
			}
			if err := r.printTy(t, false); err != nil {
				return err
			}
		}
		r.src.WriteString(")")

	case *witx.Option:
		return r.printOption(kind.Type)

	case *witx.Expected:
		return r.printExpected(kind.OK, kind.Err)

	case *witx.Variant:
		// Anonymous variants only occur as encodings of bool, option, or
		// expected; the frontends guarantee it, so anything else is a
		// graph bug.
		if kind.IsBool() {
			r.src.WriteString("`bool`")
			return nil
		}
		if payload, ok := kind.AsOption(); ok {
			return r.printOption(payload)
		}
		if okTy, errTy, ok := kind.AsExpected(); ok {
			return r.printExpected(okTy, errTy)
		}
		return errors.InvalidShape(errors.PhaseRender, []string{td.Name},
			fmt.Sprintf("anonymous variant with %d case(s) matches no semantic shape", len(kind.Cases)))

	case *witx.List:
		// Character lists are documented as strings.
		if _, isChar := kind.Type.(witx.Char); isChar {
			r.src.WriteString("`string`")
			return nil
		}
		return r.printWrapped("list", kind.Type)

	case *witx.Record:
		r.src.WriteString("record<")
		for i, f := range kind.Fields {
			if i > 0 {
				r.src.WriteString(", ")
			}
			r.src.WriteString(f.Name)
			r.src.WriteString(": ")
			if err := r.printTy(f.Type, false); err != nil {
				return err
			}
		}
		r.src.WriteString(">")

	case *witx.Flags:
		r.src.WriteString("flags<")
		for i, f := range kind.Flags {
			if i > 0 {
				r.src.WriteString(", ")
			}
			r.src.WriteString(f.Name)
		}
		r.src.WriteString(">")

	case *witx.Enum:
		r.src.WriteString("enum<")
		for i, c := range kind.Cases {
			if i > 0 {
				r.src.WriteString(", ")
			}
			r.src.WriteString(c.Name)
		}
		r.src.WriteString(">")

	case *witx.Union:
		r.src.WriteString("union<")
		for i, c := range kind.Cases {
			if i > 0 {
				r.src.WriteString(", ")
			}
			if err := r.printTy(c.Type, false); err != nil {
				return err
			}
		}
		r.src.WriteString(">")

	case *witx.Future:
		r.src.WriteString("future<")
		if err := r.printPayload(kind.Type); err != nil {
			return err
		}
		r.src.WriteString(">")

	case *witx.Stream:
		r.src.WriteString("stream<")
		if err := r.printTy(kind.Element, false); err != nil {
			return err
		}
		r.src.WriteString(", ")
		if err := r.printPayload(kind.End); err != nil {
			return err
		}
		r.src.WriteString(">")

	case *witx.Pointer:
		return r.printWrapped("pointer", kind.Type)

	case *witx.ConstPointer:
		return r.printWrapped("const-pointer", kind.Type)

	case *witx.PushBuffer:
		return r.printWrapped("push-buffer", kind.Type)

	case *witx.PullBuffer:
		return r.printWrapped("pull-buffer", kind.Type)

	default:
		return errors.New(errors.PhaseRender, errors.KindInvalidShape).
			Path(td.Name).
			Detail("unknown definition kind %T", td.Kind).
			Build()
	}
	return nil
}

func (r *renderer) printOption(payload witx.Type) error {
	return r.printWrapped("option", payload)
}

func (r *renderer) printExpected(okTy, errTy witx.Type) error {
	r.src.WriteString("expected<")
	if err := r.printPayload(okTy); err != nil {
		return err
	}
	r.src.WriteString(", ")
	if err := r.printPayload(errTy); err != nil {
		return err
	}
	r.src.WriteString(">")
	return nil
}

// printPayload prints an optional payload side, "_" when absent.
func (r *renderer) printPayload(t witx.Type) error {
	if t == nil {
		r.src.WriteString("_")
		return nil
	}
	return r.printTy(t, false)
}

func (r *renderer) printWrapped(prefix string, t witx.Type) error {
	r.src.WriteString(prefix)
	r.src.WriteString("<")
	if err := r.printTy(t, false); err != nil {
		return err
	}
	r.src.WriteString(">")
	return nil
}
