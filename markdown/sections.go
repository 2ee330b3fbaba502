package markdown

import (
	"fmt"

	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/witx"
)

// typeSection dispatches a named definition to its section renderer. The
// kind set is closed; anything unmatched is a graph bug, not user input.
func (r *renderer) typeSection(id witx.TypeID, td *witx.TypeDef) error {
	switch kind := td.Kind.(type) {
	case *witx.Record:
		return r.typeRecord(id, td.Name, kind, td.Docs)
	case *witx.Tuple:
		return r.typeTuple(id, td.Name, kind, td.Docs)
	case *witx.Flags:
		return r.typeFlags(id, td.Name, kind, td.Docs)
	case *witx.Variant:
		return r.typeVariant(id, td.Name, kind, td.Docs)
	case *witx.Union:
		return r.typeUnion(id, td.Name, kind, td.Docs)
	case *witx.Enum:
		return r.typeEnum(id, td.Name, kind, td.Docs)
	case *witx.Option:
		return r.typeOption(id, td.Name, kind, td.Docs)
	case *witx.Expected:
		return r.typeExpected(id, td.Name, kind, td.Docs)
	case *witx.Future:
		return r.typeFuture(id, td.Name, kind, td.Docs)
	case *witx.Stream:
		return r.typeStream(id, td.Name, kind, td.Docs)
	case *witx.Alias:
		return r.typeAlias(id, td.Name, kind.Type, td.Docs)
	case *witx.List, *witx.Pointer, *witx.ConstPointer, *witx.PushBuffer, *witx.PullBuffer:
		// Alias-style: the inline expansion of the definition itself
		// stands in for a kind label.
		return r.typeAlias(id, td.Name, id, td.Docs)
	default:
		return errors.New(errors.PhaseRender, errors.KindInvalidShape).
			Path(td.Name).
			Detail("unknown definition kind %T", td.Kind).
			Build()
	}
}

func (r *renderer) typeRecord(id witx.TypeID, name string, record *witx.Record, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("record\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Record Fields\n\n")
	asFlags := record.IsFlags()
	for i, field := range record.Fields {
		r.memberEntry(name, field.Name)
		r.src.WriteString(": ")
		if err := r.printTy(field.Type, false); err != nil {
			return err
		}
		r.src.WriteString("\n\n")
		r.docs(field.Docs)
		if asFlags {
			fmt.Fprintf(&r.src, "Bit: %d\n", i)
		}
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeTuple(id witx.TypeID, name string, tuple *witx.Tuple, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("tuple\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Tuple Types\n\n")
	for _, t := range tuple.Types {
		r.src.WriteString("- ")
		if err := r.printTy(t, false); err != nil {
			return err
		}
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeFlags(id witx.TypeID, name string, flags *witx.Flags, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("flags\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Flags Fields\n\n")
	for i, flag := range flags.Flags {
		r.memberEntry(name, flag.Name)
		r.src.WriteString("\n\n")
		r.docs(flag.Docs)
		fmt.Fprintf(&r.src, "Bit: %d\n", i)
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeVariant(id witx.TypeID, name string, variant *witx.Variant, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("variant\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Variant Cases\n\n")
	for _, c := range variant.Cases {
		r.memberEntry(name, c.Name)
		if c.Type != nil {
			r.src.WriteString(": ")
			if err := r.printTy(c.Type, false); err != nil {
				return err
			}
		}
		r.src.WriteString("\n\n")
		r.docs(c.Docs)
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeUnion(id witx.TypeID, name string, union *witx.Union, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("union\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Union Cases\n\n")
	for _, c := range union.Cases {
		r.src.WriteString("- ")
		if err := r.printTy(c.Type, false); err != nil {
			return err
		}
		r.src.WriteString("\n\n")
		r.docs(c.Docs)
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeEnum(id witx.TypeID, name string, enum *witx.Enum, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("enum\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Enum Cases\n\n")
	for _, c := range enum.Cases {
		r.memberEntry(name, c.Name)
		r.src.WriteString("\n\n")
		r.docs(c.Docs)
		r.src.WriteString("\n")
	}
	return nil
}

func (r *renderer) typeOption(id witx.TypeID, name string, option *witx.Option, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("option\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Option\n\n")
	r.src.WriteString("- ")
	if err := r.printTy(option.Type, false); err != nil {
		return err
	}
	r.src.WriteString("\n\n")
	return nil
}

func (r *renderer) typeExpected(id witx.TypeID, name string, expected *witx.Expected, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("expected\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Expected\n\n")
	r.src.WriteString("- ok: ")
	if err := r.printPayload(expected.OK); err != nil {
		return err
	}
	r.src.WriteString("\n")
	r.src.WriteString("- err: ")
	if err := r.printPayload(expected.Err); err != nil {
		return err
	}
	r.src.WriteString("\n\n")
	return nil
}

func (r *renderer) typeFuture(id witx.TypeID, name string, future *witx.Future, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("future\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Future\n\n")
	r.src.WriteString("- ")
	if err := r.printPayload(future.Type); err != nil {
		return err
	}
	r.src.WriteString("\n\n")
	return nil
}

func (r *renderer) typeStream(id witx.TypeID, name string, stream *witx.Stream, docs string) error {
	r.typeHeader(name)
	r.src.WriteString("stream\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n### Stream\n\n")
	r.src.WriteString("- ok: ")
	if err := r.printTy(stream.Element, false); err != nil {
		return err
	}
	r.src.WriteString("\n")
	r.src.WriteString("- err: ")
	if err := r.printPayload(stream.End); err != nil {
		return err
	}
	r.src.WriteString("\n\n")
	return nil
}

func (r *renderer) typeAlias(id witx.TypeID, name string, target witx.Type, docs string) error {
	r.typeHeader(name)
	if err := r.printTy(target, true); err != nil {
		return err
	}
	r.src.WriteString("\n\n")
	r.typeInfo(id, docs)
	r.src.WriteString("\n")
	return nil
}
