package witconv

import (
	"strings"
	"testing"

	cmwit "go.bytecodealliance.org/wit"

	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/markdown"
	"github.com/wippyai/wit-abi/witx"
)

func name(s string) *string { return &s }

func TestConvertRecord(t *testing.T) {
	td := &cmwit.TypeDef{
		Name: name("point"),
		Kind: &cmwit.Record{Fields: []cmwit.Field{
			{Name: "x", Type: cmwit.U32{}},
			{Name: "y", Type: cmwit.U32{}},
		}},
	}

	iface, err := FromTypeDefs("geometry", []*cmwit.TypeDef{td})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(iface.TypeDefs) != 1 {
		t.Fatalf("typedefs: got %d, want 1", len(iface.TypeDefs))
	}
	def := iface.TypeDefs[0]
	if def.Name != "point" {
		t.Errorf("name = %q", def.Name)
	}
	record, ok := def.Kind.(*witx.Record)
	if !ok {
		t.Fatalf("kind = %T, want *witx.Record", def.Kind)
	}
	if len(record.Fields) != 2 || record.Fields[0].Name != "x" {
		t.Errorf("fields = %+v", record.Fields)
	}
}

func TestConvertSharedSubtype(t *testing.T) {
	shared := &cmwit.TypeDef{
		Name: name("id"),
		Kind: &cmwit.Record{Fields: []cmwit.Field{
			{Name: "raw", Type: cmwit.U64{}},
		}},
	}
	user := &cmwit.TypeDef{
		Name: name("user"),
		Kind: &cmwit.Record{Fields: []cmwit.Field{
			{Name: "id", Type: shared},
			{Name: "parent", Type: shared},
		}},
	}

	iface, err := FromTypeDefs("", []*cmwit.TypeDef{shared, user})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(iface.TypeDefs) != 2 {
		t.Fatalf("shared subtype duplicated: %d typedefs", len(iface.TypeDefs))
	}

	user2 := iface.TypeDefs[1].Kind.(*witx.Record)
	if user2.Fields[0].Type != user2.Fields[1].Type {
		t.Error("both references should resolve to the same type id")
	}
}

func TestConvertStringBecomesCharList(t *testing.T) {
	td := &cmwit.TypeDef{
		Name: name("greeting"),
		Kind: &cmwit.Record{Fields: []cmwit.Field{
			{Name: "text", Type: cmwit.String{}},
		}},
	}

	iface, err := FromTypeDefs("", []*cmwit.TypeDef{td})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	doc, err := markdown.Render(iface, abi.Caller)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc.Text, "[`text`](#greeting.text): `string`") {
		t.Errorf("string field should document as `string`:\n%s", doc.Text)
	}
	if strings.Contains(doc.Text, "list<`char`>") {
		t.Error("character list must never print as list<char>")
	}
}

func TestConvertResultAndOption(t *testing.T) {
	td := &cmwit.TypeDef{
		Name: name("outcome"),
		Kind: &cmwit.Result{OK: cmwit.U32{}},
	}
	opt := &cmwit.TypeDef{
		Name: name("maybe"),
		Kind: &cmwit.Option{Type: cmwit.U8{}},
	}

	iface, err := FromTypeDefs("", []*cmwit.TypeDef{td, opt})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	expected, ok := iface.TypeDefs[0].Kind.(*witx.Expected)
	if !ok {
		t.Fatalf("kind = %T, want *witx.Expected", iface.TypeDefs[0].Kind)
	}
	if expected.OK == nil || expected.Err != nil {
		t.Error("result<u32> should convert to expected with nil err side")
	}
	if _, ok := iface.TypeDefs[1].Kind.(*witx.Option); !ok {
		t.Errorf("kind = %T, want *witx.Option", iface.TypeDefs[1].Kind)
	}
}

func TestConvertHandles(t *testing.T) {
	resource := &cmwit.TypeDef{
		Name: name("file"),
		Kind: &cmwit.Resource{},
	}
	owner := &cmwit.TypeDef{
		Name: name("dir-entry"),
		Kind: &cmwit.Record{Fields: []cmwit.Field{
			{Name: "fd", Type: &cmwit.TypeDef{Kind: &cmwit.Own{Type: resource}}},
			{Name: "parent", Type: &cmwit.TypeDef{Kind: &cmwit.Borrow{Type: resource}}},
		}},
	}

	iface, err := FromTypeDefs("", []*cmwit.TypeDef{resource, owner})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}

	if len(iface.Resources) != 1 || iface.Resources[0].Name != "file" {
		t.Fatalf("resources = %+v", iface.Resources)
	}

	record := iface.TypeDefs[0].Kind.(*witx.Record)
	for _, f := range record.Fields {
		h, ok := f.Type.(witx.Handle)
		if !ok {
			t.Fatalf("field %s = %T, want witx.Handle", f.Name, f.Type)
		}
		if h.Resource != 0 {
			t.Errorf("field %s resource = %d", f.Name, h.Resource)
		}
	}

	doc, err := markdown.Render(iface, abi.Caller)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(doc.Text, "handle<file>") {
		t.Error("handles should document as handle<file>")
	}
}

func TestConvertFunction(t *testing.T) {
	t.Run("anonymous_result", func(t *testing.T) {
		c := NewConverter("api")
		err := c.AddFunction(&cmwit.Function{
			Name:    "fetch",
			Params:  []cmwit.Param{{Name: "url", Type: cmwit.String{}}},
			Results: []cmwit.Param{{Type: cmwit.U32{}}},
		})
		if err != nil {
			t.Fatalf("convert: %v", err)
		}

		iface := c.Interface()
		if len(iface.Functions) != 1 {
			t.Fatalf("functions: got %d", len(iface.Functions))
		}
		f := iface.Functions[0]
		if len(f.Params) != 1 || f.Params[0].Name != "url" {
			t.Errorf("params = %+v", f.Params)
		}
		if len(f.Results) != 1 || f.Results[0].Name != "result" {
			t.Errorf("anonymous result should document as %q: %+v", "result", f.Results)
		}
	})

	t.Run("named_results", func(t *testing.T) {
		c := NewConverter("api")
		err := c.AddFunction(&cmwit.Function{
			Name: "divmod",
			Params: []cmwit.Param{
				{Name: "n", Type: cmwit.U32{}},
				{Name: "d", Type: cmwit.U32{}},
			},
			Results: []cmwit.Param{
				{Name: "quotient", Type: cmwit.U32{}},
				{Name: "remainder", Type: cmwit.U32{}},
			},
		})
		if err != nil {
			t.Fatalf("convert: %v", err)
		}

		f := c.Interface().Functions[0]
		if len(f.Results) != 2 {
			t.Fatalf("results: got %d, want 2", len(f.Results))
		}
		if f.Results[0].Name != "quotient" || f.Results[1].Name != "remainder" {
			t.Errorf("result names not preserved: %+v", f.Results)
		}
	})

	t.Run("no_results", func(t *testing.T) {
		c := NewConverter("api")
		if err := c.AddFunction(&cmwit.Function{Name: "halt"}); err != nil {
			t.Fatalf("convert: %v", err)
		}
		if got := c.Interface().Functions[0].Results; len(got) != 0 {
			t.Errorf("results = %+v, want none", got)
		}
	})
}

func TestConvertVariantCycle(t *testing.T) {
	// A named variant may reference itself through a case payload.
	node := &cmwit.TypeDef{Name: name("tree")}
	node.Kind = &cmwit.Variant{Cases: []cmwit.Case{
		{Name: "leaf", Type: cmwit.U32{}},
		{Name: "branch", Type: node},
	}}

	iface, err := FromTypeDefs("", []*cmwit.TypeDef{node})
	if err != nil {
		t.Fatalf("convert: %v", err)
	}
	if len(iface.TypeDefs) != 1 {
		t.Fatalf("cycle should not duplicate the definition: %d", len(iface.TypeDefs))
	}
	v := iface.TypeDefs[0].Kind.(*witx.Variant)
	if id, ok := v.Cases[1].Type.(witx.TypeID); !ok || id != 0 {
		t.Errorf("self reference = %v", v.Cases[1].Type)
	}
}
