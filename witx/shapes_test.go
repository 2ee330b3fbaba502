package witx

import "testing"

func TestVariantIsBool(t *testing.T) {
	tests := []struct {
		name string
		v    *Variant
		want bool
	}{
		{
			"false_true",
			&Variant{Cases: []Case{{Name: "false"}, {Name: "true"}}},
			true,
		},
		{
			"reversed_order",
			&Variant{Cases: []Case{{Name: "true"}, {Name: "false"}}},
			false,
		},
		{
			"payload_disqualifies",
			&Variant{Cases: []Case{{Name: "false"}, {Name: "true", Type: U8{}}}},
			false,
		},
		{
			"wrong_arity",
			&Variant{Cases: []Case{{Name: "false"}}},
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.v.IsBool(); got != tc.want {
				t.Errorf("IsBool() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVariantAsOption(t *testing.T) {
	t.Run("matches", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "none"},
			{Name: "some", Type: U32{}},
		}}
		payload, ok := v.AsOption()
		if !ok {
			t.Fatal("expected option shape")
		}
		if _, isU32 := payload.(U32); !isU32 {
			t.Errorf("payload = %T, want U32", payload)
		}
	})

	t.Run("none_with_payload", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "none", Type: U8{}},
			{Name: "some", Type: U32{}},
		}}
		if _, ok := v.AsOption(); ok {
			t.Error("none case with payload must not match")
		}
	})

	t.Run("some_without_payload", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "none"},
			{Name: "some"},
		}}
		if _, ok := v.AsOption(); ok {
			t.Error("some case without payload must not match")
		}
	})
}

func TestVariantAsExpected(t *testing.T) {
	t.Run("both_payloads", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "ok", Type: U32{}},
			{Name: "err", Type: U8{}},
		}}
		okTy, errTy, ok := v.AsExpected()
		if !ok {
			t.Fatal("expected expected shape")
		}
		if _, is := okTy.(U32); !is {
			t.Errorf("ok = %T, want U32", okTy)
		}
		if _, is := errTy.(U8); !is {
			t.Errorf("err = %T, want U8", errTy)
		}
	})

	t.Run("payloadless_arms", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "ok"},
			{Name: "err"},
		}}
		okTy, errTy, ok := v.AsExpected()
		if !ok {
			t.Fatal("payload-less arms still match")
		}
		if okTy != nil || errTy != nil {
			t.Error("payload-less arms must report nil payloads")
		}
	})

	t.Run("wrong_names", func(t *testing.T) {
		v := &Variant{Cases: []Case{
			{Name: "good", Type: U32{}},
			{Name: "bad", Type: U8{}},
		}}
		if _, _, ok := v.AsExpected(); ok {
			t.Error("unconventional case names must not match")
		}
	})
}

func TestRecordIsFlags(t *testing.T) {
	tests := []struct {
		name string
		r    *Record
		want bool
	}{
		{
			"all_bool",
			&Record{Fields: []Field{{Name: "a", Type: Bool{}}, {Name: "b", Type: Bool{}}}},
			true,
		},
		{
			"mixed",
			&Record{Fields: []Field{{Name: "a", Type: Bool{}}, {Name: "b", Type: U8{}}}},
			false,
		},
		{
			"empty",
			&Record{},
			false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.r.IsFlags(); got != tc.want {
				t.Errorf("IsFlags() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestInterfaceLookups(t *testing.T) {
	iface := &Interface{
		TypeDefs:  []*TypeDef{{Name: "a", Kind: &Alias{Type: U8{}}}},
		Resources: []*Resource{{Name: "file"}},
	}

	if td, ok := iface.TypeDef(0); !ok || td.Name != "a" {
		t.Error("valid type id should resolve")
	}
	if _, ok := iface.TypeDef(1); ok {
		t.Error("out-of-range type id should not resolve")
	}
	if _, ok := iface.TypeDef(-1); ok {
		t.Error("negative type id should not resolve")
	}
	if res, ok := iface.Resource(0); !ok || res.Name != "file" {
		t.Error("valid resource id should resolve")
	}
	if _, ok := iface.Resource(3); ok {
		t.Error("out-of-range resource id should not resolve")
	}
}
