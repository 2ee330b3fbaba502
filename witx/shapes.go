package witx

// Shape recognition over generic variants. Some frontends encode bool,
// option and expected as plain variants; the renderer normalizes those to
// their semantic forms, so recognition must be exact.

// IsBool reports whether the variant is the two-case encoding of a
// boolean: cases "false" and "true", neither carrying a payload.
func (v *Variant) IsBool() bool {
	return len(v.Cases) == 2 &&
		v.Cases[0].Name == "false" && v.Cases[0].Type == nil &&
		v.Cases[1].Name == "true" && v.Cases[1].Type == nil
}

// AsOption returns the payload type if the variant encodes option<T>:
// a payload-less "none" case followed by a "some" case wrapping T.
func (v *Variant) AsOption() (Type, bool) {
	if len(v.Cases) != 2 {
		return nil, false
	}
	none, some := v.Cases[0], v.Cases[1]
	if none.Name != "none" || none.Type != nil {
		return nil, false
	}
	if some.Name != "some" || some.Type == nil {
		return nil, false
	}
	return some.Type, true
}

// AsExpected returns the ok and err payloads if the variant encodes
// expected<OK, ERR>: an "ok" case followed by an "err" case. Either
// payload may be nil.
func (v *Variant) AsExpected() (ok, err Type, matched bool) {
	if len(v.Cases) != 2 {
		return nil, nil, false
	}
	if v.Cases[0].Name != "ok" || v.Cases[1].Name != "err" {
		return nil, nil, false
	}
	return v.Cases[0].Type, v.Cases[1].Type, true
}

// IsFlags reports whether the record is a flag set in disguise: non-empty
// and composed entirely of boolean fields. Such records document their
// fields with declaration-order bit indices.
func (r *Record) IsFlags() bool {
	if len(r.Fields) == 0 {
		return false
	}
	for _, f := range r.Fields {
		if _, ok := f.Type.(Bool); !ok {
			return false
		}
	}
	return true
}
