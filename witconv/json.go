package witconv

import (
	"io"

	cmwit "go.bytecodealliance.org/wit"

	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/witx"
)

// DecodeJSON reads wit-parser JSON (as produced by `wasm-tools component
// wit --json`) and converts the resolved graph into one witx interface.
func DecodeJSON(r io.Reader) (*witx.Interface, error) {
	res, err := cmwit.DecodeJSON(r)
	if err != nil {
		return nil, errors.Load("decode wit json", err)
	}
	return FromResolve(res)
}

// FromResolve flattens a resolved component-model graph into a single
// interface document: named typedefs in declaration order, then every
// interface's functions in declaration order. Anonymous typedefs convert
// lazily as the named ones reference them.
func FromResolve(res *cmwit.Resolve) (*witx.Interface, error) {
	name := ""
	for _, i := range res.Interfaces {
		if i.Name != nil {
			name = *i.Name
			break
		}
	}
	c := NewConverter(name)

	for _, td := range res.TypeDefs {
		if td.Name == nil {
			continue
		}
		if err := c.Add(td); err != nil {
			return nil, err
		}
	}

	for _, i := range res.Interfaces {
		for _, f := range i.Functions.All() {
			if err := c.AddFunction(f); err != nil {
				return nil, err
			}
		}
	}

	return c.Interface(), nil
}
