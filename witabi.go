package witabi

import (
	"io"
	"os"

	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/markdown"
	"github.com/wippyai/wit-abi/witconv"
)

// Render decodes wit-parser JSON from r and renders it under the given
// ABI variant.
func Render(r io.Reader, variant abi.Variant) (*markdown.Document, error) {
	iface, err := witconv.DecodeJSON(r)
	if err != nil {
		return nil, err
	}
	return markdown.Render(iface, variant)
}

// RenderFile renders one wit-parser JSON file.
func RenderFile(path string, variant abi.Variant) (*markdown.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Load("open "+path, err)
	}
	defer f.Close()
	return Render(f, variant)
}
