package markdown

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/wit-abi/abi"
	"github.com/wippyai/wit-abi/errors"
	"github.com/wippyai/wit-abi/layout"
	"github.com/wippyai/wit-abi/witx"
)

// Document is the result of one render pass: the markdown text and the
// anchor map from logical keys (type name, or "Type::member") to their
// "#anchor" targets.
type Document struct {
	Hrefs map[string]string
	Text  string
}

// Render produces the documentation for one interface under one ABI
// variant. Contract violations in the graph (dangling references,
// un-normalizable variants) abort the pass; no partial document is
// returned.
func Render(iface *witx.Interface, variant abi.Variant) (*Document, error) {
	r := &renderer{
		iface:   iface,
		variant: variant,
		sizes:   layout.New(iface, variant),
		hrefs:   make(map[string]string),
	}
	if err := r.process(); err != nil {
		return nil, err
	}
	Logger().Debug("rendered interface",
		zap.String("interface", iface.Name),
		zap.String("abi", variant.String()),
		zap.Int("types", r.types),
		zap.Int("funcs", r.funcs),
	)
	return &Document{Text: r.src.String(), Hrefs: r.hrefs}, nil
}

// renderer accumulates one pass. It is created per call to Render and
// discarded afterwards; no state survives across documents.
type renderer struct {
	iface   *witx.Interface
	sizes   *layout.SizeAlign
	hrefs   map[string]string
	src     strings.Builder
	types   int
	funcs   int
	variant abi.Variant
}

func (r *renderer) process() error {
	for id, td := range r.iface.TypeDefs {
		if !td.Named() {
			continue
		}
		if err := r.typeSection(witx.TypeID(id), td); err != nil {
			return err
		}
	}

	for _, f := range r.iface.Functions {
		if err := r.function(f); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) function(f *witx.Function) error {
	if r.funcs == 0 {
		r.src.WriteString("# Functions\n\n")
	}
	r.funcs++

	fa := anchorName(f.Name)
	r.src.WriteString("----\n\n")
	fmt.Fprintf(&r.src, "#### <a href=\"#%s\" name=\"%s\"></a> `%s` \n\n", fa, fa, f.Name)
	r.hrefs[f.Name] = "#" + fa
	r.docs(f.Docs)

	if len(f.Params) > 0 {
		r.src.WriteString("##### Params\n\n")
		for _, p := range f.Params {
			pa := memberAnchor(f.Name, p.Name)
			fmt.Fprintf(&r.src, "- <a href=\"#%s\" name=\"%s\"></a> `%s`: ", pa, pa, p.Name)
			if err := r.printTy(p.Type, false); err != nil {
				return err
			}
			r.src.WriteString("\n")
		}
	}

	switch r.variant {
	case abi.Caller:
		// Caller-owned representation: a single optional unnamed result.
		if len(f.Results) > 1 {
			return errors.InvalidShape(errors.PhaseRender, []string{f.Name},
				fmt.Sprintf("%d results under the caller-owned representation, at most 1 allowed", len(f.Results)))
		}
		if len(f.Results) > 0 {
			r.src.WriteString("##### Result\n\n")
			r.src.WriteString("- ")
			if err := r.printTy(f.Results[0].Type, false); err != nil {
				return err
			}
			r.src.WriteString("\n")
		}
	case abi.Callee:
		if len(f.Results) > 0 {
			r.src.WriteString("##### Results\n\n")
			for _, res := range f.Results {
				ra := memberAnchor(f.Name, res.Name)
				fmt.Fprintf(&r.src, "- <a href=\"#%s\" name=\"%s\"></a> `%s`: ", ra, ra, res.Name)
				if err := r.printTy(res.Type, false); err != nil {
					return err
				}
				r.src.WriteString("\n")
			}
		}
	}

	r.src.WriteString("\n")
	return nil
}

// docs re-emits a documentation string with each line trimmed and
// re-indented by two spaces. Lines are never re-wrapped; downstream
// tooling relies on the existing folding.
func (r *renderer) docs(docs string) {
	if docs == "" {
		return
	}
	for _, line := range strings.Split(strings.TrimSuffix(docs, "\n"), "\n") {
		r.src.WriteString("  ")
		r.src.WriteString(strings.TrimSpace(line))
		r.src.WriteString("\n")
	}
}

func (r *renderer) typeHeader(name string) {
	if r.types == 0 {
		r.src.WriteString("# Types\n\n")
	}
	r.types++
	a := anchorName(name)
	fmt.Fprintf(&r.src, "## <a href=\"#%s\" name=\"%s\"></a> `%s`: ", a, a, name)
	r.hrefs[name] = "#" + a
}

func (r *renderer) typeInfo(id witx.TypeID, docs string) {
	r.docs(docs)
	r.src.WriteString("\n")
	fmt.Fprintf(&r.src, "Size: %d, ", r.sizes.Size(id))
	fmt.Fprintf(&r.src, "Alignment: %d\n", r.sizes.Align(id))
}

// memberEntry opens a list entry for a named member of a named type,
// emitting its anchor and registering it under "Owner::member".
func (r *renderer) memberEntry(owner, member string) {
	a := memberAnchor(owner, member)
	fmt.Fprintf(&r.src, "- <a href=\"#%s\" name=\"%s\"></a> [`%s`](#%s)", a, a, member, a)
	r.hrefs[owner+"::"+member] = "#" + a
}
