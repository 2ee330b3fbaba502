package markdown

import (
	"strings"
	"unicode"
)

// anchorName is the document-anchor form of a logical name: lowercase with
// underscore separators. Other documents predict anchors from names
// alone, so the rule must stay stable.
func anchorName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	var prev rune
	pendingSep := false
	for _, r := range name {
		if r == '-' || r == '_' || r == ' ' || r == '.' {
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('_')
		}
		pendingSep = false
		orig := r
		if unicode.IsUpper(r) {
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				b.WriteByte('_')
			}
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
		prev = orig
	}
	return b.String()
}

// memberAnchor is the anchor for a field, case, flag, or parameter of a
// named entity.
func memberAnchor(owner, member string) string {
	return anchorName(owner) + "." + anchorName(member)
}
