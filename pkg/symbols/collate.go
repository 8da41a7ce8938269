package symbols

import "strings"

const (
	lowerMark = '0'
	upperMark = '1'
)

// SortKey derives the collation key of a label. The key is only compared,
// never displayed.
//
// It has two parts separated by a NUL byte: the label with ASCII letters
// folded to lowercase, then the label with every letter written as a case
// mark followed by the folded letter ('0' for lowercase, '1' for uppercase).
// The first part groups labels by letter identity regardless of case, the
// second puts a lowercase letter right before its uppercase form, so
// \vert sorts directly ahead of \Vert.
func SortKey(label string) string {
	var fold, marked strings.Builder
	fold.Grow(len(label))
	marked.Grow(2 * len(label))

	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z':
			fold.WriteRune(r)
			marked.WriteByte(lowerMark)
			marked.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			r += 'a' - 'A'
			fold.WriteRune(r)
			marked.WriteByte(upperMark)
			marked.WriteRune(r)
		default:
			fold.WriteRune(r)
			marked.WriteRune(r)
		}
	}
	return fold.String() + "\x00" + marked.String()
}

// Less reports whether label a collates before label b.
func Less(a, b string) bool {
	ka, kb := SortKey(a), SortKey(b)
	if ka != kb {
		return ka < kb
	}
	return a < b
}
