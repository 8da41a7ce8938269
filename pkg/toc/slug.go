package toc

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

var (
	inlineImage = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	inlineLink  = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	htmlTag     = regexp.MustCompile(`<[^>]+>`)
	emphasis    = regexp.MustCompile("(\\*{1,3}|`+|~~)")
)

// Slugify turns heading text into the anchor identifier used by GitHub
// style renderers: markup stripped, lowercased, punctuation other than '-'
// and '_' dropped, spaces turned into '-'.
func Slugify(text string) string {
	s := norm.NFC.String(strings.TrimSpace(text))
	s = inlineImage.ReplaceAllString(s, "$1")
	s = inlineLink.ReplaceAllString(s, "$1")
	s = htmlTag.ReplaceAllString(s, "")
	s = emphasis.ReplaceAllString(s, "")
	s = strings.ToLower(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), unicode.Is(unicode.Mn, r), r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('-')
		}
	}
	return b.String()
}
