package suggest

import (
	"regexp"
	"strings"

	"github.com/bastiangx/mdserve/pkg/document"
	"github.com/charmbracelet/log"
)

var (
	// [text][label]; an empty label is a collapsed reference
	referenceUsage = regexp.MustCompile(`\[[^\]]+\]\[([^\]]*?)\]`)
	// [label]: target optional title
	referenceDefinition = regexp.MustCompile(`^\[([^\]]*?)\]: (\S*)( .*)?`)
)

// countUsages maps every reference label used in lines to its number of
// occurrences.
func countUsages(lines []string) map[string]int {
	counts := make(map[string]int)
	for _, line := range lines {
		for _, m := range referenceUsage.FindAllStringSubmatch(line, -1) {
			counts[m[1]]++
		}
	}
	return counts
}

// referenceCandidates offers every reference definition of the document.
// The replacement range starts right after the open second bracket so the
// brackets themselves are never replaced.
func referenceCandidates(c *cursor) []Candidate {
	start := strings.LastIndex(c.before, "[") + 1
	r := document.Range{
		Start: document.Position{Line: c.pos.Line, Character: document.ByteToUTF16(c.before, start)},
		End:   c.pos,
	}

	lines := c.doc.Lines()
	usages := countUsages(lines)

	var (
		out  []Candidate
		seen = make(map[string]bool)
	)
	for i, line := range lines {
		m := referenceDefinition.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label, target := m[1], m[2]
		if seen[label] {
			log.Debugf("Ignoring duplicate definition of [%s] on line %d", label, i+1)
			continue
		}
		seen[label] = true
		out = append(out, newReferenceCandidate(label, target, usages[label], r))
	}
	return out
}
