// Package toc extracts the heading outline of a markdown document and turns
// heading text into anchor slugs.
package toc

import (
	"regexp"
	"strings"

	"github.com/bastiangx/mdserve/pkg/document"
)

// Heading is one entry of the outline.
type Heading struct {
	Text  string
	Level int
	Line  int
}

var (
	atxHeading  = regexp.MustCompile(`^ {0,3}(#{1,6})(?:[ \t]+(.*?))?[ \t]*$`)
	atxClosing  = regexp.MustCompile(`(?:^|[ \t]+)#+[ \t]*$`)
	setextH1    = regexp.MustCompile(`^ {0,3}=+[ \t]*$`)
	setextH2    = regexp.MustCompile(`^ {0,3}-+[ \t]*$`)
	fenceOpen   = regexp.MustCompile("^ {0,3}(`{3,}|~{3,})")
	omitMarker  = regexp.MustCompile(`<!--\s*omit (?:in|from) toc\s*-->`)
	listOrQuote = regexp.MustCompile(`^ {0,3}(?:[-+*>]|\d+[.)])(?:[ \t]|$)`)
)

// Build returns the headings of doc in document order. Headings inside
// fenced code blocks and headings tagged with an "omit in toc" comment are
// left out.
func Build(doc *document.Document) []Heading {
	if doc == nil {
		return nil
	}

	lines := doc.Lines()
	var (
		headings []Heading
		fence    string
	)

	for i, line := range lines {
		if fence != "" {
			if closesFence(line, fence) {
				fence = ""
			}
			continue
		}
		if m := fenceOpen.FindStringSubmatch(line); m != nil {
			fence = m[1]
			continue
		}

		if m := atxHeading.FindStringSubmatch(line); m != nil {
			text := atxClosing.ReplaceAllString(m[2], "")
			headings = appendHeading(headings, text, len(m[1]), i)
			continue
		}

		if i+1 < len(lines) && isParagraphLine(line) {
			next := lines[i+1]
			switch {
			case setextH1.MatchString(next):
				headings = appendHeading(headings, line, 1, i)
			case setextH2.MatchString(next):
				headings = appendHeading(headings, line, 2, i)
			}
		}
	}
	return headings
}

func appendHeading(headings []Heading, text string, level, line int) []Heading {
	if omitMarker.MatchString(text) {
		return headings
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return headings
	}
	return append(headings, Heading{Text: text, Level: level, Line: line})
}

func isParagraphLine(line string) bool {
	if strings.TrimSpace(line) == "" {
		return false
	}
	if strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t") {
		return false
	}
	return !listOrQuote.MatchString(line) && !setextH1.MatchString(line) && !setextH2.MatchString(line)
}

// closesFence reports whether line closes a fence opened with marker. The
// closing run must use the same character and be at least as long.
func closesFence(line, marker string) bool {
	trimmed := strings.TrimLeft(line, " ")
	if len(line)-len(trimmed) > 3 {
		return false
	}
	run := 0
	for run < len(trimmed) && trimmed[run] == marker[0] {
		run++
	}
	return run >= len(marker) && strings.TrimSpace(trimmed[run:]) == ""
}
