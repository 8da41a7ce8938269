// Package document is the read-only text model the completion engine works
// against: line lookup, conversion between line/column positions and
// absolute offsets, and substring extraction.
//
// Columns are counted in UTF-16 code units, the unit used by Monaco and LSP
// hosts. Offsets are byte offsets into the UTF-8 text.
package document

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

// ErrOutOfRange is returned for a line index outside the document.
var ErrOutOfRange = errors.New("position out of range")

// Position is a zero-based line and UTF-16 column.
type Position struct {
	Line      int
	Character int
}

// Range is a half-open span between two positions.
type Range struct {
	Start Position
	End   Position
}

// Document is an immutable snapshot of a text buffer.
type Document struct {
	text       string
	lines      []string
	lineStarts []int
}

// New splits text into lines. Both "\n" and "\r\n" end a line; the
// terminator is not part of the line text.
func New(text string) *Document {
	d := &Document{text: text}

	start := 0
	for {
		i := strings.IndexByte(text[start:], '\n')
		if i < 0 {
			d.addLine(start, len(text))
			break
		}
		d.addLine(start, start+i)
		start += i + 1
	}
	return d
}

func (d *Document) addLine(start, end int) {
	line := d.text[start:end]
	line = strings.TrimSuffix(line, "\r")
	d.lines = append(d.lines, line)
	d.lineStarts = append(d.lineStarts, start)
}

// Text returns the whole document.
func (d *Document) Text() string {
	return d.text
}

// Lines returns the document lines without terminators.
func (d *Document) Lines() []string {
	return append([]string(nil), d.lines...)
}

// LineCount returns the number of lines. An empty document has one line.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// LineAt returns the text of line i.
func (d *Document) LineAt(i int) (string, error) {
	if i < 0 || i >= len(d.lines) {
		return "", errors.Wrapf(ErrOutOfRange, "line %d of %d", i, len(d.lines))
	}
	return d.lines[i], nil
}

// OffsetAt converts a position to a byte offset. Columns past the end of the
// line clamp to the line end.
func (d *Document) OffsetAt(pos Position) (int, error) {
	line, err := d.LineAt(pos.Line)
	if err != nil {
		return 0, err
	}
	if pos.Character < 0 {
		return 0, errors.Wrapf(ErrOutOfRange, "column %d", pos.Character)
	}
	return d.lineStarts[pos.Line] + UTF16ToByte(line, pos.Character), nil
}

// PositionAt converts a byte offset to a position, clamping to the document.
func (d *Document) PositionAt(offset int) Position {
	if offset <= 0 {
		return Position{}
	}
	if offset > len(d.text) {
		offset = len(d.text)
	}

	// last line starting at or before offset
	lo, hi := 0, len(d.lineStarts)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if d.lineStarts[mid] <= offset {
			lo = mid
		} else {
			hi = mid - 1
		}
	}

	col := offset - d.lineStarts[lo]
	if col > len(d.lines[lo]) {
		col = len(d.lines[lo])
	}
	return Position{Line: lo, Character: ByteToUTF16(d.lines[lo], col)}
}

// TextBefore returns the document text from the start up to pos.
func (d *Document) TextBefore(pos Position) (string, error) {
	off, err := d.OffsetAt(pos)
	if err != nil {
		return "", err
	}
	return d.text[:off], nil
}

// TextAfter returns the document text from pos to the end.
func (d *Document) TextAfter(pos Position) (string, error) {
	off, err := d.OffsetAt(pos)
	if err != nil {
		return "", err
	}
	return d.text[off:], nil
}

// Split returns the text of the cursor line before and after pos.
func (d *Document) Split(pos Position) (before, after string, err error) {
	line, err := d.LineAt(pos.Line)
	if err != nil {
		return "", "", err
	}
	if pos.Character < 0 {
		return "", "", errors.Wrapf(ErrOutOfRange, "column %d", pos.Character)
	}
	i := UTF16ToByte(line, pos.Character)
	return line[:i], line[i:], nil
}

// Slice returns the text covered by r.
func (d *Document) Slice(r Range) (string, error) {
	start, err := d.OffsetAt(r.Start)
	if err != nil {
		return "", err
	}
	end, err := d.OffsetAt(r.End)
	if err != nil {
		return "", err
	}
	if end < start {
		return "", errors.Newf("inverted range %v", r)
	}
	return d.text[start:end], nil
}

// ByteToUTF16 converts a byte index within line to a UTF-16 column.
func ByteToUTF16(line string, byteIdx int) int {
	if byteIdx > len(line) {
		byteIdx = len(line)
	}
	col := 0
	for _, r := range line[:byteIdx] {
		col += utf16Len(r)
	}
	return col
}

// UTF16ToByte converts a UTF-16 column to a byte index within line. Columns
// beyond the line clamp to its length; a column inside a surrogate pair
// rounds up to the end of that rune.
func UTF16ToByte(line string, col int) int {
	if col <= 0 {
		return 0
	}
	units := 0
	for i, r := range line {
		if units >= col {
			return i
		}
		units += utf16Len(r)
	}
	return len(line)
}

func utf16Len(r rune) int {
	if r == utf8.RuneError {
		return 1
	}
	if n := utf16.RuneLen(r); n > 0 {
		return n
	}
	return 1
}
