package document

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSplitsLines(t *testing.T) {
	tests := []struct {
		text  string
		lines []string
	}{
		{"", []string{""}},
		{"one", []string{"one"}},
		{"one\ntwo", []string{"one", "two"}},
		{"one\r\ntwo\r\n", []string{"one", "two", ""}},
		{"a\n\nb", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		d := New(tt.text)
		assert.Equal(t, tt.lines, d.Lines(), "text %q", tt.text)
		assert.Equal(t, len(tt.lines), d.LineCount())
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	d := New("ab\r\nçd😀e\nlast")

	tests := []struct {
		pos    Position
		offset int
	}{
		{Position{0, 0}, 0},
		{Position{0, 2}, 2},
		{Position{1, 0}, 4},
		{Position{1, 1}, 6},  // ç is two bytes
		{Position{1, 2}, 7},  // d
		{Position{1, 4}, 11}, // the emoji is two UTF-16 units and four bytes
		{Position{2, 4}, 17},
	}

	for _, tt := range tests {
		off, err := d.OffsetAt(tt.pos)
		require.NoError(t, err)
		assert.Equal(t, tt.offset, off, "pos %v", tt.pos)
		assert.Equal(t, tt.pos, d.PositionAt(off))
	}
}

func TestOffsetAtClampsColumn(t *testing.T) {
	d := New("abc\ndef")

	off, err := d.OffsetAt(Position{0, 99})
	require.NoError(t, err)
	assert.Equal(t, 3, off)
}

func TestOutOfRange(t *testing.T) {
	d := New("abc")

	_, err := d.LineAt(1)
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, err = d.OffsetAt(Position{-1, 0})
	assert.True(t, errors.Is(err, ErrOutOfRange))

	_, _, err = d.Split(Position{0, -2})
	assert.True(t, errors.Is(err, ErrOutOfRange))
}

func TestSplitAndSurroundingText(t *testing.T) {
	d := New("first $$\nx = \\al|pha\n$$ end")
	pos := Position{Line: 1, Character: 7}

	before, after, err := d.Split(pos)
	require.NoError(t, err)
	assert.Equal(t, `x = \al`, before)
	assert.Equal(t, "|pha", after)

	tb, err := d.TextBefore(pos)
	require.NoError(t, err)
	assert.Equal(t, "first $$\nx = \\al", tb)

	ta, err := d.TextAfter(pos)
	require.NoError(t, err)
	assert.Equal(t, "|pha\n$$ end", ta)
}

func TestSlice(t *testing.T) {
	d := New("hello\nworld")

	s, err := d.Slice(Range{Start: Position{0, 3}, End: Position{1, 2}})
	require.NoError(t, err)
	assert.Equal(t, "lo\nwo", s)

	_, err = d.Slice(Range{Start: Position{1, 2}, End: Position{0, 0}})
	assert.Error(t, err)
}

func TestColumnConversion(t *testing.T) {
	line := "a😀b"

	assert.Equal(t, 0, ByteToUTF16(line, 0))
	assert.Equal(t, 1, ByteToUTF16(line, 1))
	assert.Equal(t, 3, ByteToUTF16(line, 5))
	assert.Equal(t, 4, ByteToUTF16(line, 99))

	assert.Equal(t, 1, UTF16ToByte(line, 1))
	assert.Equal(t, 5, UTF16ToByte(line, 2))
	assert.Equal(t, 5, UTF16ToByte(line, 3))
	assert.Equal(t, 6, UTF16ToByte(line, 4))
	assert.Equal(t, 6, UTF16ToByte(line, 10))
}
