package token

import (
	"sort"
	"unicode/utf8"
)

// LineIndex maps byte offsets in a source file to line/column positions.
// Columns are reported in UTF-16 code units so that positions line up with
// what JavaScript tooling and editors report for the same file.
type LineIndex struct {
	src   []byte
	lines []int // byte offset of the first byte of each line
}

// NewLineIndex builds an index over src. Lines are terminated by "\n";
// a preceding "\r" is treated as part of the line content.
func NewLineIndex(src []byte) *LineIndex {
	lines := make([]int, 1, 64)
	for i, b := range src {
		if b == '\n' {
			lines = append(lines, i+1)
		}
	}
	return &LineIndex{src: src, lines: lines}
}

// LineCount returns the number of lines in the source.
func (ix *LineIndex) LineCount() int {
	return len(ix.lines)
}

// Position returns the position of the given byte offset.
// Offsets outside the source are clamped to its bounds.
func (ix *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(ix.src) {
		offset = len(ix.src)
	}
	line := sort.Search(len(ix.lines), func(i int) bool { return ix.lines[i] > offset }) - 1
	start := ix.lines[line]
	return Position{
		Line:   line + 1,
		Column: utf16Len(ix.src[start:offset]),
		Offset: offset,
	}
}

// Span returns the span covering the byte range [start, end).
func (ix *LineIndex) Span(start, end int) Span {
	return Span{Start: ix.Position(start), End: ix.Position(end)}
}

// OffsetOf converts a 1-based line and a 0-based byte column into a byte
// offset. It returns -1 when the line does not exist.
func (ix *LineIndex) OffsetOf(line, byteColumn int) int {
	if line < 1 || line > len(ix.lines) {
		return -1
	}
	offset := ix.lines[line-1] + byteColumn
	if offset > len(ix.src) {
		offset = len(ix.src)
	}
	return offset
}

func utf16Len(b []byte) int {
	n := 0
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		b = b[size:]
		if r >= 0x10000 && r != utf8.RuneError {
			n += 2
		} else {
			n++
		}
	}
	return n
}
