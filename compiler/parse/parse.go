package parse

import (
	"context"
	"fmt"

	"tlog.app/go/errors"
)

type (
	// Node is a parse result.
	// Terminals produce strings, sequences produce []Node.
	Node any

	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error)
	}

	// PartialReadError is returned when a line has text after a complete parse.
	PartialReadError struct {
		End int
	}
)

// Line parses the whole line with p.
// Leading and trailing spaces and a trailing '#' comment are ignored.
func Line(ctx context.Context, p Parser, line []byte) (x Node, err error) {
	b := StripComment(line)

	st := SpaceTab.Skip(b, 0)

	x, i, err := p.Parse(ctx, b, st)
	if err != nil {
		return nil, errors.Wrap(err, "col %d", i+1)
	}

	i = SpaceTab.Skip(b, i)

	if i != len(b) {
		return x, PartialReadError{End: i}
	}

	return x, nil
}

// StripComment cuts the '#' comment and trailing spaces off the line.
func StripComment(line []byte) []byte {
	for i, c := range line {
		if c == '#' {
			line = line[:i]
			break
		}
	}

	l := len(line)

	for l > 0 && SpaceAll.Skip(line[:l], l-1) == l {
		l--
	}

	return line[:l]
}

// IsBlank reports whether the line has nothing but spaces and a comment.
func IsBlank(line []byte) bool {
	b := StripComment(line)

	return SpaceTab.Skip(b, 0) == len(b)
}

func (e PartialReadError) Error() string {
	return fmt.Sprintf("unexpected text at col %d", e.End+1)
}
