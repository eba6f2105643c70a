package parse

import (
	"bytes"
	"context"
	"unicode/utf8"

	"tlog.app/go/errors"
)

type (
	Const string

	// Keyword is a whole identifier equal to the given word.
	Keyword string

	Ident struct{}
)

func (p Const) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	if bytes.HasPrefix(b[st:], []byte(p)) {
		return string(p), st + len(p), nil
	}

	return nil, st, errors.New("%q expected", string(p))
}

func (p Const) String() string { return "'" + string(p) + "'" }

func (p Keyword) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	x, i, err = Ident{}.Parse(ctx, b, st)
	if err != nil || x.(string) != string(p) {
		return nil, st, errors.New("%v expected", string(p))
	}

	return x, i, nil
}

func (p Keyword) String() string { return string(p) }

func (p Ident) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	if st == len(b) {
		return nil, st, errors.New("identifier expected")
	}

	i = st

	c := b[i]

	switch {
	case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_':
		i++
	default:
		return nil, st, errors.New("identifier expected")
	}

loop:
	for i < len(b) {
		c := b[i]

		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_':
			i++
		case c >= utf8.RuneSelf:
			if r, w := utf8.DecodeRune(b[i:]); r == utf8.RuneError {
				return nil, i, errors.New("bad rune")
			} else {
				i += w
			}
		default:
			break loop
		}
	}

	return string(b[st:i]), i, nil
}

func (Ident) String() string { return "identifier" }
