package parse

import (
	"context"

	"tlog.app/go/errors"
)

type (
	// List parses one or more Of separated by Sep.
	List struct {
		Of  Parser
		Sep Parser
	}
)

func (p List) Parse(ctx context.Context, b []byte, st int) (x Node, i int, err error) {
	x, i, err = p.Of.Parse(ctx, b, st)
	if err != nil {
		return nil, i, errors.Wrap(err, "first elem")
	}

	res := []Node{x}

	for i < len(b) {
		sepst := i
		_, i, err = p.Sep.Parse(ctx, b, i)
		if i == sepst {
			err = nil
			break
		}
		if err != nil {
			return nil, i, errors.Wrap(err, "separator")
		}

		x, i, err = p.Of.Parse(ctx, b, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "elem %d", len(res))
		}

		res = append(res, x)
	}

	return res, i, nil
}
