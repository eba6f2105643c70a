package ir

import (
	"fmt"

	"tlog.app/go/loc"
	"tlog.app/go/tlog"
)

type (
	// FormatError is raised by format views when an instruction
	// does not belong to the format it is accessed through.
	FormatError struct {
		Instr    string
		Operator string
		Format   string

		PC loc.PC
	}
)

// Checks enables format verification in generated views.
// Production code leaves it off and trusts the callers.
var Checks = false

// Fail reports that i was accessed as format and panics with *FormatError.
func Fail(i *Instruction, format string) {
	fail(i.String(), i.Operator().String(), format)
}

// FailOperator reports that o was used to build an instruction of format and panics with *FormatError.
func FailOperator(o *Operator, format string) {
	fail("", o.String(), format)
}

func fail(instr, op, format string) {
	err := &FormatError{
		Instr:    instr,
		Operator: op,
		Format:   format,
		PC:       loc.Caller(4),
	}

	tlog.Printw("instruction format mismatch", "instr", instr, "operator", op, "format", format, "from", err.PC)

	panic(err)
}

func (e *FormatError) Error() string {
	if e.Instr == "" {
		return fmt.Sprintf("operator %v is not of format %v", e.Operator, e.Format)
	}

	return fmt.Sprintf("instruction %q is not of format %v", e.Instr, e.Format)
}
