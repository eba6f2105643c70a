// Package hir is the high-level IR instruction set.
//
// Format views, carriers and the operator table are generated
// from tables/formats.txt and tables/operators.txt.
package hir

import "github.com/slowlang/irgen/compiler/ir"

//go:generate go run github.com/slowlang/irgen/cmd/irgen gen -c irgen.toml

// FormatName returns the table name of the format, "" if it is unknown.
func FormatName(f ir.Format) string {
	if int(f) >= len(formatNames) {
		return ""
	}

	return formatNames[f]
}

// OperatorByName returns the operator with the given printed name or nil.
func OperatorByName(name string) *ir.Operator {
	for k := range Operators {
		if Operators[k].Name == name {
			return &Operators[k]
		}
	}

	return nil
}

// Lookup returns the operator with the opcode or nil.
func Lookup(op ir.Opcode) *ir.Operator {
	if op >= NumOpcodes {
		return nil
	}

	return &Operators[op]
}
