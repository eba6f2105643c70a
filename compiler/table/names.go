package table

import (
	"go/token"
	"strings"
	"unicode"
)

// GoName converts an operator name like INT_2LONG into Int2Long.
func GoName(name string) string {
	var b strings.Builder

	for _, part := range strings.Split(name, "_") {
		up := true

		for _, r := range strings.ToLower(part) {
			if up && unicode.IsLetter(r) {
				r = unicode.ToUpper(r)
				up = false
			}

			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParamName is the parameter name used for the slot in generated constructors.
func ParamName(slot string) string {
	if slot == "" {
		return slot
	}

	r := []rune(slot)

	n := 1
	for n < len(r) && unicode.IsUpper(r[n]) && (n+1 == len(r) || unicode.IsUpper(r[n+1])) {
		n++
	}

	for j := 0; j < n; j++ {
		r[j] = unicode.ToLower(r[j])
	}

	p := string(r)

	if token.IsKeyword(p) {
		p += "Op"
	}

	return p
}

// Plural returns the plural form of a slot name.
func Plural(s string) string {
	switch {
	case strings.HasSuffix(s, "s"), strings.HasSuffix(s, "x"),
		strings.HasSuffix(s, "ch"), strings.HasSuffix(s, "sh"):
		return s + "es"
	case strings.HasSuffix(s, "y") && len(s) > 1 && !strings.ContainsRune("aeiou", rune(s[len(s)-2])):
		return s[:len(s)-1] + "ies"
	}

	return s + "s"
}

// reservedParams are names used by generated code next to slot parameters.
var reservedParams = map[string]bool{
	"i": true, "o": true, "k": true, "x": true, "n": true, "f": true,
	"size": true, "ir": true,
}

// methodNames lists the generated method names of the format view.
func (f *Format) methodNames() []string {
	l := []string{"Conforms", "ConformsOperator", "Create", "Mutate"}

	for _, s := range f.Slots {
		l = append(l, s.Name, "Set"+s.Name, "Clear"+s.Name, "IndexOf"+s.Name, "Has"+s.Name)
	}

	if f.Var != nil {
		for _, s := range f.Var.Slots {
			p := Plural(s.Name)

			l = append(l, s.Name, "Set"+s.Name, "Clear"+s.Name, "IndexOf"+s.Name, "Has"+s.Name,
				"NumberOf"+p, "ResizeNumberOf"+p, "IndexOf"+p, "Has"+p)
		}
	}

	return l
}

// paramNames lists constructor parameter names of the format.
func (f *Format) paramNames() []string {
	var l []string

	for _, s := range f.Slots {
		l = append(l, ParamName(s.Name))
	}

	if f.Var != nil {
		l = append(l, CountParam(f))
	}

	return l
}

// CountParam is the constructor parameter holding the number of variable group repetitions.
func CountParam(f *Format) string {
	return "num" + Plural(f.Var.Slots[0].Name)
}
