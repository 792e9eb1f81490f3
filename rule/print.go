package rule

import "strings"

// Print renders r back to its canonical source form. Parse(Print(r)) is
// structurally equal to r for any r produced by Parse, modulo the
// associativity Print imposes on Compound/Choice (left-to-right, matching
// parse order) — so Parse(Print(Parse(s))) == Parse(s) for any valid s.
func Print(r Rule) string {
	var b strings.Builder
	printRule(&b, r, 0)
	return b.String()
}

// precedence levels, lowest binds loosest: choice(0) < compound(1) < primary(2).
func precedenceOf(r Rule) int {
	switch r.(type) {
	case Choice:
		return 0
	case Compound:
		return 1
	default:
		return 2
	}
}

func printRule(b *strings.Builder, r Rule, minPrec int) {
	prec := precedenceOf(r)
	needParens := prec < minPrec

	if needParens {
		b.WriteByte('(')
	}
	switch v := r.(type) {
	case Simple:
		b.WriteString(v.Token)
	case Negated:
		b.WriteByte('^')
		printRule(b, v.Inner, 2)
	case Directional:
		b.WriteByte('[')
		printRule(b, v.Origin, 0)
		b.WriteByte('>')
		printRule(b, v.Destination, 0)
		b.WriteByte(']')
	case Compound:
		for i, part := range v.Parts {
			if i > 0 {
				b.WriteByte('+')
			}
			printRule(b, part, 2)
		}
	case Choice:
		for i, opt := range v.Options {
			if i > 0 {
				b.WriteByte('|')
			}
			printRule(b, opt, 1)
		}
	}
	if needParens {
		b.WriteByte(')')
	}
}
