package rule

import "reflect"

// Kind discriminates the five rule tree constructors.
type Kind int

const (
	// KindSimple matches a bare identifier token.
	KindSimple Kind = iota
	// KindNegated inverts the match of its inner rule.
	KindNegated
	// KindDirectional pairs an origin and destination rule, written [A>B].
	KindDirectional
	// KindCompound matches positionally against another Compound, written A+B+….
	KindCompound
	// KindChoice matches if any option matches, written A|B|….
	KindChoice
)

// String renders the Kind name for logs and error messages.
func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "Simple"
	case KindNegated:
		return "Negated"
	case KindDirectional:
		return "Directional"
	case KindCompound:
		return "Compound"
	case KindChoice:
		return "Choice"
	default:
		return "Unknown"
	}
}

// Rule is the sealed sum type produced by Parse. The only implementations
// are Simple, Negated, Directional, Compound, and Choice, all declared in
// this package.
type Rule interface {
	Kind() Kind
	sealed()
}

// Simple matches a single token by exact equality.
type Simple struct {
	Token string
}

// Kind implements Rule.
func (Simple) Kind() Kind { return KindSimple }
func (Simple) sealed()    {}

// Negated inverts the match outcome of Inner.
type Negated struct {
	Inner Rule
}

// Kind implements Rule.
func (Negated) Kind() Kind { return KindNegated }
func (Negated) sealed()    {}

// Directional pairs an origin rule (this side) with a destination rule
// (the side the neighbor must present), written [Origin>Destination].
// A directional rule never matches an identical directional rule.
type Directional struct {
	Origin      Rule
	Destination Rule
}

// Kind implements Rule.
func (Directional) Kind() Kind { return KindDirectional }
func (Directional) sealed()    {}

// Compound matches positionally: arity and every element must match in
// order. Parts are never reordered or normalized.
type Compound struct {
	Parts []Rule
}

// Kind implements Rule.
func (Compound) Kind() Kind { return KindCompound }
func (Compound) sealed()    {}

// Choice matches if any option matches (and is symmetric: it also matches
// from the other side if any option matches there).
type Choice struct {
	Options []Rule
}

// Kind implements Rule.
func (Choice) Kind() Kind { return KindChoice }
func (Choice) sealed()    {}

// Equal reports whether a and b are structurally identical rule trees.
// Used by Match to detect a directional rule compared against itself.
func Equal(a, b Rule) bool {
	return reflect.DeepEqual(a, b)
}

// Match decides whether rule trees a and b may sit on opposite sides of a
// shared edge. The relation is commutative except that Directional rules
// compare origin against destination crosswise, and a directional rule
// never matches one structurally identical to itself.
func Match(a, b Rule) bool {
	if a == nil || b == nil {
		return false
	}

	// Peel Negated/Choice from either side before any concrete comparison;
	// recursion re-enters this function so nested negation and choice
	// compose correctly regardless of which side holds them.
	switch av := a.(type) {
	case Negated:
		return !Match(av.Inner, b)
	case Choice:
		for _, opt := range av.Options {
			if Match(opt, b) {
				return true
			}
		}
		return false
	}
	switch bv := b.(type) {
	case Negated:
		return !Match(a, bv.Inner)
	case Choice:
		for _, opt := range bv.Options {
			if Match(a, opt) {
				return true
			}
		}
		return false
	}

	switch av := a.(type) {
	case Simple:
		bv, ok := b.(Simple)
		return ok && av.Token == bv.Token

	case Directional:
		bv, ok := b.(Directional)
		if !ok {
			return false
		}
		if Equal(av, bv) {
			// A directional rule never matches itself (spec §3, §9).
			return false
		}
		return Match(av.Origin, bv.Destination) && Match(av.Destination, bv.Origin)

	case Compound:
		bv, ok := b.(Compound)
		if !ok || len(av.Parts) != len(bv.Parts) {
			return false
		}
		for i := range av.Parts {
			if !Match(av.Parts[i], bv.Parts[i]) {
				return false
			}
		}
		return true

	default:
		return false
	}
}
