package selector

// Specificity is the CSS specificity as defined in
// https://www.w3.org/TR/selectors/#specificity-rules
// with the convention Specificity = [A,B,C]: A counts ids, B counts
// classes, attributes and pseudo-classes, C counts elements and
// pseudo-elements.
type Specificity [3]int

// Less reports whether s < other, comparing A, then B, then C.
func (s Specificity) Less(other Specificity) bool {
	for i := range s {
		if s[i] < other[i] {
			return true
		}
		if s[i] > other[i] {
			return false
		}
	}
	return false
}

// Add returns the component-wise sum of s and other.
func (s Specificity) Add(other Specificity) Specificity {
	for i, sp := range other {
		s[i] += sp
	}
	return s
}

// Specificity sums the contributions of the builder's stored fragments.
// It is a pure count and ignores any recorded usage error.
func (b *SelectorBuilder) Specificity() Specificity {
	var out Specificity
	if b.id != "" {
		out[0]++
	}
	out[1] = len(b.classes) + len(b.attributes) + len(b.pseudoClasses)
	if b.element != "" {
		out[2]++
	}
	if b.pseudoElement != "" {
		out[2]++
	}
	return out
}

// specified is the optional capability a Combinator operand may expose to
// contribute to the combined specificity.
type specified interface {
	Specificity() Specificity
}

// Specificity sums both operands. An operand that does not expose the
// capability (a foreign Renderable) contributes the zero tuple.
func (c *Combinator) Specificity() Specificity {
	var out Specificity
	if s, ok := c.left.(specified); ok {
		out = out.Add(s.Specificity())
	}
	if s, ok := c.right.(specified); ok {
		out = out.Add(s.Specificity())
	}
	return out
}
