package selector

// Combinator joins two renderable sub-selectors with a combinator symbol.
// It is immutable after construction and itself Renderable, so combinator
// trees nest: Combine(Combine(a, Child, b), NextSibling, c).
type Combinator struct {
	left   Renderable
	symbol string
	right  Renderable
}

// Render returns left + " " + symbol + " " + right: exactly one padding
// space on each side of the symbol regardless of the symbol's own content.
// With the Descendant symbol (itself a space) the operands end up three
// spaces apart; that double padding is deliberate and kept. Errors from
// either operand propagate; a nil operand reports ErrNilOperand.
func (c *Combinator) Render() (string, error) {
	if c.left == nil || c.right == nil {
		return "", wrapf(MethodCombine, ErrNilOperand)
	}
	left, err := c.left.Render()
	if err != nil {
		return "", err
	}
	right, err := c.right.Render()
	if err != nil {
		return "", err
	}
	return left + combinatorPadding + c.symbol + combinatorPadding + right, nil
}

// String implements fmt.Stringer: the rendered combination, or "" when
// either operand fails to render. Use Render to observe the error.
func (c *Combinator) String() string {
	s, err := c.Render()
	if err != nil {
		return ""
	}
	return s
}
