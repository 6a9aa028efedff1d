// api.go - thin public entry points for the selector package.
//
// Design contract (strict):
//   - One factory per fragment kind: each creates a fresh SelectorBuilder
//     and delegates to the matching mutator; no state outlives the chain.
//   - Combine is the only way to join sub-selectors; the symbol is stored
//     verbatim (no legality check, per the package's no-syntax-validation
//     rule).
//   - Safety: never panic; usage violations surface as sentinel errors on
//     the builder (see errors.go).

package selector

// Renderable is the capability shared by SelectorBuilder and Combinator:
// anything that can produce its selector-string form. Combine accepts any
// Renderable, so third-party implementations compose too.
type Renderable interface {
	// Render returns the selector-string form, or the first usage error
	// recorded while the value was being built.
	Render() (string, error)
}

// Compile-time interface conformance.
var (
	_ Renderable = (*SelectorBuilder)(nil)
	_ Renderable = (*Combinator)(nil)
)

// Element starts a new builder with a type (tag) fragment.
func Element(value string) *SelectorBuilder { return New().Element(value) }

// ID starts a new builder with an id fragment.
func ID(value string) *SelectorBuilder { return New().ID(value) }

// Class starts a new builder with a class fragment; chain further Class
// calls on the result to add more.
func Class(value string) *SelectorBuilder { return New().Class(value) }

// Attr starts a new builder with an attribute fragment.
func Attr(value string) *SelectorBuilder { return New().Attr(value) }

// PseudoClass starts a new builder with a pseudo-class fragment.
func PseudoClass(value string) *SelectorBuilder { return New().PseudoClass(value) }

// PseudoElement starts a new builder with a pseudo-element fragment.
func PseudoElement(value string) *SelectorBuilder { return New().PseudoElement(value) }

// Combine joins two renderable sub-selectors with the given combinator
// symbol. The symbol is kept verbatim: Descendant, Child, NextSibling and
// SubsequentSibling cover the CSS combinators, but any string is accepted.
// The result is itself Renderable and may be an operand of a further
// Combine.
func Combine(left Renderable, symbol string, right Renderable) *Combinator {
	return &Combinator{left: left, symbol: symbol, right: right}
}
