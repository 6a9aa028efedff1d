// Package selector shared constants: stage indices, fragment prefixes,
// combinator symbols, and method-name tokens for error context.
package selector

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the mutator name for context.
//-----------------------------------------------------------------------------

const (
	// MethodElement is the canonical name for the Element mutator.
	MethodElement = "Element"
	// MethodID is the canonical name for the ID mutator.
	MethodID = "ID"
	// MethodClass is the canonical name for the Class mutator.
	MethodClass = "Class"
	// MethodAttr is the canonical name for the Attr mutator.
	MethodAttr = "Attr"
	// MethodPseudoClass is the canonical name for the PseudoClass mutator.
	MethodPseudoClass = "PseudoClass"
	// MethodPseudoElement is the canonical name for the PseudoElement mutator.
	MethodPseudoElement = "PseudoElement"
	// MethodCombine is the canonical name for the Combine entry point.
	MethodCombine = "Combine"
)

//-----------------------------------------------------------------------------
// Ordering Stages
//-----------------------------------------------------------------------------

// Stage indices follow CSS compound-selector part order. The order check in
// builder.go scans forward from the current stage, so these values must stay
// contiguous and sorted.
const (
	stageElement = iota
	stageID
	stageClass
	stageAttribute
	stagePseudoClass
	stagePseudoElement
	numStages
)

//-----------------------------------------------------------------------------
// Fragment Prefixes
//-----------------------------------------------------------------------------

// Rendered-form decorations per fragment kind. Element values carry no
// decoration and appear as-is.
const (
	idPrefix          = "#"
	classPrefix       = "."
	attrOpen          = "["
	attrClose         = "]"
	pseudoClassPrefix = ":"
	pseudoElementOpen = "::"
	combinatorPadding = " "
)

//-----------------------------------------------------------------------------
// Combinator Symbols
//-----------------------------------------------------------------------------

// Convenience symbols for Combine. Combine accepts any string verbatim;
// these cover the four CSS combinators.
const (
	// Descendant is the descendant combinator. Because Combine pads the
	// symbol with one space on each side, rendering with Descendant
	// produces three spaces between the operands.
	Descendant = " "
	// Child is the child combinator (>).
	Child = ">"
	// NextSibling is the next-sibling combinator (+).
	NextSibling = "+"
	// SubsequentSibling is the subsequent-sibling combinator (~).
	SubsequentSibling = "~"
)
