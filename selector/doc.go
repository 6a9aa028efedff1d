// Package selector provides chainable building blocks for constructing CSS
// selector strings from discrete parts, enforcing the ordering and
// cardinality rules of compound selectors without parsing or matching.
//
// The package offers the following key components:
//
//   - SelectorBuilder: a mutable accumulator of selector fragments.
//     Mutators chain (each returns the receiver) and validate two rules:
//     – ordering:    element, id, class, attribute, pseudo-class,
//     pseudo-element — never backward;
//     – cardinality: element, id and pseudo-element at most once.
//   - Facade entry points: Element, ID, Class, Attr, PseudoClass,
//     PseudoElement — each starts a fresh builder with one fragment.
//   - Combine / Combinator: joins two Renderable sub-selectors with a
//     combinator symbol (Descendant, Child, NextSibling,
//     SubsequentSibling, or any verbatim string).
//   - Renderable: the one-method capability (Render) shared by
//     SelectorBuilder and Combinator, so combinator trees nest and remain
//     statically checkable.
//   - Specificity: the CSS [A,B,C] specificity tuple computed from a
//     builder's fragments or summed across a combinator tree.
//
// Guarantees:
//
//   - Never panics: usage violations surface as the sentinels
//     ErrDuplicateFragment and ErrOrderViolation, branchable with errors.Is.
//   - First-error wins: the offending call records the error (observable
//     immediately via Err), later fragment calls are no-ops, and Render
//     returns the recorded error.
//   - Rendering is deterministic: fragments appear in stage order, repeated
//     fragments in insertion order, never deduplicated, no surrounding
//     whitespace.
//   - No syntax validation: attribute bodies and combinator symbols are
//     emitted verbatim; only ordering and cardinality are enforced.
//
// See individual function documentation for detailed contracts.
package selector
