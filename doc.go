// Package cssbuild assembles CSS selector strings from typed parts —
// no parsing, no document matching, just correct construction.
//
// Everything lives in one subpackage:
//
//	selector/ — chainable SelectorBuilder (element, id, classes, attributes,
//	            pseudo-classes, pseudo-element), Combine for joining
//	            sub-selectors with a combinator, and CSS specificity math.
//
// Why use it?
//
//   - Ordering enforced – parts must arrive as element, id, class,
//     attribute, pseudo-class, pseudo-element; violations surface as
//     sentinel errors, never panics
//   - Cardinality enforced – element, id and pseudo-element at most once
//   - Pure Go – no cgo, no I/O, fully synchronous
//
// Quick example:
//
//	s, _ := selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus").Render()
//	// s == `a[href$=".png"]:focus`
package cssbuild
