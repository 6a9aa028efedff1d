package selector

import "strings"

// SelectorBuilder accumulates selector fragments and renders them as one
// compound selector. The zero value is ready to use; New and the facade
// entry points in api.go are the usual starting points.
//
// Mutators return the receiver so calls chain. Each mutator validates the
// two usage rules before storing its fragment:
//
//   - cardinality: element, id and pseudo-element are single-valued; a
//     second set records ErrDuplicateFragment;
//   - ordering: the mutator's stage is marked touched, then all later
//     stages are scanned — if any was already touched, the call records
//     ErrOrderViolation. Re-touching the current stage is always allowed;
//     touching an earlier stage after any later one is not, no matter how
//     many stages were skipped on the way forward.
//
// The first recorded error is sticky: it is observable immediately via Err,
// every subsequent mutator becomes a no-op, and Render reports it.
//
// A builder is exclusively owned by the call chain that created it; it is
// not safe for concurrent use and is not meant to be shared.
type SelectorBuilder struct {
	element       string
	id            string
	classes       []string
	attributes    []string
	pseudoClasses []string
	pseudoElement string

	// touched records every stage that received a fragment, in support of
	// the scan-forward order check. A plain high-water mark would not
	// re-verify skipped stages on later calls, so the full ledger stays.
	touched [numStages]bool

	err error
}

// New returns an empty builder with no fragments and no recorded error.
func New() *SelectorBuilder {
	return &SelectorBuilder{}
}

// advance marks stage as touched, then scans every later stage; if one was
// already touched the call arrived out of order. O(numStages) per call.
func (b *SelectorBuilder) advance(method string, stage int) error {
	b.touched[stage] = true
	for later := stage + 1; later < numStages; later++ {
		if b.touched[later] {
			return wrapf(method, ErrOrderViolation)
		}
	}
	return nil
}

// Element sets the type (tag) fragment. Stage 0; single-valued.
func (b *SelectorBuilder) Element(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if b.element != "" {
		b.err = wrapf(MethodElement, ErrDuplicateFragment)
		return b
	}
	if err := b.advance(MethodElement, stageElement); err != nil {
		b.err = err
		return b
	}
	b.element = value
	return b
}

// ID sets the id fragment, rendered as "#"+value. Stage 1; single-valued.
func (b *SelectorBuilder) ID(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if b.id != "" {
		b.err = wrapf(MethodID, ErrDuplicateFragment)
		return b
	}
	if err := b.advance(MethodID, stageID); err != nil {
		b.err = err
		return b
	}
	b.id = value
	return b
}

// Class appends a class fragment, rendered as "."+value. Stage 2; may be
// called any number of times, insertion order preserved, duplicates kept.
func (b *SelectorBuilder) Class(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if err := b.advance(MethodClass, stageClass); err != nil {
		b.err = err
		return b
	}
	b.classes = append(b.classes, value)
	return b
}

// Attr appends an attribute fragment, rendered as "["+value+"]". The body
// is emitted verbatim; operators and quoting are the caller's business.
// Stage 3; repeatable, insertion order preserved.
func (b *SelectorBuilder) Attr(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if err := b.advance(MethodAttr, stageAttribute); err != nil {
		b.err = err
		return b
	}
	b.attributes = append(b.attributes, value)
	return b
}

// PseudoClass appends a pseudo-class fragment, rendered as ":"+value.
// Stage 4; repeatable, insertion order preserved.
func (b *SelectorBuilder) PseudoClass(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if err := b.advance(MethodPseudoClass, stagePseudoClass); err != nil {
		b.err = err
		return b
	}
	b.pseudoClasses = append(b.pseudoClasses, value)
	return b
}

// PseudoElement sets the pseudo-element fragment, rendered as "::"+value.
// Stage 5; single-valued.
func (b *SelectorBuilder) PseudoElement(value string) *SelectorBuilder {
	if b.err != nil {
		return b
	}
	if b.pseudoElement != "" {
		b.err = wrapf(MethodPseudoElement, ErrDuplicateFragment)
		return b
	}
	if err := b.advance(MethodPseudoElement, stagePseudoElement); err != nil {
		b.err = err
		return b
	}
	b.pseudoElement = value
	return b
}

// Err reports the first usage error recorded by a mutator, or nil. It lets
// callers branch right after the offending call instead of waiting for
// Render.
func (b *SelectorBuilder) Err() error {
	return b.err
}

// Render produces the selector string: element as-is, then "#"+id, then
// each class, attribute and pseudo-class in insertion order, then the
// pseudo-element — no separators beyond the fragment decorations and no
// surrounding whitespace. Absent fragments contribute nothing. If a mutator
// recorded an error, Render returns it with an empty string.
func (b *SelectorBuilder) Render() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	var sb strings.Builder
	sb.WriteString(b.element)
	if b.id != "" {
		sb.WriteString(idPrefix)
		sb.WriteString(b.id)
	}
	for _, c := range b.classes {
		sb.WriteString(classPrefix)
		sb.WriteString(c)
	}
	for _, a := range b.attributes {
		sb.WriteString(attrOpen)
		sb.WriteString(a)
		sb.WriteString(attrClose)
	}
	for _, p := range b.pseudoClasses {
		sb.WriteString(pseudoClassPrefix)
		sb.WriteString(p)
	}
	if b.pseudoElement != "" {
		sb.WriteString(pseudoElementOpen)
		sb.WriteString(b.pseudoElement)
	}
	return sb.String(), nil
}

// String implements fmt.Stringer: the rendered selector, or "" when the
// builder carries an error. Use Render to observe the error.
func (b *SelectorBuilder) String() string {
	s, err := b.Render()
	if err != nil {
		return ""
	}
	return s
}
