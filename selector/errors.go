package selector

import (
	"errors"
	"fmt"
)

// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Mutators attach method context via %w (see wrapf); sentinels are never
//     redefined with formatted strings.
//   - The package never panics: both sentinels classify caller-usage errors
//     recorded synchronously by the offending call.

var (
	// ErrDuplicateFragment indicates that a single-valued fragment (element,
	// id, or pseudo-element) was set a second time on the same builder.
	// Usage: if errors.Is(err, ErrDuplicateFragment) { /* fix call chain */ }.
	ErrDuplicateFragment = errors.New("selector: element, id and pseudo-element may occur at most once")

	// ErrOrderViolation indicates that a fragment was added after a fragment
	// of a later stage was already present on the same builder.
	// Usage: if errors.Is(err, ErrOrderViolation) { /* reorder fragments */ }.
	ErrOrderViolation = errors.New("selector: parts must be arranged as element, id, class, attribute, pseudo-class, pseudo-element")

	// ErrNilOperand indicates that a Combinator was built with a nil side and
	// therefore cannot render.
	// Usage: if errors.Is(err, ErrNilOperand) { /* pass both operands */ }.
	ErrNilOperand = errors.New("selector: combinator operand is nil")
)

// wrapf prefixes err with the originating method name, e.g.
// "ID: selector: parts must be arranged ...", preserving the sentinel for
// errors.Is.
func wrapf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
