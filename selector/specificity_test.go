package selector_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BlackTruth/cssbuild/selector"
)

// renderOnly is a Renderable without the Specificity capability, standing
// in for a foreign implementation.
type renderOnly struct{}

func (renderOnly) Render() (string, error) { return "*", nil }

// TestSpecificity_Builder verifies the [A,B,C] contributions per fragment
// kind: id → A; class, attribute, pseudo-class → B; element and
// pseudo-element → C.
func TestSpecificity_Builder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func() *selector.SelectorBuilder
		want  selector.Specificity
	}{
		{
			name:  "empty",
			build: selector.New,
			want:  selector.Specificity{0, 0, 0},
		},
		{
			name: "id with two classes",
			build: func() *selector.SelectorBuilder {
				return selector.ID("main").Class("container").Class("editable")
			},
			want: selector.Specificity{1, 2, 0},
		},
		{
			name: "element attribute pseudo-class",
			build: func() *selector.SelectorBuilder {
				return selector.Element("a").Attr(`href$=".png"`).PseudoClass("focus")
			},
			want: selector.Specificity{0, 2, 1},
		},
		{
			name: "element and pseudo-element",
			build: func() *selector.SelectorBuilder {
				return selector.Element("li").PseudoElement("marker")
			},
			want: selector.Specificity{0, 0, 2},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.build().Specificity())
		})
	}
}

// TestSpecificity_Combinator verifies that combined selectors sum operand
// specificities, through nesting, and that a foreign Renderable counts as
// zero.
func TestSpecificity_Combinator(t *testing.T) {
	t.Parallel()

	// a contributes [1,0,0]; b contributes [0,1,1].
	a := selector.ID("nav")
	b := selector.Element("li").Class("active")

	c := selector.Combine(a, selector.Child, b)
	assert.Equal(t, selector.Specificity{1, 1, 1}, c.Specificity())

	nested := selector.Combine(c, selector.Descendant, selector.Element("span"))
	assert.Equal(t, selector.Specificity{1, 1, 2}, nested.Specificity())

	foreign := selector.Combine(renderOnly{}, selector.Descendant, a)
	assert.Equal(t, selector.Specificity{1, 0, 0}, foreign.Specificity())
}

// TestSpecificity_LessAndAdd exercises the tuple ordering and sum.
func TestSpecificity_LessAndAdd(t *testing.T) {
	t.Parallel()

	low := selector.Specificity{0, 2, 3}
	high := selector.Specificity{1, 0, 0}

	assert.True(t, low.Less(high), "A dominates B and C")
	assert.False(t, high.Less(low))
	assert.False(t, low.Less(low), "Less is strict")

	assert.True(t, selector.Specificity{0, 1, 0}.Less(selector.Specificity{0, 1, 1}))

	assert.Equal(t, selector.Specificity{1, 2, 3}, low.Add(high).Add(selector.Specificity{0, 0, 0}))
}
