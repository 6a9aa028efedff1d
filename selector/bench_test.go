package selector_test

import (
	"testing"

	"github.com/BlackTruth/cssbuild/selector"
)

// BenchmarkBuilder_Render measures a full six-stage chain plus render.
// Complexity: O(fragments) per iteration.
func BenchmarkBuilder_Render(b *testing.B) {
	for i := 0; i < b.N; i++ {
		s, err := selector.Element("div").
			ID("app").
			Class("note").
			Class("warn").
			Attr(`data-kind="alert"`).
			PseudoClass("hover").
			PseudoElement("before").
			Render()
		if err != nil {
			b.Fatalf("Render failed: %v", err)
		}
		if s == "" {
			b.Fatal("Render returned empty selector")
		}
	}
}

// BenchmarkCombine_Render measures rendering a small combinator tree built
// once outside the loop.
func BenchmarkCombine_Render(b *testing.B) {
	tree := selector.Combine(
		selector.Combine(selector.ID("root"), selector.Child, selector.Element("ul")),
		selector.Descendant,
		selector.Element("li").Class("leaf"),
	)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tree.Render(); err != nil {
			b.Fatalf("Render failed: %v", err)
		}
	}
}
