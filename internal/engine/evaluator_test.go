package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnauddri/csscompare/internal/engine"
)

// These mirror the end-to-end scenarios enumerated for this kind of
// comparison engine: literal color forms, duplicate selector tokens,
// !important cascade interaction, extra condition bindings, and keyframe
// keyword normalization.

func TestColorLiteralEquivalence(t *testing.T) {
	a := mustEvaluate(t, "a { color: red }")
	b := mustEvaluate(t, "a { color: #ff0000 }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestDuplicateSelectorTokens(t *testing.T) {
	a := mustEvaluate(t, ".a.b.a { x:1 }")
	b := mustEvaluate(t, ".b.a { x:1 }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestIntraSequenceOrderInvariance(t *testing.T) {
	a := mustEvaluate(t, "div#id.x { x:1 }")
	b := mustEvaluate(t, "div.x#id { x:1 }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestDescendantOrderMatters(t *testing.T) {
	a := mustEvaluate(t, ".a .b { x:1 }")
	b := mustEvaluate(t, ".b .a { x:1 }")
	assert.False(t, engine.Equivalent(a, b))
}

func TestImportantBeatsLaterNonImportant(t *testing.T) {
	a := mustEvaluate(t, "p { c:red !important } p { c:blue }")
	b := mustEvaluate(t, "p { c:red !important }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestLaterNonImportantReplacesEarlier(t *testing.T) {
	a := mustEvaluate(t, "p { c:red } p { c:blue }")
	b := mustEvaluate(t, "p { c:blue }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestExtraConditionBindingDiffers(t *testing.T) {
	a := mustEvaluate(t, "@media screen { a { x:1 } }")
	b := mustEvaluate(t, "@media screen { a { x:1 } } @media print { a { x:1 } }")
	assert.False(t, engine.Equivalent(a, b))
}

func TestKeyframeKeywordNormalization(t *testing.T) {
	a := mustEvaluate(t, "@keyframes k { from { top:0 } to { top:10 } }")
	b := mustEvaluate(t, "@keyframes k { 0% { top:0 } 100% { top:10 } }")
	assert.True(t, engine.Equivalent(a, b))
}

func TestReflexivity(t *testing.T) {
	css := "@media screen { a.b#c { x: red } } @keyframes k { from { top: 0 } } @font-face { font-family: Arial; src: url(a.woff) }"
	m := mustEvaluate(t, css)
	assert.True(t, engine.Equivalent(m, m))
}

func TestSymmetry(t *testing.T) {
	a := mustEvaluate(t, "a { x: 1px } b { y: 2px }")
	b := mustEvaluate(t, "a { x: 1px }")
	assert.Equal(t, engine.Equivalent(a, b), engine.Equivalent(b, a))
}

func TestURLNormalization(t *testing.T) {
	a := mustEvaluate(t, `a { background: url("./a.png") }`)
	b := mustEvaluate(t, `a { background: url('a.png') }`)
	c := mustEvaluate(t, `a { background: url(a.png) }`)
	assert.True(t, engine.Equivalent(a, b))
	assert.True(t, engine.Equivalent(b, c))
}

func TestFontFaceCaseInsensitiveFamily(t *testing.T) {
	a := mustEvaluate(t, `@font-face { font-family: Arial; src: url(a.woff) }`)
	b := mustEvaluate(t, `@font-face { font-family: arial; src: url(a.woff) }`)
	assert.True(t, engine.Equivalent(a, b))
}

func TestInvalidFontFaceDiscarded(t *testing.T) {
	m := mustEvaluate(t, `@font-face { font-family: Arial }`)
	assert.Equal(t, 0, len(m.FontFaces))
}

func TestPageMarginBoxSizeDrop(t *testing.T) {
	a := mustEvaluate(t, "@page { size: A4 } @media (width: 500px) { @page { size: A4 } }")
	b := mustEvaluate(t, "@page { size: A4 }")
	// The second @page's `size` binding lives under a width-qualified
	// condition and is dropped; both models should end up with
	// only the unconditioned `size` binding.
	assert.True(t, engine.Equivalent(a, b))
}

func TestNamespaceOverwrite(t *testing.T) {
	a := mustEvaluate(t, `@namespace svg url(http://www.w3.org/2000/svg); @namespace svg url(urn:other);`)
	b := mustEvaluate(t, `@namespace svg url(urn:other);`)
	assert.True(t, engine.Equivalent(a, b))
}

func TestSupportsNestedCondition(t *testing.T) {
	a := mustEvaluate(t, "@supports (display: grid) { a { x: 1 } }")
	b := mustEvaluate(t, "@supports (display: grid) { a { x: 1 } }")
	assert.True(t, engine.Equivalent(a, b))
	c := mustEvaluate(t, "@supports (display: flex) { a { x: 1 } }")
	assert.False(t, engine.Equivalent(a, c))
}
