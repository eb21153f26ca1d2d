package engine_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnauddri/csscompare/internal/engine"
)

func TestExplainReportsOnlyInFirst(t *testing.T) {
	a := mustEvaluate(t, "a { x: 1 } b { y: 2 }")
	b := mustEvaluate(t, "a { x: 1 }")
	lines := engine.Explain(a, b)
	assert.Contains(t, strings.Join(lines, "\n"), "selector b: only in first")
}

func TestExplainReportsDiffersNotHow(t *testing.T) {
	a := mustEvaluate(t, "a { x: 1 }")
	b := mustEvaluate(t, "a { x: 2 }")
	lines := engine.Explain(a, b)
	assert.Contains(t, strings.Join(lines, "\n"), "selector a: differs")
}

func TestExplainEmptyWhenEquivalent(t *testing.T) {
	a := mustEvaluate(t, "a { x: 1 }")
	b := mustEvaluate(t, "a { x: 1 }")
	assert.Empty(t, engine.Explain(a, b))
}
