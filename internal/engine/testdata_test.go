package engine_test

import (
	"strings"
	"testing"

	"github.com/arnauddri/csscompare/internal/cssparse"
	"github.com/arnauddri/csscompare/internal/engine"
	"github.com/arnauddri/csscompare/internal/resolve"
	"github.com/arnauddri/csscompare/internal/scanner"
)

func mustEvaluate(t *testing.T, css string) *engine.Engine {
	t.Helper()
	sc := scanner.New(strings.NewReader(css))
	ss, err := cssparse.ParseStyleSheet(sc)
	if err != nil {
		t.Fatalf("parse %q: %v", css, err)
	}
	nodes, err := resolve.Resolve(ss)
	if err != nil {
		t.Fatalf("resolve %q: %v", css, err)
	}
	return engine.Evaluate(nodes, engine.Options{})
}
