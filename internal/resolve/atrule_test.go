package resolve_test

import (
	"strings"
	"testing"

	"github.com/arnauddri/csscompare/internal/cssparse"
	"github.com/arnauddri/csscompare/internal/resolve"
	"github.com/arnauddri/csscompare/internal/scanner"
)

func mustResolve(t *testing.T, css string) []resolve.Node {
	t.Helper()
	ss, err := cssparse.ParseStyleSheet(scanner.New(strings.NewReader(css)))
	if err != nil {
		t.Fatalf("<%q> parse: %v", css, err)
	}
	nodes, err := resolve.Resolve(ss)
	if err != nil {
		t.Fatalf("<%q> resolve: %v", css, err)
	}
	return nodes
}

func TestResolveMedia(t *testing.T) {
	nodes := mustResolve(t, `@media screen, print { a { x: 1 } }`)
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	mn, ok := nodes[0].(*resolve.MediaNode)
	if !ok {
		t.Fatalf("expected *MediaNode, got %T", nodes[0])
	}
	if len(mn.Queries) != 2 || mn.Queries[0].Text != "screen" || mn.Queries[1].Text != "print" {
		t.Errorf("unexpected queries: %+v", mn.Queries)
	}
	if len(mn.Children) != 1 {
		t.Fatalf("expected 1 child rule, got %d", len(mn.Children))
	}
}

func TestResolveMediaDefaultsToAll(t *testing.T) {
	nodes := mustResolve(t, `@media { a { x: 1 } }`)
	mn := nodes[0].(*resolve.MediaNode)
	if len(mn.Queries) != 1 || mn.Queries[0].Text != "all" {
		t.Errorf("expected default query [all], got %+v", mn.Queries)
	}
}

func TestResolveSupportsCondition(t *testing.T) {
	nodes := mustResolve(t, `@supports (display: grid) { a { x: 1 } }`)
	sn, ok := nodes[0].(*resolve.SupportsNode)
	if !ok {
		t.Fatalf("expected *SupportsNode, got %T", nodes[0])
	}
	if sn.Condition != "(display: grid)" {
		t.Errorf("unexpected condition: %q", sn.Condition)
	}
}

func TestResolveCharset(t *testing.T) {
	nodes := mustResolve(t, `@charset "UTF-8";`)
	cn, ok := nodes[0].(*resolve.CharsetNode)
	if !ok {
		t.Fatalf("expected *CharsetNode, got %T", nodes[0])
	}
	if cn.Name != "UTF-8" {
		t.Errorf("expected UTF-8, got %q", cn.Name)
	}
}

func TestResolveNamespace(t *testing.T) {
	nodes := mustResolve(t, `@namespace svg url(http://www.w3.org/2000/svg);`)
	dn, ok := nodes[0].(*resolve.DirectiveNode)
	if !ok || dn.Name != "namespace" {
		t.Fatalf("expected namespace directive, got %+v", nodes[0])
	}
	if dn.Value != "svg" {
		t.Errorf("expected prefix svg, got %q", dn.Value)
	}
	if dn.ResolvedValue != "http://www.w3.org/2000/svg" {
		t.Errorf("expected unwrapped URI, got %q", dn.ResolvedValue)
	}
}

func TestResolveNamespaceDefaultPrefix(t *testing.T) {
	nodes := mustResolve(t, `@namespace url(http://www.w3.org/2000/svg);`)
	dn := nodes[0].(*resolve.DirectiveNode)
	if dn.Value != "default" {
		t.Errorf("expected default prefix, got %q", dn.Value)
	}
}

func TestResolveImport(t *testing.T) {
	nodes := mustResolve(t, `@import url("a.css") screen, print;`)
	in, ok := nodes[0].(*resolve.ImportNode)
	if !ok {
		t.Fatalf("expected *ImportNode, got %T", nodes[0])
	}
	if in.ResolvedURI != "a.css" {
		t.Errorf("expected URI a.css, got %q", in.ResolvedURI)
	}
	if len(in.Query) != 2 || in.Query[0].Text != "screen" || in.Query[1].Text != "print" {
		t.Errorf("unexpected query list: %+v", in.Query)
	}
}

func TestResolveImportBareString(t *testing.T) {
	nodes := mustResolve(t, `@import "a.css";`)
	in := nodes[0].(*resolve.ImportNode)
	if in.ResolvedURI != "a.css" {
		t.Errorf("expected URI a.css, got %q", in.ResolvedURI)
	}
	if len(in.Query) != 1 || in.Query[0].Text != "all" {
		t.Errorf("expected default [all] query, got %+v", in.Query)
	}
}

func TestResolveKeyframes(t *testing.T) {
	nodes := mustResolve(t, `@keyframes spin { from { transform: rotate(0deg) } to { transform: rotate(360deg) } }`)
	dn, ok := nodes[0].(*resolve.DirectiveNode)
	if !ok || dn.Name != "keyframes" || dn.Value != "spin" {
		t.Fatalf("expected keyframes directive named spin, got %+v", nodes[0])
	}
	if len(dn.Children) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(dn.Children))
	}
	first, ok := dn.Children[0].(*resolve.KeyframeRuleNode)
	if !ok || first.ResolvedValue != "0%" {
		t.Errorf("expected from -> 0%%, got %+v", dn.Children[0])
	}
	second := dn.Children[1].(*resolve.KeyframeRuleNode)
	if second.ResolvedValue != "100%" {
		t.Errorf("expected to -> 100%%, got %q", second.ResolvedValue)
	}
}

func TestResolveKeyframesPercentageOffsets(t *testing.T) {
	nodes := mustResolve(t, `@keyframes spin { 0% { top: 0 } 50% { top: 5px } 100% { top: 10px } }`)
	dn := nodes[0].(*resolve.DirectiveNode)
	if len(dn.Children) != 3 {
		t.Fatalf("expected 3 frames, got %d", len(dn.Children))
	}
	mid := dn.Children[1].(*resolve.KeyframeRuleNode)
	if mid.ResolvedValue != "50%" {
		t.Errorf("expected 50%%, got %q", mid.ResolvedValue)
	}
}

func TestResolveFontFace(t *testing.T) {
	nodes := mustResolve(t, `@font-face { font-family: Arial; src: url(a.woff); font-weight: bold; }`)
	dn, ok := nodes[0].(*resolve.DirectiveNode)
	if !ok || dn.Name != "font-face" {
		t.Fatalf("expected font-face directive, got %+v", nodes[0])
	}
	if len(dn.Children) != 3 {
		t.Fatalf("expected 3 descriptors, got %d", len(dn.Children))
	}
}

func TestResolvePageWithMarginBoxes(t *testing.T) {
	nodes := mustResolve(t, `@page :first { size: A4; margin: 1in; @top-center { content: "Page" } }`)
	dn, ok := nodes[0].(*resolve.DirectiveNode)
	if !ok || dn.Name != "page" {
		t.Fatalf("expected page directive, got %+v", nodes[0])
	}
	if len(dn.Children) != 1 {
		t.Fatalf("expected 1 page-selector instance, got %d", len(dn.Children))
	}
	rule, ok := dn.Children[0].(*resolve.RuleNode)
	if !ok {
		t.Fatalf("expected *RuleNode instance, got %T", dn.Children[0])
	}
	if len(rule.Selectors) != 1 {
		t.Fatalf("expected 1 selector, got %d", len(rule.Selectors))
	}
	// children[0] is the "all" bucket of bare declarations, followed by one
	// DirectiveNode per margin-box at-rule.
	if len(rule.Children) != 2 {
		t.Fatalf("expected all-bucket + 1 margin box, got %d", len(rule.Children))
	}
	all, ok := rule.Children[0].(*resolve.DirectiveNode)
	if !ok || all.Name != "all" || len(all.Children) != 2 {
		t.Fatalf("expected all-bucket with 2 declarations, got %+v", rule.Children[0])
	}
	box, ok := rule.Children[1].(*resolve.DirectiveNode)
	if !ok || box.Name != "top-center" {
		t.Fatalf("expected top-center margin box, got %+v", rule.Children[1])
	}
}

func TestResolvePageMultipleSelectors(t *testing.T) {
	nodes := mustResolve(t, `@page :first, :left { margin: 1in; }`)
	dn := nodes[0].(*resolve.DirectiveNode)
	if len(dn.Children) != 2 {
		t.Fatalf("expected 2 page-selector instances, got %d", len(dn.Children))
	}
}

func TestResolveUnknownAtRuleIsUnsupported(t *testing.T) {
	nodes := mustResolve(t, `@document url(http://example.com) { a { x: 1 } }`)
	dn, ok := nodes[0].(*resolve.DirectiveNode)
	if !ok || !dn.Unsupported {
		t.Fatalf("expected an Unsupported directive, got %+v", nodes[0])
	}
}

func TestResolvePropertyImportant(t *testing.T) {
	nodes := mustResolve(t, `a { color: red !important; }`)
	rn := nodes[0].(*resolve.RuleNode)
	pn := rn.Children[0].(*resolve.PropertyNode)
	if !pn.Important {
		t.Error("expected Important to be true")
	}
	if pn.ResolvedName != "color" || pn.ResolvedValue != "red" {
		t.Errorf("unexpected property: %+v", pn)
	}
}
