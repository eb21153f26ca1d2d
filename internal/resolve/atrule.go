package resolve

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/arnauddri/csscompare/internal/cssast"
	"github.com/arnauddri/csscompare/internal/cssparse"
	"github.com/arnauddri/csscompare/internal/token"
)

// foldCase lowercases CSS idents (at-rule names, margin-box symbols,
// property names, keyframe offset keywords) the same Unicode-aware way
// internal/color folds named-color keywords.
var foldCase = cases.Lower(language.Und)

// marginSymbols lists the @page margin-box at-rule names; anything else
// nested inside @page that isn't one of these is not a margin box.
var marginSymbols = map[string]bool{
	"top-left-corner": true, "top-left": true, "top-center": true, "top-right": true, "top-right-corner": true,
	"bottom-left-corner": true, "bottom-left": true, "bottom-center": true, "bottom-right": true, "bottom-right-corner": true,
	"left-top": true, "left-middle": true, "left-bottom": true,
	"right-top": true, "right-middle": true, "right-bottom": true,
}

// resolveAtRule dispatches a single at-rule by lowercased name into its
// typed node.
func resolveAtRule(r *cssast.AtRule) (Node, error) {
	name := foldCase.String(r.Name)
	switch name {
	case "media":
		children, err := resolveChildren(r.Block)
		if err != nil {
			return nil, err
		}
		return &MediaNode{Queries: splitQueryList(r.Prelude), Children: children}, nil
	case "supports":
		cond := normalizeCondition(r.Prelude.String())
		children, err := resolveChildren(r.Block)
		if err != nil {
			return nil, err
		}
		return &SupportsNode{Name: name, Condition: cond, Children: children}, nil
	case "keyframes":
		return resolveKeyframes(r)
	case "namespace":
		return resolveNamespace(r), nil
	case "charset":
		return &CharsetNode{Name: unquote(r.Prelude.String())}, nil
	case "page":
		return resolvePage(r)
	case "font-face":
		decls, err := declarationsIn(r.Block)
		if err != nil {
			return nil, err
		}
		return &DirectiveNode{Name: name, Children: propertyNodes(decls)}, nil
	case "import":
		return resolveImport(r), nil
	default:
		return &DirectiveNode{Name: name, Value: r.Prelude.String(), Unsupported: true}, nil
	}
}

func resolveChildren(block *cssast.SimpleBlock) ([]Node, error) {
	if block == nil {
		return nil, nil
	}
	rules, err := cssparse.ParseRulesFromValues(block.Values)
	if err != nil {
		return nil, err
	}
	return resolveRules(rules)
}

func declarationsIn(block *cssast.SimpleBlock) (cssast.Declarations, error) {
	if block == nil {
		return nil, nil
	}
	return cssparse.ParseDeclarationsFromValues(block.Values)
}

// splitQueryList splits a comma-separated media-query list (of an @media
// or @import rule) into its individual, whitespace-normalized queries. A
// blank or literal "all" query is normalized to the single entry "all".
func splitQueryList(prelude cssast.ComponentValues) []Query {
	text := strings.TrimSpace(prelude.String())
	if text == "" {
		text = "all"
	}
	parts := strings.Split(text, ",")
	queries := make([]Query, 0, len(parts))
	for _, p := range parts {
		q := normalizeWhitespace(p)
		if q == "" {
			q = "all"
		}
		queries = append(queries, Query{Text: q})
	}
	return queries
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// normalizeCondition strips a trailing "!important" (noise the parser would
// otherwise leave embedded in the condition's raw text) and collapses
// whitespace, used as the @supports grouping key.
func normalizeCondition(s string) string {
	s = normalizeWhitespace(s)
	lower := strings.ToLower(s)
	if idx := strings.LastIndex(lower, "!important"); idx >= 0 {
		s = strings.TrimSpace(s[:idx])
	}
	return s
}

func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}

func resolveNamespace(r *cssast.AtRule) *DirectiveNode {
	text := normalizeWhitespace(r.Prelude.String())
	fields := strings.Fields(text)
	prefix := "default"
	value := text
	if len(fields) == 2 {
		prefix = fields[0]
		value = fields[1]
	}
	value = unwrapURL(value)
	return &DirectiveNode{Name: "namespace", Value: prefix, ResolvedValue: unquote(value)}
}

func unwrapURL(s string) string {
	lower := foldCase.String(s)
	if strings.HasPrefix(lower, "url(") && strings.HasSuffix(s, ")") {
		return s[4 : len(s)-1]
	}
	return s
}

func resolveImport(r *cssast.AtRule) *ImportNode {
	var parts []cssast.ComponentValue
	uri := ""
	rest := r.Prelude
	for len(rest) > 0 && isWhitespace(rest[0]) {
		rest = rest[1:]
	}
	if len(rest) > 0 {
		switch first := rest[0].(type) {
		case *cssast.Token:
			if u, ok := first.Token.(*token.URL); ok {
				uri = u.Value
				rest = rest[1:]
			} else if s, ok := first.Token.(*token.String); ok {
				uri = s.Value
				rest = rest[1:]
			}
		case *cssast.Function:
			if strings.EqualFold(first.Name, "url") {
				uri = unquote(first.Values.String())
				rest = rest[1:]
			}
		}
	}
	parts = rest
	return &ImportNode{ResolvedURI: uri, Query: splitQueryList(parts)}
}

// resolvePage builds a generic "page" directive wrapping one RuleNode per
// comma-split page selector ("comma-split SEL; for each, a
// PageSelector is produced"). Each RuleNode's children are the same
// resolved margin-box/bare-declaration set; the per-selector instances
// this produces share that read-only slice rather than deep-copying it,
// since the engine builds a fresh PageSelector entity per instance anyway.
func resolvePage(r *cssast.AtRule) (Node, error) {
	decls, err := declarationsIn(r.Block)
	if err != nil {
		return nil, err
	}
	var all []Node
	var boxes []Node
	for _, d := range decls {
		switch n := d.(type) {
		case *cssast.Declaration:
			all = append(all, propertyNode(n))
		case cssast.Rule:
			if at, ok := n.(*cssast.AtRule); ok && marginSymbols[foldCase.String(at.Name)] {
				boxDecls, err := declarationsIn(at.Block)
				if err != nil {
					return nil, err
				}
				boxes = append(boxes, &DirectiveNode{Name: foldCase.String(at.Name), Children: propertyNodes(boxDecls)})
			}
		}
	}
	children := append([]Node{&DirectiveNode{Name: "all", Children: all}}, boxes...)

	selectors := pageSelectors(r.Prelude)
	instances := make([]Node, 0, len(selectors))
	for _, sel := range selectors {
		instances = append(instances, &RuleNode{Selectors: []ComplexSelector{sel}, Children: children})
	}
	return &DirectiveNode{Name: "page", Children: instances}, nil
}

// pageSelectors comma-splits a @page prelude into one ComplexSelector per
// page-selector (e.g. `@page :first, :left`).
func pageSelectors(prelude cssast.ComponentValues) []ComplexSelector {
	sels := ParsePrelude(prelude)
	if len(sels) == 0 {
		return []ComplexSelector{{}}
	}
	return sels
}

func resolveKeyframes(r *cssast.AtRule) (Node, error) {
	name := strings.TrimSpace(r.Prelude.String())
	rules, err := resolveChildren(r.Block)
	if err != nil {
		return nil, err
	}
	var frames []Node
	for _, child := range rules {
		rn, ok := child.(*RuleNode)
		if !ok {
			continue
		}
		for _, sel := range rn.Selectors {
			frames = append(frames, &KeyframeRuleNode{ResolvedValue: normalizeOffset(sel.String()), Children: rn.Children})
		}
	}
	return &DirectiveNode{Name: "keyframes", Value: name, Children: frames}, nil
}

func normalizeOffset(s string) string {
	s = strings.TrimSpace(s)
	switch foldCase.String(s) {
	case "from":
		return "0%"
	case "to":
		return "100%"
	}
	return s
}

func propertyNode(d *cssast.Declaration) *PropertyNode {
	return &PropertyNode{
		ResolvedName:  foldCase.String(strings.TrimSpace(d.Name)),
		ResolvedValue: normalizeWhitespace(d.Values.String()),
		Important:     d.Important,
	}
}

func propertyNodes(decls cssast.Declarations) []Node {
	var out []Node
	for _, d := range decls {
		if decl, ok := d.(*cssast.Declaration); ok {
			out = append(out, propertyNode(decl))
		}
	}
	return out
}
