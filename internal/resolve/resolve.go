package resolve

import (
	"go.uber.org/multierr"

	"github.com/arnauddri/csscompare/internal/cssast"
)

// Resolve turns a parsed stylesheet's rule list into the typed node family
// this package defines. Parse errors encountered while re-entering an
// at-rule's block grammar are aggregated rather than aborting the walk, so
// a single malformed at-rule doesn't discard an otherwise-valid sheet.
func Resolve(ss *cssast.StyleSheet) ([]Node, error) {
	return resolveRules(ss.Rules)
}

func resolveRules(rules cssast.Rules) ([]Node, error) {
	var nodes []Node
	var errs error
	for _, r := range rules {
		n, err := resolveRule(r)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		if n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes, errs
}

func resolveRule(r cssast.Rule) (Node, error) {
	switch rule := r.(type) {
	case *cssast.AtRule:
		return resolveAtRule(rule)
	case *cssast.QualifiedRule:
		return resolveQualifiedRule(rule)
	}
	return nil, nil
}

func resolveQualifiedRule(r *cssast.QualifiedRule) (Node, error) {
	decls, err := declarationsIn(r.Block)
	if err != nil {
		return nil, err
	}
	children, err := resolveDeclarations(decls)
	if err != nil {
		return nil, err
	}
	return &RuleNode{Selectors: ParsePrelude(r.Prelude), Children: children}, nil
}

// resolveDeclarations resolves a declaration-list body, which per the CSS
// grammar may mix plain declarations with nested at-rules.
func resolveDeclarations(decls cssast.Declarations) ([]Node, error) {
	var nodes []Node
	var errs error
	for _, d := range decls {
		switch n := d.(type) {
		case *cssast.Declaration:
			nodes = append(nodes, propertyNode(n))
		case *cssast.AtRule:
			resolved, err := resolveAtRule(n)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if resolved != nil {
				nodes = append(nodes, resolved)
			}
		}
	}
	return nodes, errs
}
