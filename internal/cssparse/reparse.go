package cssparse

import "github.com/arnauddri/csscompare/internal/cssast"

// ParseDeclarationsFromValues re-parses a block's already-tokenized
// component values as a declaration list. CSS at-rules such as @media wrap
// their body in a {-block that the low-level parser only knows how to
// collect as component values; interpreting that block's contents as
// declarations (or nested at-rules, per §5.4.4) is specific to the rule
// that owns the block, so callers re-enter the grammar here instead of the
// generic component-value parse.
func ParseDeclarationsFromValues(values cssast.ComponentValues) (cssast.Declarations, error) {
	var p parser
	a := p.consumeDeclarations(NewTokenScanner(values.Tokens()))
	return a, p.error()
}

// ParseRulesFromValues re-parses a block's component values as a list of
// rules, used for at-rules whose body is a rule list rather than a
// declaration list (@media, @supports, @keyframes, @document, @layer, ...).
func ParseRulesFromValues(values cssast.ComponentValues) (cssast.Rules, error) {
	var p parser
	a := p.consumeRules(NewTokenScanner(values.Tokens()), false)
	return a, p.error()
}
