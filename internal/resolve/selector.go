package resolve

import (
	"strings"

	"github.com/arnauddri/csscompare/internal/cssast"
	"github.com/arnauddri/csscompare/internal/token"
)

// ParsePrelude parses a qualified rule's prelude into the selector-group
// list it denotes: a top-level comma splits a selector group into the
// complex selectors it contains, each of which is itself a chain of
// simple-selector-sequences joined by combinators. Bucketizing, dedup and
// sorting within a sequence are left to the
// canonicalizer that consumes this shape; this function only recovers the
// syntactic structure the low-level parser flattened into component values.
func ParsePrelude(prelude cssast.ComponentValues) []ComplexSelector {
	var selectors []ComplexSelector
	var group cssast.ComponentValues
	for _, v := range prelude {
		if isComma(v) {
			if cs := parseComplexSelector(group); len(cs.Sequences) > 0 {
				selectors = append(selectors, cs)
			}
			group = nil
			continue
		}
		group = append(group, v)
	}
	if cs := parseComplexSelector(group); len(cs.Sequences) > 0 {
		selectors = append(selectors, cs)
	}
	return selectors
}

func isComma(v cssast.ComponentValue) bool {
	t, ok := v.(*cssast.Token)
	if !ok {
		return false
	}
	_, ok = t.Token.(*token.Comma)
	return ok
}

func isWhitespace(v cssast.ComponentValue) bool {
	t, ok := v.(*cssast.Token)
	if !ok {
		return false
	}
	_, ok = t.Token.(*token.Whitespace)
	return ok
}

func combinatorDelim(v cssast.ComponentValue) (string, bool) {
	t, ok := v.(*cssast.Token)
	if !ok {
		return "", false
	}
	d, ok := t.Token.(*token.Delim)
	if !ok {
		return "", false
	}
	switch d.Value {
	case ">", "+", "~":
		return d.Value, true
	}
	return "", false
}

// parseComplexSelector consumes the component values of a single (comma-
// delimited) selector into its simple-selector-sequence chain.
func parseComplexSelector(values cssast.ComponentValues) ComplexSelector {
	var cs ComplexSelector
	var seq SimpleSequence
	sawSpace := false

	flush := func(combinator string) {
		cs.Sequences = append(cs.Sequences, seq)
		cs.Combinators = append(cs.Combinators, combinator)
		seq = nil
	}

	i := 0
	for i < len(values) {
		v := values[i]
		if isWhitespace(v) {
			sawSpace = true
			i++
			continue
		}
		if c, ok := combinatorDelim(v); ok {
			flush(c)
			sawSpace = false
			i++
			// swallow whitespace trailing the combinator
			for i < len(values) && isWhitespace(values[i]) {
				i++
			}
			continue
		}

		if sawSpace && len(seq) > 0 {
			flush("")
		}
		sawSpace = false

		member, consumed := parseMember(values, i)
		if member == nil {
			i++
			continue
		}
		if member.Kind == Attribute && len(seq) > 0 {
			seq[len(seq)-1].Attrs = append(seq[len(seq)-1].Attrs, member.Text)
		} else if member.Kind == Attribute {
			seq = append(seq, SimpleMember{Kind: Universal, Text: "*", Attrs: []string{member.Text}})
		} else {
			seq = append(seq, *member)
		}
		i += consumed
	}
	if len(seq) > 0 || len(cs.Sequences) == 0 {
		cs.Sequences = append(cs.Sequences, seq)
	}
	return cs
}

// parseMember classifies the selector atom starting at values[i], returning
// the member and how many component values it consumed.
func parseMember(values cssast.ComponentValues, i int) (*SimpleMember, int) {
	v := values[i]
	t, ok := v.(*cssast.Token)
	if !ok {
		if blk, ok := v.(*cssast.SimpleBlock); ok {
			if _, isBrack := blk.Token.(*token.LBrack); isBrack {
				return &SimpleMember{Kind: Attribute, Text: blk.String()}, 1
			}
		}
		if fn, ok := v.(*cssast.Function); ok {
			return &SimpleMember{Kind: Pseudo, Text: ":" + fn.String()}, 1
		}
		return nil, 1
	}

	switch tok := t.Token.(type) {
	case *token.Delim:
		switch tok.Value {
		case "*":
			return &SimpleMember{Kind: Universal, Text: "*"}, 1
		case ".":
			if ident, n := nextIdentLike(values, i+1); ident != "" {
				return &SimpleMember{Kind: Class, Text: "." + ident}, 1 + n
			}
			return &SimpleMember{Kind: Class, Text: "."}, 1
		case "%":
			if ident, n := nextIdentLike(values, i+1); ident != "" {
				return &SimpleMember{Kind: Placeholder, Text: "%" + ident}, 1 + n
			}
			return &SimpleMember{Kind: Placeholder, Text: "%"}, 1
		case "&":
			return &SimpleMember{Kind: Element, Text: "&"}, 1
		}
		return nil, 1
	case *token.Ident:
		return &SimpleMember{Kind: Element, Text: tok.Value}, 1
	case *token.Percentage:
		// keyframe offsets (0%, 50%, 100%) live in the same prelude
		// grammar as selectors; treat the bare percentage as an atom.
		return &SimpleMember{Kind: Element, Text: tok.Value}, 1
	case *token.Hash:
		return &SimpleMember{Kind: Id, Text: "#" + tok.Value}, 1
	case *token.Colon:
		n := 1
		prefix := ":"
		if next, ok := values[i+1].(*cssast.Token); ok {
			if _, ok := next.Token.(*token.Colon); ok {
				prefix = "::"
				n++
			}
		}
		switch next := values[i+n].(type) {
		case *cssast.Token:
			if id, ok := next.Token.(*token.Ident); ok {
				return &SimpleMember{Kind: Pseudo, Text: prefix + id.Value}, n + 1
			}
		case *cssast.Function:
			return &SimpleMember{Kind: Pseudo, Text: prefix + next.String()}, n + 1
		}
		return &SimpleMember{Kind: Pseudo, Text: prefix}, n
	case *token.Function:
		return &SimpleMember{Kind: Pseudo, Text: ":" + tok.Value + "("}, 1
	}
	return nil, 1
}

// nextIdentLike reports the identifier text starting at values[i], if any,
// and how many component values it spans (an ident atom is always one
// component value, but callers combine it with a preceding sigil).
func nextIdentLike(values cssast.ComponentValues, i int) (string, int) {
	if i >= len(values) {
		return "", 0
	}
	t, ok := values[i].(*cssast.Token)
	if !ok {
		return "", 0
	}
	id, ok := t.Token.(*token.Ident)
	if !ok {
		return "", 0
	}
	return id.Value, 1
}

// String renders a complex selector back to its canonical-input CSS text,
// useful for diagnostics; it is not the canonicalized form produced by the
// engine's selector canonicalizer.
func (cs ComplexSelector) String() string {
	var b strings.Builder
	for idx, seq := range cs.Sequences {
		for _, m := range seq {
			b.WriteString(m.Text)
			for _, a := range m.Attrs {
				b.WriteString(a)
			}
		}
		if idx < len(cs.Combinators) {
			c := cs.Combinators[idx]
			if c == "" {
				b.WriteString(" ")
			} else {
				b.WriteString(" " + c + " ")
			}
		}
	}
	return b.String()
}
