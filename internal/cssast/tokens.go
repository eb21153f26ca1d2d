package cssast

import "github.com/arnauddri/csscompare/internal/token"

// Tokens flattens a list of component values back into the token stream
// that produced them, reinserting the block/function delimiters that
// consumeSimpleBlock and consumeFunction stripped off into structure. This
// lets a nested {-block's component values be re-parsed as a fresh list of
// rules or declarations without going back to the original source text.
func (a ComponentValues) Tokens() []token.Token {
	var toks []token.Token
	for _, v := range a {
		toks = append(toks, v.tokens()...)
	}
	return toks
}

func (t *Token) tokens() []token.Token {
	return []token.Token{t.Token}
}

func (f *Function) tokens() []token.Token {
	toks := []token.Token{&token.Function{Value: f.Name}}
	toks = append(toks, f.Values.Tokens()...)
	toks = append(toks, &token.RParen{})
	return toks
}

func (b *SimpleBlock) tokens() []token.Token {
	toks := []token.Token{b.Token}
	toks = append(toks, b.Values.Tokens()...)
	toks = append(toks, closingToken(b.Token))
	return toks
}

// closingToken returns the mirror token that closes a block opened by open.
func closingToken(open token.Token) token.Token {
	switch open.(type) {
	case *token.LBrack:
		return &token.RBrack{}
	case *token.LParen:
		return &token.RParen{}
	default:
		return &token.RBrace{}
	}
}
