// Package engine builds the canonical, comparable in-memory model of a
// stylesheet's effective meaning from the resolved node tree produced by
// internal/resolve, and implements the equivalence relation over two such
// models.
package engine

import (
	"strings"

	"github.com/arnauddri/csscompare/internal/color"
)

// Value is the tagged variant over a declaration's parsed right-hand side:
// Literal, ListLiteral, Function or Url. The `!important` marker never
// appears in a Value; it lives on the Binding that holds one.
type Value interface {
	value()
	render() string
}

// Literal is a bare token sequence: a keyword, string, dimension or any
// other value that isn't a function call or comma-separated list.
type Literal struct {
	Text string
}

func (Literal) value()          {}
func (l Literal) render() string { return l.Text }

// ListLiteral is a comma-separated value list (`font-family: a, b, c`).
type ListLiteral struct {
	Items []Value
}

func (ListLiteral) value() {}
func (l ListLiteral) render() string {
	parts := make([]string, len(l.Items))
	for i, item := range l.Items {
		parts[i] = item.render()
	}
	return strings.Join(parts, ", ")
}

// Function is a CSS function call, e.g. `rgb(255, 0, 0)` or
// `calc(100% - 8px)`.
type Function struct {
	Name string
	Args []Value
}

func (Function) value() {}
func (f Function) render() string {
	parts := make([]string, len(f.Args))
	for i, a := range f.Args {
		parts[i] = a.render()
	}
	return f.Name + "(" + strings.Join(parts, ", ") + ")"
}

var colorFuncs = map[string]bool{"rgb": true, "rgba": true, "hsl": true, "hsla": true}

func (f Function) isColorFunc() bool {
	return colorFuncs[strings.ToLower(f.Name)]
}

// Url is a `url(...)` reference; Raw is the unparsed interior (still
// possibly quoted).
type Url struct {
	Raw string
}

func (Url) value()          {}
func (u Url) render() string { return "url(" + u.Raw + ")" }

// Equal implements the Value equality rules, including the color-recognition
// fast path that makes `red`, `#ff0000` and `rgb(255,0,0)` interchangeable
// regardless of which Value kind parsing produced for each side.
func Equal(a, b Value) bool {
	if ca, ok := color.Parse(a.render()); ok {
		if cb, ok := color.Parse(b.render()); ok {
			return ca.Equivalent(cb)
		}
	}
	switch av := a.(type) {
	case Literal:
		bv, ok := b.(Literal)
		return ok && normalizeLiteral(av.Text) == normalizeLiteral(bv.Text)
	case ListLiteral:
		bv, ok := b.(ListLiteral)
		if !ok || len(av.Items) != len(bv.Items) {
			return false
		}
		for i := range av.Items {
			if !Equal(av.Items[i], bv.Items[i]) {
				return false
			}
		}
		return true
	case Function:
		bv, ok := b.(Function)
		if !ok {
			return false
		}
		if av.isColorFunc() && bv.isColorFunc() {
			ca, ok1 := color.Parse(av.render())
			cb, ok2 := color.Parse(bv.render())
			return ok1 && ok2 && ca.Equivalent(cb)
		}
		if !strings.EqualFold(av.Name, bv.Name) || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case Url:
		bv, ok := b.(Url)
		return ok && normalizeURL(av.Raw) == normalizeURL(bv.Raw)
	}
	return false
}

// normalizeLiteral strips wrapping quotes and converts inner single-quotes
// to double.
func normalizeLiteral(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = s[1 : len(s)-1]
		}
	}
	return strings.ReplaceAll(s, "'", "\"")
}

// normalizeURL extracts a url()'s inner string, strips quotes, and drops a
// leading "./".
func normalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	s = normalizeLiteral(s)
	s = strings.TrimPrefix(s, "./")
	return s
}

// ParseValue parses a resolved declaration value string into a Value.
// Shorthand expansion is explicitly out of scope; this is a
// shape recognizer (literal / list / function / url), not a per-property
// grammar.
func ParseValue(raw string) Value {
	raw = strings.TrimSpace(raw)
	if fn, args, ok := splitFunction(raw); ok {
		if strings.EqualFold(fn, "url") {
			return Url{Raw: strings.TrimSpace(args)}
		}
		argParts := splitTopLevel(args, ',')
		vals := make([]Value, len(argParts))
		for i, a := range argParts {
			vals[i] = ParseValue(a)
		}
		return Function{Name: fn, Args: vals}
	}
	if parts := splitTopLevel(raw, ','); len(parts) > 1 {
		items := make([]Value, len(parts))
		for i, p := range parts {
			items[i] = ParseValue(p)
		}
		return ListLiteral{Items: items}
	}
	return Literal{Text: raw}
}

// splitFunction recognizes `name(...)` wrapping the whole string.
func splitFunction(s string) (name, args string, ok bool) {
	open := strings.IndexByte(s, '(')
	if open <= 0 || !strings.HasSuffix(s, ")") {
		return "", "", false
	}
	name = strings.TrimSpace(s[:open])
	if !isIdent(name) {
		return "", "", false
	}
	return name, s[open+1 : len(s)-1], true
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '-' || r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return false
	}
	return true
}

// splitTopLevel splits s on sep, ignoring occurrences nested inside
// parens, brackets or quotes.
func splitTopLevel(s string, sep byte) []string {
	var parts []string
	depth := 0
	var quote byte
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '(' || c == '[':
			depth++
		case c == ')' || c == ']':
			depth--
		case c == sep && depth == 0:
			parts = append(parts, strings.TrimSpace(s[start:i]))
			start = i + 1
		}
	}
	parts = append(parts, strings.TrimSpace(s[start:]))
	return parts
}
