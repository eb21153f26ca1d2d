package engine

import "strings"

// Engine is the component store: a single frozen value of each entity
// family built by one evaluation pass over a stylesheet (or, for
// @supports bodies, a nested pass). It is read-only once evaluation
// finishes; nothing outside Evaluate mutates it afterward.
type Engine struct {
	Selectors  map[string]*Selector
	Keyframes  map[string]*Keyframes
	Namespaces map[string]string
	Pages      map[string]*PageSelector
	Supports   map[string]*Supports
	FontFaces  map[string]*FontFace
	Charset    string

	// Unsupported collects the names of at-rule/directive nodes the
	// evaluator could not classify ("append to unsupported,
	// continue" policy. It does not participate in equivalence.
	Unsupported []string
}

// New returns an empty, ready-to-populate Engine.
func New() *Engine {
	return &Engine{
		Selectors:  map[string]*Selector{},
		Keyframes:  map[string]*Keyframes{},
		Namespaces: map[string]string{},
		Pages:      map[string]*PageSelector{},
		Supports:   map[string]*Supports{},
		FontFaces:  map[string]*FontFace{},
	}
}

// UnsupportedCount exposes how many nodes the evaluator routed to
// `unsupported`, surfaced by the CLI so a transpiler regression that
// starts emitting unrecognized at-rules is visible without changing the
// boolean contract on stdout.
func (e *Engine) UnsupportedCount() int {
	return len(e.Unsupported)
}

func (e *Engine) selector(name string) *Selector {
	s, ok := e.Selectors[name]
	if !ok {
		s = newSelector(name)
		e.Selectors[name] = s
	}
	return s
}

func (e *Engine) keyframes(name string) *Keyframes {
	k, ok := e.Keyframes[name]
	if !ok {
		k = newKeyframes(name)
		e.Keyframes[name] = k
	}
	return k
}

func (e *Engine) page(text string) *PageSelector {
	p, ok := e.Pages[text]
	if !ok {
		p = newPageSelector(text)
		e.Pages[text] = p
	}
	return p
}

func (e *Engine) supports(name string) *Supports {
	s, ok := e.Supports[name]
	if !ok {
		s = newSupports(name)
		e.Supports[name] = s
	}
	return s
}

// fontFaceKey builds the (condition, lowercased family, normalized src)
// composite key.
func fontFaceKey(condition, family, src string) string {
	return strings.ToLower(condition) + "\x00" + strings.ToLower(family) + "\x00" + normalizeURL(src)
}

func (e *Engine) addFontFace(condition string, ff *FontFace) {
	family, src := ff.Key()
	e.FontFaces[fontFaceKey(condition, family, src)] = ff
}

func (e *Engine) clone() *Engine {
	ne := New()
	for k, v := range e.Selectors {
		ne.Selectors[k] = v.clone()
	}
	for k, v := range e.Keyframes {
		ne.Keyframes[k] = v.clone()
	}
	for k, v := range e.Namespaces {
		ne.Namespaces[k] = v
	}
	for k, v := range e.Pages {
		ne.Pages[k] = v.clone()
	}
	for k, v := range e.Supports {
		ne.Supports[k] = v.clone()
	}
	for k, v := range e.FontFaces {
		ne.FontFaces[k] = v.clone()
	}
	ne.Charset = e.Charset
	ne.Unsupported = append([]string(nil), e.Unsupported...)
	return ne
}
