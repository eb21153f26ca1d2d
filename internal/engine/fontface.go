package engine

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCase = cases.Lower(language.Und)

// descriptor describes one @font-face descriptor's handling: its spec
// default, and (when non-nil) the closed set of values it accepts plus any
// synonym remapping applied to a recognized value.
type descriptor struct {
	def      string
	allowed  map[string]bool
	synonyms map[string]string
}

// fontFaceDescriptors is the fixed descriptor table. Descriptors outside
// this table are ignored entirely.
var fontFaceDescriptors = map[string]descriptor{
	"font-family":  {def: ""},
	"src":          {def: ""},
	"font-style":   {def: "normal", allowed: set("normal", "italic", "oblique")},
	"font-weight": {
		def:      "normal",
		allowed:  set("normal", "bold", "100", "200", "300", "400", "500", "600", "700", "800", "900"),
		synonyms: map[string]string{"normal": "400", "bold": "600"},
	},
	"font-stretch":               {def: "normal"},
	"unicode-range":              {def: "U+0-10FFFF"},
	"font-variant":               {def: "normal"},
	"font-feature-settings":      {def: "normal"},
	"font-kerning":               {def: "auto", allowed: set("auto", "normal", "none")},
	"font-variant-ligatures":     {def: "normal"},
	"font-variant-position":      {def: "normal", allowed: set("normal", "sub", "super")},
	"font-variant-caps":          {def: "normal"},
	"font-variant-numeric":       {def: "normal"},
	"font-variant-alternates":    {def: "normal"},
	"font-variant-east-asian":    {def: "normal"},
	"font-language-override":     {def: "normal"},
}

func set(vals ...string) map[string]bool {
	m := make(map[string]bool, len(vals))
	for _, v := range vals {
		m[v] = true
	}
	return m
}

// FontFace is the engine's {descriptors} entity, keyed in the store by the
// triple (condition, lowercased font-family, normalized src).
type FontFace struct {
	Descriptors map[string]string
}

func newFontFace() *FontFace {
	ff := &FontFace{Descriptors: map[string]string{}}
	for name, d := range fontFaceDescriptors {
		ff.Descriptors[name] = d.def
	}
	return ff
}

// Set applies one @font-face declaration: font-family is
// lowercased, src is unquoted, descriptors with a closed value set revert
// to their default on an unrecognized value (after synonym mapping),
// and descriptors outside the table are ignored.
func (ff *FontFace) Set(name, value string) {
	name = foldCase.String(strings.TrimSpace(name))
	d, ok := fontFaceDescriptors[name]
	if !ok {
		return
	}
	value = strings.TrimSpace(value)
	switch name {
	case "font-family":
		ff.Descriptors[name] = foldCase.String(normalizeLiteral(value))
		return
	case "src":
		ff.Descriptors[name] = normalizeLiteral(value)
		return
	}
	if d.allowed == nil {
		ff.Descriptors[name] = value
		return
	}
	lower := foldCase.String(value)
	if !d.allowed[lower] {
		ff.Descriptors[name] = d.def
		return
	}
	if syn, ok := d.synonyms[lower]; ok {
		ff.Descriptors[name] = syn
		return
	}
	ff.Descriptors[name] = lower
}

// Valid reports whether both required descriptors (font-family, src) are
// present.
func (ff *FontFace) Valid() bool {
	return ff.Descriptors["font-family"] != "" && ff.Descriptors["src"] != ""
}

// Key returns the (family, src) half of the store key; condition is
// threaded separately by the evaluator.
func (ff *FontFace) Key() (family, src string) {
	return ff.Descriptors["font-family"], ff.Descriptors["src"]
}

func (ff *FontFace) Equal(other *FontFace) bool {
	if len(ff.Descriptors) != len(other.Descriptors) {
		return false
	}
	for k, v := range ff.Descriptors {
		if other.Descriptors[k] != v {
			return false
		}
	}
	return true
}

func (ff *FontFace) clone() *FontFace {
	nf := &FontFace{Descriptors: make(map[string]string, len(ff.Descriptors))}
	for k, v := range ff.Descriptors {
		nf.Descriptors[k] = v
	}
	return nf
}
