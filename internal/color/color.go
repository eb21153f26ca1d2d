// Package color recognizes and compares the small set of CSS color
// notations the engine treats as interchangeable: named colors, hex
// literals (#rgb, #rrggbb, #rgba, #rrggbbaa) and the rgb/rgba/hsl/hsla
// functional notations. Actual RGB math and near-equality are delegated to
// go-colorful; this package only knows how to get a CSS color string into
// a colorful.Color.
package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCase = cases.Lower(language.Und)

// Color is a parsed CSS color: its RGB triple plus an alpha channel in
// [0,1]. Two Colors are Equivalent when their RGB components are
// perceptually indistinguishable (per colorful.AlmostEqualRgb) and their
// alpha channels agree within a small tolerance.
type Color struct {
	RGB   colorful.Color
	Alpha float64
}

const alphaEpsilon = 1.0 / 255.0

// Equivalent reports whether c and other represent the same CSS color for
// the purposes of this engine's value equality model.
func (c Color) Equivalent(other Color) bool {
	if !c.RGB.AlmostEqualRgb(other.RGB) {
		return false
	}
	diff := c.Alpha - other.Alpha
	if diff < 0 {
		diff = -diff
	}
	return diff <= alphaEpsilon
}

// Recognizable reports whether s is a CSS color the engine knows how to
// parse: a named color, a hex literal, or an rgb/rgba/hsl/hsla function.
func Recognizable(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Parse attempts to interpret s as a CSS color literal.
func Parse(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, false
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s)
	}
	if hex, ok := namedColors[foldCase.String(s)]; ok {
		return parseHex(hex)
	}
	if open := strings.IndexByte(s, '('); open > 0 && strings.HasSuffix(s, ")") {
		name := foldCase.String(strings.TrimSpace(s[:open]))
		args := splitArgs(s[open+1 : len(s)-1])
		switch name {
		case "rgb", "rgba":
			return parseRGBFunc(args)
		case "hsl", "hsla":
			return parseHSLFunc(args)
		}
	}
	return Color{}, false
}

func splitArgs(s string) []string {
	raw := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == '/' })
	args := make([]string, 0, len(raw))
	for _, a := range raw {
		if t := strings.TrimSpace(a); t != "" {
			args = append(args, t)
		}
	}
	return args
}

func parseHex(s string) (Color, bool) {
	s = strings.TrimPrefix(s, "#")
	expand := func(c byte) [2]byte { return [2]byte{c, c} }
	var r, g, b, a [2]byte
	switch len(s) {
	case 3:
		r, g, b = expand(s[0]), expand(s[1]), expand(s[2])
		a = [2]byte{'f', 'f'}
	case 4:
		r, g, b, a = expand(s[0]), expand(s[1]), expand(s[2]), expand(s[3])
	case 6:
		r, g, b = [2]byte{s[0], s[1]}, [2]byte{s[2], s[3]}, [2]byte{s[4], s[5]}
		a = [2]byte{'f', 'f'}
	case 8:
		r, g, b, a = [2]byte{s[0], s[1]}, [2]byte{s[2], s[3]}, [2]byte{s[4], s[5]}, [2]byte{s[6], s[7]}
	default:
		return Color{}, false
	}
	ri, err1 := strconv.ParseUint(string(r[:]), 16, 8)
	gi, err2 := strconv.ParseUint(string(g[:]), 16, 8)
	bi, err3 := strconv.ParseUint(string(b[:]), 16, 8)
	ai, err4 := strconv.ParseUint(string(a[:]), 16, 8)
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return Color{}, false
	}
	return Color{
		RGB:   colorful.Color{R: float64(ri) / 255, G: float64(gi) / 255, B: float64(bi) / 255},
		Alpha: float64(ai) / 255,
	}, true
}

func parseRGBFunc(args []string) (Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	channel := func(s string) (float64, bool) {
		if strings.HasSuffix(s, "%") {
			v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
			if err != nil {
				return 0, false
			}
			return clamp01(v / 100), true
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return clamp01(v / 255), true
	}
	r, ok1 := channel(args[0])
	g, ok2 := channel(args[1])
	b, ok3 := channel(args[2])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, false
	}
	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseAlpha(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	return Color{RGB: colorful.Color{R: r, G: g, B: b}, Alpha: alpha}, true
}

func parseHSLFunc(args []string) (Color, bool) {
	if len(args) != 3 && len(args) != 4 {
		return Color{}, false
	}
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return Color{}, false
	}
	pct := func(s string) (float64, bool) {
		s = strings.TrimSuffix(s, "%")
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return clamp01(v / 100), true
	}
	s, ok1 := pct(args[1])
	l, ok2 := pct(args[2])
	if !ok1 || !ok2 {
		return Color{}, false
	}
	alpha := 1.0
	if len(args) == 4 {
		a, ok := parseAlpha(args[3])
		if !ok {
			return Color{}, false
		}
		alpha = a
	}
	for h < 0 {
		h += 360
	}
	h = float64(int(h) % 360)
	return Color{RGB: colorful.Hsl(h, s, l), Alpha: alpha}, true
}

func parseAlpha(s string) (float64, bool) {
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return 0, false
		}
		return clamp01(v / 100), true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return clamp01(v), true
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// String renders a Color as a canonical "#rrggbb" or "#rrggbbaa" hex
// literal, primarily for diagnostics.
func (c Color) String() string {
	hex := c.RGB.Hex()
	if c.Alpha >= 1 {
		return hex
	}
	return fmt.Sprintf("%s%02x", hex, int(c.Alpha*255+0.5))
}
