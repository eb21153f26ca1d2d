package engine

import "sort"

// Explain reports, for two inequivalent models, which entity keys disagree
// per family — present on only one side, or present on both but
// structurally unequal. It is a report of *which* top-level keys disagree,
// not *how*: no structural diff or minimum edit is computed, deliberately
// staying out of diffing.
func Explain(a, b *Engine) []string {
	var lines []string
	lines = append(lines, diffStringMap("namespace", a.Namespaces, b.Namespaces)...)
	lines = append(lines, diffKeyed("selector", selectorKeys(a), selectorKeys(b), func(k string) bool {
		return a.Selectors[k].Equal(b.Selectors[k])
	})...)
	lines = append(lines, diffKeyed("keyframes", keyframeKeys(a), keyframeKeys(b), func(k string) bool {
		return a.Keyframes[k].Equal(b.Keyframes[k])
	})...)
	lines = append(lines, diffKeyed("page", pageKeys(a), pageKeys(b), func(k string) bool {
		return a.Pages[k].Equal(b.Pages[k])
	})...)
	lines = append(lines, diffKeyed("supports", supportsKeys(a), supportsKeys(b), func(k string) bool {
		return a.Supports[k].Equal(b.Supports[k])
	})...)
	lines = append(lines, diffKeyed("font-face", fontFaceKeys(a), fontFaceKeys(b), func(k string) bool {
		return a.FontFaces[k].Equal(b.FontFaces[k])
	})...)
	if a.Charset != b.Charset {
		lines = append(lines, "charset: "+a.Charset+" != "+b.Charset)
	}
	sort.Strings(lines)
	return lines
}

func selectorKeys(e *Engine) map[string]bool  { return keySet(e.Selectors) }
func keyframeKeys(e *Engine) map[string]bool  { return keySet(e.Keyframes) }
func pageKeys(e *Engine) map[string]bool      { return keySet(e.Pages) }
func supportsKeys(e *Engine) map[string]bool  { return keySet(e.Supports) }
func fontFaceKeys(e *Engine) map[string]bool  { return keySet(e.FontFaces) }

func keySet[V any](m map[string]V) map[string]bool {
	out := make(map[string]bool, len(m))
	for k := range m {
		out[k] = true
	}
	return out
}

func diffStringMap(family string, a, b map[string]string) []string {
	var lines []string
	for k, v := range a {
		if ov, ok := b[k]; !ok {
			lines = append(lines, family+" "+k+": only in first")
		} else if ov != v {
			lines = append(lines, family+" "+k+": differs")
		}
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			lines = append(lines, family+" "+k+": only in second")
		}
	}
	return lines
}

func diffKeyed(family string, a, b map[string]bool, equalAt func(string) bool) []string {
	var lines []string
	for k := range a {
		if !b[k] {
			lines = append(lines, family+" "+k+": only in first")
		} else if !equalAt(k) {
			lines = append(lines, family+" "+k+": differs")
		}
	}
	for k := range b {
		if !a[k] {
			lines = append(lines, family+" "+k+": only in second")
		}
	}
	return lines
}
