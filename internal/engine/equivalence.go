package engine

// Equivalent reports whether two models are equal: for each entity
// family, the key sets match exactly and every key's entity compares equal
// under that entity's own equality rule. Unsupported is explicitly
// excluded — it's a diagnostic, not part of a sheet's meaning.
func Equivalent(a, b *Engine) bool {
	if a.Charset != b.Charset {
		return false
	}
	if len(a.Namespaces) != len(b.Namespaces) {
		return false
	}
	for prefix, uri := range a.Namespaces {
		if b.Namespaces[prefix] != uri {
			return false
		}
	}
	if len(a.Selectors) != len(b.Selectors) {
		return false
	}
	for name, sel := range a.Selectors {
		osel, ok := b.Selectors[name]
		if !ok || !sel.Equal(osel) {
			return false
		}
	}
	if len(a.Keyframes) != len(b.Keyframes) {
		return false
	}
	for name, kf := range a.Keyframes {
		okf, ok := b.Keyframes[name]
		if !ok || !kf.Equal(okf) {
			return false
		}
	}
	if len(a.Pages) != len(b.Pages) {
		return false
	}
	for text, page := range a.Pages {
		opage, ok := b.Pages[text]
		if !ok || !page.Equal(opage) {
			return false
		}
	}
	if len(a.Supports) != len(b.Supports) {
		return false
	}
	for name, sup := range a.Supports {
		osup, ok := b.Supports[name]
		if !ok || !sup.Equal(osup) {
			return false
		}
	}
	if len(a.FontFaces) != len(b.FontFaces) {
		return false
	}
	for key, ff := range a.FontFaces {
		off, ok := b.FontFaces[key]
		if !ok || !ff.Equal(off) {
			return false
		}
	}
	return true
}
