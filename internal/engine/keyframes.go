package engine

// KeyframesSelector is the engine's {offset, properties} entity; `from`/
// `to` keyword offsets are normalized to `0%`/`100%` by internal/resolve
// before this package ever sees them.
type KeyframesSelector struct {
	Offset     string
	Properties PropertySet
}

func newKeyframesSelector(offset string) *KeyframesSelector {
	return &KeyframesSelector{Offset: offset, Properties: PropertySet{}}
}

func (k *KeyframesSelector) Equal(other *KeyframesSelector) bool {
	return k.Properties.Equal(other.Properties)
}

func (k *KeyframesSelector) clone() *KeyframesSelector {
	return &KeyframesSelector{Offset: k.Offset, Properties: k.Properties.clone()}
}

// Keyframes is the engine's {name, rules} entity: rules maps a condition
// string to the offset table declared for that condition. A
// `@keyframes NAME` encountered under an already-populated condition
// *replaces* that condition's whole offset table rather than merging into
// it — CSS keyframes rules do not merge across declarations.
type Keyframes struct {
	Name  string
	Rules map[string]map[string]*KeyframesSelector
}

func newKeyframes(name string) *Keyframes {
	return &Keyframes{Name: name, Rules: map[string]map[string]*KeyframesSelector{}}
}

// SetRule installs offsets as the complete rule set for condition,
// discarding whatever was previously stored there.
func (k *Keyframes) SetRule(condition string, offsets map[string]*KeyframesSelector) {
	k.Rules[condition] = offsets
}

func (k *Keyframes) Equal(other *Keyframes) bool {
	if len(k.Rules) != len(other.Rules) {
		return false
	}
	for cond, offsets := range k.Rules {
		oOffsets, ok := other.Rules[cond]
		if !ok || len(offsets) != len(oOffsets) {
			return false
		}
		for off, sel := range offsets {
			oSel, ok := oOffsets[off]
			if !ok || !sel.Equal(oSel) {
				return false
			}
		}
	}
	return true
}

func (k *Keyframes) clone() *Keyframes {
	nk := newKeyframes(k.Name)
	for cond, offsets := range k.Rules {
		cloned := make(map[string]*KeyframesSelector, len(offsets))
		for off, sel := range offsets {
			cloned[off] = sel.clone()
		}
		nk.Rules[cond] = cloned
	}
	return nk
}
