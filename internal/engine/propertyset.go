package engine

// PropertySet is the name -> Property map shared by Selector,
// KeyframesSelector and MarginBox.
type PropertySet map[string]*Property

// Add records value/important under name for every condition in
// conditions, merging into any existing Property for that name.
func (ps PropertySet) Add(name string, value Value, important bool, conditions []string) {
	p, ok := ps[name]
	if !ok {
		p = newProperty(name)
		ps[name] = p
	}
	p.Add(value, important, conditions)
}

// Equal reports whether two property sets have the same names and
// pairwise-equal Properties.
func (ps PropertySet) Equal(other PropertySet) bool {
	if len(ps) != len(other) {
		return false
	}
	for name, p := range ps {
		op, ok := other[name]
		if !ok || !p.Equal(op) {
			return false
		}
	}
	return true
}

func (ps PropertySet) clone() PropertySet {
	out := make(PropertySet, len(ps))
	for k, v := range ps {
		out[k] = v.clone()
	}
	return out
}
