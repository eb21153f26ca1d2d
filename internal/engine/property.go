package engine

// Binding is one (condition, value) entry of a Property, carrying its own
// `!important` flag ("important is a property of the binding,
// not of the Value's equality").
type Binding struct {
	Value     Value
	Important bool
}

// Property holds every condition under which a single declaration name is
// bound on a Selector, KeyframesSelector or MarginBox.
type Property struct {
	Name     string
	Bindings map[string]Binding
}

func newProperty(name string) *Property {
	return &Property{Name: name, Bindings: map[string]Binding{}}
}

// Add applies the incoming (value, important) pair to every condition in
// conditions, resolving conflicts per the cascade merge rules below.
func (p *Property) Add(value Value, important bool, conditions []string) {
	for _, c := range conditions {
		p.mergeOne(c, Binding{Value: value, Important: important})
	}
}

// mergeOne applies the ordered cascade rule set for a single condition.
func (p *Property) mergeOne(condition string, incoming Binding) {
	allBinding, hasAll := p.Bindings["all"]
	allImportant := hasAll && allBinding.Important
	existing, hasExisting := p.Bindings[condition]

	switch {
	case !hasExisting && !allImportant:
		p.Bindings[condition] = incoming
	case allImportant && condition != "all":
		if incoming.Important {
			p.Bindings[condition] = incoming
		} else {
			p.Bindings[condition] = allBinding
		}
	case hasExisting:
		if incoming.Important || !existing.Important {
			p.Bindings[condition] = incoming
		}
	}
}

// Equal compares two properties by their binding sets: same condition
// keys, and pairwise equal (value, important) per condition.
func (p *Property) Equal(other *Property) bool {
	if len(p.Bindings) != len(other.Bindings) {
		return false
	}
	for cond, b := range p.Bindings {
		ob, ok := other.Bindings[cond]
		if !ok || ob.Important != b.Important || !Equal(b.Value, ob.Value) {
			return false
		}
	}
	return true
}

func (p *Property) clone() *Property {
	np := newProperty(p.Name)
	for k, v := range p.Bindings {
		np.Bindings[k] = v
	}
	return np
}
