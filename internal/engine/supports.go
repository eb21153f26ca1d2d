package engine

// Supports is the engine's {name, rules} entity: rules maps a canonicalized
// condition string to the nested Engine model built by recursively
// evaluating the @supports body with that condition as the sole outer
// condition.
type Supports struct {
	Name  string
	Rules map[string]*Engine
}

func newSupports(name string) *Supports {
	return &Supports{Name: name, Rules: map[string]*Engine{}}
}

// Merge installs nested for condition, merging entity-wise into any model
// already present for that condition rather than replacing it, per the
// "merging two @supports with overlapping conditions merges the nested
// models entity-wise".
func (s *Supports) Merge(condition string, nested *Engine) {
	existing, ok := s.Rules[condition]
	if !ok {
		s.Rules[condition] = nested
		return
	}
	mergeEngineInto(existing, nested)
}

// mergeEngineInto folds src's entities into dst using each family's own
// merge semantics: selectors merge-by-canonical-name (property-set union
// via the cascade rules), keyframes replace-by-name, namespaces overwrite-
// by-prefix, font-faces overwrite-by-key, sub-supports merge recursively.
func mergeEngineInto(dst, src *Engine) {
	for name, sel := range src.Selectors {
		existing, ok := dst.Selectors[name]
		if !ok {
			dst.Selectors[name] = sel.clone()
			continue
		}
		for propName, prop := range sel.Properties {
			for cond, b := range prop.Bindings {
				existing.Properties.Add(propName, b.Value, b.Important, []string{cond})
			}
		}
	}
	for name, kf := range src.Keyframes {
		dst.Keyframes[name] = kf.clone()
	}
	for prefix, uri := range src.Namespaces {
		dst.Namespaces[prefix] = uri
	}
	for key, ff := range src.FontFaces {
		dst.FontFaces[key] = ff.clone()
	}
	for text, page := range src.Pages {
		dst.Pages[text] = page.clone()
	}
	for name, sup := range src.Supports {
		existing, ok := dst.Supports[name]
		if !ok {
			dst.Supports[name] = sup.clone()
			continue
		}
		for cond, nested := range sup.Rules {
			existing.Merge(cond, nested)
		}
	}
	if src.Charset != "" {
		dst.Charset = src.Charset
	}
	dst.Unsupported = append(dst.Unsupported, src.Unsupported...)
}

func (s *Supports) Equal(other *Supports) bool {
	if len(s.Rules) != len(other.Rules) {
		return false
	}
	for cond, model := range s.Rules {
		oModel, ok := other.Rules[cond]
		if !ok || !Equivalent(model, oModel) {
			return false
		}
	}
	return true
}

func (s *Supports) clone() *Supports {
	ns := newSupports(s.Name)
	for cond, model := range s.Rules {
		ns.Rules[cond] = model.clone()
	}
	return ns
}
