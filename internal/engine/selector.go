package engine

import (
	"sort"
	"strings"

	"github.com/arnauddri/csscompare/internal/resolve"
)

// Selector is the engine's {canonical_name, properties} entity. Identity
// is by CanonicalName, the deterministic string Canonicalize produces from a
// parsed complex selector.
type Selector struct {
	CanonicalName string
	Properties    PropertySet
}

func newSelector(name string) *Selector {
	return &Selector{CanonicalName: name, Properties: PropertySet{}}
}

// Equal compares two selectors by their property sets; CanonicalName is
// the map key they're found under, so it isn't re-checked here.
func (s *Selector) Equal(other *Selector) bool {
	return s.Properties.Equal(other.Properties)
}

func (s *Selector) clone() *Selector {
	return &Selector{CanonicalName: s.CanonicalName, Properties: s.Properties.clone()}
}

// Canonicalize bucketizes each simple-selector-sequence's
// members into Universal/Element/Id/Class/Placeholder/Pseudo, glue
// Attribute sub-selectors onto the member they followed, dedup and sort
// lexicographically within each bucket, then join sequences with their
// original combinators.
func Canonicalize(cs resolve.ComplexSelector) string {
	parts := make([]string, 0, 2*len(cs.Sequences)-1)
	for i, seq := range cs.Sequences {
		parts = append(parts, canonicalizeSequence(seq))
		if i < len(cs.Combinators) {
			if cs.Combinators[i] == "" {
				parts = append(parts, " ")
			} else {
				parts = append(parts, " "+cs.Combinators[i]+" ")
			}
		}
	}
	return strings.Join(parts, "")
}

// bucketOrder fixes the emission order of member kinds; Attribute has no
// bucket of its own since rule 2 glues it onto a preceding member.
var bucketOrder = []resolve.MemberKind{
	resolve.Universal, resolve.Element, resolve.Id, resolve.Class,
	resolve.Placeholder, resolve.Pseudo,
}

func canonicalizeSequence(seq resolve.SimpleSequence) string {
	buckets := make(map[resolve.MemberKind][]string, len(bucketOrder))
	for _, m := range seq {
		tok := m.Text
		for _, a := range m.Attrs {
			tok += a
		}
		buckets[m.Kind] = append(buckets[m.Kind], tok)
	}
	var b strings.Builder
	for _, kind := range bucketOrder {
		toks := dedupSorted(buckets[kind])
		for _, t := range toks {
			b.WriteString(t)
		}
	}
	return b.String()
}

func dedupSorted(toks []string) []string {
	if len(toks) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(toks))
	out := make([]string, 0, len(toks))
	for _, t := range toks {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	sort.Strings(out)
	return out
}
