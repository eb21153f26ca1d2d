package engine

import "strings"

// AllMarginBox is the synthetic margin symbol for @page declarations that
// appear outside any explicit margin-box at-rule.
const AllMarginBox = "@all"

// MarginBox is structurally a Selector (name = margin symbol) with one
// override: a `size` binding is dropped when its condition mentions a
// layout/orientation media term.
type MarginBox struct {
	Symbol     string
	Properties PropertySet
}

func newMarginBox(symbol string) *MarginBox {
	return &MarginBox{Symbol: symbol, Properties: PropertySet{}}
}

var sizeDropTerms = []string{"width", "height", "aspect-ratio", "orientation"}

// Add applies the size-drop rule before delegating to the shared
// PropertySet.Add.
func (m *MarginBox) Add(name string, value Value, important bool, conditions []string) {
	if strings.EqualFold(name, "size") {
		kept := conditions[:0:0]
		for _, c := range conditions {
			if !mentionsLayoutTerm(c) {
				kept = append(kept, c)
			}
		}
		if len(kept) == 0 {
			return
		}
		conditions = kept
	}
	m.Properties.Add(name, value, important, conditions)
}

func mentionsLayoutTerm(condition string) bool {
	lower := strings.ToLower(condition)
	for _, term := range sizeDropTerms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

func (m *MarginBox) Equal(other *MarginBox) bool {
	return m.Properties.Equal(other.Properties)
}

func (m *MarginBox) clone() *MarginBox {
	return &MarginBox{Symbol: m.Symbol, Properties: m.Properties.clone()}
}

// PageSelector is the engine's {page_selector, margin_boxes} entity.
type PageSelector struct {
	PageSelectorText string
	MarginBoxes      map[string]*MarginBox
}

func newPageSelector(text string) *PageSelector {
	return &PageSelector{PageSelectorText: text, MarginBoxes: map[string]*MarginBox{}}
}

func (p *PageSelector) marginBox(symbol string) *MarginBox {
	mb, ok := p.MarginBoxes[symbol]
	if !ok {
		mb = newMarginBox(symbol)
		p.MarginBoxes[symbol] = mb
	}
	return mb
}

func (p *PageSelector) Equal(other *PageSelector) bool {
	if len(p.MarginBoxes) != len(other.MarginBoxes) {
		return false
	}
	for sym, mb := range p.MarginBoxes {
		omb, ok := other.MarginBoxes[sym]
		if !ok || !mb.Equal(omb) {
			return false
		}
	}
	return true
}

func (p *PageSelector) clone() *PageSelector {
	np := newPageSelector(p.PageSelectorText)
	for sym, mb := range p.MarginBoxes {
		np.MarginBoxes[sym] = mb.clone()
	}
	return np
}
