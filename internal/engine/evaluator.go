package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/arnauddri/csscompare/internal/resolve"
)

// DefaultImportDepth is the recursion bound recommended for @import
// chains in the absence of cycle detection.
const DefaultImportDepth = 32

// Importer is the @import file loader's contract: fetch bytes for a
// resolved path, return a parsed subtree.
// A missing target reports ok=false rather than an error, matching the
// "file-not-found is a silent skip, not fatal" policy.
type Importer interface {
	Import(base, uri string) (nodes []resolve.Node, newBase string, ok bool, err error)
}

// Options configures one evaluation pass.
type Options struct {
	Importer       Importer
	MaxImportDepth int
	Logger         *zap.Logger
	// Base is the directory `@import` URIs in the top-level sheet resolve
	// against. The CLI sets this to the directory of the file being
	// evaluated; tests and library callers evaluating an in-memory sheet
	// with no imports can leave it empty.
	Base string
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}

func (o Options) maxDepth() int {
	if o.MaxImportDepth > 0 {
		return o.MaxImportDepth
	}
	return DefaultImportDepth
}

// Evaluate builds a frozen Engine model from a resolved node tree, per the
// dispatch table below. The returned model is read-only; no further mutation
// happens after Evaluate returns.
func Evaluate(nodes []resolve.Node, opts Options) *Engine {
	e := New()
	walk(e, nodes, nil, opts.Base, 0, opts)
	return e
}

// effective maps the empty condition stack (nothing has wrapped this node
// in a conditional group rule yet) to the single default condition "all",
// "all" being the default condition when none applies. A non-empty
// stack is returned unchanged.
func effective(conditions []string) []string {
	if len(conditions) == 0 {
		return []string{"all"}
	}
	return conditions
}

func walk(e *Engine, nodes []resolve.Node, conditions []string, base string, depth int, opts Options) {
	for _, n := range nodes {
		switch node := n.(type) {
		case *resolve.RuleNode:
			processRule(e, node, conditions)
		case *resolve.MediaNode:
			child := composeConditions(conditions, queryTexts(node.Queries))
			walk(e, node.Children, child, base, depth, opts)
		case *resolve.SupportsNode:
			processSupports(e, node, base, depth, opts)
		case *resolve.CharsetNode:
			e.Charset = node.Name
		case *resolve.ImportNode:
			processImport(e, node, conditions, base, depth, opts)
		case *resolve.DirectiveNode:
			processDirective(e, node, conditions, opts)
		default:
			e.Unsupported = append(e.Unsupported, unsupportedLabel(n))
		}
	}
}

func unsupportedLabel(n resolve.Node) string {
	switch v := n.(type) {
	case *resolve.DirectiveNode:
		return v.Name
	default:
		return "unknown"
	}
}

func processRule(e *Engine, node *resolve.RuleNode, conditions []string) {
	for _, sel := range node.Selectors {
		canonical := Canonicalize(sel)
		selector := e.selector(canonical)
		for _, child := range node.Children {
			if prop, ok := child.(*resolve.PropertyNode); ok {
				selector.Properties.Add(prop.ResolvedName, ParseValue(prop.ResolvedValue), prop.Important, effective(conditions))
			}
		}
	}
}

func processDirective(e *Engine, node *resolve.DirectiveNode, conditions []string, opts Options) {
	switch node.Name {
	case "namespace":
		e.Namespaces[node.Value] = node.ResolvedValue
	case "page":
		for _, instance := range node.Children {
			if rule, ok := instance.(*resolve.RuleNode); ok {
				processPage(e, rule, conditions)
			}
		}
	case "keyframes":
		offsets := map[string]*KeyframesSelector{}
		for _, child := range node.Children {
			frame, ok := child.(*resolve.KeyframeRuleNode)
			if !ok {
				continue
			}
			ks := newKeyframesSelector(frame.ResolvedValue)
			for _, c := range frame.Children {
				if prop, ok := c.(*resolve.PropertyNode); ok {
					ks.Properties.Add(prop.ResolvedName, ParseValue(prop.ResolvedValue), prop.Important, effective(conditions))
				}
			}
			offsets[frame.ResolvedValue] = ks
		}
		kf := e.keyframes(node.Value)
		for _, c := range effective(conditions) {
			kf.SetRule(c, offsets)
		}
	case "font-face":
		ff := newFontFace()
		for _, child := range node.Children {
			if prop, ok := child.(*resolve.PropertyNode); ok {
				ff.Set(prop.ResolvedName, prop.ResolvedValue)
			}
		}
		if ff.Valid() {
			for _, c := range effective(conditions) {
				e.addFontFace(c, ff)
			}
		} else {
			opts.logger().Debug("discarding invalid @font-face", zap.String("family", ff.Descriptors["font-family"]))
		}
	default:
		e.Unsupported = append(e.Unsupported, node.Name)
	}
}

func processPage(e *Engine, rule *resolve.RuleNode, conditions []string) {
	if len(rule.Selectors) == 0 {
		return
	}
	text := rule.Selectors[0].String()
	page := e.page(text)
	for _, child := range rule.Children {
		dn, ok := child.(*resolve.DirectiveNode)
		if !ok {
			continue
		}
		symbol := AllMarginBox
		if dn.Name != "all" {
			symbol = "@" + dn.Name
		}
		mb := page.marginBox(symbol)
		for _, c := range dn.Children {
			if prop, ok := c.(*resolve.PropertyNode); ok {
				mb.Add(prop.ResolvedName, ParseValue(prop.ResolvedValue), prop.Important, effective(conditions))
			}
		}
	}
}

// processSupports builds the @supports body as a nested Engine whose outer
// condition is the canonicalized support predicate: a direct
// recursive walk seeded with [condition] as the starting stack, not a
// composition with the enclosing condition list.
func processSupports(e *Engine, node *resolve.SupportsNode, base string, depth int, opts Options) {
	condition := node.Condition
	if condition == "" {
		condition = "all"
	}
	nested := New()
	walk(nested, node.Children, []string{condition}, base, depth, opts)
	sup := e.supports(node.Name)
	sup.Merge(condition, nested)
}

func processImport(e *Engine, node *resolve.ImportNode, conditions []string, base string, depth int, opts Options) {
	logger := opts.logger()
	if depth >= opts.maxDepth() {
		logger.Warn("@import recursion depth exceeded, dropping", zap.String("uri", node.ResolvedURI), zap.Int("depth", depth))
		e.Unsupported = append(e.Unsupported, "import:"+node.ResolvedURI)
		return
	}
	if opts.Importer == nil {
		return
	}
	nodes, newBase, ok, err := opts.Importer.Import(base, node.ResolvedURI)
	if err != nil {
		logger.Warn("@import failed, skipping", zap.String("uri", node.ResolvedURI), zap.Error(err))
		return
	}
	if !ok {
		logger.Debug("@import target not found, skipping", zap.String("uri", node.ResolvedURI))
		return
	}
	queries := queryTexts(node.Query)
	nextConditions := conditions
	if !(len(queries) == 1 && queries[0] == "all") {
		nextConditions = composeConditions(conditions, queries)
	}
	walk(e, nodes, nextConditions, newBase, depth+1, opts)
}

func queryTexts(queries []resolve.Query) []string {
	if len(queries) == 0 {
		return []string{"all"}
	}
	out := make([]string, len(queries))
	for i, q := range queries {
		out[i] = q.Text
	}
	return out
}

// composeConditions implements the condition-stack product: the literal
// token "all" at the child level is elided from the composed string, and
// an empty outer stack collapses to the child list directly.
func composeConditions(parent, children []string) []string {
	if len(parent) == 0 {
		return dedupStrings(children)
	}
	out := make([]string, 0, len(parent)*len(children))
	for _, p := range parent {
		for _, c := range children {
			if c == "all" {
				out = append(out, p)
			} else {
				out = append(out, p+" > "+c)
			}
		}
	}
	return dedupStrings(out)
}

func dedupStrings(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}
