// Package render draws interaction graphs as Graphviz DOT documents.
//
// The graph is mirrored into a gonum simple.UndirectedGraph whose nodes and
// edges carry DOT attributes, then marshalled with gonum's encoding/dot.
// Node and edge order follow the sorted vertex order of the input, so the
// output is stable across runs.
package render

import (
	"errors"
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/ppinet/core"
)

// Default fill colors.
const (
	SeedColor  = "red"
	OtherColor = "skyblue"
)

// ErrGraphNil is returned when the input graph is nil.
var ErrGraphNil = errors.New("render: graph is nil")

// Option configures DOT.
type Option func(*options)

type options struct {
	name       string
	seeds      map[string]bool
	seedColor  string
	otherColor string
	edgeAttrs  bool
	graphAttrs []encoding.Attribute
}

func defaultOptions() options {
	return options{
		name:       "ppinet",
		seedColor:  SeedColor,
		otherColor: OtherColor,
		edgeAttrs:  true,
	}
}

// WithName sets the DOT graph name.
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithSeeds highlights the given proteins.
func WithSeeds(seeds []string) Option {
	return func(o *options) {
		o.seeds = make(map[string]bool, len(seeds))
		for _, s := range seeds {
			o.seeds[s] = true
		}
	}
}

// WithColors overrides the seed and non-seed fill colors.
func WithColors(seed, other string) Option {
	return func(o *options) {
		if seed != "" {
			o.seedColor = seed
		}
		if other != "" {
			o.otherColor = other
		}
	}
}

// WithoutEdgeAttrs omits edge attributes from the output.
func WithoutEdgeAttrs() Option {
	return func(o *options) { o.edgeAttrs = false }
}

// WithGraphAttr adds a graph-level DOT attribute such as layout=neato.
func WithGraphAttr(key, value string) Option {
	return func(o *options) {
		o.graphAttrs = append(o.graphAttrs, encoding.Attribute{Key: key, Value: value})
	}
}

// node is a protein with its DOT attributes.
type node struct {
	id    int64
	name  string
	attrs []encoding.Attribute
}

func (n node) ID() int64 { return n.id }
func (n node) DOTID() string { return n.name }
func (n node) Attributes() []encoding.Attribute { return n.attrs }

// edge is an interaction with its DOT attributes.
type edge struct {
	from, to node
	attrs    []encoding.Attribute
}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node { return e.to }
func (e edge) ReversedEdge() graph.Edge { return edge{from: e.to, to: e.from, attrs: e.attrs} }
func (e edge) Attributes() []encoding.Attribute { return e.attrs }

// attrList is a fixed encoding.Attributer.
type attrList []encoding.Attribute

func (a attrList) Attributes() []encoding.Attribute { return a }

// dotGraph adds a name and graph-level attributes to the gonum graph.
type dotGraph struct {
	*simple.UndirectedGraph
	name  string
	attrs attrList
}

func (g dotGraph) DOTID() string { return g.name }

func (g dotGraph) DOTAttributers() (graphAttrs, nodeAttrs, edgeAttrs encoding.Attributer) {
	return g.attrs, attrList(nil), attrList(nil)
}

// DOT renders g as a DOT document.
func DOT(g *core.Graph, opts ...Option) ([]byte, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	dg := dotGraph{UndirectedGraph: simple.NewUndirectedGraph(), name: o.name, attrs: o.graphAttrs}
	nodes := make(map[string]node, g.VertexCount())
	for i, v := range g.Vertices() {
		color := o.otherColor
		if o.seeds[v] {
			color = o.seedColor
		}
		n := node{id: int64(i), name: v, attrs: []encoding.Attribute{
			{Key: "fillcolor", Value: color},
			{Key: "style", Value: "filled"},
		}}
		nodes[v] = n
		dg.AddNode(n)
	}
	for _, e := range g.Edges() {
		// simple graphs cannot hold loops
		if e.From == e.To {
			continue
		}
		var attrs []encoding.Attribute
		if o.edgeAttrs {
			attrs = edgeAttributes(e.Attrs)
		}
		dg.SetEdge(edge{from: nodes[e.From], to: nodes[e.To], attrs: attrs})
	}

	out, err := dot.Marshal(dg, "", "", "\t")
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return out, nil
}

// edgeAttributes converts attrs to DOT attributes sorted by key.
func edgeAttributes(attrs core.Attrs) []encoding.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]encoding.Attribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, encoding.Attribute{Key: k, Value: formatValue(attrs[k])})
	}

	return out
}

func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprint(x)
	}
}
