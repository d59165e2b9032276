// Package graphfile reads and writes graph documents for the dijkstra package.
//
// A document is YAML (JSON works too, being valid YAML):
//
//	undirected: false
//	graph:
//	  A: {B: 5, C: 2}
//	  B: {D: 1}
//	  D: {}
//
// Every document is validated before use: the graph must have at least one
// node, node ids must be non-empty and weights must be finite and
// non-negative. With undirected set, each edge is added in both directions;
// if both directions are listed with different weights the smaller wins.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shortestpath/dijkstra"
)

// ErrInvalidDocument is returned when a document decodes but fails validation.
var ErrInvalidDocument = errors.New("graphfile: invalid document")

// Document is the on-disk shape of a graph.
type Document struct {
	Undirected bool           `yaml:"undirected,omitempty"`
	Graph      dijkstra.Graph `yaml:"graph" validate:"required,min=1,dive,keys,required,endkeys,dive,keys,required,endkeys,finite,gte=0"`
}

// Load reads and validates the document at path.
func Load(path string) (dijkstra.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: load %q: %w", path, err)
	}
	defer f.Close()

	g, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("graphfile: load %q: %w", path, err)
	}

	return g, nil
}

// Decode reads one document from r, validates it and returns its graph.
// Unknown top-level fields are rejected.
func Decode(r io.Reader) (dijkstra.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return doc.ToGraph(), nil
}

// Encode writes g as a directed document to w.
func Encode(w io.Writer, g dijkstra.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Graph: g}); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}

// ToGraph returns a fresh copy of the document's graph, mirroring edges
// when the document is undirected. The document is left untouched.
func (d Document) ToGraph() dijkstra.Graph {
	g := make(dijkstra.Graph, len(d.Graph))
	for u, nbrs := range d.Graph {
		if _, ok := g[u]; !ok {
			g[u] = make(map[string]float64, len(nbrs))
		}
		for v, w := range nbrs {
			addEdge(g, u, v, w)
			if d.Undirected {
				addEdge(g, v, u, w)
			}
		}
	}

	return g
}

// addEdge sets u→v to w, keeping the lighter weight on conflict.
func addEdge(g dijkstra.Graph, u, v string, w float64) {
	nbrs, ok := g[u]
	if !ok {
		nbrs = map[string]float64{}
		g[u] = nbrs
	}
	if old, exists := nbrs[v]; exists && old <= w {
		return
	}
	nbrs[v] = w
}
