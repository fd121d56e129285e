// Package digraph implements a generic, in-memory directed multigraph: the
// DiGraph: a graph G = (V, E). Vertices occupy a dense 0..n
// index space fixed at construction; edges carry a client-chosen payload E
// so the same graph shape serves both negcycle (E is a bare numeric
// weight) and parametric (E is an opaque edge attribute projected to a
// weight by ParametricAPI.Distance).
//
// Grounded on core/types.go and core/adjacency_list.go: a mutex-guarded
// struct and sentinel errors for out-of-range access. NewDiGraph takes
// only the vertex count; it has no functional options. Unlike core.Graph, DiGraph is directed-only (no
// undirected/mixed-edge modes) and has no string-keyed vertex map — the
// negative-cycle and minimum-ratio-cycle problems are defined purely over
// directed graphs with a dense vertex index space.
package digraph

import (
	"errors"
	"sync"
)

// Sentinel errors for digraph operations.
var (
	// ErrVertexOutOfRange indicates a VertexID outside [0, NumVertices()).
	ErrVertexOutOfRange = errors.New("digraph: vertex out of range")

	// ErrEdgeNotFound indicates an EdgeID that does not exist in the graph.
	ErrEdgeNotFound = errors.New("digraph: edge not found")

	// ErrNegativeVertexCount indicates NewDiGraph was called with n < 0.
	ErrNegativeVertexCount = errors.New("digraph: vertex count must be non-negative")
)

// VertexID indexes a vertex in [0, NumVertices()).
type VertexID int

// EdgeID indexes an edge in insertion order, [0, NumEdges()).
type EdgeID int

// Edge is a directed connection from From to To, carrying a client-chosen
// payload Data. Edge is returned by value; the graph is the sole owner of
// edge storage.
type Edge[E any] struct {
	// ID uniquely identifies this edge within its graph.
	ID EdgeID
	// From is the source vertex.
	From VertexID
	// To is the destination vertex.
	To VertexID
	// Data is the client payload: a bare numeric weight for negcycle, or
	// an opaque attribute bundle for parametric's ParametricAPI to project.
	Data E
}

// DiGraph is a directed multigraph over a fixed 0..n vertex index space.
//
// Concurrency: mu guards edges and outEdges. Nothing in negcycle or
// parametric mutates a DiGraph concurrently with a solver run (§5 mandates
// the solver itself stay single-threaded), but the graph's own mutation
// API — AddEdge called while another goroutine inspects the graph, or two
// goroutines building disjoint graphs — is still safe independent of that.
type DiGraph[E any] struct {
	mu sync.RWMutex

	numVertices int
	edges       []Edge[E]
	outEdges    [][]EdgeID // outEdges[v] = edge IDs with From == v, insertion order
}

// NewDiGraph returns an empty DiGraph over numVertices vertices
// (0..numVertices-1) and no edges. It panics if numVertices < 0.
//
// Complexity: O(numVertices).
func NewDiGraph[E any](numVertices int) *DiGraph[E] {
	if numVertices < 0 {
		panic(ErrNegativeVertexCount)
	}
	return &DiGraph[E]{
		numVertices: numVertices,
		outEdges:    make([][]EdgeID, numVertices),
	}
}
