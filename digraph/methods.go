package digraph

// NumVertices returns the number of vertices in the graph.
//
// Complexity: O(1)
func (g *DiGraph[E]) NumVertices() int {
	return g.numVertices
}

// NumEdges returns the number of edges in the graph.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *DiGraph[E]) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Vertices returns the vertex index space 0..NumVertices()-1 in order.
//
// Complexity: O(V)
func (g *DiGraph[E]) Vertices() []VertexID {
	out := make([]VertexID, g.numVertices)
	for v := range out {
		out[v] = VertexID(v)
	}

	return out
}

func (g *DiGraph[E]) validVertex(v VertexID) bool {
	return v >= 0 && int(v) < g.numVertices
}

// AddEdge appends a new directed edge from -> to carrying data, and
// returns its EdgeID. Edges are assigned IDs in insertion order, and each
// vertex's out-edges keep that order; negcycle's relaxation pass walks
// vertices in index order and, within each, its out-edges in that order.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) amortized.
func (g *DiGraph[E]) AddEdge(from, to VertexID, data E) (EdgeID, error) {
	if !g.validVertex(from) || !g.validVertex(to) {
		return 0, ErrVertexOutOfRange
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	id := EdgeID(len(g.edges))
	g.edges = append(g.edges, Edge[E]{ID: id, From: from, To: to, Data: data})
	g.outEdges[from] = append(g.outEdges[from], id)

	return id, nil
}

// Edge returns the edge with the given ID.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *DiGraph[E]) Edge(id EdgeID) (Edge[E], error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || int(id) >= len(g.edges) {
		return Edge[E]{}, ErrEdgeNotFound
	}

	return g.edges[id], nil
}

// OutEdges returns the IDs of edges originating at v, in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(outdegree(v))
func (g *DiGraph[E]) OutEdges(v VertexID) ([]EdgeID, error) {
	if !g.validVertex(v) {
		return nil, ErrVertexOutOfRange
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeID, len(g.outEdges[v]))
	copy(out, g.outEdges[v])

	return out, nil
}

// Edges returns all edge IDs in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E)
func (g *DiGraph[E]) Edges() []EdgeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]EdgeID, len(g.edges))
	for i := range g.edges {
		out[i] = EdgeID(i)
	}

	return out
}
