// File: methods_adjacent.go
// Role: Neighborhood queries and the adjacency-index helpers.
//
// Determinism:
//   - Neighbors() sorts by Edge.ID asc.
//   - NeighborIDs() returns IDs sorted lex asc.

package core

import "sort"

// Neighbors lists every edge incident to id, sorted by Edge.ID asc.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
// Concurrency: read lock on muVert, then on muEdgeAdj.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.adjacency[id]))
	for _, eid := range g.adjacency[id] {
		out = append(out, g.edges[eid])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}

// NeighborCount reports how many edges are incident to id. Unlike Neighbors
// it does not allocate or sort a slice, so callers that only need a degree —
// the dual graph's per-facet ridge count is the motivating case — avoid the
// O(d log d) cost.
//
// Complexity: O(1).
func (g *Graph) NeighborCount(id string) (int, error) {
	if id == "" {
		return 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return 0, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id]), nil
}

// NeighborIDs returns the vertex IDs adjacent to id, sorted lex asc.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	if _, ok := g.vertices[id]; !ok {
		g.muVert.RUnlock()
		return nil, ErrVertexNotFound
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		ids = append(ids, v)
	}
	sort.Strings(ids)

	return ids, nil
}

//–– Helpers ––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

// ensureAdjacency guarantees the presence of the adjacency bucket for id.
// Must be called under muEdgeAdj write lock.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeAdjacency deletes e's entries in both orientations, pruning buckets
// that become empty. Must be called under muEdgeAdj write lock.
func removeAdjacency(g *Graph, e *Edge) {
	if m := g.adjacency[e.From]; m != nil {
		delete(m, e.To)
		if len(m) == 0 {
			delete(g.adjacency, e.From)
		}
	}
	if m := g.adjacency[e.To]; m != nil {
		delete(m, e.From)
		if len(m) == 0 {
			delete(g.adjacency, e.To)
		}
	}
}
