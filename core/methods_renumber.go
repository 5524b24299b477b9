// File: methods_renumber.go
// Role: Squeeze a Graph's vertex-ID space down to a contiguous range.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// Renumber returns a new Graph isomorphic to g whose vertex IDs are exactly
// "0".."n-1", together with the old-to-new ID mapping it used. New IDs are
// assigned in ascending order of the old IDs, so the relabeling is
// deterministic for a given input. Edge IDs are preserved, so side tables
// keyed by them — the dual graph's ridge-vertex-set map — carry over without
// re-keying; vertex-keyed side tables re-key through the returned map.
//
// Renumber does not mutate g.
//
// Complexity: O(V log V + E).
// Concurrency: read locks only on the source.
func (g *Graph) Renumber() (*Graph, map[string]string) {
	g.muVert.RLock()
	oldIDs := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		oldIDs = append(oldIDs, id)
	}
	g.muVert.RUnlock()

	sort.Strings(oldIDs)
	mapping := make(map[string]string, len(oldIDs))
	for i, id := range oldIDs {
		mapping[id] = strconv.Itoa(i)
	}

	out := NewGraph()
	for _, old := range oldIDs {
		out.vertices[mapping[old]] = struct{}{}
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for eid, e := range g.edges {
		nfrom, nto := mapping[e.From], mapping[e.To]
		out.edges[eid] = &Edge{ID: eid, From: nfrom, To: nto}
		ensureAdjacency(out, nfrom)
		ensureAdjacency(out, nto)
		out.adjacency[nfrom][nto] = eid
		out.adjacency[nto][nfrom] = eid
	}
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	return out, mapping
}
