// File: graph.go
// Role: the dual graph itself — one core.Graph node per facet, one core.Graph
// edge per ridge, with FacetRecord/ridge-vertex-set attributes layered on top.

package dual

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/beneathbeyond/core"
	"github.com/katalvlaran/beneathbeyond/iset"
)

const facetIDPrefix = "f"

// Graph is the dual-graph store: nodes are facets, edges are ridges.
// It is not safe for concurrent use from multiple goroutines without
// external synchronization — the engine that owns a Graph runs
// single-threaded, so Graph adds no locking of its own beyond what
// the embedded core.Graph already provides for its own bookkeeping.
type Graph struct {
	g       *core.Graph
	facets  map[string]*FacetRecord
	ridges  map[string]*iset.Set
	nextID  int
	freeIDs []string
}

// NewGraph returns an empty dual graph.
func NewGraph() *Graph {
	return &Graph{
		g:      core.NewGraph(),
		facets: make(map[string]*FacetRecord),
		ridges: make(map[string]*iset.Set),
	}
}

// allocID returns a fresh facet ID, preferring one freed by a prior
// DeleteFacet so that IDs stay dense between Squeeze calls.
func (d *Graph) allocID() string {
	if n := len(d.freeIDs); n > 0 {
		id := d.freeIDs[n-1]
		d.freeIDs = d.freeIDs[:n-1]
		return id
	}
	d.nextID++
	return fmt.Sprintf("%s%d", facetIDPrefix, d.nextID)
}

// AddFacet creates a new node for a facet-in-progress and returns its ID.
// The caller fills in the returned *FacetRecord's fields as geometry becomes
// known (vertices first, then Normal once computed).
func (d *Graph) AddFacet() (string, *FacetRecord) {
	id := d.allocID()
	rec := NewFacetRecord()
	d.facets[id] = rec
	_ = d.g.AddVertex(id)
	return id, rec
}

// DeleteFacet removes a facet node and every ridge incident to it.
func (d *Graph) DeleteFacet(id string) error {
	if _, ok := d.facets[id]; !ok {
		return fmt.Errorf("dual: unknown facet %q", id)
	}
	removed, err := d.g.RemoveVertexWithEdges(id)
	if err != nil {
		return err
	}
	for _, eid := range removed {
		delete(d.ridges, eid)
	}
	delete(d.facets, id)
	d.freeIDs = append(d.freeIDs, id)
	return nil
}

// Facet returns the record for facet id, or nil if it does not exist.
func (d *Graph) Facet(id string) *FacetRecord { return d.facets[id] }

// NodeCount is the number of live facets.
func (d *Graph) NodeCount() int { return d.g.VertexCount() }

// AllFacets returns every live facet ID, ordered numerically (not
// lexicographically) so iteration order is stable and human-legible
// regardless of how many digits an ID has accumulated.
func (d *Graph) AllFacets() []string {
	ids := d.g.Vertices()
	sort.Slice(ids, func(i, j int) bool { return facetNum(ids[i]) < facetNum(ids[j]) })
	return ids
}

func facetNum(id string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(id, facetIDPrefix))
	return n
}

// AddRidge connects two facets with a ridge over the given vertex set,
// returning the new edge's ID.
func (d *Graph) AddRidge(a, b string, vertices *iset.Set) (string, error) {
	eid, err := d.g.AddEdge(a, b)
	if err != nil {
		return "", err
	}
	d.ridges[eid] = vertices
	return eid, nil
}

// EraseRidge removes the ridge edge eid.
func (d *Graph) EraseRidge(eid string) error {
	if err := d.g.RemoveEdge(eid); err != nil {
		return err
	}
	delete(d.ridges, eid)
	return nil
}

// Ridge returns the vertex set of ridge eid, or nil if unknown.
func (d *Graph) Ridge(eid string) *iset.Set { return d.ridges[eid] }

// SetRidge replaces the vertex set carried by ridge eid (used when a ridge
// is extended by a newly absorbed interior point).
func (d *Graph) SetRidge(eid string, vertices *iset.Set) { d.ridges[eid] = vertices }

// ExtendAllRidges adds v to every ridge's vertex set. The pyramid step uses
// this: when the whole polyhedron is extended by an apex point, every shared
// face of two facets gains it as well.
func (d *Graph) ExtendAllRidges(v int) {
	for _, r := range d.ridges {
		r.Add(v)
	}
}

// RidgeEdge is one ridge incident to a facet: the edge ID, the facet on the
// other side, and the ridge's own vertex set.
type RidgeEdge struct {
	EdgeID string
	Other  string
	Ridge  *iset.Set
}

// OutRidges returns every ridge incident to facet id, sorted by edge ID for
// deterministic BFS expansion order.
func (d *Graph) OutRidges(id string) ([]RidgeEdge, error) {
	edges, err := d.g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	out := make([]RidgeEdge, 0, len(edges))
	for _, e := range edges {
		other := e.To
		if other == id {
			other = e.From
		}
		out = append(out, RidgeEdge{EdgeID: e.ID, Other: other, Ridge: d.ridges[e.ID]})
	}
	return out, nil
}

// AdjacentFacets returns the IDs of facets sharing a ridge with id.
func (d *Graph) AdjacentFacets(id string) ([]string, error) {
	return d.g.NeighborIDs(id)
}

// FacetDegree reports how many ridges facet id is currently incident to.
// Used by the engine's debug channel to log per-facet ridge counts without
// materializing the full OutRidges slice.
func (d *Graph) FacetDegree(id string) (int, error) {
	return d.g.NeighborCount(id)
}

// Snapshot returns an independent copy of the dual graph: its own facet and
// ridge node/edge catalog, distinct from the receiver's. A caller holding a
// Snapshot can call AddFacet/DeleteFacet/EraseRidge on it without any of
// those mutations reaching back into the graph it was taken from — the
// engine uses this to hand callers their own copy of the final dual graph
// instead of a view onto engine-internal state. FacetRecord and ridge
// vertex-set values themselves are shared rather than deep-copied, since
// nothing mutates them once a run has finished building the hull.
func (d *Graph) Snapshot() *Graph {
	facets := make(map[string]*FacetRecord, len(d.facets))
	for id, rec := range d.facets {
		facets[id] = rec
	}
	ridges := make(map[string]*iset.Set, len(d.ridges))
	for eid, r := range d.ridges {
		ridges[eid] = r
	}
	freeIDs := make([]string, len(d.freeIDs))
	copy(freeIDs, d.freeIDs)

	return &Graph{
		g:       d.g.Clone(),
		facets:  facets,
		ridges:  ridges,
		nextID:  d.nextID,
		freeIDs: freeIDs,
	}
}

// Reset discards every facet and ridge, returning the graph to the same
// state as a freshly constructed NewGraph(). The engine uses this instead of
// allocating a new dual.Graph when a lineality discovery forces a restart,
// reusing the existing node/edge catalog rather than abandoning it to the
// garbage collector mid-run.
func (d *Graph) Reset() {
	d.g.Clear()
	d.facets = make(map[string]*FacetRecord)
	d.ridges = make(map[string]*iset.Set)
	d.nextID = 0
	d.freeIDs = nil
}

// Underlying exposes the embedded core.Graph so callers (e.g. a connectivity
// check built on bfs.BFS) can traverse the dual graph directly.
func (d *Graph) Underlying() *core.Graph { return d.g }

// Squeeze relabels every facet ID to a contiguous "0".."n-1" range,
// preserving all ridge edges and their vertex sets.
// It returns the old-to-new ID mapping it used.
func (d *Graph) Squeeze() map[string]string {
	renumbered, mapping := d.g.Renumber()

	newFacets := make(map[string]*FacetRecord, len(d.facets))
	for old, rec := range d.facets {
		newFacets[mapping[old]] = rec
	}
	// Renumber keeps edge IDs unchanged (only endpoints are remapped), so
	// the ridge attribute map carries over verbatim.
	newRidges := make(map[string]*iset.Set, len(d.ridges))
	for eid, r := range d.ridges {
		newRidges[eid] = r
	}

	d.g = renumbered
	d.facets = newFacets
	d.ridges = newRidges
	d.nextID = len(newFacets)
	d.freeIDs = nil

	return mapping
}
