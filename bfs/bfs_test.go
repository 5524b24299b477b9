package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beneathbeyond/bfs"
	"github.com/katalvlaran/beneathbeyond/core"
)

// squareLattice builds the dual graph of a square: four edge-facets in a
// 4-cycle f0-f1-f2-f3-f0.
func squareLattice(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, pair := range [][2]string{{"f0", "f1"}, {"f1", "f2"}, {"f2", "f3"}, {"f3", "f0"}} {
		_, err := g.AddEdge(pair[0], pair[1])
		require.NoError(t, err)
	}
	return g
}

func TestBFS_OrderDepthParent(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	res, err := bfs.BFS(g, "f0")
	r.NoError(err)

	r.Equal([]string{"f0", "f1", "f3", "f2"}, res.Order,
		"neighbors expand in sorted-ID order, so the visit sequence is reproducible")
	r.Equal(0, res.Depth["f0"])
	r.Equal(1, res.Depth["f1"])
	r.Equal(1, res.Depth["f3"])
	r.Equal(2, res.Depth["f2"])
	r.Equal("f0", res.Parent["f1"])
	r.Equal("f0", res.Parent["f3"])
	r.Equal("f1", res.Parent["f2"])
}

func TestBFS_InvalidInputs(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	_, err := bfs.BFS(nil, "f0")
	r.ErrorIs(err, bfs.ErrGraphNil)

	_, err = bfs.BFS(g, "nope")
	r.ErrorIs(err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "f0", bfs.WithMaxDepth(-1))
	r.ErrorIs(err, bfs.ErrOptionViolation)
}

func TestBFS_MaxDepth(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	res, err := bfs.BFS(g, "f0", bfs.WithMaxDepth(1))
	r.NoError(err)
	r.ElementsMatch([]string{"f0", "f1", "f3"}, res.Order)
	_, reached := res.Depth["f2"]
	r.False(reached, "f2 lies at depth 2, beyond the limit")
}

func TestBFS_FilterNeighbor(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	res, err := bfs.BFS(g, "f0", bfs.WithFilterNeighbor(func(curr, nbr string) bool {
		return nbr != "f1"
	}))
	r.NoError(err)
	r.Equal([]string{"f0", "f3", "f2"}, res.Order, "f1 is pruned, f2 is reached the long way around")
	r.Equal(2, res.Depth["f2"])
}

func TestBFS_OnVisitAborts(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	boom := errors.New("boom")
	_, err := bfs.BFS(g, "f0", bfs.WithOnVisit(func(id string, depth int) error {
		if id == "f1" {
			return boom
		}
		return nil
	}))
	r.ErrorIs(err, boom)
}

func TestBFS_ContextCancellation(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, "f0", bfs.WithContext(ctx))
	r.ErrorIs(err, context.Canceled)
}

func TestBFS_Hooks(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	var enq, deq []string
	_, err := bfs.BFS(g, "f0",
		bfs.WithOnEnqueue(func(id string, depth int) { enq = append(enq, id) }),
		bfs.WithOnDequeue(func(id string, depth int) { deq = append(deq, id) }),
	)
	r.NoError(err)
	r.Equal([]string{"f0", "f1", "f3", "f2"}, enq)
	r.Equal(enq, deq, "FIFO queue: dequeue order matches enqueue order")
}

func TestConnected(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	ok, err := bfs.Connected(g, "f0")
	r.NoError(err)
	r.True(ok)

	// An isolated facet disconnects the lattice.
	r.NoError(g.AddVertex("f9"))
	ok, err = bfs.Connected(g, "f0")
	r.NoError(err)
	r.False(ok)
}

func TestBFSResult_Reaches(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	res, err := bfs.BFS(g, "f0")
	r.NoError(err)
	r.True(res.Reaches(g.VertexCount()))
	r.False(res.Reaches(g.VertexCount() + 1))
}

func TestBFSResult_PathTo(t *testing.T) {
	r := require.New(t)
	g := squareLattice(t)

	res, err := bfs.BFS(g, "f0")
	r.NoError(err)

	path, err := res.PathTo("f2")
	r.NoError(err)
	r.Equal([]string{"f0", "f1", "f2"}, path)

	_, err = res.PathTo("f9")
	r.Error(err)
}
