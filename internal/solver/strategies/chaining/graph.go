package chaining

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
	"github.com/katalvlaran/lvlath/matrix"
)

// linkGraph is the bipartite true/false endpoint graph over a node set: for
// node index i, "{i}-true" is its asserted endpoint and "{i}-false" its
// negated endpoint. A weak link between nodes a and b contributes an edge
// from a's true endpoint to b's false endpoint (and symmetrically b->a), a
// strong link contributes an edge from a's false endpoint to b's true
// endpoint (and symmetrically). The chain searcher walks this matrix rather
// than re-evaluating link predicates during BFS.
type linkGraph struct {
	succ     [][]int
	trueIdx  []int
	falseIdx []int
	nodeOf   map[int]int  // matrix column -> node index
	isTrue   map[int]bool // matrix column -> polarity
}

func endpointID(i int, truePole bool) string {
	if truePole {
		return fmt.Sprintf("%d-true", i)
	}
	return fmt.Sprintf("%d-false", i)
}

// buildLinkGraph evaluates every unordered pair of nodes (including a node
// against itself) once, adding the weak/strong edges the link predicates
// license, then materialises the result as a dense adjacency matrix.
func buildLinkGraph(nodes []Node, weak func(a, b Node) bool, strong func(a, b Node) bool) (*linkGraph, error) {
	gr := core.NewGraph(core.WithDirected(true), core.WithWeighted())
	for i := range nodes {
		if err := gr.AddVertex(endpointID(i, true)); err != nil {
			return nil, err
		}
		if err := gr.AddVertex(endpointID(i, false)); err != nil {
			return nil, err
		}
	}

	for i := range nodes {
		for j := i; j < len(nodes); j++ {
			a, b := nodes[i], nodes[j]
			if weak(a, b) {
				if _, err := gr.AddEdge(endpointID(i, true), endpointID(j, false), 1); err != nil {
					return nil, err
				}
				if _, err := gr.AddEdge(endpointID(j, true), endpointID(i, false), 1); err != nil {
					return nil, err
				}
			}
			if strong(a, b) {
				if _, err := gr.AddEdge(endpointID(i, false), endpointID(j, true), 1); err != nil {
					return nil, err
				}
				if _, err := gr.AddEdge(endpointID(j, false), endpointID(i, true), 1); err != nil {
					return nil, err
				}
			}
		}
	}

	mopts := matrix.NewMatrixOptions(matrix.WithDirected(true), matrix.WithWeighted(true))
	am, err := matrix.NewAdjacencyMatrix(gr, mopts)
	if err != nil {
		return nil, err
	}

	lg := &linkGraph{
		trueIdx:  make([]int, len(nodes)),
		falseIdx: make([]int, len(nodes)),
		nodeOf:   make(map[int]int, 2*len(nodes)),
		isTrue:   make(map[int]bool, 2*len(nodes)),
	}
	for i := range nodes {
		ti := am.VertexIndex[endpointID(i, true)]
		fi := am.VertexIndex[endpointID(i, false)]
		lg.trueIdx[i] = ti
		lg.falseIdx[i] = fi
		lg.nodeOf[ti] = i
		lg.isTrue[ti] = true
		lg.nodeOf[fi] = i
		lg.isTrue[fi] = false
	}

	// Flatten the matrix to successor lists up front: the BFS visits each
	// endpoint once per start node, so per-visit row scans dominate the
	// whole search if deferred to then.
	size := am.Mat.Rows()
	lg.succ = make([][]int, size)
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			v, err := am.Mat.At(row, col)
			if err == nil && v != 0 {
				lg.succ[row] = append(lg.succ[row], col)
			}
		}
	}
	return lg, nil
}

// successorsOf returns the endpoint indices reachable in one directed hop
// from the given endpoint index.
func (lg *linkGraph) successorsOf(row int) []int {
	return lg.succ[row]
}
