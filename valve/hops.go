package valve

import "github.com/gammazero/deque"

// hopWalker holds the mutable state of one breadth-first pass.
type hopWalker struct {
	graph *Graph
	queue deque.Deque[int]
	dist  []int
}

// HopDistances returns, for every valve, the minimum number of moves needed to
// reach it from valve from, or -1 when it is unreachable.
//
// Neighbors are expanded in ascending index order, so the traversal is
// deterministic. Complexity: O(V + E).
func (g *Graph) HopDistances(from int) []int {
	w := &hopWalker{
		graph: g,
		dist:  make([]int, g.Len()),
	}
	for i := range w.dist {
		w.dist[i] = -1
	}
	w.enqueue(from, 0)
	w.loop()

	return w.dist
}

func (w *hopWalker) enqueue(id, d int) {
	w.dist[id] = d
	w.queue.PushBack(id)
}

func (w *hopWalker) loop() {
	var cur, nbr int
	for w.queue.Len() > 0 {
		cur = w.queue.PopFront()
		for _, nbr = range w.graph.neighbors[cur] {
			// first time seen?
			if w.dist[nbr] < 0 {
				w.enqueue(nbr, w.dist[cur]+1)
			}
		}
	}
}

// HopMatrix returns the pairwise hop distances between the members of s, rows
// and columns in ascending index order. The diagonal is 0; -1 marks an
// unreachable pair. One breadth-first pass runs per member.
//
// Complexity: O(|s|·(V + E)).
func (g *Graph) HopMatrix(s NodeSet) [][]int {
	members := s.Members()
	out := make([][]int, len(members))
	var (
		row  []int
		dist []int
	)
	for r, from := range members {
		dist = g.HopDistances(from)
		row = make([]int, len(members))
		for c, to := range members {
			row[c] = dist[to]
		}
		out[r] = row
	}

	return out
}
