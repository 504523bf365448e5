package searcher

import (
	"fmt"

	"star/game"
)

// tree maps every position met during the search of one move to its node.
type tree map[game.State]*Node

func newTree(root game.State) tree {
	return tree{root: newRoot()}
}

// node returns the node of a position that must already be in the tree.
func (t tree) node(state game.State) *Node {
	n, ok := t[state]
	if !ok {
		panic(fmt.Sprintf("no node for position %+v", state))
	}
	return n
}

// expand adds a node for every legal move from state, keeping nodes that already exist.
func (t tree) expand(topo *game.Topology, state game.State, parent *Node) {
	for i := 0; i < topo.Count; i++ {
		if state.Any(i) {
			continue
		}
		child := state
		child.AddMove(i)
		if _, ok := t[child]; !ok {
			t[child] = newChild(i)
		}
	}
	parent.ChildrenCreated = true
}
