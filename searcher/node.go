package searcher

// NoPos marks the root, which is not reached by a move.
const NoPos = -1

// Node holds the statistics of one position. Wins are counted for the player who made the
// move leading to the position.
type Node struct {
	Pos             int
	ChildrenCreated bool
	SelfVisits      uint32 // Playouts through this node on the tree path
	SelfWins        uint32
	Visits          uint32 // AMAF playouts below the parent in which Pos was played
	Wins            uint32
}

func newRoot() *Node {
	return &Node{Pos: NoPos}
}

func newChild(pos int) *Node {
	return &Node{Pos: pos}
}

// Winrate is the selection value of the node.
func (n *Node) Winrate() float64 {
	return blend(n.SelfWins, n.SelfVisits, n.Wins, n.Visits)
}
