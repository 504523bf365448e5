package searcher

// Hyperparameters for MCTS

const InnerIterations = 32 // Playouts per simulated leaf

// The weight of direct statistics rises from 0 towards AmafLimit as a node collects direct
// visits, reaching half of the limit after AmafParameter visits.
const AmafParameter = 1000.0
const AmafLimit = 0.5

// Winrate of a node without AMAF visits, above any real winrate so it is explored first
const Unvisited = 2.0

// blend mixes the direct and AMAF winrates of a node.
func blend(selfWins, selfVisits, wins, visits uint32) float64 {
	if visits == 0 {
		return Unvisited
	}
	amaf := float64(wins) / float64(visits)
	direct := amaf
	if selfVisits > 0 {
		direct = float64(selfWins) / float64(selfVisits)
	}
	alpha := AmafLimit * float64(selfVisits) / (AmafParameter + float64(selfVisits))
	return alpha*direct + (1-alpha)*amaf
}
