package localsearch

import (
	"math/rand"

	"github.com/fabiolinhares/wavepicker/instance"
)

// chainSampleSize bounds how many Chain 2-for-1 / 2-for-2 candidates
// ChainMoves draws per call. Full enumeration is O(|x|^2 * free) or worse;
// random sampling keeps one pass cheap while still exploring the move kind
// spec §4.6 names, the same trade-off the teacher's 2-opt/3-opt neighbours
// make by scanning rather than enumerating every k-opt combination.
const chainSampleSize = 24

// ChainMoves draws a bounded random sample of Chain 2-for-1 and Chain
// 2-for-2 moves (spec §4.6: "drop two, add one or two"). rng must not be
// shared across goroutines.
func (e *Engine) ChainMoves(current instance.Solution, rng *rand.Rand) []Move {
	if len(current.OrderSet) < 2 {
		return nil
	}
	in := toSet(current.OrderSet)
	free := make([]int, 0, e.numOrders-len(in))
	for o := 0; o < e.numOrders; o++ {
		if !in[o] {
			free = append(free, o)
		}
	}
	if len(free) == 0 {
		return nil
	}

	moves := make([]Move, 0, chainSampleSize)
	for i := 0; i < chainSampleSize; i++ {
		r1, r2 := distinctPair(current.OrderSet, rng)
		if i%2 == 0 || len(free) < 2 {
			add := free[rng.Intn(len(free))]
			moves = append(moves, Move{Kind: MoveChain2For1, Remove: []int{r1, r2}, Add: []int{add}})
			continue
		}
		a1, a2 := distinctPair(free, rng)
		moves = append(moves, Move{Kind: MoveChain2For2, Remove: []int{r1, r2}, Add: []int{a1, a2}})
	}
	return moves
}

// distinctPair draws two distinct elements of xs (len(xs) >= 2 required).
func distinctPair(xs []int, rng *rand.Rand) (int, int) {
	i := rng.Intn(len(xs))
	j := rng.Intn(len(xs))
	for j == i {
		j = rng.Intn(len(xs))
	}
	return xs[i], xs[j]
}
