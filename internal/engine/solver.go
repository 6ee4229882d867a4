// Package engine implements the pruned backtracking search over piece
// placements.
package engine

import (
	"time"

	"github.com/bungogood/polycube/internal/model"
)

// Settings controls a solve run.
type Settings struct {
	// MaxSolutions stops the search after this many solutions.
	// Zero means exhaustive.
	MaxSolutions int

	// OnSolution, when set, is called as each solution is found with
	// the nodes explored so far.
	OnSolution func(sol model.Solution, explored int)
}

// Solver runs the depth-first exact-cover search.
type Solver struct {
	Settings Settings
}

func New(settings Settings) *Solver {
	return &Solver{Settings: settings}
}

// Result holds the outcome of a search. Zero solutions after an
// exhaustive search is a valid result, not an error.
type Result struct {
	Solutions []model.Solution
	Explored  int
	Duration  time.Duration
}

// search is the per-run context threaded through the recursion, so no
// mutable state outlives a solve call.
type search struct {
	puzzle    *model.Puzzle
	arr       *model.Arrangement
	solutions []model.Solution
	explored  int
	max       int
	emit      func(model.Solution, int)
	done      bool
}

// Solve searches the puzzle exhaustively and returns every solution
// reachable from the symmetry-breaking seed placements. The search is
// deterministic: identical input yields identical solution and
// explored-node counts.
func (s *Solver) Solve(puz *model.Puzzle) Result {
	start := time.Now()
	ctx := &search{
		puzzle: puz,
		arr:    model.NewArrangement(puz.CellCount()),
		max:    s.Settings.MaxSolutions,
		emit:   s.Settings.OnSolution,
	}

	seed, placements := SeedPlacements(puz)
	remaining := make([]int, 0, len(puz.Pieces)-1)
	for i := range puz.Pieces {
		if i != seed {
			remaining = append(remaining, i)
		}
	}

	for _, placement := range placements {
		ctx.arr.Push(seed, placement)
		ctx.solve(0, remaining)
		ctx.arr.Pop()
		if ctx.done {
			break
		}
	}

	return Result{
		Solutions: ctx.solutions,
		Explored:  ctx.explored,
		Duration:  time.Since(start),
	}
}

// solve extends the arrangement by one piece covering the next empty
// cell, recursing on success and undoing the commit on every return
// path. prev is the index of the last cell known to be filled; cells
// before it stay filled because backtracking only ever removes the most
// recent commit.
func (c *search) solve(prev int, remaining []int) {
	c.explored++

	if len(remaining) == 0 {
		c.record()
		return
	}

	target := c.arr.Occupied.NextClear(prev)
	if target < 0 {
		return
	}

	for i, pid := range remaining {
		others := make([]int, 0, len(remaining)-1)
		others = append(others, remaining[:i]...)
		others = append(others, remaining[i+1:]...)

		for _, placement := range c.puzzle.Pieces[pid].Placements {
			if !placement.Get(target) || c.arr.Occupied.Intersects(placement) {
				continue
			}
			board := c.arr.Occupied.Union(placement)
			if !c.coverageReachable(board, others) || !c.piecesPlaceable(board, others) {
				continue
			}

			c.arr.Push(pid, placement)
			c.solve(target, others)
			c.arr.Pop()
			if c.done {
				return
			}
		}
	}
}

func (c *search) record() {
	sol := c.arr.Snapshot()
	c.solutions = append(c.solutions, sol)
	if c.emit != nil {
		c.emit(sol, c.explored)
	}
	if c.max > 0 && len(c.solutions) >= c.max {
		c.done = true
	}
}

// coverageReachable greedily unions every non-conflicting placement of
// the remaining pieces into the hypothetical occupancy and succeeds if
// the union reaches the full volume. Placements of different pieces may
// overlap each other here; this is a necessary condition only.
func (c *search) coverageReachable(board model.Bitset, remaining []int) bool {
	coverage := board.Clone()
	for _, pid := range remaining {
		for _, placement := range c.puzzle.Pieces[pid].Placements {
			if !board.Intersects(placement) {
				coverage.UnionWith(placement)
				if coverage.Equal(c.puzzle.Full) {
					return true
				}
			}
		}
	}
	return coverage.Equal(c.puzzle.Full)
}

// piecesPlaceable checks that each remaining piece, considered
// independently, still has at least one placement free of the
// hypothetical occupancy.
func (c *search) piecesPlaceable(board model.Bitset, remaining []int) bool {
	for _, pid := range remaining {
		fits := false
		for _, placement := range c.puzzle.Pieces[pid].Placements {
			if !board.Intersects(placement) {
				fits = true
				break
			}
		}
		if !fits {
			return false
		}
	}
	return true
}
