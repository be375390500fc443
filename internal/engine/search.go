package engine

import (
	"math"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// DefaultDepth is the search depth, in plies, used for the automated side.
// Root children are searched three plies deep.
const DefaultDepth = 4

// SearchStats counts the work done by a search.
type SearchStats struct {
	Nodes   uint64 // Positions visited, leaves included
	Cutoffs uint64 // Sibling scans stopped by alpha-beta
}

// Add accumulates another set of counters.
func (s *SearchStats) Add(other SearchStats) {
	s.Nodes += other.Nodes
	s.Cutoffs += other.Cutoffs
}

// Result is the outcome of a root search.
type Result struct {
	Move  chess.Move
	Score int
	Found bool // False when the side to move has no legal move
	Stats SearchStats
}

// Searcher runs fixed-depth alpha-beta searches. It keeps no state
// between calls, so a single Searcher may be shared by goroutines.
type Searcher struct {
	depth   int
	workers int
}

// SearchOption configures a Searcher.
type SearchOption func(*Searcher)

// WithDepth sets the search depth in plies. Values below 1 are treated as 1.
func WithDepth(depth int) SearchOption {
	return func(s *Searcher) {
		s.depth = depth
	}
}

// WithWorkers sets how many goroutines score root moves. The chosen
// move does not depend on this value.
func WithWorkers(n int) SearchOption {
	return func(s *Searcher) {
		if n >= 1 {
			s.workers = n
		}
	}
}

// NewSearcher creates a Searcher. Default: DefaultDepth plies, 1 worker.
func NewSearcher(opts ...SearchOption) *Searcher {
	s := &Searcher{
		depth:   DefaultDepth,
		workers: 1,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.depth < 1 {
		s.depth = 1
	}
	return s
}

// Depth returns the configured depth in plies.
func (s *Searcher) Depth() int {
	return s.depth
}

// Workers returns the configured number of root workers.
func (s *Searcher) Workers() int {
	return s.workers
}

// Search selects the best move for colour. Each legal move is scored by
// Minimax one ply shallower with the full window; the strictly best score
// for colour wins and ties keep the earliest move in generation order.
func (s *Searcher) Search(pos *chess.Position, colour chess.Colour) Result {
	moves := LegalMoves(pos, colour)
	if len(moves) == 0 {
		return Result{Score: MaterialScore(pos)}
	}

	var scored []rootScore
	if s.workers > 1 && len(moves) > 1 {
		scored = s.scoreParallel(pos, colour, moves)
	} else {
		scored = make([]rootScore, len(moves))
		for i, m := range moves {
			scored[i] = scoreRootMove(pos, m, colour, s.depth)
		}
	}
	return pickBest(moves, scored, colour)
}

// rootScore is the score of one root move and the work spent on it.
type rootScore struct {
	score int
	stats SearchStats
}

// scoreRootMove scores the position after m from the opponent's side.
func scoreRootMove(pos *chess.Position, m chess.Move, colour chess.Colour, depth int) rootScore {
	var stats SearchStats
	child := pos.Apply(m)
	score := minimax(&child, depth-1, colour.Opposite(), math.MinInt, math.MaxInt, &stats)
	return rootScore{score: score, stats: stats}
}

// pickBest reduces scores in generation order so the tie-break does not
// depend on how the scores were computed.
func pickBest(moves []chess.Move, scored []rootScore, colour chess.Colour) Result {
	result := Result{Found: true}
	if colour == chess.White {
		result.Score = math.MinInt
	} else {
		result.Score = math.MaxInt
	}
	first := true
	for i, m := range moves {
		rs := scored[i]
		result.Stats.Add(rs.stats)
		better := rs.score > result.Score
		if colour == chess.Black {
			better = rs.score < result.Score
		}
		if first || better {
			result.Move = m
			result.Score = rs.score
			first = false
		}
	}
	return result
}

// BestMove returns colour's best move at the given depth. The boolean is
// false when colour has no legal move.
func BestMove(pos *chess.Position, colour chess.Colour, depth int) (chess.Move, bool) {
	r := NewSearcher(WithDepth(depth)).Search(pos, colour)
	return r.Move, r.Found
}

// Minimax returns the alpha-beta minimax score of pos with colour to
// move. White maximises, Black minimises. At depth 0, or when colour has
// no legal move, the material score is returned unchanged.
func Minimax(pos *chess.Position, depth int, colour chess.Colour, alpha, beta int) int {
	var stats SearchStats
	return minimax(pos, depth, colour, alpha, beta, &stats)
}

func minimax(pos *chess.Position, depth int, colour chess.Colour, alpha, beta int, stats *SearchStats) int {
	stats.Nodes++
	if depth <= 0 {
		return MaterialScore(pos)
	}

	moves := LegalMoves(pos, colour)
	if len(moves) == 0 {
		return MaterialScore(pos)
	}

	if colour == chess.White {
		maxEval := math.MinInt
		for _, m := range moves {
			child := pos.Apply(m)
			eval := minimax(&child, depth-1, chess.Black, alpha, beta, stats)
			maxEval = max(maxEval, eval)
			alpha = max(alpha, eval)
			if beta <= alpha {
				stats.Cutoffs++
				break
			}
		}
		return maxEval
	}

	minEval := math.MaxInt
	for _, m := range moves {
		child := pos.Apply(m)
		eval := minimax(&child, depth-1, chess.White, alpha, beta, stats)
		minEval = min(minEval, eval)
		beta = min(beta, eval)
		if beta <= alpha {
			stats.Cutoffs++
			break
		}
	}
	return minEval
}
