package engine

import (
	"context"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/worker"
)

// SearchContext is Search with a deadline. Root moves are scored on a
// worker pool; once ctx is done the moves still queued are skipped and
// the partial result is discarded. A root move already being scored is
// not interrupted, its goroutine finishes in the background.
func (s *Searcher) SearchContext(ctx context.Context, pos *chess.Position, colour chess.Colour) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, errors.Wrap(errors.ErrSearchCancelled, err.Error())
	}
	moves := LegalMoves(pos, colour)
	if len(moves) == 0 {
		return Result{Score: MaterialScore(pos)}, nil
	}

	scored, err := s.scoreWithPool(ctx, pos, colour, moves)
	if err != nil {
		return Result{}, err
	}
	return pickBest(moves, scored, colour), nil
}

// scoreParallel scores every root move on the pool without a deadline.
func (s *Searcher) scoreParallel(pos *chess.Position, colour chess.Colour, moves []chess.Move) []rootScore {
	scored, _ := s.scoreWithPool(context.Background(), pos, colour, moves)
	return scored
}

// scoreWithPool fans the root moves out to s.workers goroutines. Each
// item carries its own copy of the position. Results are stored by
// index so the caller can reduce them in generation order.
func (s *Searcher) scoreWithPool(ctx context.Context, pos *chess.Position, colour chess.Colour, moves []chess.Move) ([]rootScore, error) {
	// Both channels hold every move, so neither Submit nor a worker's
	// send can block once the consumer has gone away.
	pool := worker.NewPool(scoreWorkItem,
		worker.WithWorkers(s.workers),
		worker.WithBufferSize(len(moves)),
	)
	pool.Start()
	for i, m := range moves {
		pool.Submit(worker.WorkItem{
			Position: *pos,
			Move:     m,
			Colour:   colour,
			Depth:    s.depth,
			Index:    i,
		})
	}
	go pool.Close()

	scored := make([]rootScore, len(moves))
	results := pool.Results()
	for received := 0; received < len(moves); {
		select {
		case r, ok := <-results:
			if !ok {
				return nil, errors.ErrSearchCancelled
			}
			scored[r.Index] = rootScore{
				score: r.Score,
				stats: SearchStats{Nodes: r.Nodes, Cutoffs: r.Cutoffs},
			}
			received++
		case <-ctx.Done():
			pool.Stop()
			return nil, errors.Wrap(errors.ErrSearchCancelled, ctx.Err().Error())
		}
	}
	return scored, nil
}

// scoreWorkItem is the pool's process function.
func scoreWorkItem(item worker.WorkItem) worker.ProcessResult {
	rs := scoreRootMove(&item.Position, item.Move, item.Colour, item.Depth)
	return worker.ProcessResult{
		Index:   item.Index,
		Move:    item.Move,
		Score:   rs.score,
		Nodes:   rs.stats.Nodes,
		Cutoffs: rs.stats.Cutoffs,
	}
}
