package service

import (
	"bytes"
	"context"
	"log"
	"sync"
	"testing"

	"github.com/lgbarn/minimax-chess-go/internal/config"
	"github.com/lgbarn/minimax-chess-go/internal/errors"
	"github.com/lgbarn/minimax-chess-go/internal/output"
	"github.com/lgbarn/minimax-chess-go/internal/testutil"
)

const blockedFEN = "8/8/8/8/8/p7/P1k5/K7 w - - 0 1"

func newTestService(t *testing.T) (*GameService, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	cfg := config.NewConfigBuilder().
		WithDepth(1).
		WithVerbosity(config.Verbose).
		Build()
	return NewGameService(cfg, log.New(&logs, "", 0)), &logs
}

func TestCreate(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateRequest
		wantHistory []string
		wantToMove  string
		wantHuman   string
	}{
		{"defaults", CreateRequest{}, []string{}, "white", "white"},
		{"engine opens as white", CreateRequest{HumanColour: "black"}, []string{"A2A3"}, "black", "black"},
		{"custom position", CreateRequest{FEN: "4k3/8/8/8/8/8/8/4K3 w - - 0 1", Depth: 2}, []string{}, "white", "white"},
		{"depth at server limit", CreateRequest{Depth: config.NewServerConfig().MaxDepth}, []string{}, "white", "white"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _ := newTestService(t)

			state, err := gs.Create(context.Background(), tt.req)

			testutil.AssertNoError(t, err)
			testutil.AssertTrue(t, state.ID != "", "empty id")
			testutil.AssertEqual(t, state.History, tt.wantHistory)
			testutil.AssertEqual(t, state.ToMove, tt.wantToMove)
			testutil.AssertEqual(t, state.HumanColour, tt.wantHuman)
			testutil.AssertEqual(t, gs.Len(), 1)
		})
	}
}

func TestCreate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		req  CreateRequest
		want error
	}{
		{"unknown colour", CreateRequest{HumanColour: "green"}, errors.ErrInvalidConfig},
		{"depth too deep", CreateRequest{Depth: config.MaxDepth + 1}, errors.ErrInvalidConfig},
		{"depth beyond server limit", CreateRequest{Depth: config.NewServerConfig().MaxDepth + 1}, errors.ErrInvalidConfig},
		{"negative depth", CreateRequest{Depth: -1}, errors.ErrInvalidConfig},
		{"bad position", CreateRequest{FEN: "not a fen"}, errors.ErrInvalidFEN},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _ := newTestService(t)
			_, err := gs.Create(context.Background(), tt.req)
			testutil.AssertErrorIs(t, err, tt.want)
			testutil.AssertEqual(t, gs.Len(), 0)
		})
	}
}

func TestMove(t *testing.T) {
	gs, logs := newTestService(t)
	created, err := gs.Create(context.Background(), CreateRequest{})
	testutil.AssertNoError(t, err)

	state, err := gs.Move(context.Background(), created.ID, "e2e4")

	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.History, []string{"E2E4", "B8C6"})
	testutil.AssertEqual(t, state.LastMove, "B8C6")
	testutil.AssertEqual(t, state.ToMove, "white")
	testutil.AssertEqual(t, state.Status, output.StatusOngoing)
	testutil.AssertContains(t, logs.String(), "engine B8C6")

	got, err := gs.Get(created.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, state)
}

func TestMove_Rejects(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		text string
		want error
	}{
		{"bad format", "", "E2", errors.ErrInvalidNotation},
		{"illegal", "", "E2E5", errors.ErrIllegalMove},
		{"off board", "", "I2I4", errors.ErrIllegalMove},
		{"finished game", blockedFEN, "A1B1", errors.ErrGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _ := newTestService(t)
			created, err := gs.Create(context.Background(), CreateRequest{FEN: tt.fen})
			testutil.AssertNoError(t, err)

			_, err = gs.Move(context.Background(), created.ID, tt.text)

			testutil.AssertErrorIs(t, err, tt.want)
			got, _ := gs.Get(created.ID)
			testutil.AssertEqual(t, got.History, created.History, "history changed by a rejected move")
		})
	}
}

func TestUnknownGame(t *testing.T) {
	gs, _ := newTestService(t)

	_, err := gs.Get("missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	_, err = gs.Move(context.Background(), "missing", "e2e4")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	_, err = gs.EngineMove(context.Background(), "missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	_, _, err = gs.Subscribe("missing")
	testutil.AssertErrorIs(t, err, errors.ErrGameNotFound)

	testutil.AssertErrorIs(t, gs.Delete("missing"), errors.ErrGameNotFound)
}

func TestCancelledReplyCanBeResumed(t *testing.T) {
	gs, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	created, err := gs.Create(ctx, CreateRequest{HumanColour: "black"})
	testutil.AssertErrorIs(t, err, errors.ErrSearchCancelled)
	testutil.AssertEqual(t, created.ToMove, "white")
	testutil.AssertEqual(t, len(created.History), 0)

	_, err = gs.Move(context.Background(), created.ID, "e7e5")
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)

	state, err := gs.EngineMove(context.Background(), created.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, state.History, []string{"A2A3"})

	_, err = gs.EngineMove(context.Background(), created.ID)
	testutil.AssertErrorIs(t, err, errors.ErrNotYourTurn)
}

func TestSubscribe(t *testing.T) {
	gs, _ := newTestService(t)
	created, err := gs.Create(context.Background(), CreateRequest{})
	testutil.AssertNoError(t, err)

	updates, cancel, err := gs.Subscribe(created.ID)
	testutil.AssertNoError(t, err)
	defer cancel()

	_, err = gs.Move(context.Background(), created.ID, "d2d4")
	testutil.AssertNoError(t, err)

	first := <-updates
	second := <-updates
	testutil.AssertEqual(t, first.LastMove, "D2D4")
	testutil.AssertEqual(t, len(second.History), 2)

	testutil.AssertNoError(t, gs.Delete(created.ID))
	_, open := <-updates
	testutil.AssertFalse(t, open, "subscription still open after delete")
	cancel()
}

func TestConcurrentAccess(t *testing.T) {
	gs, _ := newTestService(t)
	created, err := gs.Create(context.Background(), CreateRequest{})
	testutil.AssertNoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				if _, err := gs.Get(created.ID); err != nil {
					t.Error(err)
					return
				}
			}
		}()
	}
	for _, text := range []string{"e2e4", "g1f3", "f1c4"} {
		if _, err := gs.Move(context.Background(), created.ID, text); err != nil {
			t.Fatalf("Move(%s): %v", text, err)
		}
	}
	wg.Wait()

	state, err := gs.Get(created.ID)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, len(state.History), 6)
}
