package engine

import (
	"catmouse/experiments/metrics"
	"catmouse/game"
	"catmouse/searcher"
	"catmouse/searcher/agent"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestLocalEngine(t *testing.T) {
	t.Run("panics without an agent", func(t *testing.T) {
		b := game.Board{Rows: 5, Cols: 5, Pursuer: pos(4, 4), Exit: pos(2, 2)}

		require.Panics(t, func() {
			LocalEngine(b, nil, &scriptedAgent{}, 10)
		})
	})

	t.Run("panics without turns", func(t *testing.T) {
		b := game.Board{Rows: 5, Cols: 5, Pursuer: pos(4, 4), Exit: pos(2, 2)}

		require.Panics(t, func() {
			LocalEngine(b, &scriptedAgent{}, &scriptedAgent{}, 0)
		})
	})
}

func TestEngineRun(t *testing.T) {
	t.Run("evader moves first and escapes", func(t *testing.T) {
		b := game.Board{Rows: 3, Cols: 3, Pursuer: pos(2, 2), Evader: pos(0, 0), Exit: pos(0, 2)}
		evader := &scriptedAgent{moves: []game.Position{pos(0, 1), pos(0, 2)}}
		pursuer := &scriptedAgent{moves: []game.Position{pos(1, 2)}}
		e := LocalEngine(b, evader, pursuer, 10)

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.EvaderEscaped, gameMetric.Outcome)
		require.Equal(t, 3, gameMetric.TotalMoves)
		require.Len(t, moves, 3)
		require.Equal(t, []string{Evader, Pursuer, Evader}, []string{moves[0].Mover, moves[1].Mover, moves[2].Mover})
		require.Equal(t, pos(0, 1), moves[2].From)
		require.Equal(t, pos(0, 2), moves[2].To)
		require.Equal(t, 3, moves[2].Step)
		require.NotEmpty(t, gameMetric.ID)
		require.Equal(t, pos(0, 2), gameMetric.Exit)
	})

	t.Run("searching pursuer catches the evader", func(t *testing.T) {
		b := game.Board{Rows: 2, Cols: 2, Pursuer: pos(1, 1), Evader: pos(0, 0), Exit: pos(1, 1)}
		evader := &scriptedAgent{moves: []game.Position{pos(0, 1)}}
		e := LocalEngine(b, evader, agent.NewPursuerAgent(searcher.NewMinimax()), 10)

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.EvaderCaptured, gameMetric.Outcome)
		require.Len(t, moves, 2)
		require.Equal(t, pos(0, 1), e.Board.Pursuer)
	})

	t.Run("game already over plays no moves", func(t *testing.T) {
		b := game.Board{Rows: 1, Cols: 3, Pursuer: pos(0, 2), Evader: pos(0, 0), Exit: pos(0, 0)}
		e := LocalEngine(b, &scriptedAgent{}, &scriptedAgent{}, 10)

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.EvaderEscaped, gameMetric.Outcome)
		require.Empty(t, moves)
	})

	t.Run("stops at the turn limit", func(t *testing.T) {
		b := game.Board{Rows: 5, Cols: 5, Pursuer: pos(4, 4), Evader: pos(0, 0), Exit: pos(0, 4)}
		evader := &scriptedAgent{moves: []game.Position{pos(1, 0), pos(0, 0)}}
		pursuer := &scriptedAgent{moves: []game.Position{pos(4, 3), pos(4, 4)}}
		e := LocalEngine(b, evader, pursuer, 4)
		var seen []game.Board
		e.OnMove = func(board game.Board, move metrics.MoveMetric) {
			seen = append(seen, board)
		}

		gameMetric, moves, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, game.Ongoing, gameMetric.Outcome)
		require.Len(t, moves, 4)
		require.Len(t, seen, 4)
		require.Equal(t, b, e.Board, "pieces should be back on their start cells")
	})

	t.Run("stops on an illegal move", func(t *testing.T) {
		b := game.Board{Rows: 5, Cols: 5, Pursuer: pos(4, 4), Evader: pos(0, 0), Exit: pos(0, 4)}
		evader := &scriptedAgent{moves: []game.Position{pos(2, 0)}}
		e := LocalEngine(b, evader, &scriptedAgent{}, 10)

		_, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrIllegalMove)
	})

	t.Run("rejects an invalid board", func(t *testing.T) {
		b := game.Board{Rows: 5, Cols: 5, Pursuer: pos(9, 9), Evader: pos(0, 0), Exit: pos(0, 4)}
		e := LocalEngine(b, &scriptedAgent{}, &scriptedAgent{}, 10)

		_, _, err := e.Run()

		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})

	t.Run("random games only make single legal steps", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		cache := searcher.NewEvaluationCache()
		for i := 0; i < 20; i++ {
			b, err := game.NewBoard(5, 5, rng)
			require.NoError(t, err)
			e := LocalEngine(b, agent.NewRandomAgent(rng), agent.NewPursuerAgent(searcher.NewMinimax(searcher.WithCache(cache))), 200)

			gameMetric, moves, err := e.Run()

			require.NoError(t, err)
			require.Equal(t, e.Board.Status(), gameMetric.Outcome)
			for _, move := range moves {
				require.Equal(t, 1, game.Distance(move.From, move.To), "move %+v", move)
			}
		}
	})
}
