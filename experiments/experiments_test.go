package experiments

import (
	"catmouse/game"
	"catmouse/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run("every game is tallied", func(t *testing.T) {
		summary, err := Run(Config{Games: 10, Seed: 1, Depth: meta.DEPTH})

		require.NoError(t, err)
		require.Equal(t, 10, summary.Captured+summary.Escaped+summary.Unfinished)
		require.Equal(t, meta.ROWS, summary.Rows)
		require.Equal(t, meta.MAX_TURNS, summary.MaxTurns)
		require.Positive(t, summary.CacheSize)
		require.Empty(t, summary.Dir)
	})

	t.Run("same seed gives the same results", func(t *testing.T) {
		cfg := Config{Games: 8, Seed: 99, Depth: 2}

		first, err := Run(cfg)
		require.NoError(t, err)
		second, err := Run(cfg)
		require.NoError(t, err)

		require.Equal(t, first.Captured, second.Captured)
		require.Equal(t, first.Escaped, second.Escaped)
		require.Equal(t, first.TotalMoves, second.TotalMoves)
	})

	t.Run("writes records when an output directory is set", func(t *testing.T) {
		summary, err := Run(Config{Name: "smoke", Games: 3, Seed: 5, OutDir: t.TempDir()})

		require.NoError(t, err)
		require.NotEmpty(t, summary.Dir)
		require.FileExists(t, filepath.Join(summary.Dir, "game_records.csv"))
		require.FileExists(t, filepath.Join(summary.Dir, "move_records.csv"))
		data, err := os.ReadFile(filepath.Join(summary.Dir, "game_records.csv"))
		require.NoError(t, err)
		require.Contains(t, string(data), "outcome")
	})

	t.Run("rejects a single cell grid", func(t *testing.T) {
		_, err := Run(Config{Rows: 1, Cols: 1, Games: 1})

		require.ErrorIs(t, err, game.ErrNoLegalMoves)
	})
}

func TestRunDepthSweep(t *testing.T) {
	summaries, err := RunDepthSweep(Config{Games: 4, Seed: 2}, []int{0, 1, 3})

	require.NoError(t, err)
	require.Len(t, summaries, 3)
	for i, depth := range []int{0, 1, 3} {
		require.Equal(t, depth, summaries[i].Depth)
		require.Equal(t, 4, summaries[i].Captured+summaries[i].Escaped+summaries[i].Unfinished)
	}
	require.Equal(t, "games_depth_3", summaries[2].Name)
}

func TestRunThroughputExperiment(t *testing.T) {
	results, err := RunThroughputExperiment(3, 3, 2, game.Position{Row: 2, Col: 0}, []int{1, 4})

	require.NoError(t, err)
	require.Len(t, results, 2)
	// 81 boards minus 9 captures and 8 escapes
	require.Equal(t, 64, results[0].Searches)
	require.Equal(t, results[0].Searches, results[1].Searches)
	require.Equal(t, results[0].Nodes, results[1].Nodes, "parallel search should visit the same tree")
}
