package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/testing/suite"
)

func TestSQLiteScoreRepository(t *testing.T) {
	testScoreRepository(t, func(t *testing.T) (context.Context, ScoreRepository) {
		ctx, st := suite.NewSQLite(t)
		return ctx, NewSQLiteScoreRepository(st.SQLite)
	})
}

// testScoreRepository runs the same contract against every score store.
func testScoreRepository(t *testing.T, newRepo func(t *testing.T) (context.Context, ScoreRepository)) {
	t.Helper()

	t.Run("Load_Empty", func(t *testing.T) {
		ctx, scoreRepo := newRepo(t)

		// When: Load is called on an empty store
		scores, err := scoreRepo.Load(ctx)

		// Then: no error and no records are returned
		require.NoError(t, err)
		assert.Empty(t, scores)
	})

	t.Run("Save_Success", func(t *testing.T) {
		ctx, scoreRepo := newRepo(t)

		// Given: a first best score for the single game mode
		score := entity.Score{Player: "alice", Moves: 31}

		// When: Save is called
		err := scoreRepo.Save(ctx, entity.ModeSingle, score)
		require.NoError(t, err)

		// Then: the score is loaded back for that mode only
		scores, err := scoreRepo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.BestScores{entity.ModeSingle: score}, scores)
	})

	t.Run("Save_LowerScoreReplaces", func(t *testing.T) {
		ctx, scoreRepo := newRepo(t)

		// Given: a stored best score
		require.NoError(t, scoreRepo.Save(ctx, entity.ModeBestOfThree, entity.Score{Player: "alice", Moves: 40}))

		// When: a lower score is saved
		err := scoreRepo.Save(ctx, entity.ModeBestOfThree, entity.Score{Player: "bob", Moves: 27})
		require.NoError(t, err)

		// Then: the new score replaces the old one
		scores, err := scoreRepo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Score{Player: "bob", Moves: 27}, scores[entity.ModeBestOfThree])
	})

	t.Run("Save_HigherOrEqualScoreIsIgnored", func(t *testing.T) {
		ctx, scoreRepo := newRepo(t)

		// Given: a stored best score
		require.NoError(t, scoreRepo.Save(ctx, entity.ModeSingle, entity.Score{Player: "alice", Moves: 30}))

		// When: an equal and a higher score are saved
		require.NoError(t, scoreRepo.Save(ctx, entity.ModeSingle, entity.Score{Player: "bob", Moves: 30}))
		require.NoError(t, scoreRepo.Save(ctx, entity.ModeSingle, entity.Score{Player: "carol", Moves: 55}))

		// Then: the original record is kept
		scores, err := scoreRepo.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, entity.Score{Player: "alice", Moves: 30}, scores[entity.ModeSingle])
	})
}
