package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// ScoreRepository keeps the best score of every game mode.
type ScoreRepository interface {
	Load(ctx context.Context) (entity.BestScores, error)
	// Save stores score for mode unless the stored score already has as few or fewer moves.
	Save(ctx context.Context, mode entity.Mode, score entity.Score) error
}

type sqliteScore struct {
	conn *sql.DB
}

func NewSQLiteScoreRepository(conn *sql.DB) ScoreRepository {
	return &sqliteScore{
		conn: conn,
	}
}

func (that *sqliteScore) Load(ctx context.Context) (entity.BestScores, error) {
	query := `SELECT game_type, player, score FROM scores`

	rows, err := that.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("can't load scores: %w", err)
	}
	defer rows.Close()

	scores := entity.BestScores{}
	for rows.Next() {
		var (
			mode  string
			score entity.Score
		)

		if err = rows.Scan(&mode, &score.Player, &score.Moves); err != nil {
			return nil, fmt.Errorf("can't scan score: %w", err)
		}

		scores[entity.Mode(mode)] = score
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("can't read scores: %w", err)
	}

	return scores, nil
}

func (that *sqliteScore) Save(ctx context.Context, mode entity.Mode, score entity.Score) error {
	query := `INSERT INTO scores (game_type, player, score) VALUES (?, ?, ?)
		ON CONFLICT (game_type) DO UPDATE SET player = excluded.player, score = excluded.score
		WHERE excluded.score < scores.score`

	_, err := that.conn.ExecContext(ctx, query, string(mode), score.Player, score.Moves)
	if err != nil {
		return fmt.Errorf("can't save score: %w", err)
	}

	return nil
}
