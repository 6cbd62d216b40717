package repository

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type unavailableScore struct {
	cause error
}

// NewUnavailableScoreRepository - stands in for a store that could not be opened; every call fails with cause.
func NewUnavailableScoreRepository(cause error) ScoreRepository {
	return &unavailableScore{
		cause: cause,
	}
}

func (that *unavailableScore) Load(_ context.Context) (entity.BestScores, error) {
	return nil, fmt.Errorf("score storage is unavailable: %w", that.cause)
}

func (that *unavailableScore) Save(_ context.Context, _ entity.Mode, _ entity.Score) error {
	return fmt.Errorf("score storage is unavailable: %w", that.cause)
}
