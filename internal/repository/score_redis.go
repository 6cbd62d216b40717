package repository

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// saveIfLower replaces the hash only when it is empty or holds a higher score.
var saveIfLower = redis.NewScript(`
local current = redis.call('HGET', KEYS[1], 'score')
if current and tonumber(current) <= tonumber(ARGV[2]) then
	return 0
end
redis.call('HSET', KEYS[1], 'player', ARGV[1], 'score', ARGV[2])
return 1
`)

type redisScore struct {
	client *redis.Client
}

func NewRedisScoreRepository(client *redis.Client) ScoreRepository {
	return &redisScore{
		client: client,
	}
}

func scoreKey(mode entity.Mode) string {
	return "score:" + string(mode)
}

func (that *redisScore) Load(ctx context.Context) (entity.BestScores, error) {
	scores := entity.BestScores{}

	for _, mode := range entity.Modes {
		fields, err := that.client.HGetAll(ctx, scoreKey(mode)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get score: %w", err)
		}

		// an empty hash means no record yet
		if len(fields) == 0 {
			continue
		}

		moves, err := strconv.Atoi(fields["score"])
		if err != nil {
			return nil, fmt.Errorf("failed to parse score of %s: %w", mode, err)
		}

		scores[mode] = entity.Score{Player: fields["player"], Moves: moves}
	}

	return scores, nil
}

func (that *redisScore) Save(ctx context.Context, mode entity.Mode, score entity.Score) error {
	err := saveIfLower.Run(ctx, that.client, []string{scoreKey(mode)}, score.Player, score.Moves).Err()
	if err != nil {
		return fmt.Errorf("failed to set score: %w", err)
	}

	return nil
}
