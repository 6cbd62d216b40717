package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type scoreRepo interface {
	Load(ctx context.Context) (entity.BestScores, error)
}

type Handlers interface {
	Ping(ctx echo.Context) error
	Scores(ctx echo.Context) error
}

type handlers struct {
	logger *slog.Logger
	scores scoreRepo
}

func NewHandlers(logger *slog.Logger, scores scoreRepo) Handlers {
	return &handlers{
		logger: logger.With("component", "rest"),
		scores: scores,
	}
}

func (that *handlers) Ping(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "pong")
}

// Scores - best score per mode; modes without a record are null.
func (that *handlers) Scores(ctx echo.Context) error {
	scores, err := that.scores.Load(ctx.Request().Context())
	if err != nil {
		that.logger.Error("failed to load scores", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	response := make(map[entity.Mode]*entity.Score, len(entity.Modes))
	for _, mode := range entity.Modes {
		if score, ok := scores[mode]; ok {
			response[mode] = &score
		} else {
			response[mode] = nil
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
