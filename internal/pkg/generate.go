package pkg

import "github.com/google/uuid"

// GenerateGameID - generates a unique identifier for a game, used to correlate log lines.
func GenerateGameID() string {
	return uuid.NewString()
}
