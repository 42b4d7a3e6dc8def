package storage

import (
	"context"

	"github.com/mcoot/dicegame-go/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, record *model.PlayerRecord) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error)
	GetPlayerByGamerTag(ctx context.Context, gamerTag string) (*model.PlayerRecord, error)
	ListPlayers(ctx context.Context) ([]*model.PlayerRecord, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Leaderboard operations
	// RecordScore keeps the higher of the stored and given score
	RecordScore(ctx context.Context, id model.PlayerID, score int) error
	TopScores(ctx context.Context, limit int) ([]model.ScoreEntry, error)
}
