package response

import (
	"time"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/services/player"
)

// Player represents a player in API responses
type Player struct {
	ID         string    `json:"id"`
	FirstName  string    `json:"first_name"`
	FamilyName string    `json:"family_name"`
	FullName   string    `json:"full_name"`
	GamerTag   string    `json:"gamer_tag"`
	Dice       Dice      `json:"dice"`
	RollCount  int       `json:"roll_count"`
	BestScore  int       `json:"best_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Dice represents the current state of a player's dice
type Dice struct {
	Faces []int `json:"faces,omitempty"`
	Score int   `json:"score"`
}

// PlayerFromModel converts a model.PlayerRecord to a response Player
func PlayerFromModel(r *model.PlayerRecord) Player {
	return Player{
		ID:         string(r.ID),
		FirstName:  r.FirstName,
		FamilyName: r.FamilyName,
		FullName:   r.Name().FullName(),
		GamerTag:   r.GamerTag,
		Dice: Dice{
			Faces: r.DiceFaces,
			Score: r.DiceScore,
		},
		RollCount: r.RollCount,
		BestScore: r.BestScore,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// PlayerList is the response for listing players
type PlayerList struct {
	Players []Player `json:"players"`
}

// PlayerListFromModel converts records in order
func PlayerListFromModel(records []*model.PlayerRecord) PlayerList {
	players := make([]Player, len(records))
	for i, r := range records {
		players[i] = PlayerFromModel(r)
	}
	return PlayerList{Players: players}
}

// RollResponse is the response after rolling dice
type RollResponse struct {
	Score   int    `json:"score"`
	NewBest bool   `json:"new_best"`
	Player  Player `json:"player"`
}

// RollResponseFromResult converts a player.RollResult
func RollResponseFromResult(r *player.RollResult) RollResponse {
	return RollResponse{
		Score:   r.Score,
		NewBest: r.NewBest,
		Player:  PlayerFromModel(r.Player),
	}
}

// LeaderboardEntry represents a ranked best score
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	GamerTag string `json:"gamer_tag"`
	FullName string `json:"full_name"`
	Score    int    `json:"score"`
}

// Leaderboard is the response for the leaderboard endpoint
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// LeaderboardFromService converts service leaderboard entries
func LeaderboardFromService(entries []player.LeaderboardEntry) Leaderboard {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Rank:     e.Rank,
			PlayerID: string(e.PlayerID),
			GamerTag: e.GamerTag,
			FullName: e.FullName,
			Score:    e.Score,
		}
	}
	return Leaderboard{Entries: out}
}

// Health is the response for the health check
type Health struct {
	Status string `json:"status"`
}
