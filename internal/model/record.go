package model

import (
	"sort"
	"strings"
	"time"

	"github.com/mcoot/dicegame-go/internal/dependencies/random"
)

// PlayerRecord is the persisted form of a Player
type PlayerRecord struct {
	ID         PlayerID  `json:"id"`
	FirstName  string    `json:"first_name"`
	FamilyName string    `json:"family_name"`
	GamerTag   string    `json:"gamer_tag"`
	DiceFaces  []int     `json:"dice_faces,omitempty"`
	DiceScore  int       `json:"dice_score"`
	RollCount  int       `json:"roll_count"`
	BestScore  int       `json:"best_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ScoreEntry is a single leaderboard position
type ScoreEntry struct {
	PlayerID PlayerID
	Score    int
}

// Name returns the record's name
func (r *PlayerRecord) Name() Name {
	return NewName(r.FirstName, r.FamilyName)
}

// ToPlayer rebuilds the Player, restoring dice faces when they were saved
func (r *PlayerRecord) ToPlayer(rnd random.Random) *Player {
	dice := NewPairOfDice(rnd)
	if len(r.DiceFaces) == 2 {
		dice = RestorePairOfDice(rnd, r.DiceFaces[0], r.DiceFaces[1])
	}
	return NewPlayerWithDice(r.Name(), r.GamerTag, dice)
}

// Apply copies the player's name, gamer tag and dice state into the record.
// Faces are only captured for a PairOfDice; other Rollables keep just the score.
func (r *PlayerRecord) Apply(p *Player) {
	name := p.Name()
	r.FirstName = name.FirstName()
	r.FamilyName = name.FamilyName()
	r.GamerTag = p.GamerTag()
	r.DiceScore = p.DiceScore()

	r.DiceFaces = nil
	if pair, ok := p.Rollable().(*PairOfDice); ok {
		die1, die2 := pair.Faces()
		r.DiceFaces = []int{die1, die2}
	}
}

// ComparePlayerRecords orders records like the players they hold
func ComparePlayerRecords(a, b *PlayerRecord) int {
	if c := a.Name().Compare(b.Name()); c != 0 {
		return c
	}
	return strings.Compare(a.GamerTag, b.GamerTag)
}

// SortRecords sorts records by name then gamer tag, falling back to ID
func SortRecords(records []*PlayerRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		if c := ComparePlayerRecords(records[i], records[j]); c != 0 {
			return c < 0
		}
		return records[i].ID < records[j].ID
	})
}
