package memory

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/storage"
)

// Storage is an in-memory implementation of the storage interface
type Storage struct {
	mu sync.RWMutex

	players       map[model.PlayerID]*model.PlayerRecord
	gamerTagIndex map[string]model.PlayerID
	bestScores    map[model.PlayerID]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		players:       make(map[model.PlayerID]*model.PlayerRecord),
		gamerTagIndex: make(map[string]model.PlayerID),
		bestScores:    make(map[model.PlayerID]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Player operations

func (s *Storage) SavePlayer(ctx context.Context, record *model.PlayerRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.players[record.ID]; ok && existing.GamerTag != record.GamerTag {
		s.unindexGamerTag(existing)
	}
	s.players[record.ID] = clone(record)
	if record.GamerTag != "" {
		s.gamerTagIndex[record.GamerTag] = record.ID
	}
	return nil
}

func (s *Storage) GetPlayer(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clone(record), nil
}

func (s *Storage) GetPlayerByGamerTag(ctx context.Context, gamerTag string) (*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.gamerTagIndex[gamerTag]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	record, ok := s.players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return clone(record), nil
}

func (s *Storage) ListPlayers(ctx context.Context) ([]*model.PlayerRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]*model.PlayerRecord, 0, len(s.players))
	for _, record := range s.players {
		records = append(records, clone(record))
	}
	return records, nil
}

func (s *Storage) DeletePlayer(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.players[id]; ok {
		s.unindexGamerTag(existing)
	}
	delete(s.players, id)
	delete(s.bestScores, id)
	return nil
}

// Leaderboard operations

func (s *Storage) RecordScore(ctx context.Context, id model.PlayerID, score int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if best, ok := s.bestScores[id]; !ok || score > best {
		s.bestScores[id] = score
	}
	return nil
}

// TopScores returns the best scores, highest first. Equal scores are ordered
// by player ID descending, matching a Redis sorted set read in reverse.
func (s *Storage) TopScores(ctx context.Context, limit int) ([]model.ScoreEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]model.ScoreEntry, 0, len(s.bestScores))
	for id, score := range s.bestScores {
		entries = append(entries, model.ScoreEntry{PlayerID: id, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID > entries[j].PlayerID
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// unindexGamerTag removes the record's gamer tag from the index if it still points at it
func (s *Storage) unindexGamerTag(record *model.PlayerRecord) {
	if id, ok := s.gamerTagIndex[record.GamerTag]; ok && id == record.ID {
		delete(s.gamerTagIndex, record.GamerTag)
	}
}

func clone(record *model.PlayerRecord) *model.PlayerRecord {
	c := *record
	c.DiceFaces = slices.Clone(record.DiceFaces)
	return &c
}
