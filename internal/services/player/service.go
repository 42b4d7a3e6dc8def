package player

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/dicegame-go/internal/dependencies/clock"
	"github.com/mcoot/dicegame-go/internal/dependencies/random"
	"github.com/mcoot/dicegame-go/internal/metrics"
	"github.com/mcoot/dicegame-go/internal/model"
	"github.com/mcoot/dicegame-go/internal/storage"
)

// Player ID generation settings
const (
	IDPrefix      = "p_"
	IDLength      = 12
	maxIDAttempts = 5
)

// DefaultLeaderboardSize is used when a leaderboard limit is not positive
const DefaultLeaderboardSize = 10

// ErrIDExhausted is returned when no unused player ID could be generated
var ErrIDExhausted = errors.New("could not generate a unique player ID")

// RollResult describes the outcome of a dice roll
type RollResult struct {
	Player  *model.PlayerRecord
	Score   int
	NewBest bool
}

// LeaderboardEntry is a ranked best score with player details
type LeaderboardEntry struct {
	Rank     int
	PlayerID model.PlayerID
	GamerTag string
	FullName string
	Score    int
}

// Service manages players: naming, gamer tags and dice rolls.
// Mutations are serialised so concurrent requests on the same player
// do not lose updates.
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	random  random.Random
	metrics *metrics.Metrics
	logger  *slog.Logger

	mu sync.Mutex
}

// New creates a new player Service
func New(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		storage: storage,
		clock:   clock,
		random:  random,
		metrics: metrics,
		logger:  logger,
	}
}

// Create registers a new player. A non-empty fullName is parsed as
// "first family"; a malformed one is rejected with model.ErrInvalidArgument.
func (s *Service) Create(ctx context.Context, fullName, gamerTag string) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := model.NewPlayerWithDice(model.Name{}, gamerTag, model.NewPairOfDice(s.random))
	if fullName != "" {
		if err := s.setFullName(p, fullName); err != nil {
			return nil, err
		}
	}

	if err := s.ensureGamerTagFree(ctx, "", gamerTag); err != nil {
		return nil, err
	}

	id, err := s.newID(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &model.PlayerRecord{
		ID:        id,
		CreatedAt: now,
		UpdatedAt: now,
	}
	record.Apply(p)

	if err := s.storage.SavePlayer(ctx, record); err != nil {
		return nil, err
	}

	s.metrics.PlayersCreated.Inc()
	s.logger.Info("player created",
		slog.String("player_id", string(id)),
		slog.String("gamer_tag", record.GamerTag),
	)
	return record, nil
}

// Get retrieves a player
func (s *Service) Get(ctx context.Context, id model.PlayerID) (*model.PlayerRecord, error) {
	return s.storage.GetPlayer(ctx, id)
}

// List returns all players ordered by name, then gamer tag
func (s *Service) List(ctx context.Context) ([]*model.PlayerRecord, error) {
	records, err := s.storage.ListPlayers(ctx)
	if err != nil {
		return nil, err
	}
	model.SortRecords(records)
	return records, nil
}

// Delete removes a player and their leaderboard entry
func (s *Service) Delete(ctx context.Context, id model.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.storage.GetPlayer(ctx, id); err != nil {
		return err
	}
	if err := s.storage.DeletePlayer(ctx, id); err != nil {
		return err
	}

	s.logger.Info("player deleted", slog.String("player_id", string(id)))
	return nil
}

// Rename sets the first and family name verbatim
func (s *Service) Rename(ctx context.Context, id model.PlayerID, firstName, familyName string) (*model.PlayerRecord, error) {
	return s.update(ctx, id, func(p *model.Player) error {
		p.SetName(model.NewName(firstName, familyName))
		return nil
	})
}

// SetFullName parses "first family" into the player's name.
// Malformed input returns model.ErrInvalidArgument and leaves the player unchanged.
func (s *Service) SetFullName(ctx context.Context, id model.PlayerID, fullName string) (*model.PlayerRecord, error) {
	return s.update(ctx, id, func(p *model.Player) error {
		return s.setFullName(p, fullName)
	})
}

// SetGamerTag replaces the gamer tag. Tags are unique across players.
func (s *Service) SetGamerTag(ctx context.Context, id model.PlayerID, gamerTag string) (*model.PlayerRecord, error) {
	return s.update(ctx, id, func(p *model.Player) error {
		if err := s.ensureGamerTagFree(ctx, id, gamerTag); err != nil {
			return err
		}
		p.SetGamerTag(gamerTag)
		return nil
	})
}

// GenerateGamerTag derives a gamer tag from the player's name and num.
// A num outside [1, 100] leaves the player unchanged without error.
func (s *Service) GenerateGamerTag(ctx context.Context, id model.PlayerID, num int) (*model.PlayerRecord, error) {
	return s.update(ctx, id, func(p *model.Player) error {
		previous := p.GamerTag()
		p.GenerateGamerTag(num)
		if p.GamerTag() == previous {
			return nil
		}
		if err := s.ensureGamerTagFree(ctx, id, p.GamerTag()); err != nil {
			return err
		}
		s.metrics.GamerTagsGenerated.Inc()
		return nil
	})
}

// Roll rolls the player's dice, keeps the result and updates the leaderboard
func (s *Service) Roll(ctx context.Context, id model.PlayerID) (*RollResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	p := record.ToPlayer(s.random)
	p.RollDice()
	score := p.DiceScore()

	record.Apply(p)
	record.RollCount++
	newBest := record.RollCount == 1 || score > record.BestScore
	if newBest {
		record.BestScore = score
	}
	record.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, record); err != nil {
		return nil, err
	}
	if err := s.storage.RecordScore(ctx, id, score); err != nil {
		return nil, err
	}

	s.metrics.DiceRolls.Inc()
	s.metrics.DiceScores.Observe(float64(score))
	s.logger.Debug("dice rolled",
		slog.String("player_id", string(id)),
		slog.Int("score", score),
		slog.Bool("new_best", newBest),
	)

	return &RollResult{
		Player:  record,
		Score:   score,
		NewBest: newBest,
	}, nil
}

// Leaderboard returns the best scores, highest first
func (s *Service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLeaderboardSize
	}

	scores, err := s.storage.TopScores(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(scores))
	for _, score := range scores {
		record, err := s.storage.GetPlayer(ctx, score.PlayerID)
		if errors.Is(err, model.ErrPlayerNotFound) {
			continue // Player expired or was removed
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, LeaderboardEntry{
			Rank:     len(entries) + 1,
			PlayerID: record.ID,
			GamerTag: record.GamerTag,
			FullName: record.Name().FullName(),
			Score:    score.Score,
		})
	}
	return entries, nil
}

// update loads a player, applies fn and saves the result
func (s *Service) update(ctx context.Context, id model.PlayerID, fn func(p *model.Player) error) (*model.PlayerRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, err := s.storage.GetPlayer(ctx, id)
	if err != nil {
		return nil, err
	}

	p := record.ToPlayer(s.random)
	if err := fn(p); err != nil {
		return nil, err
	}

	record.Apply(p)
	record.UpdatedAt = s.clock.Now()

	if err := s.storage.SavePlayer(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *Service) setFullName(p *model.Player, fullName string) error {
	if err := p.SetFullPlayerName(fullName); err != nil {
		s.metrics.InvalidNameRequests.Inc()
		s.logger.Debug("rejected full name", slog.String("full_name", fullName))
		return err
	}
	return nil
}

// ensureGamerTagFree checks that no player other than self holds gamerTag
func (s *Service) ensureGamerTagFree(ctx context.Context, self model.PlayerID, gamerTag string) error {
	if gamerTag == "" {
		return nil
	}
	holder, err := s.storage.GetPlayerByGamerTag(ctx, gamerTag)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if holder.ID != self {
		return model.ErrGamerTagTaken
	}
	return nil
}

func (s *Service) newID(ctx context.Context) (model.PlayerID, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := model.PlayerID(random.ID(s.random, IDPrefix, IDLength))
		_, err := s.storage.GetPlayer(ctx, id)
		if errors.Is(err, model.ErrPlayerNotFound) {
			return id, nil
		}
		if err != nil {
			return "", fmt.Errorf("check player id: %w", err)
		}
	}
	return "", ErrIDExhausted
}
