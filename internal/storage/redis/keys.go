package redis

import (
	"fmt"

	"github.com/mcoot/dicegame-go/internal/model"
)

// Key prefix for all dice game data
const keyPrefix = "dicegame"

// playerKey returns the Redis key for a PlayerRecord
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playersIndexKey returns the Redis key for the SET of all player IDs
func playersIndexKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// gamerTagIndexKey returns the Redis key for the gamer_tag -> player_id index
func gamerTagIndexKey(gamerTag string) string {
	return fmt.Sprintf("%s:idx:gamer_tag:%s", keyPrefix, gamerTag)
}

// leaderboardKey returns the Redis key for the best score ZSET
func leaderboardKey() string {
	return fmt.Sprintf("%s:leaderboard", keyPrefix)
}
