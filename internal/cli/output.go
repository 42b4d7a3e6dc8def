package cli

import (
	"encoding/json"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == OutputJSON {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == OutputJSON {
		data, _ := json.Marshal(map[string]string{"message": msg})
		_, _ = fmt.Fprintln(o.w, string(data))
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case PlayerList:
		o.printPlayerList(v)
	case RollResult:
		o.printRollResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	FamilyName string `json:"family_name"`
	FullName   string `json:"full_name"`
	GamerTag   string `json:"gamer_tag"`
	Dice       Dice   `json:"dice"`
	RollCount  int    `json:"roll_count"`
	BestScore  int    `json:"best_score"`
}

// Dice response type
type Dice struct {
	Faces []int `json:"faces,omitempty"`
	Score int   `json:"score"`
}

// PlayerList response type
type PlayerList struct {
	Players []Player `json:"players"`
}

// RollResult response type
type RollResult struct {
	Score   int    `json:"score"`
	NewBest bool   `json:"new_best"`
	Player  Player `json:"player"`
}

// LeaderboardEntry response type
type LeaderboardEntry struct {
	Rank     int    `json:"rank"`
	PlayerID string `json:"player_id"`
	GamerTag string `json:"gamer_tag"`
	FullName string `json:"full_name"`
	Score    int    `json:"score"`
}

// Leaderboard response type
type Leaderboard struct {
	Entries []LeaderboardEntry `json:"entries"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func displayName(fullName string) string {
	if fullName == "" {
		return "(unnamed)"
	}
	return fullName
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", displayName(p.FullName), p.ID)
	if p.GamerTag != "" {
		_, _ = fmt.Fprintf(o.w, "Gamer Tag: %s\n", p.GamerTag)
	}
	if p.RollCount == 0 {
		_, _ = fmt.Fprintln(o.w, "Dice: not rolled")
		return
	}
	if len(p.Dice.Faces) == 2 {
		_, _ = fmt.Fprintf(o.w, "Dice: %d + %d = %d\n", p.Dice.Faces[0], p.Dice.Faces[1], p.Dice.Score)
	} else {
		_, _ = fmt.Fprintf(o.w, "Dice: %d\n", p.Dice.Score)
	}
	_, _ = fmt.Fprintf(o.w, "Rolls: %d (best %d)\n", p.RollCount, p.BestScore)
}

func (o *Output) printPlayerList(l PlayerList) {
	if len(l.Players) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players")
		return
	}
	_, _ = fmt.Fprintf(o.w, "Players (%d):\n", len(l.Players))
	for _, p := range l.Players {
		tag := ""
		if p.GamerTag != "" {
			tag = " [" + p.GamerTag + "]"
		}
		_, _ = fmt.Fprintf(o.w, "  - %s%s (%s)\n", displayName(p.FullName), tag, p.ID)
	}
}

func (o *Output) printRollResult(r RollResult) {
	_, _ = fmt.Fprintf(o.w, "Rolled: %d\n", r.Score)
	if r.NewBest {
		_, _ = fmt.Fprintln(o.w, "New best score!")
	}
	o.printPlayer(r.Player)
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Entries) == 0 {
		_, _ = fmt.Fprintln(o.w, "No scores yet")
		return
	}
	for _, e := range l.Entries {
		name := e.GamerTag
		if name == "" {
			name = displayName(e.FullName)
		}
		_, _ = fmt.Fprintf(o.w, "%3d. %-24s %2d\n", e.Rank, name, e.Score)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
