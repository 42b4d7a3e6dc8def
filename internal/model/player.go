package model

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mcoot/dicegame-go/internal/dependencies/random"
)

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Gamer tag generation accepts seeds in [MinGamerTagSeed, MaxGamerTagSeed]
const (
	MinGamerTagSeed = 1
	MaxGamerTagSeed = 100
)

// Player is a participant composed of a real name, a gamer tag and a
// rollable pair of dice. The name and dice are always present.
type Player struct {
	name     Name
	gamerTag string
	dice     Rollable
}

// NewPlayer creates a player with an empty name and gamer tag and a real pair of dice
func NewPlayer() *Player {
	return NewPlayerWithName(Name{}, "")
}

// NewPlayerWithName creates a player with a real pair of dice
func NewPlayerWithName(name Name, gamerTag string) *Player {
	return NewPlayerWithDice(name, gamerTag, nil)
}

// NewPlayerWithDice creates a player rolling the given dice.
// A nil dice falls back to a real pair.
func NewPlayerWithDice(name Name, gamerTag string, dice Rollable) *Player {
	if dice == nil {
		dice = NewPairOfDice(random.New())
	}
	return &Player{
		name:     name,
		gamerTag: gamerTag,
		dice:     dice,
	}
}

// Name returns the player's real name
func (p *Player) Name() Name {
	return p.name
}

// SetName replaces the player's real name
func (p *Player) SetName(name Name) {
	p.name = name
}

// GamerTag returns the player's gamer tag
func (p *Player) GamerTag() string {
	return p.gamerTag
}

// SetGamerTag replaces the gamer tag without validation
func (p *Player) SetGamerTag(gamerTag string) {
	p.gamerTag = gamerTag
}

// Rollable returns the player's dice
func (p *Player) Rollable() Rollable {
	return p.dice
}

// RollDice rolls the player's dice
func (p *Player) RollDice() {
	p.dice.Roll()
}

// DiceScore returns the current score of the player's dice
func (p *Player) DiceScore() int {
	return p.dice.Score()
}

// SetFullPlayerName parses "first family" and replaces the player's name.
// The input is split on single spaces; the first two tokens are capitalised
// and anything after them is ignored. Fewer than two tokens, or an empty
// token among the first two, is an InvalidArgumentError.
func (p *Player) SetFullPlayerName(fullName string) error {
	names := splitOnSpace(fullName)
	if len(names) < 2 || names[0] == "" || names[1] == "" {
		return NewInvalidArgumentError(MsgInvalidNameFormat)
	}

	p.name = NewName(capitalize(names[0]), capitalize(names[1]))
	return nil
}

// GenerateGamerTag derives the gamer tag from the name and num: the lower-cased
// first and family name joined, stripped of whitespace, reversed, followed by num.
// Does nothing unless num is within [MinGamerTagSeed, MaxGamerTagSeed].
func (p *Player) GenerateGamerTag(num int) {
	if num < MinGamerTagSeed || num > MaxGamerTagSeed {
		return
	}

	lower := cases.Lower(language.Und)
	joined := lower.String(p.name.FirstName()) + lower.String(p.name.FamilyName())
	joined = strings.Map(func(r rune) rune {
		if isSpace(r) {
			return -1
		}
		return r
	}, joined)

	p.gamerTag = reverse(joined) + strconv.Itoa(num)
}

// Compare orders players by name, then gamer tag
func (p *Player) Compare(other *Player) int {
	if c := p.name.Compare(other.name); c != 0 {
		return c
	}
	return strings.Compare(p.gamerTag, other.gamerTag)
}

func (p *Player) String() string {
	return "Player:[name=" + p.name.String() + ", gamerTag=" + p.gamerTag + ", Rollable =" + p.dice.String() + "]"
}

// splitOnSpace splits on the single space character, dropping trailing
// empty tokens. Empty tokens elsewhere are kept.
func splitOnSpace(s string) []string {
	tokens := strings.Split(s, " ")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// capitalize upper-cases the first rune of a non-empty word and lower-cases the rest
func capitalize(word string) string {
	first, size := utf8.DecodeRuneInString(word)
	return cases.Upper(language.Und).String(string(first)) + cases.Lower(language.Und).String(word[size:])
}

// isSpace matches the ASCII whitespace set: space, \t, \n, \v, \f, \r
func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
