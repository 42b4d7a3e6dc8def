package model

import (
	"fmt"

	"github.com/mcoot/dicegame-go/internal/dependencies/random"
)

// DieSides is the number of faces on each die in a PairOfDice
const DieSides = 6

// Rollable is anything that can be rolled and queried for a score
type Rollable interface {
	// Roll changes the internal state to a new random outcome
	Roll()

	// Score returns the score of the current state
	Score() int

	String() string
}

// PairOfDice is two six-sided dice scored by their sum.
// Both faces are 0 until the first roll.
type PairOfDice struct {
	random random.Random
	die1   int
	die2   int
}

// Ensure PairOfDice implements Rollable
var _ Rollable = (*PairOfDice)(nil)

// NewPairOfDice creates an unrolled pair driven by the given random source
func NewPairOfDice(rnd random.Random) *PairOfDice {
	return &PairOfDice{random: rnd}
}

// RestorePairOfDice creates a pair showing the given faces
func RestorePairOfDice(rnd random.Random, die1, die2 int) *PairOfDice {
	return &PairOfDice{
		random: rnd,
		die1:   die1,
		die2:   die2,
	}
}

// Roll rolls both dice
func (d *PairOfDice) Roll() {
	d.die1 = d.random.Intn(DieSides) + 1
	d.die2 = d.random.Intn(DieSides) + 1
}

// Score returns the sum of both faces
func (d *PairOfDice) Score() int {
	return d.die1 + d.die2
}

// Faces returns the face value of each die
func (d *PairOfDice) Faces() (int, int) {
	return d.die1, d.die2
}

func (d *PairOfDice) String() string {
	return fmt.Sprintf("PairOfDice:[die1=%d, die2=%d, score=%d]", d.die1, d.die2, d.Score())
}
