package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dicegame-go/internal/dependencies/mocks"
	"github.com/mcoot/dicegame-go/internal/model"
)

type PlayerSuite struct {
	suite.Suite
	dice   *mocks.MockRollable
	player *model.Player
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerSuite))
}

func (s *PlayerSuite) SetupTest() {
	s.dice = mocks.NewMockRollable(7, 12)
	s.player = model.NewPlayerWithDice(model.NewName("John", "Smith"), "jsmith", s.dice)
}

// Construction tests

func (s *PlayerSuite) TestNewPlayerDefaults() {
	p := model.NewPlayer()

	s.Equal(model.Name{}, p.Name())
	s.Equal("", p.GamerTag())
	s.Require().NotNil(p.Rollable())
	s.IsType(&model.PairOfDice{}, p.Rollable())
}

func (s *PlayerSuite) TestNewPlayerWithName() {
	p := model.NewPlayerWithName(model.NewName("Ada", "Lovelace"), "countess")

	s.True(p.Name().Equal(model.NewName("Ada", "Lovelace")))
	s.Equal("countess", p.GamerTag())
	s.NotNil(p.Rollable())
}

func (s *PlayerSuite) TestNewPlayerWithNilDiceFallsBack() {
	p := model.NewPlayerWithDice(model.NewName("Ada", "Lovelace"), "countess", nil)
	s.NotNil(p.Rollable())
}

func (s *PlayerSuite) TestAccessors() {
	s.player.SetName(model.NewName("Jane", "Doe"))
	s.player.SetGamerTag("")

	s.True(s.player.Name().Equal(model.NewName("Jane", "Doe")))
	s.Equal("", s.player.GamerTag())
	s.Same(s.dice, s.player.Rollable())
}

// Dice delegation tests

func (s *PlayerSuite) TestRollDiceDelegates() {
	s.Equal(0, s.player.DiceScore())

	s.player.RollDice()
	s.Equal(7, s.player.DiceScore())
	s.Equal(7, s.dice.Score())

	s.player.RollDice()
	s.Equal(12, s.player.DiceScore())
	s.Equal(2, s.dice.Rolls)
}

func (s *PlayerSuite) TestRollDiceWithPairOfDice() {
	rnd := mocks.NewMockRandom()
	rnd.QueueRoll(3, 5)
	p := model.NewPlayerWithDice(model.NewName("A", "B"), "x", model.NewPairOfDice(rnd))

	p.RollDice()
	s.Equal(8, p.DiceScore())
}

// SetFullPlayerName tests

func (s *PlayerSuite) TestSetFullPlayerNameCapitalises() {
	err := s.player.SetFullPlayerName("john smith")
	s.Require().NoError(err)

	s.True(s.player.Name().Equal(model.NewName("John", "Smith")))
}

func (s *PlayerSuite) TestSetFullPlayerNameLowercasesRemainder() {
	err := s.player.SetFullPlayerName("jOHN sMITH")
	s.Require().NoError(err)

	s.Equal("John", s.player.Name().FirstName())
	s.Equal("Smith", s.player.Name().FamilyName())
}

func (s *PlayerSuite) TestSetFullPlayerNameIgnoresExtraTokens() {
	err := s.player.SetFullPlayerName("mary jane watson")
	s.Require().NoError(err)

	s.True(s.player.Name().Equal(model.NewName("Mary", "Jane")))
}

func (s *PlayerSuite) TestSetFullPlayerNameLeavesGamerTag() {
	_ = s.player.SetFullPlayerName("ada lovelace")
	s.Equal("jsmith", s.player.GamerTag())
}

func (s *PlayerSuite) TestSetFullPlayerNameSingleCharacterTokens() {
	err := s.player.SetFullPlayerName("a b")
	s.Require().NoError(err)

	s.True(s.player.Name().Equal(model.NewName("A", "B")))
}

func (s *PlayerSuite) TestSetFullPlayerNameNonASCII() {
	err := s.player.SetFullPlayerName("émile ZOLA")
	s.Require().NoError(err)

	s.Equal("Émile", s.player.Name().FirstName())
	s.Equal("Zola", s.player.Name().FamilyName())
}

func (s *PlayerSuite) TestSetFullPlayerNameTooFewTokens() {
	for _, input := range []string{"John", "", "John ", "John   "} {
		err := s.player.SetFullPlayerName(input)
		s.Require().Error(err, "input %q", input)
		s.True(errors.Is(err, model.ErrInvalidArgument), "input %q", input)
		s.Equal("The name format is not correct!", err.Error())
	}

	// Name is untouched on failure
	s.True(s.player.Name().Equal(model.NewName("John", "Smith")))
}

func (s *PlayerSuite) TestSetFullPlayerNameEmptyLeadingToken() {
	for _, input := range []string{"john  smith", " john", "  "} {
		err := s.player.SetFullPlayerName(input)
		s.ErrorIs(err, model.ErrInvalidArgument, "input %q", input)
	}
}

func (s *PlayerSuite) TestSetFullPlayerNameEmptyLaterTokenIsIgnored() {
	err := s.player.SetFullPlayerName("john smith  extra")
	s.Require().NoError(err)

	s.True(s.player.Name().Equal(model.NewName("John", "Smith")))
}

func (s *PlayerSuite) TestSetFullPlayerNameErrorType() {
	err := s.player.SetFullPlayerName("John")

	var invalid *model.InvalidArgumentError
	s.Require().ErrorAs(err, &invalid)
	s.Equal(model.MsgInvalidNameFormat, invalid.Message)
}

// GenerateGamerTag tests

func (s *PlayerSuite) TestGenerateGamerTag() {
	s.player.GenerateGamerTag(5)
	s.Equal("htimsnhoj5", s.player.GamerTag())
}

func (s *PlayerSuite) TestGenerateGamerTagBounds() {
	s.player.GenerateGamerTag(1)
	s.Equal("htimsnhoj1", s.player.GamerTag())

	s.player.GenerateGamerTag(100)
	s.Equal("htimsnhoj100", s.player.GamerTag())
}

func (s *PlayerSuite) TestGenerateGamerTagOutOfRangeIsNoop() {
	for _, num := range []int{0, 101, -1, 1000} {
		s.player.GenerateGamerTag(num)
		s.Equal("jsmith", s.player.GamerTag(), "num %d", num)
	}
}

func (s *PlayerSuite) TestGenerateGamerTagStripsWhitespace() {
	s.player.SetName(model.NewName("Mary Ann", "Van\tDyke"))

	s.player.GenerateGamerTag(7)
	s.Equal("ekydnavnnayram7", s.player.GamerTag())
}

func (s *PlayerSuite) TestGenerateGamerTagDoesNotMutateName() {
	s.player.GenerateGamerTag(5)
	s.True(s.player.Name().Equal(model.NewName("John", "Smith")))
}

func (s *PlayerSuite) TestGenerateGamerTagEmptyName() {
	s.player.SetName(model.Name{})

	s.player.GenerateGamerTag(42)
	s.Equal("42", s.player.GamerTag())
}

// Ordering tests

func (s *PlayerSuite) TestCompareByName() {
	a := model.NewPlayerWithDice(model.NewName("Zed", "Adams"), "zzz", s.dice)
	b := model.NewPlayerWithDice(model.NewName("Amy", "Brown"), "aaa", s.dice)

	s.Negative(a.Compare(b))
	s.Positive(b.Compare(a))
}

func (s *PlayerSuite) TestCompareTieBrokenByGamerTag() {
	x := model.NewPlayerWithDice(model.NewName("A", "B"), "x", s.dice)
	y := model.NewPlayerWithDice(model.NewName("A", "B"), "y", s.dice)

	s.Negative(x.Compare(y))
	s.Positive(y.Compare(x))
	s.Zero(x.Compare(x))
}

// String tests

func (s *PlayerSuite) TestString() {
	s.player.RollDice()
	s.Equal(
		"Player:[name=Name:[firstName=John, familyName=Smith], gamerTag=jsmith, Rollable =MockRollable:[score=7, rolls=1]]",
		s.player.String(),
	)
}
