package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/dicegame-go/internal/api"
	"github.com/mcoot/dicegame-go/internal/factory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:        testutil.NopLogger(),
		PlayerService: s.app.PlayerService,
		Metrics:       s.app.Metrics,
	}))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) run(args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := NewRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--server", s.server.URL}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func (s *CLISuite) TestHealth() {
	out, err := s.run("health")
	s.Require().NoError(err)
	s.Equal("Status: ok\n", out)
}

func (s *CLISuite) TestCreateAndGetText() {
	s.app.QueuePlayerID("alice")

	out, err := s.run("player", "create", "--name", "alice cooper", "--tag", "ac")
	s.Require().NoError(err)
	s.Contains(out, "Player: Alice Cooper (p_alice)")
	s.Contains(out, "Gamer Tag: ac")
	s.Contains(out, "Dice: not rolled")

	out, err = s.run("player", "get", "p_alice")
	s.Require().NoError(err)
	s.Contains(out, "Player: Alice Cooper (p_alice)")
}

func (s *CLISuite) TestCreateJSON() {
	s.app.QueuePlayerID("alice")

	out, err := s.run("--output", "json", "player", "create", "--name", "alice cooper")
	s.Require().NoError(err)

	var p Player
	s.Require().NoError(json.Unmarshal([]byte(out), &p))
	s.Equal("p_alice", p.ID)
	s.Equal("Alice", p.FirstName)
}

func (s *CLISuite) TestInvalidNameReportsServerMessage() {
	_, err := s.run("player", "create", "--name", "alice")
	s.Require().Error(err)

	var apiErr *APIError
	s.Require().ErrorAs(err, &apiErr)
	s.Equal(http.StatusBadRequest, apiErr.Status)
	s.Equal("INVALID_ARGUMENT", apiErr.Code)
	s.Equal("The name format is not correct!", apiErr.Message)
}

func (s *CLISuite) TestFullNameTagAndGenerate() {
	s.app.QueuePlayerID("alice")
	_, err := s.run("player", "create")
	s.Require().NoError(err)

	_, err = s.run("player", "full-name", "p_alice", "mary", "shelley")
	s.Require().NoError(err)

	out, err := s.run("player", "generate-tag", "p_alice", "5")
	s.Require().NoError(err)
	s.Contains(out, "Gamer Tag: yellehsyram5")

	out, err = s.run("player", "tag", "p_alice", "frankenstein")
	s.Require().NoError(err)
	s.Contains(out, "Gamer Tag: frankenstein")

	out, err = s.run("player", "rename", "p_alice", "--first", "Percy", "--family", "Shelley")
	s.Require().NoError(err)
	s.Contains(out, "Player: Percy Shelley (p_alice)")
}

func (s *CLISuite) TestGenerateTagRejectsNonNumber() {
	_, err := s.run("player", "generate-tag", "p_alice", "seven")
	s.Error(err)
}

func (s *CLISuite) TestRollAndLeaderboard() {
	s.app.QueuePlayerID("alice")
	_, err := s.run("player", "create", "--name", "alice cooper", "--tag", "ac")
	s.Require().NoError(err)

	s.app.MockRandom.QueueRoll(5, 6)
	out, err := s.run("player", "roll", "p_alice")
	s.Require().NoError(err)
	s.Contains(out, "Rolled: 11")
	s.Contains(out, "New best score!")
	s.Contains(out, "Dice: 5 + 6 = 11")

	out, err = s.run("leaderboard")
	s.Require().NoError(err)
	s.Contains(out, "ac")
	s.Contains(out, "11")
}

func (s *CLISuite) TestListAndDelete() {
	out, err := s.run("player", "list")
	s.Require().NoError(err)
	s.Equal("No players\n", out)

	s.app.QueuePlayerID("alice")
	_, err = s.run("player", "create", "--name", "alice cooper")
	s.Require().NoError(err)

	out, err = s.run("player", "list")
	s.Require().NoError(err)
	s.Contains(out, "Players (1):")

	out, err = s.run("player", "delete", "p_alice")
	s.Require().NoError(err)
	s.Equal("Deleted player p_alice\n", out)

	_, err = s.run("player", "get", "p_alice")
	s.Error(err)
}

func (s *CLISuite) TestInvalidOutputFormat() {
	_, err := s.run("--output", "yaml", "health")
	s.Error(err)
}
