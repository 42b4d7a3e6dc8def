package e2e_test

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/dicegame-go/internal/api"
	"github.com/mcoot/dicegame-go/internal/factory"
	"github.com/mcoot/dicegame-go/internal/testutil"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(t.TempDir(), "dicegame-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/dicegame")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// startTestServer runs the real API server on a free port until the test ends
func startTestServer(t *testing.T) string {
	t.Helper()

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	logger := testutil.NopLogger()
	app, err := factory.New(factory.Config{Logger: logger})
	require.NoError(t, err)

	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
		Metrics:       app.Metrics,
	})
	server := api.NewServer(router, api.DefaultServerConfig(), logger)

	go func() {
		if err := server.Serve(listener); err != nil {
			t.Logf("server error: %v", err)
		}
	}()
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(ctx)
	})

	serverURL := "http://" + listener.Addr().String()
	waitForServer(t, serverURL+"/api/v1/health")
	return serverURL
}

func waitForServer(t *testing.T, url string) {
	t.Helper()

	client := &http.Client{Timeout: 100 * time.Millisecond}
	deadline := time.Now().Add(5 * time.Second)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(50 * time.Millisecond)
	}

	t.Fatal("server did not become ready in time")
}

// Response types for JSON parsing
type playerResponse struct {
	ID         string `json:"id"`
	FirstName  string `json:"first_name"`
	FamilyName string `json:"family_name"`
	FullName   string `json:"full_name"`
	GamerTag   string `json:"gamer_tag"`
	Dice       struct {
		Faces []int `json:"faces"`
		Score int   `json:"score"`
	} `json:"dice"`
	RollCount int `json:"roll_count"`
	BestScore int `json:"best_score"`
}

type rollResponse struct {
	Score   int            `json:"score"`
	NewBest bool           `json:"new_best"`
	Player  playerResponse `json:"player"`
}

type leaderboardResponse struct {
	Entries []struct {
		Rank     int    `json:"rank"`
		PlayerID string `json:"player_id"`
		GamerTag string `json:"gamer_tag"`
		Score    int    `json:"score"`
	} `json:"entries"`
}

type healthResponse struct {
	Status string `json:"status"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Tests

func TestCLI_HealthCheck(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	output, err := cli.run("health")
	require.NoError(t, err, "output: %s", output)

	var resp healthResponse
	require.NoError(t, json.Unmarshal([]byte(output), &resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestCLI_PlayerFlow(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// Create a player
	output, err := cli.run("player", "create", "--name", "ada LOVELACE")
	require.NoError(t, err, "output: %s", output)

	var player playerResponse
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "Ada Lovelace", player.FullName)
	assert.True(t, strings.HasPrefix(player.ID, "p_"))

	// Generate a gamer tag
	output, err = cli.run("player", "generate-tag", player.ID, "12")
	require.NoError(t, err, "output: %s", output)
	require.NoError(t, json.Unmarshal([]byte(output), &player))
	assert.Equal(t, "ecalevolada12", player.GamerTag)

	// Roll three times
	best := 0
	for i := 0; i < 3; i++ {
		output, err = cli.run("player", "roll", player.ID)
		require.NoError(t, err, "output: %s", output)

		var roll rollResponse
		require.NoError(t, json.Unmarshal([]byte(output), &roll))
		assert.GreaterOrEqual(t, roll.Score, 2)
		assert.LessOrEqual(t, roll.Score, 12)
		require.Len(t, roll.Player.Dice.Faces, 2)
		assert.Equal(t, roll.Score, roll.Player.Dice.Faces[0]+roll.Player.Dice.Faces[1])
		if roll.Score > best {
			best = roll.Score
		}
		assert.Equal(t, best, roll.Player.BestScore)
		assert.Equal(t, i+1, roll.Player.RollCount)
	}

	// Leaderboard shows the best score
	output, err = cli.run("leaderboard")
	require.NoError(t, err, "output: %s", output)

	var board leaderboardResponse
	require.NoError(t, json.Unmarshal([]byte(output), &board))
	require.Len(t, board.Entries, 1)
	assert.Equal(t, player.ID, board.Entries[0].PlayerID)
	assert.Equal(t, best, board.Entries[0].Score)

	// Delete the player
	output, err = cli.run("player", "delete", player.ID)
	require.NoError(t, err, "output: %s", output)

	var msg messageResponse
	require.NoError(t, json.Unmarshal([]byte(output), &msg))
	assert.Contains(t, msg.Message, player.ID)
}

func TestCLI_ErrorHandling(t *testing.T) {
	cli := newCLIRunner(t, startTestServer(t))

	// Malformed full name
	output, err := cli.run("player", "create", "--name", "Plato")
	assert.Error(t, err)
	assert.Contains(t, output, "The name format is not correct!")

	// Unknown player
	output, err = cli.run("player", "get", "p_missing")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "not found")
}
