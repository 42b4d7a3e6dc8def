package factory

import (
	"io"
	"log/slog"
	"time"

	"github.com/mcoot/dicegame-go/internal/dependencies/mocks"
	"github.com/mcoot/dicegame-go/internal/storage/memory"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	app := newWithDependencies(store, mockClock, mockRandom, logger)

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueuePlayerID makes the next created player get ID "p_"+suffix
func (t *TestApp) QueuePlayerID(suffix string) {
	t.MockRandom.QueueString(suffix)
}
