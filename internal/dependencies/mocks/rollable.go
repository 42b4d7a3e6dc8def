package mocks

import (
	"fmt"

	"github.com/mcoot/dicegame-go/internal/model"
)

// MockRollable is a deterministic Rollable for testing.
// Each Roll takes the next queued score; once the queue is empty the
// score stays where it is.
type MockRollable struct {
	Scores []int
	index  int

	current int
	Rolls   int
}

// Ensure MockRollable implements Rollable
var _ model.Rollable = (*MockRollable)(nil)

// NewMockRollable creates a MockRollable that will report the given scores in order
func NewMockRollable(scores ...int) *MockRollable {
	return &MockRollable{Scores: scores}
}

// Roll advances to the next queued score
func (m *MockRollable) Roll() {
	m.Rolls++
	if m.index < len(m.Scores) {
		m.current = m.Scores[m.index]
		m.index++
	}
}

// Score returns the current score
func (m *MockRollable) Score() int {
	return m.current
}

func (m *MockRollable) String() string {
	return fmt.Sprintf("MockRollable:[score=%d, rolls=%d]", m.current, m.Rolls)
}
