package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersStartAtZero(t *testing.T) {
	m := New()

	assert.Equal(t, 0.0, testutil.ToFloat64(m.PlayersCreated))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.DiceRolls))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GamerTagsGenerated))
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.DiceRolls.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.DiceRolls))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.DiceRolls))
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.DiceRolls.Inc()
	m.DiceScores.Observe(7)

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "dicegame_dice_rolls_total 1")
	assert.Contains(t, rr.Body.String(), "dicegame_dice_score_count 1")
}

func TestInstrumentCountsByCode(t *testing.T) {
	m := New()
	h := m.Instrument(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("get", "404")))
}
