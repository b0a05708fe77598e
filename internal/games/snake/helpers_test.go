package snake

import (
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

var errStorage = errors.New("storage unavailable")

// memStore is an in-memory HighScoreStore and ResultRecorder.
type memStore struct {
	high    int
	loadErr error
	saveErr error
	saves   []int
	results []Result
}

func (m *memStore) LoadHighScore() (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.high, nil
}

func (m *memStore) SaveHighScore(score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.high = score
	return nil
}

func (m *memStore) RecordResult(r Result) error {
	m.results = append(m.results, r)
	return nil
}

// stepClock advances by one second on every call.
func stepClock() func() time.Time {
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func newTestSession(t *testing.T, rules Rules, store *memStore) *Session {
	t.Helper()
	return NewSession(Options{
		Rules:      rules,
		Rand:       rand.New(rand.NewSource(1)),
		HighScores: store,
		Recorder:   store,
		Now:        stepClock(),
	})
}

// startCleared starts a game and removes obstacles, leaving a single
// standard food in the top-left corner.
func startCleared(t *testing.T, store *memStore) *Session {
	t.Helper()
	s := newTestSession(t, DefaultRules(), store)
	s.HandleAction(core.ActionStartOrRestart)
	if s.State() != StatePlaying {
		t.Fatalf("State() = %v after start, expected playing", s.State())
	}
	s.obstacles = nil
	s.food = &Food{Pos: Position{X: 0, Y: 0}, Kind: FoodStandard}
	return s
}

func hasEffect(effects []Effect, kind EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}
