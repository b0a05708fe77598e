package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/snake-deluxe/internal/games/snake"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func result(score int, cause snake.Collision, endedAt time.Time) snake.Result {
	return snake.Result{
		SessionID: uuid.New(),
		Score:     score,
		Length:    3 + score/10,
		Cause:     cause,
		Ticks:     uint64(score * 2),
		Duration:  1500 * time.Millisecond,
		EndedAt:   endedAt,
	}
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	if err := store.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Errorf("second Close() = %v, expected nil", err)
	}
	if _, err := store.HighScore("k"); !errors.Is(err, ErrClosed) {
		t.Errorf("HighScore() after Close = %v, expected ErrClosed", err)
	}
	if err := store.RecordResult(snake.Result{}); !errors.Is(err, ErrClosed) {
		t.Errorf("RecordResult() after Close = %v, expected ErrClosed", err)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("snake.high_score")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("HighScore() = %d, expected 0 for a missing key", high)
	}

	if err := store.SetHighScore("snake.high_score", 120); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("snake.high_score", 340); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	if err := store.SetHighScore("other", 5); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	high, err = store.HighScore("snake.high_score")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 340 {
		t.Errorf("HighScore() = %d, expected 340", high)
	}
}

func TestStoreCorruptHighScore(t *testing.T) {
	store := openTestStore(t)

	for _, raw := range []string{"not-a-number", "-5"} {
		_, err := store.db.Exec(
			"INSERT OR REPLACE INTO kv (key, value, updated_at) VALUES (?, ?, 0)",
			"snake.high_score", raw,
		)
		if err != nil {
			t.Fatalf("seeding kv failed: %v", err)
		}

		if _, err := store.HighScore("snake.high_score"); err == nil {
			t.Errorf("HighScore() with value %q = nil error, expected corruption error", raw)
		}
	}
}

func TestStoreHighScorePersists(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	if err := store.SetHighScore("snake.high_score", 90); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}
	store.Close()

	reopened, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	high, err := reopened.HighScore("snake.high_score")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 90 {
		t.Errorf("HighScore() = %d after reopen, expected 90", high)
	}
}

func TestStoreResults(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	first := result(100, snake.CollisionWall, base)
	inputs := []snake.Result{
		first,
		result(50, snake.CollisionSelf, base.Add(time.Minute)),
		result(200, snake.CollisionObstacle, base.Add(2*time.Minute)),
		result(100, snake.CollisionSelf, base.Add(3*time.Minute)),
	}
	for _, r := range inputs {
		if err := store.RecordResult(r); err != nil {
			t.Fatalf("RecordResult() failed: %v", err)
		}
	}

	top, err := store.TopResults(3)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("len(TopResults(3)) = %d, expected 3", len(top))
	}
	if top[0].Score != 200 || top[1].Score != 100 || top[2].Score != 100 {
		t.Errorf("scores = %d, %d, %d, expected 200, 100, 100", top[0].Score, top[1].Score, top[2].Score)
	}

	// The earlier 100 wins the tie.
	got := top[1]
	if got.SessionID != first.SessionID {
		t.Errorf("tie winner = %v, expected %v", got.SessionID, first.SessionID)
	}
	if got.Cause != snake.CollisionWall || got.Length != first.Length || got.Ticks != first.Ticks {
		t.Errorf("round trip = %+v, expected %+v", got.Result, first)
	}
	if got.Duration != first.Duration || !got.EndedAt.Equal(first.EndedAt) {
		t.Errorf("timing = %v/%v, expected %v/%v", got.Duration, got.EndedAt, first.Duration, first.EndedAt)
	}

	recent, err := store.RecentResults(2)
	if err != nil {
		t.Fatalf("RecentResults() failed: %v", err)
	}
	if len(recent) != 2 || recent[0].SessionID != inputs[3].SessionID {
		t.Errorf("RecentResults(2) did not start with the latest game")
	}
}

func TestStoreDuplicateSession(t *testing.T) {
	store := openTestStore(t)
	r := result(10, snake.CollisionWall, time.Now())

	if err := store.RecordResult(r); err != nil {
		t.Fatalf("RecordResult() failed: %v", err)
	}
	if err := store.RecordResult(r); err == nil {
		t.Error("RecordResult() accepted a duplicate session id")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	last := time.Date(2024, 5, 5, 8, 0, 0, 0, time.UTC)
	store.RecordResult(result(30, snake.CollisionWall, last.Add(-time.Hour)))
	store.RecordResult(result(90, snake.CollisionSelf, last))

	stats, err = store.GetStats()
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.BestScore != 90 || stats.AvgScore != 60 {
		t.Errorf("stats = %+v, expected 2 games, best 90, avg 60", stats)
	}
	if stats.TotalTicks != 240 {
		t.Errorf("TotalTicks = %d, expected 240", stats.TotalTicks)
	}
	if !stats.LastPlayed.Equal(last) {
		t.Errorf("LastPlayed = %v, expected %v", stats.LastPlayed, last)
	}

	if err := store.ClearResults(); err != nil {
		t.Fatalf("ClearResults() failed: %v", err)
	}
	if top, _ := store.TopResults(10); len(top) != 0 {
		t.Errorf("len(TopResults) = %d after clear, expected 0", len(top))
	}
}

func TestKeyedHighScoreWithSession(t *testing.T) {
	store := openTestStore(t)
	if err := store.SetHighScore("snake.high_score", 15); err != nil {
		t.Fatalf("SetHighScore() failed: %v", err)
	}

	s := snake.NewSession(snake.Options{
		HighScores: KeyedHighScore{Store: store, Key: "snake.high_score"},
		Recorder:   store,
	})
	if s.HighScore() != 15 {
		t.Fatalf("session HighScore() = %d, expected 15", s.HighScore())
	}

	s.Dispatch(snake.EventStartOrRestart)
	s.Dispatch(snake.EventCollision)

	top, err := store.TopResults(10)
	if err != nil {
		t.Fatalf("TopResults() failed: %v", err)
	}
	if len(top) != 1 || top[0].Score != 0 {
		t.Errorf("TopResults() = %+v, expected one zero-score game", top)
	}
}
