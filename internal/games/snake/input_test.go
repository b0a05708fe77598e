package snake

import (
	"testing"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

func TestInputBufferRejectsReversal(t *testing.T) {
	tests := []struct {
		current  Direction
		request  Direction
		accepted bool
	}{
		{DirRight, DirLeft, false},
		{DirLeft, DirRight, false},
		{DirUp, DirDown, false},
		{DirDown, DirUp, false},
		{DirRight, DirUp, true},
		{DirRight, DirDown, true},
		{DirRight, DirRight, true},
		{DirUp, DirLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.current.String()+"->"+tt.request.String(), func(t *testing.T) {
			b := NewInputBuffer(tt.current)
			if got := b.Request(tt.request); got != tt.accepted {
				t.Errorf("Request(%v) = %v, expected %v", tt.request, got, tt.accepted)
			}
			want := tt.current
			if tt.accepted {
				want = tt.request
			}
			if b.Next() != want {
				t.Errorf("Next() = %v, expected %v", b.Next(), want)
			}
		})
	}
}

func TestInputBufferLastRequestWins(t *testing.T) {
	b := NewInputBuffer(DirRight)
	b.Request(DirUp)
	b.Request(DirDown)

	if got := b.Advance(); got != DirDown {
		t.Errorf("Advance() = %v, expected down", got)
	}
	if b.Current() != DirDown {
		t.Errorf("Current() = %v, expected down", b.Current())
	}
}

func TestInputBufferChecksAppliedDirection(t *testing.T) {
	// Up is buffered but not applied, so left is still a reversal of right.
	b := NewInputBuffer(DirRight)
	b.Request(DirUp)
	if b.Request(DirLeft) {
		t.Error("Request(left) accepted while still moving right")
	}
	if b.Next() != DirUp {
		t.Errorf("Next() = %v, expected up", b.Next())
	}
}

func TestSessionIgnoresReversal(t *testing.T) {
	s := startCleared(t, &memStore{})
	s.HandleAction(core.ActionMoveLeft)
	if s.input.Next() != DirRight {
		t.Errorf("buffered = %v, expected right", s.input.Next())
	}

	s.Tick()
	if s.snake[0] != (Position{X: 11, Y: 10}) {
		t.Errorf("head = %v, expected (11,10)", s.snake[0])
	}
}

func TestSessionIgnoresMovesWhenNotPlaying(t *testing.T) {
	s := newTestSession(t, DefaultRules(), &memStore{})
	if effects := s.HandleAction(core.ActionMoveUp); effects != nil {
		t.Errorf("effects = %v, expected none", effects)
	}
	if effects := s.HandleAction(core.ActionNone); effects != nil {
		t.Errorf("effects = %v, expected none", effects)
	}
	if s.State() != StateReady {
		t.Errorf("State() = %v, expected ready", s.State())
	}
}
