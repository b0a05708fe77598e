package snake

import (
	"fmt"
	"time"
)

// PowerUps tracks the single active timed modifier.
// Activating a kind cancels whatever was active, including the same kind.
type PowerUps struct {
	kind      PowerUpKind
	remaining time.Duration
	duration  time.Duration
}

// NewPowerUps creates a manager whose activations last duration.
func NewPowerUps(duration time.Duration) *PowerUps {
	return &PowerUps{duration: duration}
}

// Active returns the active kind, PowerUpNone if nothing is active.
func (p *PowerUps) Active() PowerUpKind {
	return p.kind
}

// Remaining returns the countdown of the active power-up.
func (p *PowerUps) Remaining() time.Duration {
	return p.remaining
}

// Ghost reports whether ghost mode is active.
func (p *PowerUps) Ghost() bool {
	return p.kind == PowerUpGhost
}

// Activate replaces any active power-up with kind at full duration.
// It reports whether the tick interval must be recomputed.
func (p *PowerUps) Activate(kind PowerUpKind) bool {
	speedChanged := p.Clear()
	if kind == PowerUpNone {
		return speedChanged
	}
	p.kind = kind
	p.remaining = p.duration
	return speedChanged || kind.AffectsSpeed()
}

// Tick decrements the countdown by elapsed. When it reaches zero the
// power-up is deactivated. It reports whether something expired and whether
// the tick interval must be recomputed.
func (p *PowerUps) Tick(elapsed time.Duration) (expired, speedChanged bool) {
	if p.kind == PowerUpNone {
		return false, false
	}
	p.remaining -= elapsed
	if p.remaining > 0 {
		return false, false
	}
	return true, p.Clear()
}

// Clear deactivates the active power-up.
// It reports whether the cleared kind affected the tick interval.
func (p *PowerUps) Clear() bool {
	speedChanged := p.kind.AffectsSpeed()
	p.kind = PowerUpNone
	p.remaining = 0
	return speedChanged
}

// SecondsLeft returns the countdown rounded up to whole seconds.
func (p *PowerUps) SecondsLeft() int {
	if p.remaining <= 0 {
		return 0
	}
	return int((p.remaining + time.Second - 1) / time.Second)
}

// Status returns the indicator line, e.g. "Ghost Mode! (8s)".
// It is empty when nothing is active.
func (p *PowerUps) Status() string {
	if p.kind == PowerUpNone {
		return ""
	}
	return fmt.Sprintf("%s (%ds)", p.kind.Label(), p.SecondsLeft())
}
