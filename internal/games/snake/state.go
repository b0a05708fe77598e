package snake

import "time"

// State is the game lifecycle state. Exactly one is active at a time.
type State int

const (
	StateReady State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameOver"
	default:
		return "unknown"
	}
}

// Event drives state transitions.
type Event int

const (
	EventStartOrRestart Event = iota
	EventPauseToggle
	EventCollision
)

func (e Event) String() string {
	switch e {
	case EventStartOrRestart:
		return "startOrRestart"
	case EventPauseToggle:
		return "pauseToggle"
	case EventCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Overlay is the modal shown over the board. At most one is visible.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayReady
	OverlayPaused
	OverlayGameOver
)

// EffectKind names a side effect requested by a transition.
type EffectKind int

const (
	// EffectReset rebuilds snake, score, obstacles, food and power-ups.
	EffectReset EffectKind = iota
	// EffectArmLoop cancels any pending tick and arms the loop at Interval.
	EffectArmLoop
	// EffectStopLoop cancels the pending tick.
	EffectStopLoop
	// EffectShowOverlay shows Overlay and hides the others.
	EffectShowOverlay
	EffectHideOverlays
	// EffectRefreshIndicator redraws the power-up status line.
	EffectRefreshIndicator
	EffectClearPowerUp
	EffectSaveHighScore
	EffectRecordResult
)

func (k EffectKind) String() string {
	switch k {
	case EffectReset:
		return "reset"
	case EffectArmLoop:
		return "armLoop"
	case EffectStopLoop:
		return "stopLoop"
	case EffectShowOverlay:
		return "showOverlay"
	case EffectHideOverlays:
		return "hideOverlays"
	case EffectRefreshIndicator:
		return "refreshIndicator"
	case EffectClearPowerUp:
		return "clearPowerUp"
	case EffectSaveHighScore:
		return "saveHighScore"
	case EffectRecordResult:
		return "recordResult"
	default:
		return "unknown"
	}
}

// Effect is a side effect for the caller to execute.
type Effect struct {
	Kind     EffectKind
	Overlay  Overlay       // for EffectShowOverlay
	Interval time.Duration // for EffectArmLoop, filled in by the Session
}

// IsLoop reports whether the effect controls the tick timer.
func (e Effect) IsLoop() bool {
	return e.Kind == EffectArmLoop || e.Kind == EffectStopLoop
}

// Transition is the pure state function. Unknown or redundant events
// (a second collision, pausing while ready) return the same state and no
// effects.
func Transition(s State, ev Event) (State, []Effect) {
	switch {
	case ev == EventStartOrRestart && (s == StateReady || s == StateGameOver):
		return StatePlaying, []Effect{
			{Kind: EffectReset},
			{Kind: EffectHideOverlays},
			{Kind: EffectArmLoop},
		}

	case ev == EventPauseToggle && s == StatePlaying:
		return StatePaused, []Effect{
			{Kind: EffectStopLoop},
			{Kind: EffectShowOverlay, Overlay: OverlayPaused},
		}

	case ev == EventPauseToggle && s == StatePaused:
		return StatePlaying, []Effect{
			{Kind: EffectHideOverlays},
			{Kind: EffectArmLoop},
			{Kind: EffectRefreshIndicator},
		}

	case ev == EventCollision && s == StatePlaying:
		return StateGameOver, []Effect{
			{Kind: EffectStopLoop},
			{Kind: EffectSaveHighScore},
			{Kind: EffectRecordResult},
			{Kind: EffectClearPowerUp},
			{Kind: EffectShowOverlay, Overlay: OverlayGameOver},
		}
	}
	return s, nil
}
