package snake

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-deluxe/internal/core"
)

// HighScoreStore persists the best score across sessions.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// ResultRecorder stores the outcome of finished games.
type ResultRecorder interface {
	RecordResult(r Result) error
}

// Result describes a finished game.
type Result struct {
	SessionID uuid.UUID
	Score     int
	Length    int
	Cause     Collision
	Ticks     uint64
	Duration  time.Duration
	EndedAt   time.Time
}

// Options configures a Session. Zero values select defaults.
type Options struct {
	Rules      Rules
	Rand       *rand.Rand
	HighScores HighScoreStore
	Recorder   ResultRecorder
	Logger     *log.Logger
	Now        func() time.Time
}

// Session owns all mutable game state. It is driven from a single goroutine:
// the platform calls HandleAction on input and Tick when the loop fires,
// and executes the loop effects they return.
type Session struct {
	rules      Rules
	rng        *rand.Rand
	placer     *Placer
	highScores HighScoreStore
	recorder   ResultRecorder
	logger     *log.Logger
	now        func() time.Time

	state     State
	overlay   Overlay
	snake     []Position // Head at index 0
	input     InputBuffer
	food      *Food
	obstacles []Position
	powerUps  *PowerUps
	status    string // power-up indicator line
	score     int
	highScore int
	interval  time.Duration

	id        uuid.UUID
	startedAt time.Time
	ticks     uint64
	cause     Collision
}

// NewSession creates a session in the ready state and loads the high score.
func NewSession(opts Options) *Session {
	if opts.Rules.Grid.Cells() == 0 {
		opts.Rules = DefaultRules()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Session{
		rules:      opts.Rules,
		rng:        opts.Rand,
		placer:     NewPlacer(opts.Rules.Grid, opts.Rand, opts.Rules.Weights),
		highScores: opts.HighScores,
		recorder:   opts.Recorder,
		logger:     opts.Logger,
		now:        opts.Now,
		state:      StateReady,
		overlay:    OverlayReady,
		powerUps:   NewPowerUps(opts.Rules.PowerUpDuration),
		interval:   ComputeSpeed(opts.Rules.Speed, 0, PowerUpNone),
	}
	s.loadHighScore()
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Interval returns the current tick period.
func (s *Session) Interval() time.Duration {
	return s.interval
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best known score.
func (s *Session) HighScore() int {
	return s.highScore
}

// HandleAction applies a player intent. Direction requests only count while
// playing; start and pause go through the state machine. The returned
// effects are the loop effects the caller must execute.
func (s *Session) HandleAction(a core.Action) []Effect {
	switch a {
	case core.ActionStartOrRestart:
		return s.Dispatch(EventStartOrRestart)
	case core.ActionPauseToggle:
		return s.Dispatch(EventPauseToggle)
	}

	if !a.IsMove() || s.state != StatePlaying {
		return nil
	}
	dir, _ := directionFor(a)
	if !s.input.Request(dir) {
		s.logger.Debug("reversal rejected", "requested", dir, "current", s.input.Current())
	}
	return nil
}

// Dispatch runs the state machine for ev, executes the game-side effects and
// returns the loop effects with their interval filled in.
func (s *Session) Dispatch(ev Event) []Effect {
	next, effects := Transition(s.state, ev)
	if next == s.state && len(effects) == 0 {
		return nil
	}
	s.logger.Debug("state change", "event", ev, "from", s.state, "to", next)
	s.state = next

	var out []Effect
	for _, e := range effects {
		switch e.Kind {
		case EffectReset:
			s.reset()
		case EffectShowOverlay:
			s.overlay = e.Overlay
		case EffectHideOverlays:
			s.overlay = OverlayNone
		case EffectRefreshIndicator:
			s.status = s.powerUps.Status()
		case EffectClearPowerUp:
			s.clearPowerUp()
		case EffectSaveHighScore:
			s.saveHighScore()
		case EffectRecordResult:
			s.recordResult()
		case EffectArmLoop:
			e.Interval = s.interval
			out = append(out, e)
		case EffectStopLoop:
			out = append(out, e)
		}
	}
	return out
}

// TickResult reports what happened during one tick.
type TickResult struct {
	Effects   []Effect  // loop effects, e.g. a rearm after a speed change
	Eaten     *Food     // food consumed this tick, if any
	Collision Collision // terminal collision, if any
}

// Tick advances the game by one step: apply the buffered direction, move,
// check collisions, then decay the power-up countdown by the tick interval.
// It is a no-op unless the session is playing.
func (s *Session) Tick() TickResult {
	if s.state != StatePlaying {
		return TickResult{}
	}
	s.ticks++
	before := s.interval

	var res TickResult
	res.Eaten = s.move(s.input.Advance())

	if c := DetectCollision(s.rules.Grid, s.snake, s.obstacles, s.powerUps.Ghost()); c != CollisionNone {
		s.cause = c
		s.logger.Info("collision", "cause", c, "score", s.score)
		res.Collision = c
		res.Effects = s.Dispatch(EventCollision)
		return res
	}

	s.tickPowerUps()

	if s.interval != before {
		res.Effects = append(res.Effects, Effect{Kind: EffectArmLoop, Interval: s.interval})
	}
	return res
}

// reset rebuilds every entity for a fresh game. Obstacles are placed before
// food so food avoids them.
func (s *Session) reset() {
	grid := s.rules.Grid
	spawn := grid.Center()
	s.snake = []Position{
		spawn,
		{X: spawn.X - 1, Y: spawn.Y},
		{X: spawn.X - 2, Y: spawn.Y},
	}
	s.input = NewInputBuffer(DirRight)
	s.score = 0
	s.ticks = 0
	s.cause = CollisionNone
	s.powerUps.Clear()
	s.status = ""
	s.id = uuid.New()
	s.startedAt = s.now()

	obstacles, ok := s.placer.PlaceObstacles(s.rules.ObstacleCount, spawn, s.snake, s.rules.SafeZoneRadius)
	if !ok {
		s.logger.Warn("could not place all obstacles", "placed", len(obstacles), "wanted", s.rules.ObstacleCount)
	}
	s.obstacles = obstacles

	s.food = nil
	s.placeFood()
	s.interval = ComputeSpeed(s.rules.Speed, s.score, s.powerUps.Active())

	s.logger.Debug("game reset", "session", s.id, "obstacles", len(s.obstacles), "interval", s.interval)
}

// placeFood replaces the current food, falling back to a standard food at
// the origin when the board has no free tile.
func (s *Session) placeFood() {
	f, ok := s.placer.PlaceFood(s.board())
	if !ok {
		s.logger.Warn("could not place food, using fallback", "length", len(s.snake))
		f = FallbackFood()
	}
	s.food = &f
}

func (s *Session) board() Board {
	return Board{Snake: s.snake, Obstacles: s.obstacles, Food: s.food}
}

func (s *Session) recomputeSpeed() {
	s.interval = ComputeSpeed(s.rules.Speed, s.score, s.powerUps.Active())
}

func (s *Session) activatePowerUp(kind PowerUpKind) {
	if s.powerUps.Activate(kind) {
		s.recomputeSpeed()
	}
	s.status = s.powerUps.Status()
	s.logger.Debug("power-up activated", "kind", kind, "duration", s.powerUps.Remaining())
}

func (s *Session) clearPowerUp() {
	if s.powerUps.Clear() {
		s.recomputeSpeed()
	}
	s.status = ""
}

func (s *Session) tickPowerUps() {
	kind := s.powerUps.Active()
	expired, speedChanged := s.powerUps.Tick(s.interval)
	if speedChanged {
		s.recomputeSpeed()
	}
	if expired {
		s.logger.Debug("power-up expired", "kind", kind)
	}
	s.status = s.powerUps.Status()
}

func (s *Session) loadHighScore() {
	if s.highScores == nil {
		return
	}
	score, err := s.highScores.LoadHighScore()
	if err != nil {
		s.logger.Warn("could not load high score", "error", err)
		score = 0
	}
	s.highScore = max(0, score)
}

func (s *Session) saveHighScore() {
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	if s.highScores == nil {
		return
	}
	if err := s.highScores.SaveHighScore(s.highScore); err != nil {
		s.logger.Warn("could not save high score", "error", err)
	}
}

func (s *Session) recordResult() {
	if s.recorder == nil {
		return
	}
	end := s.now()
	r := Result{
		SessionID: s.id,
		Score:     s.score,
		Length:    len(s.snake),
		Cause:     s.cause,
		Ticks:     s.ticks,
		Duration:  end.Sub(s.startedAt),
		EndedAt:   end,
	}
	if err := s.recorder.RecordResult(r); err != nil {
		s.logger.Warn("could not record result", "session", s.id, "error", err)
	}
}
