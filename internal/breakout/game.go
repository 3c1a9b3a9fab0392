package breakout

import (
	"errors"
	"math"

	"github.com/avorobev/breakout-tui/internal/config"
	"github.com/avorobev/breakout-tui/internal/core"
)

// Phase is the current state of the session state machine.
type Phase int

const (
	PhaseMainMenu Phase = iota
	PhasePostLoginMenu
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMainMenu:
		return "MainMenu"
	case PhasePostLoginMenu:
		return "PostLoginMenu"
	case PhaseRunning:
		return "Running"
	case PhasePaused:
		return "Paused"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Gateway is the authentication and high-score collaborator the game talks
// to. Implemented by auth.Store; tests use in-memory fakes.
type Gateway interface {
	Register(username, password string) error
	Login(username, password string) (bool, error)
	HighScore(username string) (int, error)
	SetHighScoreIfHigher(username string, score int) error
}

// ErrUnknownUser is returned by Gateway.HighScore for users that do not
// exist. Callers treat it as a zero high score.
var ErrUnknownUser = errors.New("breakout: unknown user")

// Credential validation errors surfaced to the login form.
var (
	ErrCredentialsRequired = errors.New("breakout: username and password required")
	ErrInvalidCredentials  = errors.New("breakout: invalid credentials")
)

// Number of decorative background stars.
const starCount = 100

// Game is the Breakout game core. It is driven by Step at a fixed tick rate
// and renders into a Screen; it never touches the terminal directly.
type Game struct {
	cfg     config.BreakoutConfig
	runtime core.RuntimeConfig
	rng     *Rand
	gateway Gateway

	phase     Phase
	user      string
	highScore int

	paddle    *Paddle
	ball      *Ball
	bricks    []*Brick
	particles []*Particle
	fragments []*Fragment
	powerUps  []*PowerUp
	stars     []*Star
	effect    *ActiveEffect

	score       int
	level       int
	lives       int
	rowCount    int
	stageBricks int // Brick count at the last scoring checkpoint

	// Per-level baseline speed magnitudes; effect expiry restores these
	// with the ball's current direction signs.
	baseSpeedX float64
	baseSpeedY float64

	tick   int
	events []core.Event
}

// New creates a game with the given configuration and auth gateway.
func New(cfg config.BreakoutConfig, gw Gateway) *Game {
	return &Game{
		cfg:     cfg,
		gateway: gw,
	}
}

// Reset initializes the game session. The logged-in user is cleared and the
// state machine returns to the main menu.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.rng = NewRand(rt.Seed)
	g.user = ""
	g.highScore = 0
	g.phase = PhaseMainMenu

	g.stars = make([]*Star, starCount)
	for i := range g.stars {
		g.stars[i] = NewStar(g.rng)
	}

	g.newRun()
}

// newRun resets all per-run state: score, lives, level, entities.
func (g *Game) newRun() {
	g.score = 0
	g.level = 1
	g.lives = g.cfg.Gameplay.Lives
	g.rowCount = g.cfg.Grid.Rows
	g.baseSpeedX = g.cfg.Physics.BallSpeed
	g.baseSpeedY = g.cfg.Physics.BallSpeed

	g.paddle = NewPaddle(g.cfg.Paddle.Width)
	g.ball = NewBall(g.cfg.Physics.BallSpeed)
	g.bricks = GenerateGrid(g.rowCount, g.cfg.Grid.Cols, g.cfg.PowerUps.Chance, g.rng)
	g.stageBricks = len(g.bricks)

	g.particles = nil
	g.fragments = nil
	g.powerUps = nil
	g.effect = nil
	g.tick = 0
}

// Phase returns the current session phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Username returns the logged-in user, or empty before login.
func (g *Game) Username() string {
	return g.user
}

// State returns the platform-facing game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		Level:     g.level,
		Lives:     g.lives,
		HighScore: g.highScore,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.phase == PhasePaused,
	}
}

// Login authenticates against the gateway. On success the session user and
// their stored high score are recorded and the game advances to the
// post-login menu.
func (g *Game) Login(username, password string) error {
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}

	ok, err := g.gateway.Login(username, password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}

	g.user = username
	high, err := g.gateway.HighScore(username)
	if err != nil && !errors.Is(err, ErrUnknownUser) {
		return err
	}
	g.highScore = high
	g.phase = PhasePostLoginMenu
	return nil
}

// Register creates a new account through the gateway. The session stays in
// the main menu; the user logs in afterwards.
func (g *Game) Register(username, password string) error {
	if username == "" || password == "" {
		return ErrCredentialsRequired
	}
	return g.gateway.Register(username, password)
}

// Step advances the simulation by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	switch g.phase {
	case PhasePostLoginMenu:
		if input.Has(core.ActionConfirm) {
			g.phase = PhaseRunning
			g.emit(core.EventMusicPlay)
		}

	case PhaseRunning:
		if input.Has(core.ActionPause) {
			g.phase = PhasePaused
			g.emit(core.EventMusicPause)
		} else {
			g.updateRunning(input)
		}

	case PhasePaused:
		if input.Has(core.ActionConfirm) {
			g.phase = PhaseRunning
			g.emit(core.EventMusicResume)
		}

	case PhaseGameOver:
		if input.Has(core.ActionRestart) {
			g.newRun()
			g.phase = PhasePostLoginMenu
		}
	}

	return core.StepResult{
		State:  g.State(),
		Events: append([]core.Event(nil), g.events...),
	}
}

// updateRunning runs one gameplay tick: movement, collisions, effects,
// scoring and level progression.
func (g *Game) updateRunning(input core.InputFrame) {
	g.tick++

	if input.Has(core.ActionLeft) {
		g.paddle.MoveBy(-g.cfg.Physics.PaddleSpeed)
	}
	if input.Has(core.ActionRight) {
		g.paddle.MoveBy(g.cfg.Physics.PaddleSpeed)
	}

	for _, s := range g.stars {
		s.Update(g.rng)
	}

	g.ball.Move(g.rng)
	g.ball.CollideWalls()

	if g.ball.Rect.Intersects(g.paddle.Rect) {
		g.ball.DY = -g.ball.DY
		g.particles = SpawnBurst(g.particles, g.ball.Rect.CenterX(), g.ball.Rect.CenterY(), g.rng)
		g.emit(core.EventPaddleHit)
	}

	// Each overlapping brick flips dy independently; hitting two bricks in
	// the same tick cancels the reflection.
	remaining := g.bricks[:0]
	for _, br := range g.bricks {
		if !g.ball.Rect.Intersects(br.Rect) {
			remaining = append(remaining, br)
			continue
		}

		g.ball.DY = -g.ball.DY
		g.emit(core.EventBrickDestroyed)

		if br.PowerUp != PowerUpNone {
			g.powerUps = append(g.powerUps, NewPowerUp(br.Rect.X+25, br.Rect.Y, br.PowerUp))
			g.emit(core.EventPowerUpDropped)
		}

		g.particles = SpawnBurst(g.particles, br.Rect.CenterX(), br.Rect.CenterY(), g.rng)
		g.fragments = SpawnFragments(g.fragments, br, g.rng)
	}
	g.bricks = remaining

	for _, p := range g.ball.Trail {
		p.Update()
	}
	g.particles = UpdateParticles(g.particles)
	g.fragments = UpdateFragments(g.fragments)

	if g.ball.Rect.Bottom() >= WorldH {
		if g.lives > 1 {
			g.lives--
			g.ball = NewBall(g.cfg.Physics.BallSpeed)
			g.emit(core.EventLifeLost)
		} else {
			g.finalize()
			return
		}
	}

	kept := g.powerUps[:0]
	for _, pu := range g.powerUps {
		pu.Move()
		if pu.Rect.Intersects(g.paddle.Rect) {
			g.activatePowerUp(pu.Type)
			g.emit(core.EventPowerUpActivated)
			continue
		}
		if pu.Rect.Y >= WorldH {
			continue
		}
		kept = append(kept, pu)
	}
	g.powerUps = kept

	if g.effect != nil && g.tick-g.effect.StartTick >= g.effectTicks() {
		g.expireEffect()
	}

	if destroyed := g.stageBricks - len(g.bricks); destroyed > 0 {
		g.score += destroyed * g.level * g.cfg.Gameplay.BrickPoints
		g.stageBricks = len(g.bricks)
	}

	if len(g.bricks) == 0 {
		g.levelUp()
	}
}

// effectTicks converts the configured effect duration to simulation ticks.
func (g *Game) effectTicks() int {
	rate := g.runtime.TickRate
	if rate <= 0 {
		rate = 60
	}
	return g.cfg.PowerUps.DurationMS * rate / 1000
}

// activatePowerUp applies a caught power-up, replacing any running effect.
func (g *Game) activatePowerUp(t PowerUpType) {
	switch t {
	case PowerUpPaddleSize:
		g.paddle.SetWidth(g.paddle.BaseWidth * paddleSizeFactor)
	case PowerUpSlowBall:
		g.ball.DX *= slowBallFactor
		g.ball.DY *= slowBallFactor
	case PowerUpExtraLife:
		g.lives++
	}
	g.effect = &ActiveEffect{Type: t, StartTick: g.tick}
}

// expireEffect reverts power-up state: the paddle returns to its base
// width and the ball speed is restored to the per-level baseline
// magnitudes with its current direction signs. Both are reset regardless
// of which effect expired, so a replaced slow-ball still reverts when the
// replacement runs out.
func (g *Game) expireEffect() {
	g.paddle.SetWidth(g.paddle.BaseWidth)
	g.ball.DX = math.Copysign(g.baseSpeedX, g.ball.DX)
	g.ball.DY = math.Copysign(g.baseSpeedY, g.ball.DY)
	g.effect = nil
}

// levelUp advances to the next level: one more brick row (capped), a fresh
// paddle and ball, and a faster speed baseline. Particle and fragment
// collections are cleared; falling power-ups and live effects carry over.
func (g *Game) levelUp() {
	g.level++
	g.rowCount++
	if g.rowCount > g.cfg.Grid.MaxRows {
		g.rowCount = g.cfg.Grid.MaxRows
	}

	g.particles = nil
	g.fragments = nil

	g.baseSpeedX *= g.cfg.Physics.LevelSpeedFactor
	g.baseSpeedY *= g.cfg.Physics.LevelSpeedFactor

	g.paddle = NewPaddle(g.cfg.Paddle.Width)
	g.ball = NewBall(g.cfg.Physics.BallSpeed)
	g.ball.DX = g.baseSpeedX
	g.ball.DY = -g.baseSpeedY

	g.bricks = GenerateGrid(g.rowCount, g.cfg.Grid.Cols, g.cfg.PowerUps.Chance, g.rng)
	g.stageBricks = len(g.bricks)

	g.emit(core.EventLevelUp)
}

// finalize ends the run: the high score is pushed through the gateway if
// beaten, re-read for display, and the session enters GameOver.
func (g *Game) finalize() {
	if g.user != "" && g.gateway != nil {
		// Best effort; a storage failure should not block the game over
		// screen.
		_ = g.gateway.SetHighScoreIfHigher(g.user, g.score)
		if high, err := g.gateway.HighScore(g.user); err == nil {
			g.highScore = high
		}
	}
	g.phase = PhaseGameOver
	g.emit(core.EventGameOver)
}

// emit queues an event for the current tick's StepResult.
func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}
