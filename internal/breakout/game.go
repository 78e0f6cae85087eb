package breakout

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/breakbricks/breakbricks/internal/config"
	"github.com/breakbricks/breakbricks/internal/core"
)

// Progression phases.
const (
	PhaseMenu       = "menu"       // Level select
	PhasePlaying    = "playing"    // Ball in play (or stuck, awaiting launch)
	PhasePaused     = "paused"     // Physics frozen
	PhaseLevelClear = "levelclear" // Brief banner between levels
	PhaseNameEntry  = "nameentry"  // Typing a name after the run ends
	PhaseGameOver   = "gameover"   // Final screen after a lost run
	PhaseVictory    = "victory"    // Final screen after clearing level 5
)

// AnonymousName is stored when the player submits an empty name.
const AnonymousName = "Anonymous"

// levelClearTicks is how long the clear banner shows (1.5s at 60 tps).
const levelClearTicks = 90

// Game implements the Break Bricks game logic. All simulation runs in
// Step; the platform layer owns the tick cadence and all I/O.
type Game struct {
	// Game objects
	paddle Paddle
	ball   Ball
	level  *Level

	// Progression
	phase      string
	score      int
	lives      int
	levelIndex int // Current level, 1-based; 0 in menu
	unlocked   int // Highest selectable level; never decreases
	menuCursor int
	clearTicks int
	victory    bool
	tickCount  int

	// Name entry
	nameBuf     []rune
	defaultName string

	// Configuration
	runtime core.RuntimeConfig
	cfg     config.Config
	cfgSet  bool
	field   Field
	cheats  bool

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game with an explicit config, bypassing the
// file loader. Used by tests and by hosts that load config themselves.
func NewWithConfig(cfg config.Config) *Game {
	return &Game{cfg: cfg, cfgSet: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "breakbricks"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Break Bricks"
}

// SetDefaultName prefills the name entry buffer (e.g. with the SSH
// username). Applied when name entry opens; the player can still edit it.
func (g *Game) SetDefaultName(name string) {
	g.defaultName = name
}

// SetCheats enables the debug skip-ahead key.
func (g *Game) SetCheats(enabled bool) {
	g.cheats = enabled
}

// Reset initializes or restarts the game at the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgSet {
		cfg, err := config.Load("")
		if err != nil {
			cfg = config.Default()
		}
		g.cfg = cfg
	}
	if g.cfg.Gameplay.Cheats {
		g.cheats = true
	}

	g.field = NewField(runtime.ScreenW, runtime.ScreenH)

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.phase = PhaseMenu
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.levelIndex = 0
	g.unlocked = core.Max(g.unlocked, 1)
	g.menuCursor = 1
	g.clearTicks = 0
	g.victory = false
	g.tickCount = 0
	g.nameBuf = g.nameBuf[:0]
	g.level = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	var events []core.Event

	switch g.phase {
	case PhaseMenu:
		g.stepMenu(in)
	case PhasePlaying:
		events = g.stepPlaying(in)
	case PhasePaused:
		g.stepPaused(in)
	case PhaseLevelClear:
		g.stepLevelClear()
	case PhaseNameEntry:
		events = g.stepNameEntry(in)
	case PhaseGameOver, PhaseVictory:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionBack) {
			g.toMenu()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepMenu handles the level select screen.
func (g *Game) stepMenu(in core.InputFrame) {
	if in.Has(core.ActionLeft) && g.menuCursor > 1 {
		g.menuCursor--
	}
	if in.Has(core.ActionRight) && g.menuCursor < MaxLevel {
		g.menuCursor++
	}
	if in.Has(core.ActionConfirm) && g.menuCursor <= g.unlocked {
		g.score = 0
		g.lives = g.cfg.Gameplay.Lives
		g.victory = false
		g.startLevel(g.menuCursor)
	}
}

// stepPlaying runs one simulation tick.
func (g *Game) stepPlaying(in core.InputFrame) []core.Event {
	if in.Has(core.ActionPause) {
		g.phase = PhasePaused
		return nil
	}
	if in.Has(core.ActionBack) {
		g.toMenu()
		return nil
	}
	if g.cheats && in.Has(core.ActionCheat) {
		g.skipAhead()
	}

	dir := 0
	if in.Has(core.ActionLeft) {
		dir--
	}
	if in.Has(core.ActionRight) {
		dir++
	}

	dt := g.runtime.Dt()
	g.paddle.Update(dir, dt, g.cfg.Paddle.Accel, g.cfg.Paddle.MaxSpeed, g.cfg.Paddle.Friction, g.field)

	if g.ball.Stuck {
		g.ball.X = g.paddle.X
		g.ball.Y = g.paddle.Y - g.ball.Radius
		if in.Has(core.ActionLaunch) {
			g.launchBall()
		}
		return nil
	}

	out := Advance(&g.ball, &g.paddle, g.level.Bricks, dt, g.physicsParams())

	if !g.ball.Finite() {
		panic(fmt.Sprintf("breakout: non-finite ball state after tick %d: %+v", g.tickCount, g.ball))
	}

	var events []core.Event

	if out.BrickHit >= 0 {
		g.score += g.level.Bricks[out.BrickHit].Points
		if g.level.AliveCount() == 0 {
			events = append(events, g.handleLevelClear()...)
			return events
		}
	}

	if out.BallLost {
		g.lives--
		events = append(events, core.EventBallLost{LivesLeft: g.lives})
		if g.lives <= 0 {
			g.enterNameEntry(false)
		} else {
			g.spawnBall()
		}
	}

	return events
}

// stepPaused waits for unpause or exit to menu.
func (g *Game) stepPaused(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.phase = PhasePlaying
	}
	if in.Has(core.ActionBack) {
		g.toMenu()
	}
}

// stepLevelClear counts down the banner, then moves on.
func (g *Game) stepLevelClear() {
	g.clearTicks--
	if g.clearTicks > 0 {
		return
	}
	if g.levelIndex >= MaxLevel {
		g.enterNameEntry(true)
		return
	}
	g.startLevel(g.levelIndex + 1)
}

// stepNameEntry edits the name buffer and submits on confirm.
func (g *Game) stepNameEntry(in core.InputFrame) []core.Event {
	maxLen := g.cfg.Gameplay.NameMaxLen
	if maxLen <= 0 {
		maxLen = 12
	}

	for _, r := range in.Text {
		if len(g.nameBuf) >= maxLen {
			break
		}
		if unicode.IsPrint(r) {
			g.nameBuf = append(g.nameBuf, r)
		}
	}
	if in.Has(core.ActionErase) && len(g.nameBuf) > 0 {
		g.nameBuf = g.nameBuf[:len(g.nameBuf)-1]
	}

	if in.Has(core.ActionConfirm) {
		name := strings.TrimSpace(string(g.nameBuf))
		if name == "" {
			name = AnonymousName
		}
		if g.victory {
			g.phase = PhaseVictory
		} else {
			g.phase = PhaseGameOver
		}
		return []core.Event{core.EventSubmitScore{
			Username: name,
			Score:    g.score,
			Victory:  g.victory,
		}}
	}
	return nil
}

// startLevel generates the level and places the paddle and a stuck ball.
// Score and lives carry over between levels.
func (g *Game) startLevel(index int) {
	pattern, err := PatternForLevel(index)
	if err != nil {
		// Unreachable: callers only pass indices the menu validated
		panic(err)
	}

	level, err := GenerateLevel(index, pattern, g.field,
		g.cfg.Grid.Rows, g.cfg.Grid.Cols, g.cfg.Gameplay.BrickPoints, g.runtime.Seed)
	if err != nil {
		panic(err)
	}

	g.level = level
	g.levelIndex = index
	g.paddle = Paddle{
		X: g.field.W / 2,
		Y: g.field.H - 2,
		W: g.cfg.Paddle.Width,
		H: 1,
	}
	g.spawnBall()
	g.phase = PhasePlaying
}

// spawnBall places a stuck ball on the paddle. Bricks are untouched.
func (g *Game) spawnBall() {
	g.ball = Ball{
		X:      g.paddle.X,
		Y:      g.paddle.Y - g.cfg.Physics.BallRadius,
		Radius: g.cfg.Physics.BallRadius,
		Stuck:  true,
	}
}

// launchBall sends the stuck ball up at launch speed.
func (g *Game) launchBall() {
	g.ball.Stuck = false
	g.ball.VX = 0
	g.ball.VY = -g.cfg.Physics.BallSpeed
}

// handleLevelClear unlocks the next level, awards the bonus life, and
// shows the clear banner. Fires exactly once per cleared level.
func (g *Game) handleLevelClear() []core.Event {
	events := []core.Event{core.EventLevelClear{Level: g.levelIndex}}

	if g.levelIndex < MaxLevel && g.levelIndex+1 > g.unlocked {
		g.unlocked = g.levelIndex + 1
	}
	if g.cfg.Gameplay.BonusLifeOnClear {
		g.lives++
	}

	g.ball.Stuck = true
	g.phase = PhaseLevelClear
	g.clearTicks = levelClearTicks
	return events
}

// skipAhead destroys every brick but one. Debug aid for reaching late
// levels; awards no points.
func (g *Game) skipAhead() {
	left := 1
	for i := range g.level.Bricks {
		if !g.level.Bricks[i].Alive {
			continue
		}
		if left > 0 {
			left--
			continue
		}
		g.level.Bricks[i].Alive = false
	}
}

// enterNameEntry opens name entry at the end of a run.
func (g *Game) enterNameEntry(victory bool) {
	g.victory = victory
	g.phase = PhaseNameEntry
	g.nameBuf = g.nameBuf[:0]
	if g.defaultName != "" {
		maxLen := g.cfg.Gameplay.NameMaxLen
		if maxLen <= 0 {
			maxLen = 12
		}
		for _, r := range g.defaultName {
			if len(g.nameBuf) >= maxLen {
				break
			}
			g.nameBuf = append(g.nameBuf, r)
		}
	}
}

// toMenu returns to level select. The unlocked set survives.
func (g *Game) toMenu() {
	g.phase = PhaseMenu
	g.levelIndex = 0
	g.menuCursor = core.Min(g.unlocked, MaxLevel)
	g.level = nil
}

// physicsParams derives the Advance tuning from config.
func (g *Game) physicsParams() Params {
	return Params{
		Field:         g.field,
		MinSpeed:      g.cfg.Physics.MinBallSpeed,
		MaxSpeed:      g.cfg.Physics.MaxBallSpeed,
		BrickSpeedUp:  g.cfg.Physics.BrickSpeedUp,
		PaddleSpeedUp: g.cfg.Physics.PaddleSpeedUp,
		MaxBounceRad:  g.cfg.Physics.MaxBounceDeg * math.Pi / 180,
	}
}

// Unlocked returns the highest selectable level.
func (g *Game) Unlocked() int {
	return g.unlocked
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.levelIndex,
		Phase:    g.phase,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseVictory,
		Paused:   g.phase == PhasePaused,
	}
}
