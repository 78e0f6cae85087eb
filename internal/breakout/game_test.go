package breakout

import (
	"testing"

	"github.com/breakbricks/breakbricks/internal/config"
	"github.com/breakbricks/breakbricks/internal/core"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}
}

func newTestGame() *Game {
	g := NewWithConfig(config.Default())
	g.Reset(testRuntime())
	return g
}

// press steps the game once with the given actions triggered.
func press(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

// typeText steps the game once with typed runes.
func typeText(g *Game, text string) core.StepResult {
	in := core.NewInputFrame()
	in.Type([]rune(text)...)
	return g.Step(in)
}

// startLevel1 walks the menu into level 1.
func startLevel1(t *testing.T, g *Game) {
	t.Helper()
	press(g, core.ActionConfirm)
	if g.phase != PhasePlaying {
		t.Fatalf("expected playing after menu confirm, got %s", g.phase)
	}
}

// killAllBut leaves n alive bricks on the current level.
func killAllBut(g *Game, n int) {
	for i := range g.level.Bricks {
		if !g.level.Bricks[i].Alive {
			continue
		}
		if n > 0 {
			n--
			continue
		}
		g.level.Bricks[i].Alive = false
	}
}

// aimAtLastBrick places the ball just under the remaining brick, moving up.
func aimAtLastBrick(t *testing.T, g *Game) {
	t.Helper()
	for i := range g.level.Bricks {
		if g.level.Bricks[i].Alive {
			r := g.level.Bricks[i].Rect
			g.ball = Ball{
				X:      r.CenterX(),
				Y:      r.Bottom() + 0.5,
				VX:     0,
				VY:     -30,
				Radius: g.cfg.Physics.BallRadius,
			}
			return
		}
	}
	t.Fatal("no alive brick to aim at")
}

func TestResetStartsAtMenu(t *testing.T) {
	g := newTestGame()

	st := g.State()
	if st.Phase != PhaseMenu {
		t.Errorf("phase = %s, want menu", st.Phase)
	}
	if st.Level != 0 {
		t.Errorf("level in menu = %d, want 0", st.Level)
	}
	if g.unlocked != 1 {
		t.Errorf("unlocked = %d, want 1", g.unlocked)
	}
}

func TestMenuLockedLevelNotStartable(t *testing.T) {
	g := newTestGame()

	press(g, core.ActionRight) // Cursor onto locked level 2
	press(g, core.ActionConfirm)
	if g.phase != PhaseMenu {
		t.Errorf("starting a locked level should be refused, phase = %s", g.phase)
	}

	press(g, core.ActionLeft)
	press(g, core.ActionConfirm)
	if g.phase != PhasePlaying {
		t.Errorf("level 1 should start, phase = %s", g.phase)
	}
	if g.level.AliveCount() != 40 {
		t.Errorf("level 1 bricks = %d, want 40", g.level.AliveCount())
	}
}

func TestLaunchLeavesThePaddle(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)

	if !g.ball.Stuck {
		t.Fatal("ball should start stuck to the paddle")
	}

	// A stuck ball follows the paddle
	for i := 0; i < 20; i++ {
		press(g, core.ActionRight)
	}
	if g.ball.X != g.paddle.X {
		t.Errorf("stuck ball X = %f, paddle X = %f", g.ball.X, g.paddle.X)
	}

	press(g, core.ActionLaunch)
	if g.ball.Stuck {
		t.Fatal("launch should release the ball")
	}
	if g.ball.VY >= 0 {
		t.Errorf("launched ball should move up, VY = %f", g.ball.VY)
	}
}

func TestPauseFreezesPhysics(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	press(g, core.ActionLaunch)

	press(g, core.ActionPause)
	if g.phase != PhasePaused {
		t.Fatalf("phase = %s, want paused", g.phase)
	}

	x, y := g.ball.X, g.ball.Y
	for i := 0; i < 30; i++ {
		press(g, core.ActionLeft)
	}
	if g.ball.X != x || g.ball.Y != y {
		t.Error("ball moved while paused")
	}

	press(g, core.ActionPause)
	if g.phase != PhasePlaying {
		t.Errorf("unpause should resume, phase = %s", g.phase)
	}
}

func TestBallLostRespawnsStuck(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	press(g, core.ActionLaunch)
	bricks := g.level.AliveCount()

	// Put the ball past the bottom
	g.ball.X, g.ball.Y = 40, 25
	g.ball.VX, g.ball.VY = 0, 30

	res := press(g)
	if g.lives != 2 {
		t.Errorf("lives = %d, want 2", g.lives)
	}
	if !g.ball.Stuck {
		t.Error("ball should respawn stuck to the paddle")
	}
	if g.level.AliveCount() != bricks {
		t.Error("losing a ball must not change the bricks")
	}

	found := false
	for _, ev := range res.Events {
		if lost, ok := ev.(core.EventBallLost); ok {
			found = true
			if lost.LivesLeft != 2 {
				t.Errorf("event lives = %d, want 2", lost.LivesLeft)
			}
		}
	}
	if !found {
		t.Error("expected EventBallLost")
	}
}

func TestGameOverRequiresNameEntry(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	press(g, core.ActionLaunch)

	g.lives = 1
	g.ball.X, g.ball.Y = 40, 25
	g.ball.VX, g.ball.VY = 0, 30
	press(g)

	if g.phase != PhaseNameEntry {
		t.Fatalf("phase = %s, want nameentry", g.phase)
	}

	typeText(g, "abc")
	res := press(g, core.ActionConfirm)

	var submit core.EventSubmitScore
	found := false
	for _, ev := range res.Events {
		if s, ok := ev.(core.EventSubmitScore); ok {
			submit = s
			found = true
		}
	}
	if !found {
		t.Fatal("expected EventSubmitScore on confirm")
	}
	if submit.Username != "abc" {
		t.Errorf("username = %q, want abc", submit.Username)
	}
	if submit.Victory {
		t.Error("a lost run is not a victory")
	}
	if g.phase != PhaseGameOver {
		t.Errorf("phase = %s, want gameover", g.phase)
	}

	press(g, core.ActionConfirm)
	if g.phase != PhaseMenu {
		t.Errorf("confirm on final screen should return to menu, got %s", g.phase)
	}
}

func TestNameEntryRules(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	g.enterNameEntry(false)

	// Length cap
	typeText(g, "abcdefghijklmnop")
	if got := len(g.nameBuf); got != 12 {
		t.Errorf("name length = %d, want capped at 12", got)
	}

	// Backspace
	press(g, core.ActionErase)
	if got := string(g.nameBuf); got != "abcdefghijk" {
		t.Errorf("after erase = %q", got)
	}

	// Empty submits as Anonymous
	for i := 0; i < 15; i++ {
		press(g, core.ActionErase)
	}
	res := press(g, core.ActionConfirm)
	for _, ev := range res.Events {
		if s, ok := ev.(core.EventSubmitScore); ok {
			if s.Username != AnonymousName {
				t.Errorf("empty name submitted as %q, want %q", s.Username, AnonymousName)
			}
			return
		}
	}
	t.Fatal("expected EventSubmitScore")
}

func TestLevelClearUnlocksAndAwardsLife(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	press(g, core.ActionLaunch)

	killAllBut(g, 1)
	aimAtLastBrick(t, g)
	res := press(g)

	if g.phase != PhaseLevelClear {
		t.Fatalf("phase = %s, want levelclear", g.phase)
	}
	if g.unlocked != 2 {
		t.Errorf("unlocked = %d, want 2", g.unlocked)
	}
	if g.lives != 4 {
		t.Errorf("lives = %d, want 4 (bonus life)", g.lives)
	}

	found := false
	for _, ev := range res.Events {
		if clear, ok := ev.(core.EventLevelClear); ok {
			found = true
			if clear.Level != 1 {
				t.Errorf("cleared level = %d, want 1", clear.Level)
			}
		}
	}
	if !found {
		t.Fatal("expected EventLevelClear")
	}

	// Banner runs out, next level starts with score carried over
	score := g.score
	for i := 0; i < levelClearTicks+1; i++ {
		press(g)
	}
	if g.phase != PhasePlaying || g.levelIndex != 2 {
		t.Errorf("after banner: phase %s level %d, want playing level 2", g.phase, g.levelIndex)
	}
	if g.score != score {
		t.Errorf("score changed across levels: %d -> %d", score, g.score)
	}
	if !g.ball.Stuck {
		t.Error("next level should start with a stuck ball")
	}
}

func TestVictoryAfterFinalLevel(t *testing.T) {
	g := newTestGame()
	g.unlocked = MaxLevel
	for i := 0; i < MaxLevel-1; i++ {
		press(g, core.ActionRight)
	}
	press(g, core.ActionConfirm)
	if g.levelIndex != MaxLevel {
		t.Fatalf("level = %d, want %d", g.levelIndex, MaxLevel)
	}

	press(g, core.ActionLaunch)
	killAllBut(g, 1)
	aimAtLastBrick(t, g)
	press(g)

	for i := 0; i < levelClearTicks+1; i++ {
		press(g)
	}
	if g.phase != PhaseNameEntry {
		t.Fatalf("phase = %s, want nameentry after final clear", g.phase)
	}

	res := press(g, core.ActionConfirm)
	for _, ev := range res.Events {
		if s, ok := ev.(core.EventSubmitScore); ok {
			if !s.Victory {
				t.Error("final-level clear should submit as victory")
			}
			if g.phase != PhaseVictory {
				t.Errorf("phase = %s, want victory", g.phase)
			}
			return
		}
	}
	t.Fatal("expected EventSubmitScore")
}

func TestCheatKeyGated(t *testing.T) {
	g := newTestGame()
	startLevel1(t, g)
	press(g, core.ActionLaunch)

	press(g, core.ActionCheat)
	if g.level.AliveCount() != 40 {
		t.Error("cheat key should be ignored when cheats are off")
	}

	g.SetCheats(true)
	press(g, core.ActionCheat)
	if got := g.level.AliveCount(); got != 1 {
		t.Errorf("skip-ahead left %d bricks, want 1", got)
	}
	if g.phase != PhasePlaying {
		t.Error("skip-ahead must not clear the level by itself")
	}
}

func TestUnlockedSurvivesReset(t *testing.T) {
	g := newTestGame()
	g.unlocked = 3

	g.Reset(testRuntime())
	if g.unlocked != 3 {
		t.Errorf("unlocked after reset = %d, want 3", g.unlocked)
	}
}

func TestDeterministicReplay(t *testing.T) {
	script := func(g *Game) uint64 {
		press(g, core.ActionConfirm) // Start level 1
		press(g, core.ActionLaunch)
		for i := 0; i < 600; i++ {
			if i/40%2 == 0 {
				press(g, core.ActionLeft)
			} else {
				press(g, core.ActionRight)
			}
		}
		snap := g.Snapshot()
		return snap.Hash()
	}

	a := script(newTestGame())
	b := script(newTestGame())
	if a != b {
		t.Errorf("identical input sequences diverged: %d vs %d", a, b)
	}
}
