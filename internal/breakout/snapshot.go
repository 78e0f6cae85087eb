package breakout

import "math"

// Snapshot captures the observable game state for determinism testing.
// Float positions are quantized to millicells so two runs that agree to
// within rounding hash identically.
type Snapshot struct {
	Tick            int
	Phase           string
	Score           int
	Lives           int
	LevelIndex      int
	Unlocked        int
	BricksRemaining int

	PaddleX  int // Millicells
	PaddleVX int
	BallX    int
	BallY    int
	BallVX   int
	BallVY   int
	Stuck    bool

	// Alive flags flattened in brick slice order
	BrickAlive []bool
}

// quantize converts a cell coordinate to millicells.
func quantize(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:       g.tickCount,
		Phase:      g.phase,
		Score:      g.score,
		Lives:      g.lives,
		LevelIndex: g.levelIndex,
		Unlocked:   g.unlocked,
		PaddleX:    quantize(g.paddle.X),
		PaddleVX:   quantize(g.paddle.VX),
		BallX:      quantize(g.ball.X),
		BallY:      quantize(g.ball.Y),
		BallVX:     quantize(g.ball.VX),
		BallVY:     quantize(g.ball.VY),
		Stuck:      g.ball.Stuck,
	}

	if g.level != nil {
		snap.BricksRemaining = g.level.AliveCount()
		snap.BrickAlive = make([]bool, len(g.level.Bricks))
		for i := range g.level.Bricks {
			snap.BrickAlive[i] = g.level.Bricks[i].Alive
		}
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)
	for _, c := range snap.Phase {
		h = h*31 + uint64(c)
	}
	h = h*31 + uint64(snap.Score)
	h = h*31 + uint64(snap.Lives)
	h = h*31 + uint64(snap.LevelIndex)
	h = h*31 + uint64(snap.Unlocked)
	h = h*31 + uint64(snap.BricksRemaining)
	h = h*31 + uint64(snap.PaddleX)
	h = h*31 + uint64(snap.PaddleVX)
	h = h*31 + uint64(snap.BallX)
	h = h*31 + uint64(snap.BallY)
	h = h*31 + uint64(snap.BallVX)
	h = h*31 + uint64(snap.BallVY)
	if snap.Stuck {
		h = h*31 + 1
	}
	for _, alive := range snap.BrickAlive {
		h *= 31
		if alive {
			h++
		}
	}
	return h
}
