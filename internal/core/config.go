package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Dt returns the fixed simulation timestep in seconds.
// Physics advances by exactly this amount per tick, independent of the
// measured display rate.
func (c RuntimeConfig) Dt() float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return 1.0 / float64(rate)
}

// GameState represents the current state of the game as seen by the
// platform layer.
type GameState struct {
	Score    int    // Current score
	Lives    int    // Lives remaining
	Level    int    // Current level index (1-based), 0 in menu
	Phase    string // Progression phase name (menu, playing, ...)
	GameOver bool   // Whether the run has ended
	Paused   bool   // Whether the game is paused
}

// Event is something that happened during a tick that the platform may
// need to act on. Concrete event types are small value structs.
type Event interface {
	isEvent()
}

// EventSubmitScore is emitted once the player has confirmed their name at
// a terminal phase. The platform performs the actual submission; the game
// core never does I/O.
type EventSubmitScore struct {
	Username string
	Score    int
	Victory  bool
}

func (EventSubmitScore) isEvent() {}

// EventLevelClear is emitted on the tick the last brick of a level is
// destroyed. Fires exactly once per cleared level.
type EventLevelClear struct {
	Level int
}

func (EventLevelClear) isEvent() {}

// EventBallLost is emitted when the ball crosses the bottom boundary.
type EventBallLost struct {
	LivesLeft int
}

func (EventBallLost) isEvent() {}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
