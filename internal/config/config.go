// Package config loads game tuning from YAML files with embedded defaults.
// Search order mirrors the loader: explicit path, user config directory,
// local ./configs, embedded default.
package config

// Config is the full game tuning. All physics values are in cell units:
// positions in cells, speeds in cells per second, accelerations in cells
// per second squared.
type Config struct {
	Physics  PhysicsConfig  `yaml:"physics"`
	Paddle   PaddleConfig   `yaml:"paddle"`
	Grid     GridConfig     `yaml:"grid"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// PhysicsConfig tunes the ball.
type PhysicsConfig struct {
	BallSpeed     float64 `yaml:"ball_speed"`      // Launch speed
	BallRadius    float64 `yaml:"ball_radius"`     // Collision radius in cells
	MinBallSpeed  float64 `yaml:"min_ball_speed"`  // Speed never clamped below this
	MaxBallSpeed  float64 `yaml:"max_ball_speed"`  // Speed never clamped above this
	BrickSpeedUp  float64 `yaml:"brick_speed_up"`  // Added to speed per brick destroyed
	PaddleSpeedUp float64 `yaml:"paddle_speed_up"` // Added to speed per paddle bounce
	MaxBounceDeg  float64 `yaml:"max_bounce_deg"`  // Max paddle bounce angle from vertical
}

// PaddleConfig tunes paddle movement. The paddle accelerates while a
// direction is held and decelerates by friction when released.
type PaddleConfig struct {
	Width    float64 `yaml:"width"`
	Accel    float64 `yaml:"accel"`
	MaxSpeed float64 `yaml:"max_speed"`
	Friction float64 `yaml:"friction"`
}

// GridConfig sets the brick grid dimensions used by the level generator.
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GameplayConfig tunes progression rules.
type GameplayConfig struct {
	Lives            int  `yaml:"lives"`
	BrickPoints      int  `yaml:"brick_points"`
	BonusLifeOnClear bool `yaml:"bonus_life_on_clear"`
	NameMaxLen       int  `yaml:"name_max_len"`
	Cheats           bool `yaml:"cheats"` // Enables the debug skip-ahead key
}
