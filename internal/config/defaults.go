package config

import (
	_ "embed"
)

//go:embed defaults/breakbricks.yaml
var defaultYAML []byte

// Default returns the default game configuration.
func Default() Config {
	return Config{
		Physics: PhysicsConfig{
			BallSpeed:     22,
			BallRadius:    0.45,
			MinBallSpeed:  10,
			MaxBallSpeed:  50,
			BrickSpeedUp:  0.25,
			PaddleSpeedUp: 0.4,
			MaxBounceDeg:  60,
		},
		Paddle: PaddleConfig{
			Width:    10,
			Accel:    160,
			MaxSpeed: 45,
			Friction: 130,
		},
		Grid: GridConfig{
			Rows: 5,
			Cols: 8,
		},
		Gameplay: GameplayConfig{
			Lives:            3,
			BrickPoints:      10,
			BonusLifeOnClear: true,
			NameMaxLen:       12,
			Cheats:           false,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
