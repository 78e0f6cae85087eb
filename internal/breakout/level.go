// Package breakout implements the Break Bricks game logic: level
// generation, ball and paddle physics, and the progression state machine.
// It renders to a core.Screen and carries no platform dependencies.
package breakout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/breakbricks/breakbricks/internal/core"
)

// MaxLevel is the number of levels in the campaign.
const MaxLevel = 5

// randomKeepChance is the probability that a grid cell holds a brick in
// the Random pattern.
const randomKeepChance = 0.8

// Pattern selects a brick layout algorithm.
type Pattern int

const (
	PatternStandard     Pattern = iota // Full grid
	PatternCheckerboard                // Alternating cells
	PatternPyramid                     // Rows shrink by one brick per side
	PatternColumns                     // Every second column
	PatternRandom                      // Each cell kept with fixed probability
)

// String returns the display name of the pattern.
func (p Pattern) String() string {
	switch p {
	case PatternStandard:
		return "Standard"
	case PatternCheckerboard:
		return "Checkerboard"
	case PatternPyramid:
		return "Pyramid"
	case PatternColumns:
		return "Columns"
	case PatternRandom:
		return "Random"
	default:
		return "Unknown"
	}
}

// PatternForLevel maps a campaign level index (1-based) to its pattern.
func PatternForLevel(index int) (Pattern, error) {
	switch index {
	case 1:
		return PatternStandard, nil
	case 2:
		return PatternCheckerboard, nil
	case 3:
		return PatternPyramid, nil
	case 4:
		return PatternColumns, nil
	case 5:
		return PatternRandom, nil
	default:
		return 0, fmt.Errorf("breakout: level index %d out of range [1, %d]", index, MaxLevel)
	}
}

// Field describes the playable area in cell coordinates. The two rows
// above Top belong to the HUD and are outside the simulation.
type Field struct {
	W   float64 // Screen width in cells
	H   float64 // Screen height in cells
	Top float64 // First playable row
}

// NewField derives the playable area from the screen size.
func NewField(screenW, screenH int) Field {
	return Field{
		W:   float64(screenW),
		H:   float64(screenH),
		Top: 2,
	}
}

// Brick is a single destroyable brick.
type Brick struct {
	Rect   core.FRect
	Color  core.Color
	Points int
	Alive  bool
}

// Level is a generated brick layout for one campaign level.
type Level struct {
	Index   int
	Pattern Pattern
	Rows    int
	Cols    int
	Bricks  []Brick
}

// AliveCount returns the number of remaining bricks.
func (l *Level) AliveCount() int {
	count := 0
	for i := range l.Bricks {
		if l.Bricks[i].Alive {
			count++
		}
	}
	return count
}

// brickPalette colors bricks by row, cycling.
var brickPalette = []core.Color{
	core.ColorBrightRed,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
	core.ColorBrightCyan,
	core.ColorBrightBlue,
}

// WorldColor returns the accent color for a level's world theme.
// Levels 1-2, 3-4, and 5 each form a world.
func WorldColor(index int) core.Color {
	switch {
	case index <= 2:
		return core.ColorBlue
	case index <= 4:
		return core.ColorMagenta
	default:
		return core.ColorRed
	}
}

// GenerateLevel builds the brick layout for a campaign level.
// The result is deterministic for a given (index, pattern, field, seed);
// the Random pattern draws from a source seeded with seed XOR index so
// every level reshuffles independently of the others.
func GenerateLevel(index int, pattern Pattern, field Field, rows, cols int, brickPoints int, seed int64) (*Level, error) {
	if index < 1 || index > MaxLevel {
		return nil, fmt.Errorf("breakout: level index %d out of range [1, %d]", index, MaxLevel)
	}
	if pattern < PatternStandard || pattern > PatternRandom {
		return nil, fmt.Errorf("breakout: unknown pattern %d", int(pattern))
	}
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("breakout: invalid grid %dx%d", rows, cols)
	}

	brickW := math.Floor(field.W / float64(cols))
	if brickW < 2 {
		return nil, fmt.Errorf("breakout: field width %.0f too narrow for %d columns", field.W, cols)
	}
	offsetX := math.Floor((field.W - brickW*float64(cols)) / 2)
	top := field.Top + 1 // One row of air between HUD and bricks

	var rng *rand.Rand
	if pattern == PatternRandom {
		rng = rand.New(rand.NewSource(seed ^ int64(index)))
	}

	level := &Level{
		Index:   index,
		Pattern: pattern,
		Rows:    rows,
		Cols:    cols,
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !cellOccupied(pattern, row, col, rows, cols, rng) {
				continue
			}
			level.Bricks = append(level.Bricks, Brick{
				// One cell of horizontal gap between neighbors
				Rect:   core.NewFRect(offsetX+float64(col)*brickW, top+float64(row), brickW-1, 1),
				Color:  brickPalette[row%len(brickPalette)],
				Points: brickPoints,
				Alive:  true,
			})
		}
	}

	// A level with no bricks would clear on the first tick. The Random
	// pattern can in principle produce one, so guarantee a single brick.
	if len(level.Bricks) == 0 {
		level.Bricks = append(level.Bricks, Brick{
			Rect:   core.NewFRect(offsetX+float64(cols/2)*brickW, top, brickW-1, 1),
			Color:  brickPalette[0],
			Points: brickPoints,
			Alive:  true,
		})
	}

	return level, nil
}

// cellOccupied decides whether the pattern places a brick at (row, col).
func cellOccupied(pattern Pattern, row, col, rows, cols int, rng *rand.Rand) bool {
	switch pattern {
	case PatternStandard:
		return true
	case PatternCheckerboard:
		return (row+col)%2 == 0
	case PatternPyramid:
		// Top row full, each row below loses one brick per side
		return col >= row && col < cols-row
	case PatternColumns:
		return col%2 == 0
	case PatternRandom:
		return rng.Float64() < randomKeepChance
	default:
		return false
	}
}
