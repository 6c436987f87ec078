package tetris

import "time"

// Level and speed limits.
const (
	MaxLevel       = 10
	PointsPerLevel = 600

	BaseSpeed  = 500 * time.Millisecond
	SpeedStep  = 45 * time.Millisecond
	FloorSpeed = 100 * time.Millisecond
)

// points is indexed by the number of rows cleared by one lock.
var points = [...]int{0, 100, 300, 700, 1500}

// ClearLines removes every full row in a single top-to-bottom pass and
// returns how many were removed. Rows above a cleared row move down by one
// and an empty row enters at the top.
func ClearLines(g *Grid) int {
	cleared := 0
	for y := range Height {
		if g.RowFull(y) {
			g.shiftDown(y)
			cleared++
		}
	}
	return cleared
}

// Points returns the score awarded for clearing n rows at once.
// Counts past four are paid as four.
func Points(n int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(points) {
		return points[len(points)-1]
	}
	return points[n]
}

// LevelFor returns the level reached with score, starting from level.
// The level stops following the score once it reaches MaxLevel.
func LevelFor(score, level int) int {
	if level >= MaxLevel {
		return level
	}
	next := min(score/PointsPerLevel+1, MaxLevel)
	return max(next, level)
}

// SpeedFor returns the automatic descent interval for a level.
func SpeedFor(level int) time.Duration {
	return max(FloorSpeed, BaseSpeed-time.Duration(level-1)*SpeedStep)
}
