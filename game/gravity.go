package game

import "time"

// Frame is one tick of the 60Hz reference clock the gravity curve is
// expressed in.
const Frame = time.Second / 60

// MaxLevel is the highest level; gravity stops accelerating there.
const MaxLevel = 29

var framesPerRow = [MaxLevel + 1]int{
	48, 43, 38, 33, 28, 23, 18, 13, 8, 6,
	5, 5, 5, 4, 4, 4, 3, 3, 3, 2,
	2, 2, 2, 2, 2, 2, 2, 2, 2, 1,
}

// DropInterval returns how long a piece takes to fall one row at level.
// Levels outside 0..MaxLevel are clamped.
func DropInterval(level int) time.Duration {
	level = min(max(level, 0), MaxLevel)
	return time.Duration(framesPerRow[level]) * Frame
}
