package game

// Points awarded per cell of soft and hard drop.
const (
	SoftDropPoints = 1
	HardDropPoints = 2
	ComboPoints    = 50
)

var lineClearPoints = [...]int{0, 100, 300, 500, 800}

// Stats is a snapshot of the scoring state.
type Stats struct {
	Score      int
	Lines      int
	Level      int
	Combo      int
	BackToBack bool
}

// clearScore returns the points for clearing lines rows at once. backToBack
// is whether the previous clearing lock was also four lines, and combo is
// the consecutive clear count including this lock.
func clearScore(lines, level, combo int, backToBack bool) int {
	base := lineClearPoints[min(lines, len(lineClearPoints)-1)]
	if lines >= 4 && backToBack {
		base = base * 3 / 2
	}
	return base*(level+1) + ComboPoints*combo*(level+1)
}
