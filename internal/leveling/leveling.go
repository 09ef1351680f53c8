// Package leveling maps accumulated experience points to levels. The XP
// requirement grows quadratically: reaching level N takes N^2 * 100 XP.
package leveling

import "math"

// LevelForXP returns the level for an XP total: floor(sqrt(xp/100)),
// floored to 1 so a fresh learner is level 1 rather than 0. Negative input
// is treated as 0.
func LevelForXP(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := int(math.Sqrt(float64(totalXP) / 100))
	if level < 1 {
		return 1
	}
	return level
}

// XPThresholdForLevel returns the XP total at which a level begins. It is
// the inverse boundary of LevelForXP.
func XPThresholdForLevel(level int) int {
	if level < 0 {
		level = 0
	}
	return level * level * 100
}

// ProgressPercent returns how far through the given level an XP total is,
// as a percentage clamped to [0, 100].
func ProgressPercent(totalXP, level int) float64 {
	if totalXP < 0 {
		totalXP = 0
	}
	if level < 1 {
		level = 1
	}
	floor := XPThresholdForLevel(level)
	ceil := XPThresholdForLevel(level + 1)
	pct := float64(totalXP-floor) / float64(ceil-floor) * 100
	return math.Min(100, math.Max(0, pct))
}
