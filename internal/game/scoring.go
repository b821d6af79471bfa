// internal/game/scoring.go
package game

import (
	"math"
	"time"
)

const scoreBase = 200

// maxStreakBonus caps the streak contribution at +30%.
const maxStreakBonus = 3

var difficultyMultipliers = map[Difficulty]float64{
	DifficultyEasy:   0.8,
	DifficultyMedium: 1.0,
	DifficultyHard:   1.3,
}

// Points computes the award for a correct guess. elapsed is the time from
// round start to the guess; roundDuration is the room's configured round
// length. The time ratio is clamped to [0, 1] before exponentiation so a
// guess landing at or after expiry scores zero instead of producing a
// negative-base fractional power. Pure; no side effects.
func Points(elapsed, roundDuration time.Duration, difficulty Difficulty, streak int) int {
	if roundDuration <= 0 {
		return 0
	}
	ratio := 1 - elapsed.Seconds()/roundDuration.Seconds()
	if ratio < 0 {
		ratio = 0
	} else if ratio > 1 {
		ratio = 1
	}

	mult, ok := difficultyMultipliers[difficulty]
	if !ok {
		mult = difficultyMultipliers[DifficultyMedium]
	}

	if streak < 0 {
		streak = 0
	} else if streak > maxStreakBonus {
		streak = maxStreakBonus
	}
	streakBonus := 1 + float64(streak)*0.1

	pts := int(math.Ceil(scoreBase * mult * math.Pow(ratio, 1.2) * streakBonus))
	if pts < 0 {
		pts = 0
	}
	return pts
}
