package main

import "math"

type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyNormal
	DifficultyHard
)

var difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard}

func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	}
	return "Unknown"
}

// DifficultyProfile is the static tuning for one difficulty level.
// BombChance, GoldenChance and StarChance must sum to at most 1;
// the remainder is the normal balloon probability.
type DifficultyProfile struct {
	BaseSpeed         float64 // px/frame rise speed at t=0
	SpawnInterval     float64 // ms between spawns at t=0
	BombChance        float64
	GoldenChance      float64
	StarChance        float64
	SpeedIncreaseRate float64 // px/frame gained per elapsed second
	SpawnDecreaseRate float64 // interval multiplier applied per 10s window
}

var difficultyProfiles = map[Difficulty]DifficultyProfile{
	DifficultyEasy: {
		BaseSpeed:         1.2,
		SpawnInterval:     1800,
		BombChance:        0.06,
		GoldenChance:      0.06,
		StarChance:        0.10,
		SpeedIncreaseRate: 0.0008,
		SpawnDecreaseRate: 0.98,
	},
	DifficultyNormal: {
		BaseSpeed:         1.8,
		SpawnInterval:     1400,
		BombChance:        0.10,
		GoldenChance:      0.05,
		StarChance:        0.10,
		SpeedIncreaseRate: 0.001,
		SpawnDecreaseRate: 0.97,
	},
	DifficultyHard: {
		BaseSpeed:         2.4,
		SpawnInterval:     1000,
		BombChance:        0.15,
		GoldenChance:      0.04,
		StarChance:        0.10,
		SpeedIncreaseRate: 0.0015,
		SpawnDecreaseRate: 0.96,
	},
}

// minSpawnIntervalMs floors the spawn interval no matter how long a round runs.
const minSpawnIntervalMs = 300.0

// currentSpeed ramps the rise speed linearly with elapsed seconds.
func currentSpeed(p DifficultyProfile, elapsedSec float64) float64 {
	return p.BaseSpeed + elapsedSec*p.SpeedIncreaseRate
}

// currentSpawnInterval decays the spawn interval geometrically per 10-second
// window, floored at minSpawnIntervalMs.
func currentSpawnInterval(p DifficultyProfile, elapsedSec float64) float64 {
	return math.Max(minSpawnIntervalMs, p.SpawnInterval*math.Pow(p.SpawnDecreaseRate, elapsedSec/10))
}
