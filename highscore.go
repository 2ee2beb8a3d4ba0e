package main

import (
	"encoding/json"
	"log"
	"os"
)

// highScorePath is where best scores per difficulty live. Tests point it at
// a temp file.
var highScorePath = "balloonpop-scores.json"

// loadHighScores reads best scores per difficulty. A missing or corrupt file
// yields all-zero bests; persistence is never allowed to affect gameplay.
func loadHighScores() map[Difficulty]int {
	scores := make(map[Difficulty]int)
	data, err := os.ReadFile(highScorePath)
	if err != nil {
		return scores
	}
	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return scores
	}
	for _, d := range difficulties {
		if v, ok := raw[d.String()]; ok && v > 0 {
			scores[d] = v
		}
	}
	return scores
}

// saveHighScores writes best scores best-effort; failures are logged and
// otherwise ignored.
func saveHighScores(scores map[Difficulty]int) {
	raw := make(map[string]int, len(scores))
	for d, v := range scores {
		raw[d.String()] = v
	}
	data, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return
	}
	if err := os.WriteFile(highScorePath, data, 0644); err != nil {
		log.Printf("failed to save high scores: %v", err)
	}
}
