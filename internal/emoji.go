package internal

import (
	"github.com/forPelevin/gomoji"
)

// CountEmojis returns the number of emoji characters in s, one per code
// point (skin tones and ZWJ components count individually, matching the
// per-character classification the scores are calibrated against).
func CountEmojis(s string) int {
	count := 0
	for _, r := range s {
		if gomoji.ContainsEmoji(string(r)) {
			count++
		}
	}
	return count
}

// ExtractEmojis returns every emoji character in s in order, duplicates
// included.
func ExtractEmojis(s string) []string {
	var emojis []string
	for _, r := range s {
		if gomoji.ContainsEmoji(string(r)) {
			emojis = append(emojis, string(r))
		}
	}
	return emojis
}
