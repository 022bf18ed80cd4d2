package internal

import (
	"sort"
	"strings"
	"unicode"
)

// BuildActivity aggregates message counts by hour of day, weekday, and
// calendar day.
func BuildActivity(records []Message) Activity {
	act := Activity{Daily: make(map[string]int)}
	for _, m := range records {
		act.Hourly[m.Timestamp.Hour()]++
		act.Weekday[int(m.Timestamp.Weekday())]++
		act.Daily[m.Timestamp.Format("2006-01-02")]++
	}
	return act
}

// TopEmojis returns the user's n most frequent emoji characters,
// most frequent first. Ties break alphabetically for stable output.
func TopEmojis(records []Message, user string, n int) []EmojiCount {
	counts := make(map[string]int)
	for _, m := range records {
		if m.Author != user {
			continue
		}
		for _, e := range ExtractEmojis(m.Body) {
			counts[e]++
		}
	}

	ranked := make([]EmojiCount, 0, len(counts))
	for e, c := range counts {
		ranked = append(ranked, EmojiCount{Emoji: e, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Emoji < ranked[j].Emoji
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// TopWords returns the user's n most frequent words, most frequent
// first. Words are lowercased, trimmed of surrounding punctuation, and
// must be at least three runes long.
func TopWords(records []Message, user string, n int) []WordCount {
	counts := make(map[string]int)
	for _, m := range records {
		if m.Author != user {
			continue
		}
		for _, field := range strings.Fields(m.Body) {
			word := strings.ToLower(strings.TrimFunc(field, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsNumber(r)
			}))
			if len([]rune(word)) < 3 {
				continue
			}
			counts[word]++
		}
	}

	ranked := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		ranked = append(ranked, WordCount{Word: w, Count: c})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Word < ranked[j].Word
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}
