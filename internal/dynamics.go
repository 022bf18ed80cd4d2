package internal

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// starterGap is the silence threshold after which the next message is
// counted as starting a new conversation.
const starterGap = 6 * time.Hour

// lowEffortRe matches the short-acknowledgment lexicon as whole words,
// case-insensitively ("ok" matches, "okay" does not).
var lowEffortRe = regexp.MustCompile(`(?i)\b(?:ok|k|hmm|lol|haha|yeah)\b`)

// DetectStarters counts, per author, how many conversations they opened.
// The first message always counts; every message after a silence gap
// longer than six hours counts as a new conversation.
func DetectStarters(records []Message) map[string]int {
	starters := make(map[string]int)
	if len(records) == 0 {
		return starters
	}
	starters[records[0].Author]++
	for i := 1; i < len(records); i++ {
		if records[i].Timestamp.Sub(records[i-1].Timestamp) > starterGap {
			starters[records[i].Author]++
		}
	}
	return starters
}

// AnalyzeBalance computes the engagement-imbalance signals for the two
// users: question marks asked, low-effort replies, and average message
// length in characters.
func AnalyzeBalance(records []Message, userA, userB string) Balance {
	bal := Balance{
		Questions: make(map[string]int),
		LowEffort: make(map[string]int),
		AvgLength: make(map[string]float64),
	}

	for _, user := range []string{userA, userB} {
		var questions, lowEffort, messages, chars int
		for _, m := range records {
			if m.Author != user {
				continue
			}
			messages++
			questions += strings.Count(m.Body, "?")
			if lowEffortRe.MatchString(m.Body) {
				lowEffort++
			}
			chars += utf8.RuneCountInString(m.Body)
		}

		bal.Questions[user] = questions
		bal.LowEffort[user] = lowEffort
		if messages > 0 {
			bal.AvgLength[user] = float64(chars) / float64(messages)
		} else {
			bal.AvgLength[user] = 0
		}
	}

	return bal
}
