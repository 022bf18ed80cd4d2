package internal

import (
	"time"
)

// MediaPlaceholder is the sentinel body WhatsApp writes for attachments
// when a chat is exported without media.
const MediaPlaceholder = "<Media omitted>"

// Message is a single parsed transcript record.
type Message struct {
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Author    string    `json:"author" yaml:"author"`
	Body      string    `json:"body" yaml:"body"`
}

// Transcript is the parsed form of one exported chat. Records preserve
// transcript order; media placeholders and unparseable lines are counted
// but never appear in Records.
type Transcript struct {
	Records      []Message `json:"records" yaml:"records"`
	MediaCount   int       `json:"media_count" yaml:"media_count"`
	DroppedLines int       `json:"dropped_lines" yaml:"dropped_lines"`
}

// Authors returns the distinct authors in order of first appearance.
func (t *Transcript) Authors() []string {
	seen := make(map[string]bool)
	var authors []string
	for _, m := range t.Records {
		if !seen[m.Author] {
			seen[m.Author] = true
			authors = append(authors, m.Author)
		}
	}
	return authors
}

// MessageCounts returns the number of records per author.
func (t *Transcript) MessageCounts() map[string]int {
	counts := make(map[string]int)
	for _, m := range t.Records {
		counts[m.Author]++
	}
	return counts
}

// BaseMetrics holds the per-user base quantities (T, e, m, d) that feed
// both scoring formulas. One instance per (focal, counterpart) pair.
type BaseMetrics struct {
	// ReplyTime is the mean reply latency in minutes over qualifying
	// counterpart→focal pairs, or ReplyTimeSentinel when none qualify.
	ReplyTime float64 `json:"reply_time_minutes" yaml:"reply_time_minutes"`
	// EmojiRate is emoji characters per message for the focal user.
	EmojiRate float64 `json:"emoji_rate" yaml:"emoji_rate"`
	// MessageShare is the focal user's fraction of all records.
	MessageShare float64 `json:"message_share" yaml:"message_share"`
	// DayCoverage is distinct active days over the transcript's day span.
	DayCoverage float64 `json:"day_coverage" yaml:"day_coverage"`
	// ReplySamples are the raw qualifying latencies, kept for trend
	// display only; scoring never reads them.
	ReplySamples []float64 `json:"reply_samples,omitempty" yaml:"reply_samples,omitempty"`
}

// ScoreBreakdown is a composite score with its four tiered sub-scores.
type ScoreBreakdown struct {
	Total       int `json:"total" yaml:"total"`
	Response    int `json:"response" yaml:"response"`
	Emoji       int `json:"emoji" yaml:"emoji"`
	Share       int `json:"share" yaml:"share"`
	Consistency int `json:"consistency" yaml:"consistency"`
}

// Severity classifies a relationship tier for presentation emphasis.
type Severity string

const (
	SeverityPositive Severity = "positive"
	SeverityNeutral  Severity = "neutral"
	SeverityNegative Severity = "negative"
)

// Status is a human-readable relationship tier.
type Status struct {
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	Severity    Severity `json:"severity" yaml:"severity"`
}

// Balance holds the engagement-imbalance signals per user.
type Balance struct {
	// Questions counts '?' occurrences summed over each user's messages.
	Questions map[string]int `json:"questions" yaml:"questions"`
	// LowEffort counts messages matching the low-effort-reply lexicon.
	LowEffort map[string]int `json:"low_effort" yaml:"low_effort"`
	// AvgLength is the mean message length in characters (runes).
	AvgLength map[string]float64 `json:"avg_length" yaml:"avg_length"`
}

// Activity aggregates when the conversation happens.
type Activity struct {
	Hourly  [24]int        `json:"hourly" yaml:"hourly,flow"`
	Weekday [7]int         `json:"weekday" yaml:"weekday,flow"` // Sunday = 0
	Daily   map[string]int `json:"daily" yaml:"daily"`          // keyed YYYY-MM-DD
}

// EmojiCount is one entry of a per-user emoji frequency ranking.
type EmojiCount struct {
	Emoji string `json:"emoji" yaml:"emoji"`
	Count int    `json:"count" yaml:"count"`
}

// WordCount is one entry of a per-user word frequency ranking.
type WordCount struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`
}

// Stats are the transcript-wide headline numbers.
type Stats struct {
	TotalMessages int `json:"total_messages" yaml:"total_messages"`
	TotalEmojis   int `json:"total_emojis" yaml:"total_emojis"`
	MediaShared   int `json:"media_shared" yaml:"media_shared"`
	ChattingDays  int `json:"chatting_days" yaml:"chatting_days"`
	DroppedLines  int `json:"dropped_lines" yaml:"dropped_lines"`
}

// UserReport is one user's side of the analysis.
type UserReport struct {
	User       string         `json:"user" yaml:"user"`
	Metrics    BaseMetrics    `json:"metrics" yaml:"metrics"`
	Love       ScoreBreakdown `json:"love" yaml:"love"`
	Friendship ScoreBreakdown `json:"friendship" yaml:"friendship"`
	TopEmojis  []EmojiCount   `json:"top_emojis,omitempty" yaml:"top_emojis,omitempty"`
	TopWords   []WordCount    `json:"top_words,omitempty" yaml:"top_words,omitempty"`
}

// Report is the full analysis bundle for one transcript.
type Report struct {
	ID          string         `json:"id" yaml:"id"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generated_at"`
	Users       [2]string      `json:"users" yaml:"users,flow"`
	Stats       Stats          `json:"stats" yaml:"stats"`
	UserReports [2]UserReport  `json:"user_reports" yaml:"user_reports"`
	AverageLove float64        `json:"average_love" yaml:"average_love"`
	Status      Status         `json:"status" yaml:"status"`
	Starters    map[string]int `json:"starters" yaml:"starters"`
	Balance     Balance        `json:"balance" yaml:"balance"`
	Activity    Activity       `json:"activity" yaml:"activity"`
}
