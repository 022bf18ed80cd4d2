package internal

import (
	"time"
)

const (
	// ReplyTimeSentinel marks a user with no qualifying reply samples:
	// "never replies promptly" rather than zero latency.
	ReplyTimeSentinel = 999

	// maxReplyGap is the cutoff beyond which a reply is treated as a new
	// session rather than a latency sample.
	maxReplyGap = 24 * time.Hour
)

// ExtractMetrics computes the base metrics (T, e, m, d) for the focal
// user against the counterpart over the full record sequence.
//
// A reply sample qualifies when the counterpart speaks immediately before
// the focal user and the gap is under 24 hours. Day coverage is computed
// over the whole transcript's date range, not the focal user's subset: it
// measures how much of the relationship's calendar lifetime had any
// activity at all.
func ExtractMetrics(records []Message, focal, counterpart string) BaseMetrics {
	var samples []float64
	for i := 1; i < len(records); i++ {
		if records[i].Author != focal || records[i-1].Author != counterpart {
			continue
		}
		gap := records[i].Timestamp.Sub(records[i-1].Timestamp)
		if gap < maxReplyGap {
			samples = append(samples, gap.Minutes())
		}
	}

	replyTime := float64(ReplyTimeSentinel)
	if len(samples) > 0 {
		var sum float64
		for _, s := range samples {
			sum += s
		}
		replyTime = sum / float64(len(samples))
	}

	var msgCount, emojiCount int
	for _, m := range records {
		if m.Author == focal {
			msgCount++
			emojiCount += CountEmojis(m.Body)
		}
	}

	var emojiRate float64
	if msgCount > 0 {
		emojiRate = float64(emojiCount) / float64(msgCount)
	}

	var share float64
	if len(records) > 0 {
		share = float64(msgCount) / float64(len(records))
	}

	return BaseMetrics{
		ReplyTime:    replyTime,
		EmojiRate:    emojiRate,
		MessageShare: share,
		DayCoverage:  DayCoverage(records),
		ReplySamples: samples,
	}
}

// DayCoverage returns the ratio of distinct calendar days with at least
// one record to the transcript's total day span (last - first + 1).
// Zero for an empty sequence or a non-positive span.
func DayCoverage(records []Message) float64 {
	if len(records) == 0 {
		return 0
	}

	days := make(map[string]bool)
	first, last := records[0].Timestamp, records[0].Timestamp
	for _, m := range records {
		days[m.Timestamp.Format("2006-01-02")] = true
		if m.Timestamp.Before(first) {
			first = m.Timestamp
		}
		if m.Timestamp.After(last) {
			last = m.Timestamp
		}
	}

	span := daySpan(first, last)
	if span <= 0 {
		return 0
	}
	return float64(len(days)) / float64(span)
}

// DistinctDays returns the number of distinct calendar days with at
// least one record.
func DistinctDays(records []Message) int {
	days := make(map[string]bool)
	for _, m := range records {
		days[m.Timestamp.Format("2006-01-02")] = true
	}
	return len(days)
}

// daySpan counts calendar days from first to last inclusive.
func daySpan(first, last time.Time) int {
	f := time.Date(first.Year(), first.Month(), first.Day(), 0, 0, 0, 0, time.UTC)
	l := time.Date(last.Year(), last.Month(), last.Day(), 0, 0, 0, 0, time.UTC)
	return int(l.Sub(f).Hours()/24) + 1
}
