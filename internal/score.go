package internal

// Scoring maps the base metrics (T, e, m, d) to composite scores through
// fixed threshold tiers. Both formulas are total over all real inputs:
// the tiers partition the real line, so every value lands in exactly one.
// Comparisons are strict; the first matching tier wins.

// loveBase and friendshipBase are the formula constants every tier
// bonus/penalty is added to.
const (
	loveBase       = 50
	friendshipBase = 40
)

// LoveScore computes the romantic-lens composite. Fast replies are
// rewarded heavily and slow ones penalized; the message-share penalty
// can reach -10 for a very low share.
func LoveScore(bm BaseMetrics) ScoreBreakdown {
	var b ScoreBreakdown

	switch {
	case bm.ReplyTime < 2:
		b.Response = 25
	case bm.ReplyTime < 5:
		b.Response = 15
	case bm.ReplyTime < 10:
		b.Response = 10
	case bm.ReplyTime < 30:
		b.Response = 5
	default:
		b.Response = -15
	}

	switch {
	case bm.EmojiRate > 0.5:
		b.Emoji = 20
	case bm.EmojiRate > 0.2:
		b.Emoji = 15
	case bm.EmojiRate > 0.1:
		b.Emoji = 10
	case bm.EmojiRate > 0.05:
		b.Emoji = 5
	default:
		b.Emoji = 0
	}

	switch {
	case bm.MessageShare > 0.45:
		b.Share = 15
	case bm.MessageShare > 0.35:
		b.Share = 10
	case bm.MessageShare > 0.25:
		b.Share = 5
	default:
		b.Share = -10
	}

	switch {
	case bm.DayCoverage > 0.8:
		b.Consistency = 15
	case bm.DayCoverage > 0.5:
		b.Consistency = 10
	case bm.DayCoverage > 0.3:
		b.Consistency = 5
	default:
		b.Consistency = 0
	}

	b.Total = loveBase + b.Response + b.Emoji + b.Share + b.Consistency
	return b
}

// FriendshipScore computes the platonic-lens composite: more forgiving
// reply-time tiers, and no sub-score below -5.
func FriendshipScore(bm BaseMetrics) ScoreBreakdown {
	var b ScoreBreakdown

	switch {
	case bm.ReplyTime < 5:
		b.Response = 20
	case bm.ReplyTime < 15:
		b.Response = 10
	case bm.ReplyTime < 60:
		b.Response = 5
	default:
		b.Response = 0
	}

	switch {
	case bm.EmojiRate > 0.2:
		b.Emoji = 20
	case bm.EmojiRate > 0.1:
		b.Emoji = 15
	case bm.EmojiRate > 0.05:
		b.Emoji = 10
	default:
		b.Emoji = 0
	}

	switch {
	case bm.MessageShare > 0.40:
		b.Share = 20
	case bm.MessageShare > 0.30:
		b.Share = 10
	default:
		b.Share = -5
	}

	switch {
	case bm.DayCoverage > 0.6:
		b.Consistency = 20
	case bm.DayCoverage > 0.3:
		b.Consistency = 10
	default:
		b.Consistency = 0
	}

	b.Total = friendshipBase + b.Response + b.Emoji + b.Share + b.Consistency
	return b
}
