package internal

// ClassifyStatus maps an averaged love score to a relationship tier.
// Bands are fixed and ordered; every real score lands in exactly one.
func ClassifyStatus(score float64) Status {
	switch {
	case score >= 90:
		return Status{
			Label:       "💖 Soulmates! 💖",
			Description: "Your connection is off the charts!",
			Severity:    SeverityPositive,
		}
	case score >= 75:
		return Status{
			Label:       "🔥 The Power Couple 🔥",
			Description: "You have a fantastic dynamic.",
			Severity:    SeverityPositive,
		}
	case score >= 60:
		return Status{
			Label:       "😊 Besties 😊",
			Description: "This is a strong, healthy connection.",
			Severity:    SeverityNeutral,
		}
	case score >= 45:
		return Status{
			Label:       "🤔 The Slow Burn... 🤔",
			Description: "There's potential, but it's a bit lukewarm.",
			Severity:    SeverityNeutral,
		}
	case score >= 30:
		return Status{
			Label:       "🤷 Just Acquaintances 🤷",
			Description: "The vibe is pretty casual and infrequent.",
			Severity:    SeverityNegative,
		}
	default:
		return Status{
			Label:       "👻 The Ghost Town 👻",
			Description: "Communication is sparse and heavily imbalanced.",
			Severity:    SeverityNegative,
		}
	}
}
