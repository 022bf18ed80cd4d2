package internal

import (
	"time"
)

// CreateTestMessage creates a message at the given minute offset from a
// fixed base time (2023-01-01 10:00 UTC).
func CreateTestMessage(author, body string, minuteOffset int) Message {
	base := time.Date(2023, 1, 1, 10, 0, 0, 0, time.UTC)
	return Message{
		Timestamp: base.Add(time.Duration(minuteOffset) * time.Minute),
		Author:    author,
		Body:      body,
	}
}

// CreateTestTranscript wraps messages in a Transcript.
func CreateTestTranscript(messages ...Message) *Transcript {
	return &Transcript{Records: messages}
}

// CreateTestConversation builds the four-message exchange used across
// tests: Alice and Bob trading quick replies on one day.
func CreateTestConversation() *Transcript {
	return CreateTestTranscript(
		CreateTestMessage("Alice", "hi", 0),
		CreateTestMessage("Bob", "hi back", 2),
		CreateTestMessage("Alice", "how are you?", 5),
		CreateTestMessage("Bob", "good lol", 6),
	)
}
