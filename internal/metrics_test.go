package internal

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestExtractMetrics_ReplyTime(t *testing.T) {
	t.Run("averages qualifying replies", func(t *testing.T) {
		// Bob replies to Alice after 2 minutes and after 1 minute.
		transcript := CreateTestConversation()
		got := ExtractMetrics(transcript.Records, "Bob", "Alice")

		if got.ReplyTime != 1.5 {
			t.Errorf("ReplyTime = %v, want 1.5", got.ReplyTime)
		}
		if diff := cmp.Diff([]float64{2, 1}, got.ReplySamples); diff != "" {
			t.Errorf("ReplySamples mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("sentinel when no qualifying replies", func(t *testing.T) {
		records := []Message{
			CreateTestMessage("Alice", "hello", 0),
			CreateTestMessage("Alice", "anyone there", 5),
		}
		got := ExtractMetrics(records, "Bob", "Alice")

		if got.ReplyTime != ReplyTimeSentinel {
			t.Errorf("ReplyTime = %v, want sentinel %d", got.ReplyTime, ReplyTimeSentinel)
		}
		if len(got.ReplySamples) != 0 {
			t.Errorf("ReplySamples = %v, want none", got.ReplySamples)
		}
	})

	t.Run("gaps of 24h or more are discarded", func(t *testing.T) {
		records := []Message{
			CreateTestMessage("Alice", "hello", 0),
			CreateTestMessage("Bob", "next day", 1440), // exactly 24h: not a sample
			CreateTestMessage("Alice", "hi", 1441),
			CreateTestMessage("Bob", "quick", 1444), // 3 minutes: qualifies
		}
		got := ExtractMetrics(records, "Bob", "Alice")

		if got.ReplyTime != 3 {
			t.Errorf("ReplyTime = %v, want 3", got.ReplyTime)
		}
	})

	t.Run("only counterpart-then-focal pairs qualify", func(t *testing.T) {
		records := []Message{
			CreateTestMessage("Bob", "double", 0),
			CreateTestMessage("Bob", "text", 1), // Bob after Bob: no sample
			CreateTestMessage("Alice", "hey", 2),
			CreateTestMessage("Bob", "reply", 6), // 4 minutes: qualifies
		}
		got := ExtractMetrics(records, "Bob", "Alice")

		if got.ReplyTime != 4 {
			t.Errorf("ReplyTime = %v, want 4", got.ReplyTime)
		}
	})
}

func TestExtractMetrics_EmojiRate(t *testing.T) {
	tests := []struct {
		name    string
		records []Message
		want    float64
	}{
		{
			name: "one emoji over two messages",
			records: []Message{
				CreateTestMessage("Alice", "hello 😂", 0),
				CreateTestMessage("Alice", "plain", 1),
			},
			want: 0.5,
		},
		{
			name: "multiple emojis in one message",
			records: []Message{
				CreateTestMessage("Alice", "😂🎉😂", 0),
			},
			want: 3,
		},
		{
			name:    "no messages",
			records: []Message{CreateTestMessage("Bob", "😂", 0)},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractMetrics(tt.records, "Alice", "Bob")
			if got.EmojiRate != tt.want {
				t.Errorf("EmojiRate = %v, want %v", got.EmojiRate, tt.want)
			}
		})
	}
}

func TestExtractMetrics_MessageShare(t *testing.T) {
	transcript := CreateTestConversation()

	alice := ExtractMetrics(transcript.Records, "Alice", "Bob")
	bob := ExtractMetrics(transcript.Records, "Bob", "Alice")

	if alice.MessageShare != 0.5 || bob.MessageShare != 0.5 {
		t.Errorf("MessageShare = %v / %v, want 0.5 / 0.5", alice.MessageShare, bob.MessageShare)
	}

	empty := ExtractMetrics(nil, "Alice", "Bob")
	if empty.MessageShare != 0 {
		t.Errorf("MessageShare on empty = %v, want 0", empty.MessageShare)
	}
}

func TestDayCoverage(t *testing.T) {
	tests := []struct {
		name    string
		records []Message
		want    float64
	}{
		{
			name:    "single day",
			records: CreateTestConversation().Records,
			want:    1.0,
		},
		{
			name: "two active days out of four",
			records: []Message{
				CreateTestMessage("Alice", "day one", 0),
				CreateTestMessage("Bob", "day four", 3*24*60),
			},
			want: 0.5,
		},
		{
			name:    "empty",
			records: nil,
			want:    0,
		},
		{
			name: "late night to early morning spans two days",
			records: []Message{
				CreateTestMessage("Alice", "night", 13*60),    // 23:00 Jan 1
				CreateTestMessage("Bob", "morning", 13*60+120), // 01:00 Jan 2
			},
			want: 1.0, // 2 distinct days over a 2-day span
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayCoverage(tt.records); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DayCoverage() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayCoverage_TranscriptWide(t *testing.T) {
	// Day coverage measures the whole transcript's calendar, not the
	// focal user's subset: Alice only spoke on day one, but both days
	// had activity.
	records := []Message{
		CreateTestMessage("Alice", "day one", 0),
		CreateTestMessage("Bob", "day two", 24*60),
	}
	got := ExtractMetrics(records, "Alice", "Bob")
	if got.DayCoverage != 1.0 {
		t.Errorf("DayCoverage = %v, want 1.0", got.DayCoverage)
	}
}
