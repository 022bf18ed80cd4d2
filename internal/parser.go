package internal

import (
	"regexp"
	"strings"
	"time"
)

// lineRe is the transcript line grammar: "<date>, <time> - <author>: <text>".
// The am/pm marker is optional; the author runs up to the first colon.
var lineRe = regexp.MustCompile(`^(\d{1,2}/\d{1,2}/\d{2,4}), (\d{1,2}:\d{2})(?:\s?([AaPp][Mm]))?\s?- ([^:]+): (.*)$`)

// stampLayouts are tried in order: day-first, then month-first, each with
// and without an am/pm marker. Exports disagree on date order; day-first
// wins when both would parse.
var stampLayouts = []string{
	"2/1/2006, 3:04 PM",
	"2/1/2006, 15:04",
	"1/2/06, 3:04 PM",
	"1/2/06, 15:04",
}

// Parse tokenizes a raw transcript into ordered Message records.
//
// Each physical line is matched independently against the line grammar;
// lines that do not match, or whose timestamp fits no known layout, are
// dropped (and counted in Transcript.DroppedLines). Media placeholder
// records are excluded from Records but tallied in MediaCount. If no line
// matches at all the parse fails with a ParseFailureError.
func Parse(raw []byte) (*Transcript, error) {
	lines := strings.Split(string(raw), "\n")
	t := &Transcript{}
	matched := 0

	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := lineRe.FindStringSubmatch(line)
		if m == nil {
			// Continuation text of a multi-line message or export noise.
			t.DroppedLines++
			continue
		}

		ts, ok := parseStamp(m[1], m[2], m[3])
		if !ok {
			LogDebug("Dropping line with unparseable timestamp: %q, %q", m[1], m[2])
			t.DroppedLines++
			continue
		}
		matched++

		author := strings.TrimSpace(m[4])
		body := m[5]
		if body == MediaPlaceholder {
			t.MediaCount++
			continue
		}

		t.Records = append(t.Records, Message{Timestamp: ts, Author: author, Body: body})
	}

	if matched == 0 {
		return nil, &ParseFailureError{Lines: len(lines)}
	}
	return t, nil
}

// parseStamp parses a matched date, clock, and optional am/pm marker.
func parseStamp(date, clock, marker string) (time.Time, bool) {
	stamp := date + ", " + clock
	if marker != "" {
		stamp += " " + strings.ToUpper(marker)
	}
	for _, layout := range stampLayouts {
		if ts, err := time.Parse(layout, stamp); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
