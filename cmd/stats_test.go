package cmd

import (
	"strings"
	"testing"

	"github.com/nvaswani/vibecheck/testutil"
)

func TestStatsCommand(t *testing.T) {
	path := testutil.WriteTempChat(t, testutil.SampleChat)

	out, err := runCommand(t, "stats", path)
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}

	for _, want := range []string{"Alice", "Bob", "Media shared", "Chatting days"} {
		if !strings.Contains(out, want) {
			t.Errorf("stats output missing %q\nOutput: %s", want, out)
		}
	}
}

func TestStatsCommand_ThreeAuthors(t *testing.T) {
	// stats parses fine but flags that analysis will refuse.
	path := testutil.WriteTempChat(t, testutil.ThreeAuthorChat)

	out, err := runCommand(t, "stats", path)
	if err != nil {
		t.Fatalf("stats error = %v", err)
	}
	if !strings.Contains(out, "exactly two participants") {
		t.Errorf("stats output missing cardinality warning\nOutput: %s", out)
	}
}

func TestStatsCommand_Malformed(t *testing.T) {
	path := testutil.WriteTempChat(t, testutil.MalformedChat)

	if _, err := runCommand(t, "stats", path); err == nil {
		t.Error("stats with malformed transcript succeeded, want error")
	}
}
