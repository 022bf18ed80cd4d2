package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTempChat writes a chat export to a temp file and returns its path.
// The file is cleaned up with the test.
func WriteTempChat(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write chat fixture: %v", err)
	}
	return path
}

// LoadFixture loads a test fixture file from testdata
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", path))
	if err != nil {
		t.Fatalf("Failed to load fixture %s: %v", path, err)
	}
	return data
}
