package internal

import (
	"testing"
)

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetLogLevel(LogLevelError)
	if logLevel != LogLevelError {
		t.Errorf("SetLogLevel() logLevel = %v, want LogLevelError", logLevel)
	}
}
