package internal

import (
	"strings"
	"testing"
)

func TestClassifyStatus(t *testing.T) {
	tests := []struct {
		score        float64
		wantLabel    string
		wantSeverity Severity
	}{
		{100, "Soulmates", SeverityPositive},
		{90, "Soulmates", SeverityPositive},
		{89.9, "Power Couple", SeverityPositive},
		{75, "Power Couple", SeverityPositive},
		{74.9, "Besties", SeverityNeutral},
		{60, "Besties", SeverityNeutral},
		{59.9, "Slow Burn", SeverityNeutral},
		{45, "Slow Burn", SeverityNeutral},
		{44.9, "Acquaintances", SeverityNegative},
		{30, "Acquaintances", SeverityNegative},
		{29.9, "Ghost Town", SeverityNegative},
		{0, "Ghost Town", SeverityNegative},
		{-10, "Ghost Town", SeverityNegative},
	}

	for _, tt := range tests {
		got := ClassifyStatus(tt.score)
		if !strings.Contains(got.Label, tt.wantLabel) {
			t.Errorf("ClassifyStatus(%v).Label = %q, want containing %q", tt.score, got.Label, tt.wantLabel)
		}
		if got.Severity != tt.wantSeverity {
			t.Errorf("ClassifyStatus(%v).Severity = %q, want %q", tt.score, got.Severity, tt.wantSeverity)
		}
		if got.Description == "" {
			t.Errorf("ClassifyStatus(%v).Description is empty", tt.score)
		}
	}
}
