package tui

import (
	"testing"
)

func TestDetectMode_GIRCHECK_PLAIN(t *testing.T) {
	t.Setenv("GIRCHECK_PLAIN", "1")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_CI(t *testing.T) {
	t.Setenv("GIRCHECK_PLAIN", "")
	t.Setenv("CI", "true")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NO_COLOR(t *testing.T) {
	t.Setenv("GIRCHECK_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "1")

	if got := DetectMode(); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
}

func TestDetectMode_NoTerminal(t *testing.T) {
	// In test context, stdout is not a terminal
	t.Setenv("GIRCHECK_PLAIN", "")
	t.Setenv("CI", "")
	t.Setenv("NO_COLOR", "")

	if got := DetectMode(); got != ModePlain {
		t.Errorf("DetectMode() = %d, want ModePlain", got)
	}
	if IsStyled() {
		t.Error("IsStyled() = true without a terminal")
	}
}
