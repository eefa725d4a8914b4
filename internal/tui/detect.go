package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents how gircheck presents its end-of-run summary.
type Mode int

const (
	// ModePlain is used for CI/CD pipelines, scripts, and redirected output.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether the summary is styled.
//
// Returns ModePlain if:
//   - stdout is not a terminal (redirected or piped)
//   - GIRCHECK_PLAIN=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeStyled otherwise.
func DetectMode() Mode {
	if os.Getenv("GIRCHECK_PLAIN") == "1" {
		return ModePlain
	}
	if os.Getenv("CI") != "" {
		return ModePlain
	}
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModePlain
	}

	return ModeStyled
}

// IsStyled is a convenience function that returns true if output is styled.
func IsStyled() bool {
	return DetectMode() == ModeStyled
}
