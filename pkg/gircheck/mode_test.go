package gircheck_test

import (
	"errors"
	"testing"

	"github.com/renesugar/gircheck/pkg/gircheck"
)

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode gircheck.Mode
		want string
	}{
		{gircheck.ModePassthrough, "passthrough"},
		{gircheck.ModeTypeInfo, "typeinfo"},
		{gircheck.ModePropertyInfo, "propertyinfo"},
		{gircheck.ModeSignalInfo, "signalinfo"},
		{gircheck.ModeMerge, "mergeinfo"},
		{gircheck.Mode(42), "Mode(42)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func TestMode_Classification(t *testing.T) {
	if !gircheck.ModePassthrough.IsExtraction() || gircheck.ModePassthrough.IsInfo() {
		t.Error("passthrough should be extraction but not info")
	}
	if !gircheck.ModeSignalInfo.IsExtraction() || !gircheck.ModeSignalInfo.IsInfo() {
		t.Error("signalinfo should be extraction and info")
	}
	if gircheck.ModeMerge.IsExtraction() || gircheck.ModeMerge.IsInfo() {
		t.Error("mergeinfo reads tables, not documents")
	}
}

func TestParseMode(t *testing.T) {
	m, err := gircheck.ParseMode("propertyinfo")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if m != gircheck.ModePropertyInfo {
		t.Errorf("Expected propertyinfo, got %v", m)
	}

	_, err = gircheck.ParseMode("none")
	if !errors.Is(err, gircheck.ErrUsage) {
		t.Errorf("Expected ErrUsage for none, got %v", err)
	}
}
