package gircheck

import "fmt"

// Mode selects what a run produces. Exactly one mode is active per invocation.
type Mode int

const (
	ModeNone Mode = iota
	ModePassthrough
	ModeTypeInfo
	ModePropertyInfo
	ModeSignalInfo
	ModeMerge
)

var modeNames = map[Mode]string{
	ModeNone:         "none",
	ModePassthrough:  "passthrough",
	ModeTypeInfo:     "typeinfo",
	ModePropertyInfo: "propertyinfo",
	ModeSignalInfo:   "signalinfo",
	ModeMerge:        "mergeinfo",
}

func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// IsExtraction reports whether the mode reads GIR documents from a file list.
func (m Mode) IsExtraction() bool {
	return m == ModePassthrough || m == ModeTypeInfo || m == ModePropertyInfo || m == ModeSignalInfo
}

// IsInfo reports whether the mode emits a flat info table.
func (m Mode) IsInfo() bool {
	return m == ModeTypeInfo || m == ModePropertyInfo || m == ModeSignalInfo
}

// ParseMode converts a mode name back into a Mode.
func ParseMode(name string) (Mode, error) {
	for m, n := range modeNames {
		if n == name && m != ModeNone {
			return m, nil
		}
	}
	return ModeNone, fmt.Errorf("%w: unknown mode %q", ErrUsage, name)
}
