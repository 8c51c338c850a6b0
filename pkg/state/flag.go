package state

import (
	"encoding/json"
	"fmt"
)

// FlagKind distinguishes boolean puzzle flags from integer counters.
type FlagKind string

const (
	FlagBool FlagKind = "bool"
	FlagInt  FlagKind = "int"
)

// Flag is a typed puzzle-state value. Keeping the kind explicit prevents
// a boolean gate from silently becoming a counter mid-session.
type Flag struct {
	Kind FlagKind
	Bool bool
	Int  int
}

// BoolFlag builds a boolean flag.
func BoolFlag(v bool) Flag {
	return Flag{Kind: FlagBool, Bool: v}
}

// IntFlag builds an integer flag.
func IntFlag(v int) Flag {
	return Flag{Kind: FlagInt, Int: v}
}

// MarshalJSON writes the flag as a bare bool or number, keeping saved
// states compact and human-readable.
func (f Flag) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FlagBool:
		return json.Marshal(f.Bool)
	case FlagInt:
		return json.Marshal(f.Int)
	default:
		return nil, fmt.Errorf("flag has unknown kind %q", f.Kind)
	}
}

// UnmarshalJSON accepts a bare bool or number.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = BoolFlag(b)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*f = IntFlag(n)
		return nil
	}
	return fmt.Errorf("flag value %s is neither bool nor int", string(data))
}
