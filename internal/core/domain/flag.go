package domain

import "strings"

// Flag is an acknowledgement gate an issue must pass before it is accepted
// into a release.
type Flag string

// Known acknowledgement flags.
const (
	FlagPM  Flag = "PM"
	FlagDev Flag = "DEV"
	FlagQE  Flag = "QE"
)

// AllFlags returns every known acknowledgement flag.
func AllFlags() []Flag {
	return []Flag{FlagPM, FlagDev, FlagQE}
}

// ParseFlag matches name case-insensitively against the known flags.
func ParseFlag(name string) (Flag, bool) {
	want := Flag(strings.ToUpper(strings.TrimSpace(name)))
	for _, f := range AllFlags() {
		if f == want {
			return f, true
		}
	}
	return "", false
}

// String returns the string representation.
func (f Flag) String() string {
	return string(f)
}

// FlagStatus is the state of a flag, transmitted as a single symbol.
type FlagStatus string

// Flag statuses, valued by their wire symbol.
const (
	FlagStatusAccepted FlagStatus = "+"
	FlagStatusRejected FlagStatus = "-"
	FlagStatusSet      FlagStatus = "?"
	FlagStatusNotSet   FlagStatus = " "
)

// ParseFlagStatus decodes a status symbol. Anything unrecognised, including
// the empty string, is treated as FlagStatusNotSet.
func ParseFlagStatus(symbol string) FlagStatus {
	switch s := FlagStatus(symbol); s {
	case FlagStatusAccepted, FlagStatusRejected, FlagStatusSet:
		return s
	default:
		return FlagStatusNotSet
	}
}

// ParseFlagStatusName decodes a status given either as a symbol or as a
// name (accepted, approved, rejected, denied, set, requested, unset).
func ParseFlagStatusName(s string) (FlagStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "+", "accepted", "approved":
		return FlagStatusAccepted, true
	case "-", "rejected", "denied":
		return FlagStatusRejected, true
	case "?", "set", "requested", "pending":
		return FlagStatusSet, true
	case "", "unset", "notset", "none":
		return FlagStatusNotSet, true
	default:
		return "", false
	}
}

// Symbol returns the wire symbol for the status.
func (s FlagStatus) Symbol() string {
	return string(s)
}

// Name returns a human-readable name for the status.
func (s FlagStatus) Name() string {
	switch s {
	case FlagStatusAccepted:
		return "accepted"
	case FlagStatusRejected:
		return "rejected"
	case FlagStatusSet:
		return "set"
	default:
		return "unset"
	}
}

// Stage maps each acknowledgement flag present on an issue to its status.
type Stage map[Flag]FlagStatus

// NewStage returns an empty stage.
func NewStage() Stage {
	return Stage{}
}

// SetStatus records status for flag.
func (s Stage) SetStatus(flag Flag, status FlagStatus) {
	s[flag] = status
}

// Status returns the status of flag, or FlagStatusNotSet if it is absent.
func (s Stage) Status(flag Flag) FlagStatus {
	if status, ok := s[flag]; ok {
		return status
	}
	return FlagStatusNotSet
}

// HasFlag reports whether flag was present on the issue.
func (s Stage) HasFlag(flag Flag) bool {
	_, ok := s[flag]
	return ok
}

// Stream is a review dimension attached to an issue through a
// non-acknowledgement flag.
type Stream struct {
	Name   string
	Status FlagStatus
}
