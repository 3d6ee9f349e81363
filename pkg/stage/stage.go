// Package stage describes materialization stages of the structural
// column of the substances table.
//
// A structure cannot be stored in the database-native type directly from
// its notation. It is first serialized by a codec, then converted by the
// database, and only then made mandatory:
//
//	Raw -> Serialized -> Native -> Finalized
//
// Stages only move forward, one step at a time, and only once.
package stage

import "fmt"

// Stage of the structural column.
type Stage int

const (
	// Unknown means the schema does not look like any stage.
	Unknown Stage = iota

	// Raw means the substances table exists but nothing is ingested.
	Raw

	// Serialized means structures are kept as payloads from the codec.
	Serialized

	// Native means the native structural column exists next to payloads.
	Native

	// Finalized means the native column is mandatory and payloads are gone.
	Finalized
)

var names = map[Stage]string{
	Unknown:    "UNKNOWN",
	Raw:        "RAW",
	Serialized: "SERIALIZED",
	Native:     "NATIVE",
	Finalized:  "FINALIZED",
}

// String returns the upper-case name of a stage.
func (s Stage) String() string {
	if res, ok := names[s]; ok {
		return res
	}
	return fmt.Sprintf("Stage(%d)", int(s))
}

// Next returns the only stage allowed after s.
func (s Stage) Next() (Stage, bool) {
	switch s {
	case Raw, Serialized, Native:
		return s + 1, true
	}
	return Unknown, false
}

// TransitionError is returned for a step that is not a single forward
// step from the current stage.
type TransitionError struct {
	From, To Stage
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot move structures from %s to %s", e.From, e.To)
}

// ConsistencyError is returned when the number of converted structures
// differs from the number of created substances.
type ConsistencyError struct {
	Created   int
	Converted int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf(
		"%d substances were created, but %d structures were converted",
		e.Created, e.Converted,
	)
}

// Machine tracks the stage of one materialization run.
type Machine struct {
	current Stage
}

// NewMachine creates a machine at Raw stage.
func NewMachine() *Machine {
	return &Machine{current: Raw}
}

// Current returns the current stage.
func (m *Machine) Current() Stage {
	return m.current
}

// Advance moves the machine to the stage `to`. Anything except a single
// step forward returns *TransitionError and leaves the machine unchanged.
func (m *Machine) Advance(to Stage) error {
	next, ok := m.current.Next()
	if !ok || next != to {
		return &TransitionError{From: m.current, To: to}
	}
	m.current = to
	return nil
}

// CheckConsistency compares the number of converted structures with the
// number of created substances before the Finalized step.
func CheckConsistency(created, converted int) error {
	if created != converted {
		return &ConsistencyError{Created: created, Converted: converted}
	}
	return nil
}
