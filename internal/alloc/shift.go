package alloc

import "fmt"

// Shift is a time-block of exam duty on a given day.
type Shift string

const (
	Morning Shift = "morning"
	Evening Shift = "evening"
	FullDay Shift = "full-day"
)

// ErrInvalidShift is returned by ParseShift for unknown shift names.
type ErrInvalidShift struct {
	Input string
}

func (e *ErrInvalidShift) Error() string {
	return fmt.Sprintf("invalid shift %q (want morning, evening or full-day)", e.Input)
}

// ParseShift normalizes shift names as they appear in venue schedule
// files and on the command line.
func ParseShift(s string) (Shift, error) {
	switch normalize(s) {
	case "morning", "m", "am", "1st", "first":
		return Morning, nil
	case "evening", "e", "pm", "2nd", "second", "afternoon":
		return Evening, nil
	case "full-day", "fullday", "full", "fd", "whole day":
		return FullDay, nil
	}
	return "", &ErrInvalidShift{Input: s}
}

func (s Shift) String() string { return string(s) }

// Label returns the display form used in listings and exports.
func (s Shift) Label() string {
	switch s {
	case Morning:
		return "Morning"
	case Evening:
		return "Evening"
	case FullDay:
		return "Full Day"
	}
	return string(s)
}

// Role distinguishes the two kinds of allocated personnel.
type Role string

const (
	Coordinator Role = "coordinator"
	EYPersonnel Role = "ey"
)

func ParseRole(s string) (Role, error) {
	switch normalize(s) {
	case "coordinator", "centre coordinator", "cc", "io":
		return Coordinator, nil
	case "ey", "ey personnel", "ey-personnel":
		return EYPersonnel, nil
	}
	return "", fmt.Errorf("invalid role %q (want coordinator or ey)", s)
}

func (r Role) Label() string {
	switch r {
	case Coordinator:
		return "Centre Coordinator"
	case EYPersonnel:
		return "EY Personnel"
	}
	return string(r)
}
