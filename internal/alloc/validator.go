package alloc

import "fmt"

// Reason classifies why a candidate allocation was rejected.
type Reason int

const (
	DuplicatePerson Reason = iota
	VenueConflict
)

func (r Reason) String() string {
	switch r {
	case DuplicatePerson:
		return "duplicate person"
	case VenueConflict:
		return "venue conflict"
	}
	return "unknown"
}

// Conflict is a rejected allocation attempt. Existing is the allocation
// already on record that the candidate collided with.
type Conflict struct {
	Reason   Reason
	Existing Allocation
}

func (c *Conflict) Error() string {
	e := c.Existing
	switch c.Reason {
	case DuplicatePerson:
		return fmt.Sprintf("%s is already allocated to %s on %s (%s)",
			e.Person, e.Venue, e.DateKey(), e.Shift.Label())
	case VenueConflict:
		return fmt.Sprintf("%s already has a %s for the %s shift on %s",
			e.Venue, e.Role.Label(), e.Shift.Label(), e.DateKey())
	}
	return "allocation conflict"
}

// Check decides whether candidate may join existing. It is a pure
// function over its arguments; the caller supplies the allocation set
// for the exam and the venue's capacity (minimum 1).
//
// Checks run in order: a person may hold at most one allocation per
// date+shift anywhere, then a venue may hold at most capacity
// allocations of the same role per date+shift. A nil return is an
// acceptance.
func Check(candidate Allocation, existing []Allocation, capacity int) *Conflict {
	if capacity < 1 {
		capacity = 1
	}

	date := candidate.DateKey()
	filled := 0
	for _, e := range existing {
		if e.DateKey() != date || e.Shift != candidate.Shift {
			continue
		}
		if e.SamePerson(candidate) {
			return &Conflict{Reason: DuplicatePerson, Existing: e}
		}
		if e.Venue == candidate.Venue && e.Role == candidate.Role {
			filled++
		}
	}
	if filled >= capacity {
		for _, e := range existing {
			if e.DateKey() == date && e.Shift == candidate.Shift &&
				e.Venue == candidate.Venue && e.Role == candidate.Role {
				return &Conflict{Reason: VenueConflict, Existing: e}
			}
		}
	}
	return nil
}
