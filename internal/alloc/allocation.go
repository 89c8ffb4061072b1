package alloc

import (
	"strings"
	"time"
)

// Allocation assigns one person to one venue for one date and shift.
// OrderNo and PageNo record the sanction order the allocation was made
// under; deletions carry their own order number and reason.
type Allocation struct {
	ID       int64
	ExamID   int64
	Person   string
	Role     Role
	Venue    string
	Date     time.Time
	Shift    Shift
	MockTest bool
	OrderNo  string
	PageNo   string
}

// DateKey is the canonical day string used for grouping and storage.
func (a Allocation) DateKey() string {
	return a.Date.Format("2006-01-02")
}

// SamePerson reports whether two allocations refer to the same person,
// ignoring case and surrounding whitespace.
func (a Allocation) SamePerson(b Allocation) bool {
	return normalize(a.Person) == normalize(b.Person)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
