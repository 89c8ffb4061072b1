package pay

import (
	"sort"

	"github.com/arijitsen/examdesk/internal/alloc"
)

// Rates is the remuneration table. All amounts are whole rupees. The
// combined rate applies when one person works more than one shift on
// the same day; it replaces the per-shift amounts, it is not added to
// them.
type Rates struct {
	Morning     int `toml:"morning"`
	Evening     int `toml:"evening"`
	FullDay     int `toml:"full_day"`
	Combined    int `toml:"combined"`
	MockTest    int `toml:"mock_test"`
	EYPersonnel int `toml:"ey_personnel_day"`
}

// Base returns the single-shift amount for a shift type.
func (r Rates) Base(s alloc.Shift) int {
	switch s {
	case alloc.Morning:
		return r.Morning
	case alloc.Evening:
		return r.Evening
	case alloc.FullDay:
		return r.FullDay
	}
	return 0
}

// Kind names the rule that produced a day's amount.
type Kind string

const (
	KindSingle   Kind = "Single Shift"
	KindCombined Kind = "Combined Shifts"
	KindMockTest Kind = "Mock Test"
	KindPerDay   Kind = "Per Day"
)

// DayPay is one person-day of the breakdown.
type DayPay struct {
	Person string
	Role   alloc.Role
	Date   string
	Shifts int
	Kind   Kind
	Amount int
}

// PersonTotal sums a person's pay across the exam.
type PersonTotal struct {
	Person string
	Role   alloc.Role
	Days   int
	Amount int
}

// Report is the full remuneration computation for one exam.
type Report struct {
	Days   []DayPay
	Totals []PersonTotal
}

// Total is the grand total across all personnel.
func (r Report) Total() int {
	sum := 0
	for _, t := range r.Totals {
		sum += t.Amount
	}
	return sum
}

// ForPerson filters the breakdown to one person.
func (r Report) ForPerson(name string) []DayPay {
	var out []DayPay
	for _, d := range r.Days {
		if d.Person == name {
			out = append(out, d)
		}
	}
	return out
}

type personDay struct {
	person string
	role   alloc.Role
	date   string
}

// Compute derives the remuneration report from an exam's allocations.
// Pure function: the allocation set and the rate table fully determine
// the output.
//
// Per person per day: EY Personnel draw a flat daily rate; a mock-test
// day pays the mock-test rate regardless of shift count; more than one
// distinct shift (morning + evening) pays the combined rate; a single
// shift pays that shift's base rate.
func Compute(allocations []alloc.Allocation, rates Rates) Report {
	shifts := make(map[personDay]map[alloc.Shift]bool)
	mock := make(map[personDay]bool)

	for _, a := range allocations {
		key := personDay{person: a.Person, role: a.Role, date: a.DateKey()}
		if shifts[key] == nil {
			shifts[key] = make(map[alloc.Shift]bool)
		}
		shifts[key][a.Shift] = true
		if a.MockTest {
			mock[key] = true
		}
	}

	keys := make([]personDay, 0, len(shifts))
	for k := range shifts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].person != keys[j].person {
			return keys[i].person < keys[j].person
		}
		return keys[i].date < keys[j].date
	})

	var report Report
	totals := make(map[string]*PersonTotal)

	for _, k := range keys {
		day := DayPay{
			Person: k.person,
			Role:   k.role,
			Date:   k.date,
			Shifts: len(shifts[k]),
		}

		switch {
		case k.role == alloc.EYPersonnel:
			day.Kind = KindPerDay
			day.Amount = rates.EYPersonnel
		case mock[k]:
			day.Kind = KindMockTest
			day.Amount = rates.MockTest
		case len(shifts[k]) > 1:
			day.Kind = KindCombined
			day.Amount = rates.Combined
		default:
			day.Kind = KindSingle
			for s := range shifts[k] {
				day.Amount = rates.Base(s)
			}
		}

		report.Days = append(report.Days, day)

		t := totals[k.person]
		if t == nil {
			t = &PersonTotal{Person: k.person, Role: k.role}
			totals[k.person] = t
		}
		t.Days++
		t.Amount += day.Amount
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		report.Totals = append(report.Totals, *totals[name])
	}

	return report
}
