package alloc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func mkAlloc(person, venue string, date string, shift Shift, role Role) Allocation {
	return Allocation{
		Person: person,
		Role:   role,
		Venue:  venue,
		Date:   day(date),
		Shift:  shift,
	}
}

func TestCheck_AcceptsEmptySet(t *testing.T) {
	c := mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator)
	assert.Nil(t, Check(c, nil, 1))
}

func TestCheck_DuplicatePerson(t *testing.T) {
	existing := []Allocation{
		mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator),
	}

	t.Run("same venue", func(t *testing.T) {
		c := mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator)
		conflict := Check(c, existing, 1)
		require.NotNil(t, conflict)
		assert.Equal(t, DuplicatePerson, conflict.Reason)
	})

	t.Run("different venue same date and shift", func(t *testing.T) {
		c := mkAlloc("John Doe", "City College", "2025-03-10", Morning, Coordinator)
		conflict := Check(c, existing, 1)
		require.NotNil(t, conflict)
		assert.Equal(t, DuplicatePerson, conflict.Reason)
		assert.Equal(t, "Town Hall", conflict.Existing.Venue)
	})

	t.Run("name match ignores case and spacing", func(t *testing.T) {
		c := mkAlloc("  john doe ", "City College", "2025-03-10", Morning, Coordinator)
		conflict := Check(c, existing, 1)
		require.NotNil(t, conflict)
		assert.Equal(t, DuplicatePerson, conflict.Reason)
	})

	t.Run("other shift is fine", func(t *testing.T) {
		c := mkAlloc("John Doe", "City College", "2025-03-10", Evening, Coordinator)
		assert.Nil(t, Check(c, existing, 1))
	})

	t.Run("other date is fine", func(t *testing.T) {
		c := mkAlloc("John Doe", "City College", "2025-03-11", Morning, Coordinator)
		assert.Nil(t, Check(c, existing, 1))
	})
}

func TestCheck_ExactlyOneAcceptance(t *testing.T) {
	// Two allocations sharing (person, date, shift) must never both land.
	a := mkAlloc("Jane Smith", "Town Hall", "2025-03-10", Morning, Coordinator)
	b := mkAlloc("Jane Smith", "City College", "2025-03-10", Morning, Coordinator)

	var accepted []Allocation
	count := 0
	for _, c := range []Allocation{a, b} {
		if Check(c, accepted, 1) == nil {
			accepted = append(accepted, c)
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestCheck_VenueCapacity(t *testing.T) {
	t.Run("default capacity one", func(t *testing.T) {
		existing := []Allocation{
			mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator),
		}
		c := mkAlloc("Jane Smith", "Town Hall", "2025-03-10", Morning, Coordinator)
		conflict := Check(c, existing, 1)
		require.NotNil(t, conflict)
		assert.Equal(t, VenueConflict, conflict.Reason)
	})

	t.Run("capacity admits up to C then rejects", func(t *testing.T) {
		const capacity = 3
		people := []string{"A One", "B Two", "C Three", "D Four"}

		var accepted []Allocation
		var rejected int
		for _, p := range people {
			c := mkAlloc(p, "Town Hall", "2025-03-10", Morning, Coordinator)
			if conflict := Check(c, accepted, capacity); conflict != nil {
				assert.Equal(t, VenueConflict, conflict.Reason)
				rejected++
				continue
			}
			accepted = append(accepted, c)
		}
		assert.Len(t, accepted, capacity)
		assert.Equal(t, 1, rejected)
	})

	t.Run("roles fill independently", func(t *testing.T) {
		existing := []Allocation{
			mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator),
		}
		c := mkAlloc("Jane Smith", "Town Hall", "2025-03-10", Morning, EYPersonnel)
		assert.Nil(t, Check(c, existing, 1))
	})

	t.Run("zero capacity treated as one", func(t *testing.T) {
		c := mkAlloc("John Doe", "Town Hall", "2025-03-10", Morning, Coordinator)
		assert.Nil(t, Check(c, nil, 0))
	})
}

func TestParseShift(t *testing.T) {
	cases := map[string]Shift{
		"Morning":   Morning,
		"morning":   Morning,
		"AM":        Morning,
		"evening":   Evening,
		"Afternoon": Evening,
		"PM":        Evening,
		"full-day":  FullDay,
		"Full":      FullDay,
	}
	for in, want := range cases {
		got, err := ParseShift(in)
		require.NoError(t, err, "input %q", in)
		assert.Equal(t, want, got, "input %q", in)
	}

	_, err := ParseShift("night")
	require.Error(t, err)
	var invalid *ErrInvalidShift
	assert.ErrorAs(t, err, &invalid)
	assert.Equal(t, "night", invalid.Input)
}

func TestParseRole(t *testing.T) {
	got, err := ParseRole("Centre Coordinator")
	require.NoError(t, err)
	assert.Equal(t, Coordinator, got)

	got, err = ParseRole("EY")
	require.NoError(t, err)
	assert.Equal(t, EYPersonnel, got)

	_, err = ParseRole("invigilator")
	assert.Error(t, err)
}
