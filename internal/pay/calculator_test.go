package pay

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arijitsen/examdesk/internal/alloc"
)

var testRates = Rates{
	Morning:     450,
	Evening:     450,
	FullDay:     750,
	Combined:    750,
	MockTest:    450,
	EYPersonnel: 5000,
}

func mkAlloc(person string, role alloc.Role, date string, shift alloc.Shift, mock bool) alloc.Allocation {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return alloc.Allocation{
		Person:   person,
		Role:     role,
		Venue:    "Town Hall",
		Date:     d,
		Shift:    shift,
		MockTest: mock,
	}
}

func TestCompute_SingleShift(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, false),
	}, testRates)

	require.Len(t, report.Days, 1)
	assert.Equal(t, KindSingle, report.Days[0].Kind)
	assert.Equal(t, 450, report.Days[0].Amount)
	assert.Equal(t, 450, report.Total())
}

func TestCompute_CombinedIsNotSumOfSingles(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, false),
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Evening, false),
	}, testRates)

	require.Len(t, report.Days, 1)
	day := report.Days[0]
	assert.Equal(t, KindCombined, day.Kind)
	assert.Equal(t, 2, day.Shifts)
	assert.Equal(t, testRates.Combined, day.Amount)
	assert.NotEqual(t, testRates.Morning+testRates.Evening, day.Amount)
}

func TestCompute_CombinedRateIsConfigurable(t *testing.T) {
	rates := testRates
	rates.Combined = 900

	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, false),
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Evening, false),
	}, rates)

	assert.Equal(t, 900, report.Total())
}

func TestCompute_FullDay(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.FullDay, false),
	}, testRates)

	require.Len(t, report.Days, 1)
	assert.Equal(t, KindSingle, report.Days[0].Kind)
	assert.Equal(t, 750, report.Days[0].Amount)
}

func TestCompute_MockTestOverridesShiftCount(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, true),
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Evening, false),
	}, testRates)

	require.Len(t, report.Days, 1)
	assert.Equal(t, KindMockTest, report.Days[0].Kind)
	assert.Equal(t, testRates.MockTest, report.Days[0].Amount)
}

func TestCompute_EYPersonnelPerDay(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("Emily Davis", alloc.EYPersonnel, "2025-03-10", alloc.Morning, false),
		mkAlloc("Emily Davis", alloc.EYPersonnel, "2025-03-10", alloc.Evening, false),
		mkAlloc("Emily Davis", alloc.EYPersonnel, "2025-03-11", alloc.Morning, false),
	}, testRates)

	// Two shifts on the same day still pay one daily rate.
	require.Len(t, report.Days, 2)
	for _, d := range report.Days {
		assert.Equal(t, KindPerDay, d.Kind)
		assert.Equal(t, 5000, d.Amount)
	}
	assert.Equal(t, 10000, report.Total())
}

func TestCompute_TotalsAcrossDays(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, false),
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Evening, false),
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-11", alloc.Morning, false),
		mkAlloc("Jane Smith", alloc.Coordinator, "2025-03-11", alloc.Evening, false),
	}, testRates)

	require.Len(t, report.Totals, 2)

	// Totals sort by person name.
	assert.Equal(t, "Jane Smith", report.Totals[0].Person)
	assert.Equal(t, 450, report.Totals[0].Amount)

	assert.Equal(t, "John Doe", report.Totals[1].Person)
	assert.Equal(t, 2, report.Totals[1].Days)
	assert.Equal(t, 750+450, report.Totals[1].Amount)

	assert.Equal(t, 750+450+450, report.Total())
}

func TestCompute_ForPerson(t *testing.T) {
	report := Compute([]alloc.Allocation{
		mkAlloc("John Doe", alloc.Coordinator, "2025-03-10", alloc.Morning, false),
		mkAlloc("Jane Smith", alloc.Coordinator, "2025-03-10", alloc.Evening, false),
	}, testRates)

	days := report.ForPerson("Jane Smith")
	require.Len(t, days, 1)
	assert.Equal(t, "2025-03-10", days[0].Date)
}

func TestCompute_Empty(t *testing.T) {
	report := Compute(nil, testRates)
	assert.Empty(t, report.Days)
	assert.Empty(t, report.Totals)
	assert.Zero(t, report.Total())
}
