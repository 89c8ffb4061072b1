package export

import (
	"bytes"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/arijitsen/examdesk/internal/alloc"
	"github.com/arijitsen/examdesk/internal/pay"
	"github.com/arijitsen/examdesk/internal/store"
)

var testRates = pay.Rates{
	Morning: 450, Evening: 450, FullDay: 750,
	Combined: 750, MockTest: 450, EYPersonnel: 5000,
}

func testAllocations() []alloc.Allocation {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	return []alloc.Allocation{
		{ID: 1, ExamID: 1, Person: "John Doe", Role: alloc.Coordinator, Venue: "Town Hall",
			Date: date, Shift: alloc.Morning, OrderNo: "ORD-17", PageNo: "4"},
		{ID: 2, ExamID: 1, Person: "John Doe", Role: alloc.Coordinator, Venue: "Town Hall",
			Date: date, Shift: alloc.Evening, OrderNo: "ORD-17", PageNo: "4"},
		{ID: 3, ExamID: 1, Person: "Emily Davis", Role: alloc.EYPersonnel, Venue: "Town Hall",
			Date: date, Shift: alloc.Morning},
	}
}

func TestWriteWorkbook(t *testing.T) {
	allocations := testAllocations()
	report := pay.Compute(allocations, testRates)
	exam := store.Exam{ID: 1, Name: "JEE Main", Year: "2025"}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, WriteWorkbook(path, exam, allocations, report, testRates))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t,
		[]string{"Allocations", "Remuneration", "Summary", "Rates"},
		f.GetSheetList(),
	)

	got, err := f.GetCellValue("Allocations", "A2")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", got)

	// John Doe worked morning + evening the same day: combined rate.
	basis, err := f.GetCellValue("Allocations", "I2")
	require.NoError(t, err)
	assert.Equal(t, string(pay.KindCombined), basis)
	amount, err := f.GetCellValue("Allocations", "J2")
	require.NoError(t, err)
	assert.Equal(t, "750", amount)

	rate, err := f.GetCellValue("Rates", "B7")
	require.NoError(t, err)
	assert.Equal(t, "5000", rate)
}

func TestWriteCalendar(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCalendar(&buf, "JEE Main-2025", testAllocations()))

	out := buf.String()
	assert.Contains(t, out, "BEGIN:VCALENDAR")
	assert.Contains(t, out, "BEGIN:VEVENT")
	assert.Contains(t, out, "LOCATION:Town Hall")
	assert.Contains(t, out, "JEE Main-2025")
	assert.Equal(t, 3, bytes.Count(buf.Bytes(), []byte("BEGIN:VEVENT")))
}
