package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arijitsen/examdesk/internal/alloc"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	t.Setenv("EXAMDESK_DATA_DIR", t.TempDir())

	db, err := Open()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedExam(t *testing.T, db *DB) int64 {
	t.Helper()
	id, err := db.CreateExam(&Exam{Name: "JEE Main", Year: "2025", StartDate: "2025-03-10", EndDate: "2025-03-14"})
	require.NoError(t, err)
	return id
}

func seedAllocation(t *testing.T, db *DB, examID int64, person, venue, date string, shift alloc.Shift) int64 {
	t.Helper()
	d, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)
	id, err := db.InsertAllocation(&alloc.Allocation{
		ExamID:  examID,
		Person:  person,
		Role:    alloc.Coordinator,
		Venue:   venue,
		Date:    d,
		Shift:   shift,
		OrderNo: "ORD-17",
		PageNo:  "4",
	})
	require.NoError(t, err)
	return id
}

func TestExamLifecycle(t *testing.T) {
	db := openTestDB(t)
	id := seedExam(t, db)

	exam, err := db.GetExam("JEE Main", "2025")
	require.NoError(t, err)
	require.NotNil(t, exam)
	assert.Equal(t, id, exam.ID)
	assert.Equal(t, "JEE Main-2025", exam.Key())

	// Duplicate (name, year) is rejected by the unique constraint.
	_, err = db.CreateExam(&Exam{Name: "JEE Main", Year: "2025"})
	assert.Error(t, err)

	exams, err := db.ListExams()
	require.NoError(t, err)
	assert.Len(t, exams, 1)

	require.NoError(t, db.SetCurrentExam(id))
	current, err := db.CurrentExam()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, id, current.ID)
}

func TestDeleteExam_RefusedWhileReferenced(t *testing.T) {
	db := openTestDB(t)
	id := seedExam(t, db)
	seedAllocation(t, db, id, "John Doe", "Town Hall", "2025-03-10", alloc.Morning)

	err := db.DeleteExam(id)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "allocations")

	allocations, err := db.ListAllocations(id)
	require.NoError(t, err)
	require.Len(t, allocations, 1)

	require.NoError(t, db.DeleteAllocation(allocations[0].ID, "DEL-1", "entered in error"))
	require.NoError(t, db.DeleteExam(id))

	exam, err := db.GetExamByID(id)
	require.NoError(t, err)
	assert.Nil(t, exam)
}

func TestVenuesAndSessions(t *testing.T) {
	db := openTestDB(t)
	examID := seedExam(t, db)

	venueID, err := db.UpsertVenue(&Venue{ExamID: examID, Name: "Town Hall", CentreCode: "1001", Address: "Kolkata"})
	require.NoError(t, err)

	// Re-import with updated details keeps the same row.
	again, err := db.UpsertVenue(&Venue{ExamID: examID, Name: "Town Hall", CentreCode: "1001", Address: "Kolkata", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, venueID, again)

	v, err := db.GetVenue(examID, "Town Hall")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, 2, v.Capacity)

	require.NoError(t, db.InsertSession(&Session{VenueID: venueID, Date: "2025-03-10", Shift: alloc.Morning}))
	require.NoError(t, db.InsertSession(&Session{VenueID: venueID, Date: "2025-03-10", Shift: alloc.Morning}))
	sessions, err := db.ListSessions(venueID)
	require.NoError(t, err)
	assert.Len(t, sessions, 1)
}

func TestAllocationRoundTrip(t *testing.T) {
	db := openTestDB(t)
	examID := seedExam(t, db)
	id := seedAllocation(t, db, examID, "John Doe", "Town Hall", "2025-03-10", alloc.Morning)

	a, err := db.GetAllocation(id)
	require.NoError(t, err)
	require.NotNil(t, a)
	assert.Equal(t, "John Doe", a.Person)
	assert.Equal(t, alloc.Coordinator, a.Role)
	assert.Equal(t, alloc.Morning, a.Shift)
	assert.Equal(t, "2025-03-10", a.DateKey())
	assert.Equal(t, "ORD-17", a.OrderNo)
}

func TestDeleteAllocation_MovesToAuditLog(t *testing.T) {
	db := openTestDB(t)
	examID := seedExam(t, db)
	id := seedAllocation(t, db, examID, "John Doe", "Town Hall", "2025-03-10", alloc.Morning)

	require.NoError(t, db.DeleteAllocation(id, "DEL-9", "duplicate entry"))

	count, err := db.CountAllocations(examID)
	require.NoError(t, err)
	assert.Zero(t, count)

	deleted, err := db.ListDeletedAllocations(examID)
	require.NoError(t, err)
	require.Len(t, deleted, 1)
	assert.Equal(t, "John Doe", deleted[0].Person)
	assert.Equal(t, "DEL-9", deleted[0].DeletionOrderNo)
	assert.Equal(t, "duplicate entry", deleted[0].DeletionReason)
	assert.False(t, deleted[0].DeletedAt.IsZero())

	err = db.DeleteAllocation(id, "DEL-10", "again")
	assert.Error(t, err)
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	db := openTestDB(t)
	examID := seedExam(t, db)
	venueID, err := db.UpsertVenue(&Venue{ExamID: examID, Name: "Town Hall", CentreCode: "1001", Capacity: 1})
	require.NoError(t, err)
	require.NoError(t, db.InsertSession(&Session{VenueID: venueID, Date: "2025-03-10", Shift: alloc.Morning}))
	allocID := seedAllocation(t, db, examID, "John Doe", "Town Hall", "2025-03-10", alloc.Morning)
	seedAllocation(t, db, examID, "Jane Smith", "Town Hall", "2025-03-10", alloc.Evening)
	require.NoError(t, db.DeleteAllocation(allocID, "DEL-1", "rescheduled"))

	snap, err := db.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, SnapshotVersion, snap.Version)
	require.Len(t, snap.Allocations, 1)
	require.Len(t, snap.Deleted, 1)

	// Mutate the dataset, then restore the snapshot over it.
	seedAllocation(t, db, examID, "Robert Johnson", "Town Hall", "2025-03-11", alloc.Morning)
	require.NoError(t, db.Restore(snap))

	after, err := db.Snapshot()
	require.NoError(t, err)
	after.CreatedAt = snap.CreatedAt
	assert.Equal(t, snap, after)

	allocations, err := db.ListAllocations(examID)
	require.NoError(t, err)
	require.Len(t, allocations, 1)
	assert.Equal(t, "Jane Smith", allocations[0].Person)
}
