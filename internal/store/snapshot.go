package store

import (
	"fmt"
	"time"

	"github.com/arijitsen/examdesk/internal/alloc"
)

// SnapshotVersion is bumped whenever the snapshot layout changes in a
// way old restores cannot read.
const SnapshotVersion = 1

// SnapshotAllocation is the portable form of an allocation row.
type SnapshotAllocation struct {
	ID       int64  `json:"id"`
	ExamID   int64  `json:"exam_id"`
	Person   string `json:"person"`
	Role     string `json:"role"`
	Venue    string `json:"venue"`
	Date     string `json:"date"`
	Shift    string `json:"shift"`
	MockTest bool   `json:"mock_test"`
	OrderNo  string `json:"order_no,omitempty"`
	PageNo   string `json:"page_no,omitempty"`
}

// Snapshot is a complete copy of the dataset, as written to backup
// files and read back on restore.
type Snapshot struct {
	Version     int                  `json:"version"`
	CreatedAt   time.Time            `json:"created_at"`
	Exams       []Exam               `json:"exams"`
	Venues      []Venue              `json:"venues"`
	Sessions    []Session            `json:"sessions"`
	Allocations []SnapshotAllocation `json:"allocations"`
	Deleted     []DeletedAllocation  `json:"deleted_allocations"`
}

// Snapshot copies every table into a Snapshot.
func (db *DB) Snapshot() (*Snapshot, error) {
	snap := &Snapshot{
		Version:   SnapshotVersion,
		CreatedAt: time.Now().UTC(),
	}

	exams, err := db.ListExams()
	if err != nil {
		return nil, err
	}
	snap.Exams = exams

	for _, e := range exams {
		venues, err := db.ListVenues(e.ID)
		if err != nil {
			return nil, err
		}
		snap.Venues = append(snap.Venues, venues...)

		for _, v := range venues {
			sessions, err := db.ListSessions(v.ID)
			if err != nil {
				return nil, err
			}
			snap.Sessions = append(snap.Sessions, sessions...)
		}

		allocations, err := db.ListAllocations(e.ID)
		if err != nil {
			return nil, err
		}
		for _, a := range allocations {
			snap.Allocations = append(snap.Allocations, SnapshotAllocation{
				ID:       a.ID,
				ExamID:   a.ExamID,
				Person:   a.Person,
				Role:     string(a.Role),
				Venue:    a.Venue,
				Date:     a.DateKey(),
				Shift:    string(a.Shift),
				MockTest: a.MockTest,
				OrderNo:  a.OrderNo,
				PageNo:   a.PageNo,
			})
		}

		deleted, err := db.ListDeletedAllocations(e.ID)
		if err != nil {
			return nil, err
		}
		snap.Deleted = append(snap.Deleted, deleted...)
	}

	return snap, nil
}

// Restore replaces the entire dataset with the snapshot's contents.
// Everything runs in one transaction: either the snapshot lands whole
// or the current dataset stays untouched.
func (db *DB) Restore(snap *Snapshot) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"deleted_allocations", "allocations", "sessions", "venues", "exams"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, e := range snap.Exams {
		if _, err := tx.Exec(
			`INSERT INTO exams (id, name, year, start_date, end_date, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID, e.Name, e.Year, e.StartDate, e.EndDate, e.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		); err != nil {
			return fmt.Errorf("restoring exam %s: %w", e.Key(), err)
		}
	}

	for _, v := range snap.Venues {
		if _, err := tx.Exec(
			`INSERT INTO venues (id, exam_id, name, centre_code, address, capacity) VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID, v.ExamID, v.Name, v.CentreCode, v.Address, v.Capacity,
		); err != nil {
			return fmt.Errorf("restoring venue %s: %w", v.Name, err)
		}
	}

	for _, s := range snap.Sessions {
		if _, err := tx.Exec(
			`INSERT INTO sessions (id, venue_id, session_date, shift) VALUES (?, ?, ?, ?)`,
			s.ID, s.VenueID, s.Date, string(s.Shift),
		); err != nil {
			return fmt.Errorf("restoring session: %w", err)
		}
	}

	for _, a := range snap.Allocations {
		if _, err := tx.Exec(
			`INSERT INTO allocations (id, exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			a.ID, a.ExamID, a.Person, a.Role, a.Venue, a.Date, a.Shift,
			boolToInt(a.MockTest), a.OrderNo, a.PageNo,
		); err != nil {
			return fmt.Errorf("restoring allocation for %s: %w", a.Person, err)
		}
	}

	for _, d := range snap.Deleted {
		if _, err := tx.Exec(
			`INSERT INTO deleted_allocations
				(id, exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no,
				 deletion_order_no, deletion_reason, deleted_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			d.ID, d.ExamID, d.Person, d.Role, d.Venue, d.Date, d.Shift,
			boolToInt(d.MockTest), d.OrderNo, d.PageNo,
			d.DeletionOrderNo, d.DeletionReason, d.DeletedAt.UTC().Format("2006-01-02 15:04:05"),
		); err != nil {
			return fmt.Errorf("restoring deleted allocation: %w", err)
		}
	}

	return tx.Commit()
}

// Allocation converts a snapshot row back to the domain type.
func (a SnapshotAllocation) Allocation() alloc.Allocation {
	date, _ := time.Parse(dateLayout, a.Date)
	return alloc.Allocation{
		ID:       a.ID,
		ExamID:   a.ExamID,
		Person:   a.Person,
		Role:     alloc.Role(a.Role),
		Venue:    a.Venue,
		Date:     date,
		Shift:    alloc.Shift(a.Shift),
		MockTest: a.MockTest,
		OrderNo:  a.OrderNo,
		PageNo:   a.PageNo,
	}
}
