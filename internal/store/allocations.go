package store

import (
	"fmt"
	"time"

	"github.com/arijitsen/examdesk/internal/alloc"
)

func (db *DB) InsertAllocation(a *alloc.Allocation) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO allocations (exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ExamID, a.Person, string(a.Role), a.Venue, a.DateKey(), string(a.Shift),
		boolToInt(a.MockTest), a.OrderNo, a.PageNo,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting allocation: %w", err)
	}
	return result.LastInsertId()
}

func (db *DB) ListAllocations(examID int64) ([]alloc.Allocation, error) {
	return db.queryAllocations(
		`SELECT id, exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no
		 FROM allocations
		 WHERE exam_id = ?
		 ORDER BY alloc_date, shift, venue, person`,
		examID,
	)
}

func (db *DB) GetAllocation(id int64) (*alloc.Allocation, error) {
	allocations, err := db.queryAllocations(
		`SELECT id, exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no
		 FROM allocations
		 WHERE id = ?`,
		id,
	)
	if err != nil {
		return nil, err
	}
	if len(allocations) == 0 {
		return nil, nil
	}
	return &allocations[0], nil
}

func (db *DB) CountAllocations(examID int64) (int, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM allocations WHERE exam_id = ?`, examID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting allocations: %w", err)
	}
	return count, nil
}

// DeletedAllocation is an allocation moved to the audit log. Deletions
// always carry the sanction order and reason they were made under.
type DeletedAllocation struct {
	ID              int64     `json:"id"`
	ExamID          int64     `json:"exam_id"`
	Person          string    `json:"person"`
	Role            string    `json:"role"`
	Venue           string    `json:"venue"`
	Date            string    `json:"date"`
	Shift           string    `json:"shift"`
	MockTest        bool      `json:"mock_test"`
	OrderNo         string    `json:"order_no"`
	PageNo          string    `json:"page_no"`
	DeletionOrderNo string    `json:"deletion_order_no"`
	DeletionReason  string    `json:"deletion_reason"`
	DeletedAt       time.Time `json:"deleted_at"`
}

// DeleteAllocation moves one allocation into the deleted-records log.
// The move is a single transaction so the row is never lost or
// duplicated.
func (db *DB) DeleteAllocation(id int64, deletionOrderNo, reason string) error {
	a, err := db.GetAllocation(id)
	if err != nil {
		return err
	}
	if a == nil {
		return fmt.Errorf("allocation %d not found", id)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO deleted_allocations
			(exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no, deletion_order_no, deletion_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ExamID, a.Person, string(a.Role), a.Venue, a.DateKey(), string(a.Shift),
		boolToInt(a.MockTest), a.OrderNo, a.PageNo, deletionOrderNo, reason,
	)
	if err != nil {
		return fmt.Errorf("recording deletion: %w", err)
	}

	if _, err := tx.Exec(`DELETE FROM allocations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting allocation: %w", err)
	}

	return tx.Commit()
}

func (db *DB) ListDeletedAllocations(examID int64) ([]DeletedAllocation, error) {
	rows, err := db.Query(
		`SELECT id, exam_id, person, role, venue, alloc_date, shift, mock_test, order_no, page_no,
			deletion_order_no, deletion_reason, deleted_at
		 FROM deleted_allocations
		 WHERE exam_id = ?
		 ORDER BY deleted_at ASC`,
		examID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying deleted allocations: %w", err)
	}
	defer rows.Close()

	var deleted []DeletedAllocation
	for rows.Next() {
		var d DeletedAllocation
		var mock int
		var deletedStr string
		if err := rows.Scan(
			&d.ID, &d.ExamID, &d.Person, &d.Role, &d.Venue, &d.Date, &d.Shift,
			&mock, &d.OrderNo, &d.PageNo, &d.DeletionOrderNo, &d.DeletionReason, &deletedStr,
		); err != nil {
			return nil, fmt.Errorf("scanning deleted allocation: %w", err)
		}
		d.MockTest = mock != 0
		d.DeletedAt = parseStoredTime(deletedStr)
		deleted = append(deleted, d)
	}
	return deleted, rows.Err()
}

func (db *DB) queryAllocations(query string, args ...any) ([]alloc.Allocation, error) {
	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying allocations: %w", err)
	}
	defer rows.Close()

	var allocations []alloc.Allocation
	for rows.Next() {
		var a alloc.Allocation
		var role, dateStr, shift string
		var mock int

		if err := rows.Scan(
			&a.ID, &a.ExamID, &a.Person, &role, &a.Venue, &dateStr, &shift,
			&mock, &a.OrderNo, &a.PageNo,
		); err != nil {
			return nil, fmt.Errorf("scanning allocation: %w", err)
		}

		a.Role = alloc.Role(role)
		a.Shift = alloc.Shift(shift)
		a.MockTest = mock != 0
		if t, err := time.Parse(dateLayout, dateStr); err == nil {
			a.Date = t
		}

		allocations = append(allocations, a)
	}

	return allocations, rows.Err()
}

func parseStoredTime(s string) time.Time {
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
