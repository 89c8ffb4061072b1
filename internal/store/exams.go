package store

import (
	"database/sql"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

type Exam struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Year      string    `json:"year"`
	StartDate string    `json:"start_date,omitempty"`
	EndDate   string    `json:"end_date,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Key is the display identifier for an exam, e.g. "JEE Main-2025".
func (e Exam) Key() string {
	return e.Name + "-" + e.Year
}

func (db *DB) CreateExam(e *Exam) (int64, error) {
	result, err := db.Exec(
		`INSERT INTO exams (name, year, start_date, end_date) VALUES (?, ?, ?, ?)`,
		e.Name, e.Year, e.StartDate, e.EndDate,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting exam: %w", err)
	}
	return result.LastInsertId()
}

func (db *DB) ListExams() ([]Exam, error) {
	rows, err := db.Query(
		`SELECT id, name, year, start_date, end_date, created_at FROM exams ORDER BY created_at ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("querying exams: %w", err)
	}
	defer rows.Close()

	var exams []Exam
	for rows.Next() {
		e, err := scanExam(rows)
		if err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

func (db *DB) GetExam(name, year string) (*Exam, error) {
	row := db.QueryRow(
		`SELECT id, name, year, start_date, end_date, created_at FROM exams WHERE name = ? AND year = ?`,
		name, year,
	)
	e, err := scanExam(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (db *DB) GetExamByID(id int64) (*Exam, error) {
	row := db.QueryRow(
		`SELECT id, name, year, start_date, end_date, created_at FROM exams WHERE id = ?`,
		id,
	)
	e, err := scanExam(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteExam removes an exam that no allocations reference. Exams with
// allocations are immutable records and must keep their history.
func (db *DB) DeleteExam(id int64) error {
	count, err := db.CountAllocations(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("exam has %d allocations; delete them first", count)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM sessions WHERE venue_id IN (SELECT id FROM venues WHERE exam_id = ?)`, id); err != nil {
		return fmt.Errorf("deleting sessions: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM venues WHERE exam_id = ?`, id); err != nil {
		return fmt.Errorf("deleting venues: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM exams WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting exam: %w", err)
	}
	return tx.Commit()
}

const currentExamKey = "current_exam_id"

// SetCurrentExam remembers which exam subsequent commands act on.
func (db *DB) SetCurrentExam(id int64) error {
	return db.SetState(currentExamKey, fmt.Sprintf("%d", id))
}

// CurrentExam resolves the remembered exam, or nil when none is set.
func (db *DB) CurrentExam() (*Exam, error) {
	value, err := db.GetState(currentExamKey)
	if err != nil || value == "" {
		return nil, err
	}
	var id int64
	if _, err := fmt.Sscanf(value, "%d", &id); err != nil {
		return nil, nil
	}
	return db.GetExamByID(id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExam(row rowScanner) (Exam, error) {
	var e Exam
	var start, end sql.NullString
	var createdStr string
	if err := row.Scan(&e.ID, &e.Name, &e.Year, &start, &end, &createdStr); err != nil {
		if err == sql.ErrNoRows {
			return e, err
		}
		return e, fmt.Errorf("scanning exam: %w", err)
	}
	e.StartDate = start.String
	e.EndDate = end.String
	e.CreatedAt = parseStoredTime(createdStr)
	return e, nil
}
