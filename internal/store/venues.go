package store

import (
	"database/sql"
	"fmt"

	"github.com/arijitsen/examdesk/internal/alloc"
)

type Venue struct {
	ID         int64  `json:"id"`
	ExamID     int64  `json:"exam_id"`
	Name       string `json:"name"`
	CentreCode string `json:"centre_code"`
	Address    string `json:"address"`
	Capacity   int    `json:"capacity"`
}

// Session is one scheduled sitting at a venue, as imported from the
// venue schedule file.
type Session struct {
	ID      int64       `json:"id"`
	VenueID int64       `json:"venue_id"`
	Date    string      `json:"date"`
	Shift   alloc.Shift `json:"shift"`
}

// UpsertVenue inserts a venue or refreshes its details, returning the
// venue ID either way.
func (db *DB) UpsertVenue(v *Venue) (int64, error) {
	if v.Capacity < 1 {
		v.Capacity = 1
	}
	_, err := db.Exec(
		`INSERT INTO venues (exam_id, name, centre_code, address, capacity)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(exam_id, name) DO UPDATE SET
			centre_code = excluded.centre_code,
			address = excluded.address,
			capacity = excluded.capacity`,
		v.ExamID, v.Name, v.CentreCode, v.Address, v.Capacity,
	)
	if err != nil {
		return 0, fmt.Errorf("upserting venue: %w", err)
	}

	var id int64
	err = db.QueryRow(
		`SELECT id FROM venues WHERE exam_id = ? AND name = ?`, v.ExamID, v.Name,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("resolving venue id: %w", err)
	}
	return id, nil
}

func (db *DB) GetVenue(examID int64, name string) (*Venue, error) {
	var v Venue
	err := db.QueryRow(
		`SELECT id, exam_id, name, centre_code, address, capacity FROM venues WHERE exam_id = ? AND name = ?`,
		examID, name,
	).Scan(&v.ID, &v.ExamID, &v.Name, &v.CentreCode, &v.Address, &v.Capacity)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying venue: %w", err)
	}
	return &v, nil
}

func (db *DB) ListVenues(examID int64) ([]Venue, error) {
	rows, err := db.Query(
		`SELECT id, exam_id, name, centre_code, address, capacity FROM venues WHERE exam_id = ? ORDER BY name ASC`,
		examID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying venues: %w", err)
	}
	defer rows.Close()

	var venues []Venue
	for rows.Next() {
		var v Venue
		if err := rows.Scan(&v.ID, &v.ExamID, &v.Name, &v.CentreCode, &v.Address, &v.Capacity); err != nil {
			return nil, fmt.Errorf("scanning venue: %w", err)
		}
		venues = append(venues, v)
	}
	return venues, rows.Err()
}

// InsertSession records a scheduled sitting, ignoring exact duplicates
// so schedule files can be re-imported.
func (db *DB) InsertSession(s *Session) error {
	_, err := db.Exec(
		`INSERT INTO sessions (venue_id, session_date, shift) VALUES (?, ?, ?)
		 ON CONFLICT(venue_id, session_date, shift) DO NOTHING`,
		s.VenueID, s.Date, string(s.Shift),
	)
	if err != nil {
		return fmt.Errorf("inserting session: %w", err)
	}
	return nil
}

func (db *DB) ListSessions(venueID int64) ([]Session, error) {
	rows, err := db.Query(
		`SELECT id, venue_id, session_date, shift FROM sessions WHERE venue_id = ? ORDER BY session_date, shift`,
		venueID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var s Session
		var shift string
		if err := rows.Scan(&s.ID, &s.VenueID, &s.Date, &shift); err != nil {
			return nil, fmt.Errorf("scanning session: %w", err)
		}
		s.Shift = alloc.Shift(shift)
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
