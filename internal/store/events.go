package store

import (
	"database/sql"
	"fmt"
	"time"
)

// InsertEvent inserts a completed wait event. Event writes are single-record
// and atomic; events are never updated after insertion.
func (db *DB) InsertEvent(e *WaitEvent) error {
	_, err := db.conn.Exec(
		`INSERT INTO events (id, start_at, end_at, category_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		e.ID,
		e.StartDate.Format(time.RFC3339),
		e.EndDate.Format(time.RFC3339),
		e.CategoryID,
		e.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// DeleteEvent removes a single event by id. It returns an error if no event
// with that id exists.
func (db *DB) DeleteEvent(id string) error {
	result, err := db.conn.Exec("DELETE FROM events WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("no event with id %q", id)
	}
	return nil
}

// ListEvents returns all events ordered by end time ascending.
func (db *DB) ListEvents() ([]WaitEvent, error) {
	rows, err := db.conn.Query(
		"SELECT id, start_at, end_at, category_id, created_at FROM events ORDER BY end_at ASC",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []WaitEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// ListRecentEvents returns up to limit events ordered by end time descending.
func (db *DB) ListRecentEvents(limit int) ([]WaitEvent, error) {
	rows, err := db.conn.Query(
		"SELECT id, start_at, end_at, category_id, created_at FROM events ORDER BY end_at DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var events []WaitEvent
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CountEvents returns the total number of stored events.
func (db *DB) CountEvents() (int, error) {
	var n int
	err := db.conn.QueryRow("SELECT COUNT(*) FROM events").Scan(&n)
	return n, err
}

func scanEvent(rows *sql.Rows) (WaitEvent, error) {
	var e WaitEvent
	var startAt, endAt, createdAt string
	if err := rows.Scan(&e.ID, &startAt, &endAt, &e.CategoryID, &createdAt); err != nil {
		return WaitEvent{}, err
	}
	var err error
	if e.StartDate, err = time.Parse(time.RFC3339, startAt); err != nil {
		return WaitEvent{}, fmt.Errorf("parsing start_at for event %s: %w", e.ID, err)
	}
	if e.EndDate, err = time.Parse(time.RFC3339, endAt); err != nil {
		return WaitEvent{}, fmt.Errorf("parsing end_at for event %s: %w", e.ID, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return e, nil
}
