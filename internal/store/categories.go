package store

import (
	"database/sql"
	"time"
)

// InsertCategory inserts a category.
func (db *DB) InsertCategory(c *WaitCategory) error {
	_, err := db.conn.Exec(
		`INSERT INTO categories (id, name, kind, sort_order, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Name, string(c.Kind), c.SortOrder, c.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// ListCategories returns all categories ordered by sort order, then creation
// time for ties.
func (db *DB) ListCategories() ([]WaitCategory, error) {
	rows, err := db.conn.Query(
		"SELECT id, name, kind, sort_order, created_at FROM categories ORDER BY sort_order ASC, created_at ASC",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var cats []WaitCategory
	for rows.Next() {
		var c WaitCategory
		var kind, createdAt string
		if err := rows.Scan(&c.ID, &c.Name, &kind, &c.SortOrder, &createdAt); err != nil {
			return nil, err
		}
		c.Kind = CategoryKind(kind)
		c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		cats = append(cats, c)
	}
	return cats, rows.Err()
}

// MaxSortOrder returns the highest sort order among stored categories, or -1
// when no categories exist.
func (db *DB) MaxSortOrder() (int, error) {
	var max sql.NullInt64
	if err := db.conn.QueryRow("SELECT MAX(sort_order) FROM categories").Scan(&max); err != nil {
		return 0, err
	}
	if !max.Valid {
		return -1, nil
	}
	return int(max.Int64), nil
}

// SeedSystemCategories inserts the five system categories if the categories
// table is empty. Seeding happens at most once per database.
func (db *DB) SeedSystemCategories(now time.Time) error {
	var n int
	if err := db.conn.QueryRow("SELECT COUNT(*) FROM categories").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, c := range SystemCategories(now) {
		if err := db.InsertCategory(&c); err != nil {
			return err
		}
	}
	return nil
}
