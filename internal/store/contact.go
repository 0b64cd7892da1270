package store

import (
	"fmt"
	"time"
)

// ReplaceFriends replaces the cached friend list in a single transaction.
func (db *DB) ReplaceFriends(friends []Contact) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
		return err
	}
	now := time.Now().UnixMilli()
	for _, c := range friends {
		if _, err := tx.Exec(`
			INSERT INTO contacts (user_id, display_name, online, updated_at)
			VALUES (?, ?, ?, ?)
			ON CONFLICT(user_id) DO UPDATE SET
				display_name = excluded.display_name,
				online = excluded.online,
				updated_at = excluded.updated_at`,
			c.UserID, c.DisplayName, c.Online, now); err != nil {
			return fmt.Errorf("upsert contact %q: %w", c.UserID, err)
		}
	}
	return tx.Commit()
}

// Friends returns the cached friend list ordered by display name.
func (db *DB) Friends() ([]Contact, error) {
	rows, err := db.Query(`SELECT user_id, display_name, online FROM contacts ORDER BY display_name COLLATE NOCASE`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var out []Contact
	for rows.Next() {
		var c Contact
		if err := rows.Scan(&c.UserID, &c.DisplayName, &c.Online); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
