package store

import (
	"strings"
	"time"
)

// QueueReads journals read flags that still need a remote write. Ids
// already queued keep their original position.
func (db *DB) QueueReads(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	for _, id := range ids {
		if _, err := tx.Exec(`INSERT INTO pending_reads (message_id, queued_at) VALUES (?, ?) ON CONFLICT(message_id) DO NOTHING`, id, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// ClearReads drops journaled read flags once they are persisted remotely.
func (db *DB) ClearReads(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	_, err := db.Exec(`DELETE FROM pending_reads WHERE message_id IN (`+placeholders+`)`, args...)
	return err
}

// PendingReads returns the journaled read flags, oldest first.
func (db *DB) PendingReads() ([]string, error) {
	rows, err := db.Query(`SELECT message_id FROM pending_reads ORDER BY queued_at ASC, rowid ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
