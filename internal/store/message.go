package store

import (
	"strings"
	"time"
)

const upsertMessageSQL = `
	INSERT INTO messages (id, conv_key, sender_id, receiver_id, channel_id, body, read, created_at, cached_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		body = excluded.body,
		read = MAX(messages.read, excluded.read),
		created_at = excluded.created_at`

// UpsertMessage inserts or updates a message (idempotent on id). A cached
// read flag is never cleared.
func (db *DB) UpsertMessage(m *Message) error {
	_, err := db.Exec(upsertMessageSQL,
		m.ID, m.ConvKey, m.SenderID, m.ReceiverID, m.ChannelID, m.Body, m.Read, m.CreatedAt, time.Now().UnixMilli())
	return err
}

// BulkUpsertMessages upserts messages in a single transaction.
func (db *DB) BulkUpsertMessages(msgs []Message) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UnixMilli()
	for _, m := range msgs {
		if _, err := tx.Exec(upsertMessageSQL,
			m.ID, m.ConvKey, m.SenderID, m.ReceiverID, m.ChannelID, m.Body, m.Read, m.CreatedAt, now); err != nil {
			return err
		}
	}
	return tx.Commit()
}

const messageColumns = `id, conv_key, sender_id, receiver_id, channel_id, body, read, created_at`

type scanner interface {
	Scan(dest ...any) error
}

func scanMessage(s scanner) (Message, error) {
	var m Message
	err := s.Scan(&m.ID, &m.ConvKey, &m.SenderID, &m.ReceiverID, &m.ChannelID, &m.Body, &m.Read, &m.CreatedAt)
	return m, err
}

// ListMessages returns messages of one conversation using keyset pagination
// by created_at, newest first.
func (db *DB) ListMessages(convKey string, beforeMs int64, limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 50
	}
	if beforeMs <= 0 {
		beforeMs = time.Now().UnixMilli() + 1
	}
	rows, err := db.Query(`
		SELECT `+messageColumns+`
		FROM messages
		WHERE conv_key = ? AND created_at < ?
		ORDER BY created_at DESC
		LIMIT ?`, convKey, beforeMs, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// RecentMessages returns up to limit of the newest cached messages across all
// conversations, oldest first.
func (db *DB) RecentMessages(limit int) ([]Message, error) {
	if limit <= 0 {
		limit = 200
	}
	rows, err := db.Query(`
		SELECT * FROM (
			SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC LIMIT ?
		) ORDER BY created_at ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var msgs []Message
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, rows.Err()
}

// MarkMessagesRead sets the read flag on the given ids.
func (db *DB) MarkMessagesRead(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	_, err := db.Exec(`UPDATE messages SET read = 1 WHERE id IN (`+placeholders+`)`, args...)
	return err
}

// MessageCount returns the total number of cached messages.
func (db *DB) MessageCount() (int64, error) {
	var count int64
	err := db.QueryRow(`SELECT COUNT(*) FROM messages`).Scan(&count)
	return count, err
}
