package store

import "time"

// QueueOutbox journals a send in 'queued' status. Re-queueing an existing
// local id resets it to queued.
func (db *DB) QueueOutbox(e *OutboxEntry) error {
	now := time.Now().UnixMilli()
	created := e.CreatedAt
	if created == 0 {
		created = now
	}
	_, err := db.Exec(`
		INSERT INTO outbox (local_id, conv_key, receiver_id, channel_id, body, status, error_message, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, 'queued', '', ?, ?)
		ON CONFLICT(local_id) DO UPDATE SET status = 'queued', error_message = '', updated_at = excluded.updated_at`,
		e.LocalID, e.ConvKey, e.ReceiverID, e.ChannelID, e.Body, created, now)
	return err
}

// MarkOutboxSending updates an outbox entry to 'sending' status.
func (db *DB) MarkOutboxSending(localID string) error {
	return db.setOutboxStatus(localID, OutboxSending, "")
}

// MarkOutboxSent updates an outbox entry to 'sent'.
func (db *DB) MarkOutboxSent(localID string) error {
	return db.setOutboxStatus(localID, OutboxSent, "")
}

// MarkOutboxFailed updates an outbox entry to 'failed' with an error message.
func (db *DB) MarkOutboxFailed(localID, errMsg string) error {
	return db.setOutboxStatus(localID, OutboxFailed, errMsg)
}

func (db *DB) setOutboxStatus(localID, status, errMsg string) error {
	now := time.Now().UnixMilli()
	_, err := db.Exec(`UPDATE outbox SET status = ?, error_message = ?, updated_at = ? WHERE local_id = ?`,
		status, errMsg, now, localID)
	return err
}

// UnsentOutbox returns entries that never reached 'sent', oldest first.
func (db *DB) UnsentOutbox() ([]OutboxEntry, error) {
	rows, err := db.Query(`
		SELECT local_id, conv_key, receiver_id, channel_id, body, status, error_message, created_at
		FROM outbox WHERE status != 'sent' ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []OutboxEntry
	for rows.Next() {
		var e OutboxEntry
		if err := rows.Scan(&e.LocalID, &e.ConvKey, &e.ReceiverID, &e.ChannelID, &e.Body, &e.Status, &e.ErrorMessage, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
