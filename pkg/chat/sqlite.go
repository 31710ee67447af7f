package chat

import (
	"context"
	"database/sql"
	"fmt"

	// SQLite driver registration.
	_ "github.com/mattn/go-sqlite3"

	"github.com/svavnc/concierge/pkg/message"
)

const chatSchema = `
CREATE TABLE IF NOT EXISTS chat_messages (
	seq         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id  TEXT NOT NULL,
	id          TEXT NOT NULL,
	role        TEXT NOT NULL,
	text        TEXT NOT NULL,
	media_mime  TEXT,
	media_data  TEXT,
	is_error    INTEGER NOT NULL DEFAULT 0,
	created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_chat_messages_session ON chat_messages(session_id, seq);
`

// SQLiteStore persists chat history in a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore prepares the schema on the given database handle. The
// handle may be shared with other stores.
func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if _, err := db.Exec(chatSchema); err != nil {
		return nil, fmt.Errorf("failed to create chat schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// History implements Store.
func (s *SQLiteStore) History(ctx context.Context, sessionID string) ([]message.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, role, text, media_mime, media_data, is_error
		 FROM chat_messages WHERE session_id = ? ORDER BY seq`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var out []message.ChatMessage
	for rows.Next() {
		var (
			msg       message.ChatMessage
			mime, dat sql.NullString
			isErr     int
		)
		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Text, &mime, &dat, &isErr); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		if mime.Valid && mime.String != "" {
			msg.Media = &message.Media{MimeType: mime.String, Data: dat.String}
		}
		msg.IsError = isErr != 0
		out = append(out, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history rows: %w", err)
	}
	return out, nil
}

// Append implements Store.
func (s *SQLiteStore) Append(ctx context.Context, sessionID string, msg message.ChatMessage) error {
	var mime, dat sql.NullString
	if msg.Media != nil {
		mime = sql.NullString{String: msg.Media.MimeType, Valid: true}
		dat = sql.NullString{String: msg.Media.Data, Valid: true}
	}

	isErr := 0
	if msg.IsError {
		isErr = 1
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO chat_messages (session_id, id, role, text, media_mime, media_data, is_error)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, msg.ID, msg.Role, msg.Text, mime, dat, isErr)
	if err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	return nil
}

// Clear implements Store.
func (s *SQLiteStore) Clear(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM chat_messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}
