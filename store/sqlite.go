package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/ai8v/coursepage/domain"
	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore implements TranscriptStore using SQLite. Each course gets one
// row holding its transcript as a JSON array of {role, text} objects.
type SQLiteStore struct {
	db         *sql.DB
	maxHistory int
}

// NewSQLiteStore creates a new SQLite transcript store.
func NewSQLiteStore(dsn string, maxHistory int) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}

	store := &SQLiteStore{db: db, maxHistory: maxHistory}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// migrate runs database migrations.
func (s *SQLiteStore) migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS transcripts (
			key TEXT PRIMARY KEY,
			messages TEXT NOT NULL,
			updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, m := range migrations {
		if _, err := s.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\n%s", err, m)
		}
	}

	return nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func transcriptKey(courseID int) string {
	return KeyPrefix + strconv.Itoa(courseID)
}

// Append adds a message to the course transcript, enforcing the capacity
// bound after every write.
func (s *SQLiteStore) Append(ctx context.Context, courseID int, msg domain.ChatMessage) error {
	if msg.Role == domain.ChatRoleError {
		// Locally generated error bubbles never enter the transcript.
		return nil
	}

	history, err := s.Read(ctx, courseID)
	if err != nil {
		return err
	}

	history = Trim(append(history, msg), s.maxHistory)

	payload, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO transcripts (key, messages, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET messages = excluded.messages, updated_at = excluded.updated_at`,
		transcriptKey(courseID), string(payload), time.Now())
	if err != nil {
		return fmt.Errorf("failed to write transcript: %w", err)
	}
	return nil
}

// Read returns the transcript for a course. Missing rows and corrupt
// payloads both degrade to an empty transcript.
func (s *SQLiteStore) Read(ctx context.Context, courseID int) ([]domain.ChatMessage, error) {
	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT messages FROM transcripts WHERE key = ?`, transcriptKey(courseID)).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read transcript: %w", err)
	}

	var history []domain.ChatMessage
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Printf("WARN: corrupt transcript for course %d, starting fresh: %v", courseID, err)
		return nil, nil
	}
	return history, nil
}
