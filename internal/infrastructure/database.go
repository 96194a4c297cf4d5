package infrastructure

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// AuditStore persists command outcomes
type AuditStore interface {
	Initialize() error
	LogAuditEvent(command, action, path string, success bool, errorMsg string) error
	GetAuditLogs(limit int) ([]AuditLog, error)
	Close() error
}

// AuditLog represents an audit log entry
type AuditLog struct {
	ID        int64     `json:"id" yaml:"id"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
	Command   string    `json:"command" yaml:"command"`
	Action    string    `json:"action" yaml:"action"`
	Path      string    `json:"path,omitempty" yaml:"path,omitempty"`
	Success   bool      `json:"success" yaml:"success"`
	ErrorMsg  string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// SQLiteAuditStore implements AuditStore for SQLite
type SQLiteAuditStore struct {
	db *sql.DB
}

// OpenAuditStore opens (creating if needed) the database at dbPath and
// ensures the schema exists.
func OpenAuditStore(dbPath string) (*SQLiteAuditStore, error) {
	// Create directory if it doesn't exist
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &SQLiteAuditStore{db: db}
	if err := store.Initialize(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize audit schema: %w", err)
	}
	return store, nil
}

// Initialize sets up database tables
func (s *SQLiteAuditStore) Initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS audit_logs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp DATETIME NOT NULL,
		command TEXT NOT NULL,
		action TEXT NOT NULL,
		path TEXT NOT NULL,
		success BOOLEAN NOT NULL,
		error_msg TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_command ON audit_logs(command);
	CREATE INDEX IF NOT EXISTS idx_timestamp ON audit_logs(timestamp);
	`

	_, err := s.db.Exec(schema)
	return err
}

// LogAuditEvent logs an audit event
func (s *SQLiteAuditStore) LogAuditEvent(command, action, path string, success bool, errorMsg string) error {
	query := `
		INSERT INTO audit_logs (timestamp, command, action, path, success, error_msg)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.Exec(query, time.Now().UTC(), command, action, path, success, errorMsg)
	return err
}

// GetAuditLogs returns the most recent entries, newest first
func (s *SQLiteAuditStore) GetAuditLogs(limit int) ([]AuditLog, error) {
	query := `
		SELECT id, timestamp, command, action, path, success, error_msg
		FROM audit_logs
		ORDER BY id DESC
		LIMIT ?
	`

	rows, err := s.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []AuditLog
	for rows.Next() {
		var entry AuditLog
		var errMsg sql.NullString
		if err := rows.Scan(&entry.ID, &entry.Timestamp, &entry.Command, &entry.Action, &entry.Path, &entry.Success, &errMsg); err != nil {
			return nil, err
		}
		entry.ErrorMsg = errMsg.String
		logs = append(logs, entry)
	}

	return logs, rows.Err()
}

// Close closes the database
func (s *SQLiteAuditStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
