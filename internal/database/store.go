// Package database provides the storage layer for the hour tracker.
//
// It records individual teaching sessions in SQLite (WAL mode) and
// aggregates them into weekly per-teacher totals. The DBService struct is
// the primary entry point for all database operations.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"github.com/Mr-Dark-debug/hourtracker/internal/hours"
	"github.com/Mr-Dark-debug/hourtracker/pkg/timeutil"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrInvalidSession is returned for sessions that fail validation before
// reaching the database.
var ErrInvalidSession = errors.New("invalid session")

// ErrNotFound is returned when a session ID does not exist.
var ErrNotFound = errors.New("session not found")

// Store defines the interface for session persistence.
type Store interface {
	// InsertSession persists one session, assigning an ID if empty.
	InsertSession(s *Session) error
	// BatchInsertSessions inserts multiple sessions in a single transaction.
	BatchInsertSessions(sessions []*Session) error
	// QuerySessions returns sessions matching the filter, ordered by start_time.
	QuerySessions(filter SessionFilter) ([]*Session, error)
	// WeeklyHours sums hours per teacher for the week starting at weekStart.
	WeeklyHours(weekStart int64) (hours.TeacherHours, error)
	// DeleteSession removes a session by ID.
	DeleteSession(sessionID string) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// ============================================================
// Domain Models
// ============================================================

// Session is one block of teaching attributed to a teacher.
type Session struct {
	SessionID string  `json:"session_id"`
	Teacher   string  `json:"teacher"`
	Subject   string  `json:"subject,omitempty"`
	StartTime int64   `json:"start_time"` // Unix nanoseconds
	Hours     float64 `json:"hours"`
	Note      *string `json:"note,omitempty"`
}

// Validate checks the fields the schema cannot express.
func (s *Session) Validate() error {
	if strings.TrimSpace(s.Teacher) == "" {
		return fmt.Errorf("%w: teacher is required", ErrInvalidSession)
	}
	if math.IsNaN(s.Hours) || math.IsInf(s.Hours, 0) || s.Hours < 0 {
		return fmt.Errorf("%w: hours must be a non-negative number, got %v", ErrInvalidSession, s.Hours)
	}
	return nil
}

// SessionFilter defines query parameters for session listing.
type SessionFilter struct {
	Teacher *string `json:"teacher,omitempty"`
	Since   *int64  `json:"since,omitempty"` // Unix nanoseconds, inclusive
	Until   *int64  `json:"until,omitempty"` // Unix nanoseconds, exclusive
	Limit   int     `json:"limit"`
	Offset  int     `json:"offset"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string
	log  *zap.Logger

	stmtInsertSession *sql.Stmt
	stmtDeleteSession *sql.Stmt
}

// NewDBService opens the database at path, initializes the schema and
// prepares frequently-used statements. Use ":memory:" in tests.
// A nil logger disables logging.
func NewDBService(path string, logger *zap.Logger) (*DBService, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// SQLite only supports one writer at a time; a single connection also
	// keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
		log:  logger.With(zap.String("db", path)),
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertSession, err = s.db.Prepare(`
		INSERT INTO sessions (session_id, teacher, subject, start_time, hours, note)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(session_id) DO UPDATE SET
			teacher = excluded.teacher,
			subject = excluded.subject,
			start_time = excluded.start_time,
			hours = excluded.hours,
			note = COALESCE(excluded.note, sessions.note)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertSession: %w", err)
	}

	s.stmtDeleteSession, err = s.db.Prepare(`DELETE FROM sessions WHERE session_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing DeleteSession: %w", err)
	}

	return nil
}

// InsertSession persists a session. If a session with the same ID exists it
// is updated in place, keeping its original position in insertion order.
func (s *DBService) InsertSession(sess *Session) error {
	if err := sess.Validate(); err != nil {
		return err
	}
	if sess.SessionID == "" {
		sess.SessionID = uuid.NewString()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.stmtInsertSession.Exec(
		sess.SessionID, sess.Teacher, sess.Subject, sess.StartTime, sess.Hours, sess.Note,
	)
	if err != nil {
		return fmt.Errorf("inserting session %s: %w", sess.SessionID, err)
	}
	return nil
}

// BatchInsertSessions validates every session first, then inserts them all
// within a single transaction.
func (s *DBService) BatchInsertSessions(sessions []*Session) error {
	for i, sess := range sessions {
		if err := sess.Validate(); err != nil {
			return fmt.Errorf("session %d: %w", i, err)
		}
	}
	for _, sess := range sessions {
		if sess.SessionID == "" {
			sess.SessionID = uuid.NewString()
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning batch session transaction: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	stmt := tx.Stmt(s.stmtInsertSession)
	for _, sess := range sessions {
		_, err := stmt.Exec(
			sess.SessionID, sess.Teacher, sess.Subject, sess.StartTime, sess.Hours, sess.Note,
		)
		if err != nil {
			return fmt.Errorf("batch inserting session %s: %w", sess.SessionID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing batch session transaction: %w", err)
	}
	s.log.Debug("batch inserted sessions", zap.Int("count", len(sessions)))
	return nil
}

// QuerySessions returns sessions matching the filter, ordered by start time
// then insertion order.
func (s *DBService) QuerySessions(filter SessionFilter) ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT session_id, teacher, subject, start_time, hours, note FROM sessions WHERE 1=1`
	args := make([]interface{}, 0)

	if filter.Teacher != nil {
		query += ` AND teacher = ?`
		args = append(args, *filter.Teacher)
	}
	if filter.Since != nil {
		query += ` AND start_time >= ?`
		args = append(args, *filter.Since)
	}
	if filter.Until != nil {
		query += ` AND start_time < ?`
		args = append(args, *filter.Until)
	}

	query += ` ORDER BY start_time ASC, seq ASC`

	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else {
		query += ` LIMIT 500`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

// WeeklyHours sums hours per teacher over [weekStart, weekStart+7d).
// Teachers are returned in the order their first session was recorded,
// which the roster sort uses as its final tiebreak.
func (s *DBService) WeeklyHours(weekStart int64) (hours.TeacherHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	start := timeutil.FromNano(weekStart)
	end := start.AddDate(0, 0, 7).UnixNano()

	rows, err := s.db.Query(`
		SELECT teacher, SUM(hours) AS total, MIN(seq) AS first_seq
		FROM sessions
		WHERE start_time >= ? AND start_time < ?
		GROUP BY teacher
		ORDER BY first_seq ASC
	`, weekStart, end)
	if err != nil {
		return nil, fmt.Errorf("querying weekly hours: %w", err)
	}
	defer rows.Close()

	th := hours.TeacherHours{}
	for rows.Next() {
		var (
			e   hours.Entry
			seq int64
		)
		if err := rows.Scan(&e.Name, &e.Hours, &seq); err != nil {
			return nil, fmt.Errorf("scanning weekly hours row: %w", err)
		}
		th = append(th, e)
	}
	return th, rows.Err()
}

// DeleteSession removes a session. It returns ErrNotFound for unknown IDs.
func (s *DBService) DeleteSession(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.stmtDeleteSession.Exec(sessionID)
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", sessionID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting session %s: %w", sessionID, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, sessionID)
	}
	return nil
}

// Close closes prepared statements and the underlying connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, stmt := range []*sql.Stmt{s.stmtInsertSession, s.stmtDeleteSession} {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

func scanSessions(rows *sql.Rows) ([]*Session, error) {
	var sessions []*Session
	for rows.Next() {
		sess := &Session{}
		if err := rows.Scan(
			&sess.SessionID, &sess.Teacher, &sess.Subject,
			&sess.StartTime, &sess.Hours, &sess.Note,
		); err != nil {
			return nil, fmt.Errorf("scanning session row: %w", err)
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
