// Package sqlite persists partnership records in a local SQLite database and
// answers the history queries the detectors and memory retriever need.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

const (
	storeDirMode     = 0o700
	retryMaxElapsed  = 10 * time.Second
	busyTimeoutMilli = 5000
	defaultLimit     = 50

	// Fixed width so created_at sorts lexically.
	timestampLayout = "2006-01-02T15:04:05.000000000Z"
)

// Store is safe for concurrent use; SQLite serializes writes and busy or
// locked errors are retried with exponential backoff.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

var (
	_ ports.PartnershipSink = (*Store)(nil)
	_ ports.HistoryReader   = (*Store)(nil)
)

func Open(ctx context.Context, path string, logger *zap.Logger) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite store path is empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}

	db, err := sql.Open("sqlite", dataSourceName(path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db, log: logger.Named("sqlite")}
	if err := s.migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// dataSourceName applies the pragmas to every pooled connection.
func dataSourceName(path string) string {
	return fmt.Sprintf("file:%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)", path, busyTimeoutMilli)
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS partnerships (
		id                 TEXT PRIMARY KEY,
		session_id         TEXT NOT NULL,
		created_at         TEXT NOT NULL,
		mode               TEXT NOT NULL,
		task               TEXT NOT NULL,
		keywords           TEXT NOT NULL,
		final_confidence   REAL NOT NULL,
		termination_reason TEXT NOT NULL DEFAULT '',
		record             TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_partnerships_session ON partnerships(session_id);
	CREATE INDEX IF NOT EXISTS idx_partnerships_created ON partnerships(created_at);
	`

	_, err := s.db.ExecContext(ctx, schema)
	return err
}

func (s *Store) LogPartnership(ctx context.Context, record domain.PartnershipRecord) error {
	if strings.TrimSpace(record.ID) == "" {
		return errors.New("partnership record id is empty")
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode partnership record: %w", err)
	}
	keywords, err := json.Marshal(nonNil(record.Keywords))
	if err != nil {
		return fmt.Errorf("encode keywords: %w", err)
	}

	err = s.withRetry(ctx, func() error {
		_, execErr := s.db.ExecContext(ctx,
			`INSERT INTO partnerships (id, session_id, created_at, mode, task, keywords, final_confidence, termination_reason, record)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			record.ID,
			record.SessionID,
			record.Timestamp.UTC().Format(timestampLayout),
			string(record.Mode),
			record.RefinedPlan.Task,
			string(keywords),
			record.FinalConfidence,
			string(record.TerminationReason),
			string(payload),
		)
		return execErr
	})
	if err != nil {
		return fmt.Errorf("insert partnership %s: %w", record.ID, err)
	}

	return nil
}

func (s *Store) CountBySession(ctx context.Context, sessionID string) (int, error) {
	var count int
	err := s.withRetry(ctx, func() error {
		return s.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM partnerships WHERE session_id = ?`, sessionID,
		).Scan(&count)
	})
	if err != nil {
		return 0, fmt.Errorf("count partnerships for session %s: %w", sessionID, err)
	}

	return count, nil
}

func (s *Store) History(ctx context.Context, query domain.HistoryQuery) ([]domain.HistoryEntry, error) {
	where, args := historyFilter(query)
	stmt := `SELECT id, session_id, created_at, mode, task, keywords, final_confidence, termination_reason
		FROM partnerships` + where + ` ORDER BY created_at DESC, id DESC LIMIT ?`
	args = append(args, limitOrDefault(query.Limit))

	var entries []domain.HistoryEntry
	err := s.withRetry(ctx, func() error {
		rows, err := s.db.QueryContext(ctx, stmt, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		entries = entries[:0]
		for rows.Next() {
			entry, err := scanEntry(rows)
			if err != nil {
				return backoff.Permanent(err)
			}
			entries = append(entries, entry)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, fmt.Errorf("query partnership history: %w", err)
	}

	return entries, nil
}

// Record loads one full record by id.
func (s *Store) Record(ctx context.Context, id string) (domain.PartnershipRecord, error) {
	var payload string
	err := s.withRetry(ctx, func() error {
		err := s.db.QueryRowContext(ctx, `SELECT record FROM partnerships WHERE id = ?`, id).Scan(&payload)
		if errors.Is(err, sql.ErrNoRows) {
			return backoff.Permanent(err)
		}
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return domain.PartnershipRecord{}, fmt.Errorf("partnership %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return domain.PartnershipRecord{}, fmt.Errorf("load partnership %s: %w", id, err)
	}

	var record domain.PartnershipRecord
	if err := json.Unmarshal([]byte(payload), &record); err != nil {
		return domain.PartnershipRecord{}, fmt.Errorf("decode partnership %s: %w", id, err)
	}

	return record, nil
}

func historyFilter(query domain.HistoryQuery) (string, []any) {
	var (
		clauses []string
		args    []any
	)
	if query.SessionID != "" {
		clauses = append(clauses, "session_id = ?")
		args = append(args, query.SessionID)
	}
	if query.ExcludeSession != "" {
		clauses = append(clauses, "session_id <> ?")
		args = append(args, query.ExcludeSession)
	}
	if len(clauses) == 0 {
		return "", args
	}

	return " WHERE " + strings.Join(clauses, " AND "), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (domain.HistoryEntry, error) {
	var (
		entry     domain.HistoryEntry
		createdAt string
		mode      string
		keywords  string
		reason    string
	)
	if err := row.Scan(&entry.RecordID, &entry.SessionID, &createdAt, &mode, &entry.Task, &keywords, &entry.FinalConfidence, &reason); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("scan partnership row: %w", err)
	}

	ts, err := time.Parse(timestampLayout, createdAt)
	if err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("parse created_at %q: %w", createdAt, err)
	}
	if err := json.Unmarshal([]byte(keywords), &entry.Keywords); err != nil {
		return domain.HistoryEntry{}, fmt.Errorf("decode keywords for %s: %w", entry.RecordID, err)
	}

	entry.Timestamp = ts
	entry.Mode = domain.Mode(mode)
	entry.TerminationReason = domain.TerminationReason(reason)

	return entry, nil
}

// withRetry retries busy and locked errors; everything else fails immediately.
func (s *Store) withRetry(ctx context.Context, op func() error) error {
	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = retryMaxElapsed

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		err := op()
		if err == nil {
			return nil
		}
		if isRetryableError(err) {
			s.log.Debug("retrying sqlite operation", zap.Int("attempt", attempt), zap.Error(err))
			return err
		}
		return backoff.Permanent(err)
	}, backoff.WithContext(bo, ctx))
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "database is locked") ||
		strings.Contains(msg, "sqlite_busy") ||
		strings.Contains(msg, "database table is locked")
}

func limitOrDefault(limit int) int {
	if limit <= 0 {
		return defaultLimit
	}
	return limit
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
