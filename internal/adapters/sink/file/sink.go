package file

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/bnema/athena-partnership/internal/ports"
)

const (
	sinkDirMode  = 0o700
	sinkFileMode = 0o600

	maxLineBytes = 4 << 20
)

// Sink appends one JSON document per record to a local file.
type Sink struct {
	path string
	mu   sync.RWMutex
}

var (
	_ ports.PartnershipSink = (*Sink)(nil)
	_ ports.HistoryReader   = (*Sink)(nil)
)

func NewSink(path string) *Sink {
	return &Sink{path: filepath.Clean(path)}
}

func (s *Sink) LogPartnership(ctx context.Context, record domain.PartnershipRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode partnership record: %w", err)
	}
	line = append(line, '\n')

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), sinkDirMode); err != nil {
		return fmt.Errorf("create record directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, sinkFileMode)
	if err != nil {
		return fmt.Errorf("open record file: %w", err)
	}
	if _, err := f.Write(line); err != nil {
		return errors.Join(fmt.Errorf("append partnership %s: %w", record.ID, err), f.Close())
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close record file: %w", err)
	}

	return nil
}

func (s *Sink) History(ctx context.Context, query domain.HistoryQuery) ([]domain.HistoryEntry, error) {
	records, err := s.readAll(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]domain.HistoryEntry, 0, len(records))
	for _, r := range records {
		if query.SessionID != "" && r.SessionID != query.SessionID {
			continue
		}
		if query.ExcludeSession != "" && r.SessionID == query.ExcludeSession {
			continue
		}
		entries = append(entries, r.Entry())
	}

	// Newest first; the file is in append order.
	slices.Reverse(entries)
	slices.SortStableFunc(entries, func(a, b domain.HistoryEntry) int {
		return b.Timestamp.Compare(a.Timestamp)
	})
	if query.Limit > 0 && len(entries) > query.Limit {
		entries = entries[:query.Limit]
	}

	return entries, nil
}

func (s *Sink) CountBySession(ctx context.Context, sessionID string) (int, error) {
	records, err := s.readAll(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, r := range records {
		if r.SessionID == sessionID {
			count++
		}
	}

	return count, nil
}

// readAll skips lines it cannot decode so one torn write does not hide the
// rest of the history.
func (s *Sink) readAll(ctx context.Context) ([]domain.PartnershipRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open record file: %w", err)
	}
	defer f.Close()

	var records []domain.PartnershipRecord
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var r domain.PartnershipRecord
		if err := json.Unmarshal([]byte(line), &r); err != nil {
			continue
		}
		records = append(records, r)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read record file: %w", err)
	}

	return records, nil
}
