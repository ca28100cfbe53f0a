package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/bnema/athena-partnership/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "athena.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return store
}

func testRecord(id, session string, at time.Time, keywords ...string) domain.PartnershipRecord {
	return domain.PartnershipRecord{
		ID:                id,
		SessionID:         session,
		Timestamp:         at,
		Mode:              domain.ModeInfinity,
		InitialConfidence: 0.85,
		FinalConfidence:   0.9,
		RefinedPlan:       domain.Plan{Task: "task " + id, Confidence: 0.9},
		Keywords:          keywords,
		TerminationReason: domain.TerminationConsensusAchieved,
		ConsensusTrajectory: []float64{
			0.5, 0.9,
		},
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	t.Parallel()

	_, err := Open(context.Background(), "  ", nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, "path is empty")
}

func TestLogPartnershipRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	at := time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)
	want := testRecord("r1", "s1", at, "coordinator", "refactor")

	require.NoError(t, store.LogPartnership(context.Background(), want))

	got, err := store.Record(context.Background(), "r1")
	require.NoError(t, err)
	assert.Equal(t, want.ID, got.ID)
	assert.Equal(t, want.RefinedPlan, got.RefinedPlan)
	assert.Equal(t, want.ConsensusTrajectory, got.ConsensusTrajectory)
	assert.True(t, want.Timestamp.Equal(got.Timestamp))
}

func TestLogPartnershipRejectsDuplicatesAndEmptyIDs(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	record := testRecord("r1", "s1", time.Now().UTC())

	require.NoError(t, store.LogPartnership(context.Background(), record))
	require.Error(t, store.LogPartnership(context.Background(), record))

	record.ID = ""
	err := store.LogPartnership(context.Background(), record)
	assert.ErrorContains(t, err, "id is empty")
}

func TestRecordNotFound(t *testing.T) {
	t.Parallel()

	_, err := openTestStore(t).Record(context.Background(), "missing")
	require.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestHistoryFiltersAndOrdersNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	records := []domain.PartnershipRecord{
		testRecord("a", "s1", base, "alpha"),
		testRecord("b", "s2", base.Add(time.Hour), "beta"),
		testRecord("c", "s1", base.Add(2*time.Hour+500*time.Millisecond), "gamma"),
		testRecord("d", "s3", base.Add(3*time.Hour)),
	}
	for _, r := range records {
		require.NoError(t, store.LogPartnership(context.Background(), r))
	}

	all, err := store.History(context.Background(), domain.HistoryQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"d", "c", "b", "a"}, entryIDs(all))
	assert.Equal(t, []string{"gamma"}, all[1].Keywords)
	assert.Empty(t, all[0].Keywords)
	assert.Equal(t, "task c", all[1].Task)
	assert.Equal(t, domain.ModeInfinity, all[1].Mode)

	session, err := store.History(context.Background(), domain.HistoryQuery{SessionID: "s1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, entryIDs(session))

	others, err := store.History(context.Background(), domain.HistoryQuery{ExcludeSession: "s1", Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, entryIDs(others))
}

func TestCountBySession(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	now := time.Now().UTC()
	require.NoError(t, store.LogPartnership(context.Background(), testRecord("a", "s1", now)))
	require.NoError(t, store.LogPartnership(context.Background(), testRecord("b", "s1", now)))
	require.NoError(t, store.LogPartnership(context.Background(), testRecord("c", "s2", now)))

	count, err := store.CountBySession(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	count, err = store.CountBySession(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIsRetryableError(t *testing.T) {
	t.Parallel()

	assert.True(t, isRetryableError(errors.New("database is locked (5) (SQLITE_BUSY)")))
	assert.True(t, isRetryableError(errors.New("SQLITE_BUSY")))
	assert.False(t, isRetryableError(errors.New("UNIQUE constraint failed: partnerships.id")))
	assert.False(t, isRetryableError(nil))
}

func entryIDs(entries []domain.HistoryEntry) []string {
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.RecordID)
	}
	return ids
}
