package roster

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldhq/brevet/internal/catalog"
	"github.com/fieldhq/brevet/internal/store"
)

type fakeCareerRepo struct {
	snapshots map[string][]*store.CareerSnapshot
	saveErr   error
}

func newFakeCareerRepo() *fakeCareerRepo {
	return &fakeCareerRepo{snapshots: make(map[string][]*store.CareerSnapshot)}
}

func (r *fakeCareerRepo) Save(ctx context.Context, snap *store.CareerSnapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.snapshots[snap.CommanderID] = append(r.snapshots[snap.CommanderID], snap)
	return nil
}

func (r *fakeCareerRepo) Latest(ctx context.Context, commanderID string) (*store.CareerSnapshot, error) {
	snaps := r.snapshots[commanderID]
	if len(snaps) == 0 {
		return nil, nil
	}
	return snaps[len(snaps)-1], nil
}

func (r *fakeCareerRepo) Prune(ctx context.Context, commanderID string, keep int) error {
	snaps := r.snapshots[commanderID]
	if len(snaps) > keep {
		r.snapshots[commanderID] = snaps[len(snaps)-keep:]
	}
	return nil
}

type fakeEventRepo struct {
	events    []store.ProgressEventData
	appendErr error
}

func (r *fakeEventRepo) AppendProgress(ctx context.Context, data store.ProgressEventData) error {
	if r.appendErr != nil {
		return r.appendErr
	}
	r.events = append(r.events, data)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeCareerRepo, *fakeEventRepo) {
	t.Helper()
	careers := newFakeCareerRepo()
	events := &fakeEventRepo{}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewService(catalog.Default(), catalog.DefaultClassifier(), careers, events, log)
	return svc, careers, events
}

func TestCreateAndLoad(t *testing.T) {
	svc, careers, _ := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)
	require.NotEmpty(t, c.CommanderID)
	assert.Equal(t, 200, c.Tree.Reputation())
	assert.Len(t, careers.snapshots[c.CommanderID], 1)

	loaded, err := svc.Load(ctx, c.CommanderID)
	require.NoError(t, err)
	assert.Equal(t, c.CommanderID, loaded.CommanderID)
	assert.Equal(t, 200, loaded.Tree.Reputation())
	assert.Equal(t, catalog.GradeJunior, loaded.Tree.Grade())
}

func TestLoadUnknownCommander(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Load(context.Background(), "no-such-commander")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnlockPersistsAndAppendsEvent(t *testing.T) {
	svc, careers, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)

	ch, ok, err := svc.Unlock(ctx, c, catalog.SkillArmoredSpearhead)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, catalog.SkillArmoredSpearhead, ch.Tag)
	assert.True(t, ch.BranchStarted)

	// Create plus unlock leaves two snapshots.
	assert.Len(t, careers.snapshots[c.CommanderID], 2)

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, "unlock", ev.Kind)
	assert.Equal(t, "armored-spearhead", ev.Skill)
	assert.Equal(t, "armored-doctrine", ev.Branch)
	assert.Equal(t, ch.ReputationDelta, ev.Delta)

	// The persisted state survives a reload.
	loaded, err := svc.Load(ctx, c.CommanderID)
	require.NoError(t, err)
	assert.True(t, loaded.Tree.IsUnlocked(catalog.SkillArmoredSpearhead))
}

func TestUnlockPromotionEventKind(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 300)
	require.NoError(t, err)

	ch, ok, err := svc.Unlock(ctx, c, catalog.SkillSeniorBrevet)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, ch.Promoted)

	require.Len(t, events.events, 1)
	assert.Equal(t, "promotion", events.events[0].Kind)
	assert.Equal(t, "senior", events.events[0].Grade)
}

func TestUnlockRejectedLeavesNoTrace(t *testing.T) {
	svc, careers, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 10) // cannot afford anything
	require.NoError(t, err)

	ch, ok, err := svc.Unlock(ctx, c, catalog.SkillArmoredSpearhead)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, ch)

	assert.Len(t, careers.snapshots[c.CommanderID], 1, "no new snapshot on rejection")
	assert.Empty(t, events.events)
}

func TestResetBranchAppendsResetEvent(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)
	_, ok, err := svc.Unlock(ctx, c, catalog.SkillArmoredSpearhead)
	require.NoError(t, err)
	require.True(t, ok)

	res, err := svc.ResetBranch(ctx, c, catalog.BranchArmored)
	require.NoError(t, err)
	assert.True(t, res.Changed())
	assert.Equal(t, []catalog.BranchTag{catalog.BranchArmored}, res.ClearedBranches)

	require.Len(t, events.events, 2)
	ev := events.events[1]
	assert.Equal(t, "reset", ev.Kind)
	assert.Equal(t, "armored-doctrine", ev.Branch)
	assert.Equal(t, res.Refund, ev.Delta)
}

func TestResetNoopSkipsPersistence(t *testing.T) {
	svc, careers, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)

	res, err := svc.ResetAll(ctx, c)
	require.NoError(t, err)
	assert.False(t, res.Changed())
	assert.Len(t, careers.snapshots[c.CommanderID], 1)
	assert.Empty(t, events.events)
}

func TestSaveErrorSurfaces(t *testing.T) {
	svc, careers, _ := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)

	careers.saveErr = errors.New("disk full")
	_, ok, err := svc.Unlock(ctx, c, catalog.SkillArmoredSpearhead)
	assert.True(t, ok, "in-memory unlock already applied")
	require.Error(t, err)
}

func TestEventAppendFailureIsNotFatal(t *testing.T) {
	svc, _, events := newTestService(t)
	ctx := context.Background()

	c, err := svc.Create(ctx, 200)
	require.NoError(t, err)

	events.appendErr = errors.New("trail unavailable")
	_, ok, err := svc.Unlock(ctx, c, catalog.SkillArmoredSpearhead)
	require.NoError(t, err)
	assert.True(t, ok)
}
