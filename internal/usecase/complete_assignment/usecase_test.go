package complete_assignment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
	syncModels "github.com/m04kA/DWS-ScheduleService/internal/service/billingsync/models"
)

type fakeAssignmentRepo struct {
	byID map[int64]*domain.Assignment
}

func (f *fakeAssignmentRepo) GetByID(ctx context.Context, id int64) (*domain.Assignment, error) {
	a, ok := f.byID[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return a, nil
}

func (f *fakeAssignmentRepo) SetCompleted(ctx context.Context, id int64) error {
	a, ok := f.byID[id]
	if !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	if a.Completed {
		return assignmentRepo.ErrAlreadyCompleted
	}
	now := time.Now()
	a.Completed = true
	a.CompletedAt = &now
	return nil
}

type fakeBillingSyncer struct {
	err   error
	calls int
}

func (f *fakeBillingSyncer) SyncOne(ctx context.Context, assignmentID int64) (*syncModels.SyncResult, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &syncModels.SyncResult{AssignmentID: assignmentID, Created: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCompleteAssignmentSuccess(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "MA-B2", Year: 2026, Week: 20, Confirmed: true},
	}}
	syncer := &fakeBillingSyncer{}
	uc := NewUseCase(repo, syncer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AssignmentID: 1})

	require.NoError(t, err)
	require.True(t, resp.Assignment.Completed)
	require.NotNil(t, resp.Assignment.CompletedAt)
	require.NotNil(t, resp.Sync)
	require.True(t, resp.Sync.Created)
	require.Nil(t, resp.SyncError)
	require.Equal(t, 1, syncer.calls)
}

func TestCompleteAssignmentSyncFailureDoesNotRollBack(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "MA-B2", Year: 2026, Week: 20},
	}}
	syncer := &fakeBillingSyncer{err: errors.New("billing unavailable")}
	uc := NewUseCase(repo, syncer, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{AssignmentID: 1})

	// the walk stays completed; the sync error is reported, not raised
	require.NoError(t, err)
	require.True(t, resp.Assignment.Completed)
	require.Nil(t, resp.Sync)
	require.NotNil(t, resp.SyncError)
	require.Contains(t, *resp.SyncError, "billing unavailable")
	require.True(t, repo.byID[1].Completed)
}

func TestCompleteAssignmentNotFound(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(&fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}, &fakeBillingSyncer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AssignmentID: 404})
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestCompleteAssignmentAlreadyCompleted(t *testing.T) {
	t.Parallel()

	now := time.Now()
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "MA-B2", Year: 2026, Week: 20, Completed: true, CompletedAt: &now},
	}}
	syncer := &fakeBillingSyncer{}
	uc := NewUseCase(repo, syncer, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AssignmentID: 1})
	require.ErrorIs(t, err, ErrAlreadyCompleted)
	require.Equal(t, 0, syncer.calls)
}

func TestCompleteAssignmentInvalidInput(t *testing.T) {
	t.Parallel()

	uc := NewUseCase(&fakeAssignmentRepo{}, &fakeBillingSyncer{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{AssignmentID: 0})
	require.ErrorIs(t, err, ErrInvalidInput)
}
