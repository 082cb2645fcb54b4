package assignments

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m04kA/DWS-ScheduleService/internal/domain"
	assignmentRepo "github.com/m04kA/DWS-ScheduleService/internal/infra/storage/assignment"
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

func (f *fakeAssignmentRepo) GetByDogAndWeek(ctx context.Context, dogID int64, year, week int) ([]*domain.Assignment, error) {
	var out []*domain.Assignment
	for _, a := range f.byID {
		if a.DogID == dogID && a.Year == year && a.Week == week {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.byID[id]; !ok {
		return assignmentRepo.ErrAssignmentNotFound
	}
	delete(f.byID, id)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestGetByID(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "LU-B1", Year: 2026, Week: 20, Confirmed: true},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int64(7), resp.DogID)
	require.Equal(t, "LU-B1", resp.SlotID)
}

func TestGetByIDNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404)
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestGetByDogAndWeek(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "LU-B1", Year: 2026, Week: 20},
		2: {ID: 2, DogID: 7, SlotID: "ME-B2", Year: 2026, Week: 20},
		3: {ID: 3, DogID: 7, SlotID: "LU-B1", Year: 2026, Week: 21},
		4: {ID: 4, DogID: 9, SlotID: "LU-B1", Year: 2026, Week: 20},
	}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByDogAndWeek(context.Background(), 7, 2026, 20)
	require.NoError(t, err)
	require.Len(t, resp.Assignments, 2)
}

func TestGetByDogAndWeekValidation(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}, nopLogger{})
	ctx := context.Background()

	_, err := svc.GetByDogAndWeek(ctx, 0, 2026, 20)
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.GetByDogAndWeek(ctx, 7, 2026, 60)
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "LU-B1", Year: 2026, Week: 20},
	}}
	svc := NewService(repo, nopLogger{})

	require.NoError(t, svc.Remove(context.Background(), 1))
	require.Empty(t, repo.byID)
}

func TestRemoveCompletedRefused(t *testing.T) {
	t.Parallel()

	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{
		1: {ID: 1, DogID: 7, SlotID: "LU-B1", Year: 2026, Week: 20, Completed: true},
	}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), 1)
	require.ErrorIs(t, err, ErrCompletedImmutable)
	require.Len(t, repo.byID, 1)
}

func TestRemoveNotFound(t *testing.T) {
	t.Parallel()

	svc := NewService(&fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}, nopLogger{})

	err := svc.Remove(context.Background(), 5)
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}
