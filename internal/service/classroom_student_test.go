package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/repository"
	"tutoring-center-backend/internal/service"
)

func seededStore(t *testing.T) (*memStore, service.ClassroomStudentService) {
	t.Helper()
	ctx := context.Background()
	store := newMemStore()
	reqs := memJoinRequests{s: store}

	_, err := store.Create(ctx, 1, 5)
	require.NoError(t, err)
	require.NoError(t, reqs.Create(ctx, &domain.JoinRequest{ClassroomID: 1, StudentID: 5}))
	require.NoError(t, reqs.Create(ctx, &domain.JoinRequest{ClassroomID: 1, StudentID: 6}))

	return store, service.NewClassroomStudentService(store, reqs)
}

func TestClassroomStudentService_Deactivate(t *testing.T) {
	ctx := context.Background()
	store, svc := seededStore(t)

	res, err := svc.Deactivate(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, "Học sinh đã bị chặn truy cập vào lớp học", res.Message)

	cs, err := store.FindUnique(ctx, 1, 5)
	require.NoError(t, err)
	assert.False(t, cs.IsActive)
	assert.Nil(t, cs.DeletedAt)

	count, _ := memJoinRequests{s: store}.CountFor(ctx, 1, 5)
	assert.Equal(t, int64(0), count)
	other, _ := memJoinRequests{s: store}.CountFor(ctx, 1, 6)
	assert.Equal(t, int64(1), other, "requests for other pairs must survive")
}

func TestClassroomStudentService_Activate(t *testing.T) {
	ctx := context.Background()
	store, svc := seededStore(t)
	inactive := false
	require.NoError(t, store.Update(ctx, 1, 5, domain.ClassroomStudentPatch{IsActive: &inactive}))

	res, err := svc.Activate(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, service.MsgStudentActivated, res.Message)

	cs, _ := store.FindUnique(ctx, 1, 5)
	assert.True(t, cs.IsActive)

	count, _ := memJoinRequests{s: store}.CountFor(ctx, 1, 5)
	assert.Equal(t, int64(1), count, "activate leaves join requests untouched")
}

func TestClassroomStudentService_DeleteStudent(t *testing.T) {
	ctx := context.Background()
	store, svc := seededStore(t)

	res, err := svc.DeleteStudent(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, service.MsgStudentDeleted, res.Message)

	cs, err := store.FindUnique(ctx, 1, 5)
	require.NoError(t, err, "soft delete keeps the row")
	assert.NotNil(t, cs.DeletedAt)

	count, _ := memJoinRequests{s: store}.CountFor(ctx, 1, 5)
	assert.Equal(t, int64(0), count)
}

func TestClassroomStudentService_CleanupWithoutPendingRequests(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	_, _ = store.Create(ctx, 2, 8)
	svc := service.NewClassroomStudentService(store, memJoinRequests{s: store})

	_, err := svc.Deactivate(ctx, 2, 8)
	assert.NoError(t, err)
	_, err = svc.DeleteStudent(ctx, 2, 8)
	assert.NoError(t, err)
}

func TestClassroomStudentService_NotFound(t *testing.T) {
	memberRepo := new(MockClassroomStudentRepo)
	reqRepo := new(MockJoinRequestRepo)
	svc := service.NewClassroomStudentService(memberRepo, reqRepo)
	ctx := context.Background()

	memberRepo.On("Update", ctx, int32(1), int32(99), mock.Anything).Return(repository.ErrNotFound)

	for name, op := range map[string]func(context.Context, int32, int32) (*domain.Confirmation, error){
		"Activate":      svc.Activate,
		"Deactivate":    svc.Deactivate,
		"DeleteStudent": svc.DeleteStudent,
	} {
		t.Run(name, func(t *testing.T) {
			res, err := op(ctx, 1, 99)
			assert.ErrorIs(t, err, repository.ErrNotFound)
			assert.Nil(t, res)
		})
	}

	reqRepo.AssertNotCalled(t, "DeleteAllFor", mock.Anything, mock.Anything, mock.Anything)
}

func TestClassroomStudentService_MutationBeforeCleanup(t *testing.T) {
	memberRepo := new(MockClassroomStudentRepo)
	reqRepo := new(MockJoinRequestRepo)
	svc := service.NewClassroomStudentService(memberRepo, reqRepo)
	ctx := context.Background()

	var calls []string
	memberRepo.On("Update", ctx, int32(1), int32(5), mock.MatchedBy(func(p domain.ClassroomStudentPatch) bool {
		return p.IsActive != nil && !*p.IsActive && p.DeletedAt == nil
	})).Run(func(mock.Arguments) { calls = append(calls, "update") }).Return(nil).Once()
	reqRepo.On("DeleteAllFor", ctx, int32(1), int32(5)).
		Run(func(mock.Arguments) { calls = append(calls, "cleanup") }).Return(nil).Once()

	_, err := svc.Deactivate(ctx, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"update", "cleanup"}, calls)

	memberRepo.AssertExpectations(t)
	reqRepo.AssertExpectations(t)
}

func TestClassroomStudentService_CleanupFailurePropagates(t *testing.T) {
	memberRepo := new(MockClassroomStudentRepo)
	reqRepo := new(MockJoinRequestRepo)
	svc := service.NewClassroomStudentService(memberRepo, reqRepo)
	ctx := context.Background()

	memberRepo.On("Update", ctx, int32(1), int32(5), mock.MatchedBy(func(p domain.ClassroomStudentPatch) bool {
		return p.DeletedAt != nil && p.IsActive == nil
	})).Return(nil).Once()
	reqRepo.On("DeleteAllFor", ctx, int32(1), int32(5)).Return(assert.AnError).Once()

	res, err := svc.DeleteStudent(ctx, 1, 5)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Nil(t, res)

	// the membership write is not rolled back
	memberRepo.AssertExpectations(t)
	reqRepo.AssertExpectations(t)
}

func TestClassroomStudentService_Admit(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := service.NewClassroomStudentService(store, memJoinRequests{s: store})

	cs, err := svc.Admit(ctx, 3, 4)
	require.NoError(t, err)
	assert.True(t, cs.IsActive)

	_, err = svc.Admit(ctx, 3, 4)
	assert.ErrorIs(t, err, repository.ErrConstraintViolation)

	got, err := svc.Get(ctx, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, int32(4), got.StudentID)
}
