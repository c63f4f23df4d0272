package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutoring-center-backend/internal/domain"
)

// MockClassroomStudentRepo
type MockClassroomStudentRepo struct {
	mock.Mock
}

func (m *MockClassroomStudentRepo) FindUnique(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	args := m.Called(ctx, classroomID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassroomStudent), args.Error(1)
}
func (m *MockClassroomStudentRepo) Create(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	args := m.Called(ctx, classroomID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassroomStudent), args.Error(1)
}
func (m *MockClassroomStudentRepo) Update(ctx context.Context, classroomID, studentID int32, patch domain.ClassroomStudentPatch) error {
	args := m.Called(ctx, classroomID, studentID, patch)
	return args.Error(0)
}

// MockJoinRequestRepo
type MockJoinRequestRepo struct {
	mock.Mock
}

func (m *MockJoinRequestRepo) Create(ctx context.Context, req *domain.JoinRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) DeleteAllFor(ctx context.Context, classroomID, studentID int32) error {
	args := m.Called(ctx, classroomID, studentID)
	return args.Error(0)
}
func (m *MockJoinRequestRepo) CountFor(ctx context.Context, classroomID, studentID int32) (int64, error) {
	args := m.Called(ctx, classroomID, studentID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJoinRequestRepo) DeleteOrphaned(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdateProfile(ctx context.Context, id int32, patch domain.ProfilePatch) (*domain.User, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

// MockQuizAnswerRepo
type MockQuizAnswerRepo struct {
	mock.Mock
}

func (m *MockQuizAnswerRepo) GetByID(ctx context.Context, id int32) (*domain.QuizAnswer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizAnswer), args.Error(1)
}
func (m *MockQuizAnswerRepo) Update(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizAnswer), args.Error(1)
}
