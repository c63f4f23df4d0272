package http

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tutoring-center-backend/internal/domain"
)

// MockClassroomStudentService
type MockClassroomStudentService struct {
	mock.Mock
}

func (m *MockClassroomStudentService) Get(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	args := m.Called(ctx, classroomID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassroomStudent), args.Error(1)
}
func (m *MockClassroomStudentService) Admit(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	args := m.Called(ctx, classroomID, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClassroomStudent), args.Error(1)
}
func (m *MockClassroomStudentService) Activate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	return m.confirmation(m.Called(ctx, classroomID, studentID))
}
func (m *MockClassroomStudentService) Deactivate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	return m.confirmation(m.Called(ctx, classroomID, studentID))
}
func (m *MockClassroomStudentService) DeleteStudent(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	return m.confirmation(m.Called(ctx, classroomID, studentID))
}
func (m *MockClassroomStudentService) confirmation(args mock.Arguments) (*domain.Confirmation, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Confirmation), args.Error(1)
}

// MockProfileService
type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockProfileService) UpdateProfile(ctx context.Context, userID int32, patch domain.ProfilePatch) (*domain.User, error) {
	args := m.Called(ctx, userID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockProfileService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) (*domain.Confirmation, error) {
	args := m.Called(ctx, userID, currentPassword, newPassword)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Confirmation), args.Error(1)
}

// MockQuizAnswerService
type MockQuizAnswerService struct {
	mock.Mock
}

func (m *MockQuizAnswerService) UpdateAnswer(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.QuizAnswer), args.Error(1)
}
