package repository

import (
	"context"
	"errors"

	"tutoring-center-backend/internal/domain"
)

var (
	// ErrNotFound is returned when no row matches the requested key
	ErrNotFound = errors.New("record not found")
	// ErrConstraintViolation is returned when a write breaks a unique key
	ErrConstraintViolation = errors.New("unique constraint violation")
)

type ClassroomStudentRepository interface {
	FindUnique(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error)
	Create(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error)
	Update(ctx context.Context, classroomID, studentID int32, patch domain.ClassroomStudentPatch) error
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	// DeleteAllFor removes every request for the pair. Zero matches is not an error.
	DeleteAllFor(ctx context.Context, classroomID, studentID int32) error
	CountFor(ctx context.Context, classroomID, studentID int32) (int64, error)
	// DeleteOrphaned removes requests whose membership is inactive or soft deleted
	DeleteOrphaned(ctx context.Context) (int64, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, id int32, patch domain.ProfilePatch) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int32, passwordHash string) error
}

type QuizAnswerRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.QuizAnswer, error)
	Update(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error)
}
