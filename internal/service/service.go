package service

import (
	"context"
	"errors"

	"tutoring-center-backend/internal/domain"
)

var (
	// ErrInvalidCredentials is returned when the current password does not
	// verify or the user no longer exists
	ErrInvalidCredentials = errors.New("current password is incorrect")
)

// User-facing confirmation messages
const (
	MsgStudentActivated   = "Học sinh đã được mở khóa truy cập vào lớp học"
	MsgStudentDeactivated = "Học sinh đã bị chặn truy cập vào lớp học"
	MsgStudentDeleted     = "Học sinh đã bị xóa khỏi lớp học"
	MsgPasswordChanged    = "Đổi mật khẩu thành công"
)

// ClassroomStudentService manages the classroom membership lifecycle
type ClassroomStudentService interface {
	Get(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error)
	Admit(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error)
	Activate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error)
	Deactivate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error)
	DeleteStudent(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int32) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID int32, patch domain.ProfilePatch) (*domain.User, error)
	ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) (*domain.Confirmation, error)
}

type QuizAnswerService interface {
	UpdateAnswer(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error)
}
