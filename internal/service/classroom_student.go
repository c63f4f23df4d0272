package service

import (
	"context"
	"time"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
)

type classroomStudentService struct {
	memberRepo repository.ClassroomStudentRepository
	reqRepo    repository.JoinRequestRepository
	now        func() time.Time
}

func NewClassroomStudentService(memberRepo repository.ClassroomStudentRepository, reqRepo repository.JoinRequestRepository) ClassroomStudentService {
	return &classroomStudentService{
		memberRepo: memberRepo,
		reqRepo:    reqRepo,
		now:        time.Now,
	}
}

func (s *classroomStudentService) Get(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	return s.memberRepo.FindUnique(ctx, classroomID, studentID)
}

func (s *classroomStudentService) Admit(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	logger.EnterMethod("classroomStudentService.Admit", "classroomID", classroomID, "studentID", studentID)
	cs, err := s.memberRepo.Create(ctx, classroomID, studentID)
	if err != nil {
		logger.ExitMethodWithError("classroomStudentService.Admit", err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}
	logger.ExitMethod("classroomStudentService.Admit", "classroomID", classroomID, "studentID", studentID)
	return cs, nil
}

// Activate restores access. Join requests are left alone; an admitted
// student should have none outstanding.
func (s *classroomStudentService) Activate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	logger.EnterMethod("classroomStudentService.Activate", "classroomID", classroomID, "studentID", studentID)

	active := true
	if err := s.memberRepo.Update(ctx, classroomID, studentID, domain.ClassroomStudentPatch{IsActive: &active}); err != nil {
		logger.ExitMethodWithError("classroomStudentService.Activate", err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}

	logger.ExitMethod("classroomStudentService.Activate", "classroomID", classroomID, "studentID", studentID)
	return &domain.Confirmation{Message: MsgStudentActivated}, nil
}

// Deactivate blocks access, then clears pending join requests for the pair.
// The two writes are not transactional: if the cleanup fails the membership
// stays deactivated and the error is returned as is.
func (s *classroomStudentService) Deactivate(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	logger.EnterMethod("classroomStudentService.Deactivate", "classroomID", classroomID, "studentID", studentID)

	inactive := false
	if err := s.memberRepo.Update(ctx, classroomID, studentID, domain.ClassroomStudentPatch{IsActive: &inactive}); err != nil {
		logger.ExitMethodWithError("classroomStudentService.Deactivate", err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}
	if err := s.reqRepo.DeleteAllFor(ctx, classroomID, studentID); err != nil {
		logger.ExitMethodWithError("classroomStudentService.Deactivate", err, "classroomID", classroomID, "studentID", studentID, "step", "join_request_cleanup")
		return nil, err
	}

	logger.ExitMethod("classroomStudentService.Deactivate", "classroomID", classroomID, "studentID", studentID)
	return &domain.Confirmation{Message: MsgStudentDeactivated}, nil
}

// DeleteStudent soft deletes the membership, then clears pending join requests.
// Same ordering and failure behaviour as Deactivate.
func (s *classroomStudentService) DeleteStudent(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error) {
	logger.EnterMethod("classroomStudentService.DeleteStudent", "classroomID", classroomID, "studentID", studentID)

	deletedAt := s.now()
	if err := s.memberRepo.Update(ctx, classroomID, studentID, domain.ClassroomStudentPatch{DeletedAt: &deletedAt}); err != nil {
		logger.ExitMethodWithError("classroomStudentService.DeleteStudent", err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}
	if err := s.reqRepo.DeleteAllFor(ctx, classroomID, studentID); err != nil {
		logger.ExitMethodWithError("classroomStudentService.DeleteStudent", err, "classroomID", classroomID, "studentID", studentID, "step", "join_request_cleanup")
		return nil, err
	}

	logger.ExitMethod("classroomStudentService.DeleteStudent", "classroomID", classroomID, "studentID", studentID)
	return &domain.Confirmation{Message: MsgStudentDeleted}, nil
}
