package service

import (
	"context"
	"errors"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
	"tutoring-center-backend/internal/security"
)

type profileService struct {
	userRepo repository.UserRepository
	hasher   security.PasswordHasher
}

func NewProfileService(userRepo repository.UserRepository, hasher security.PasswordHasher) ProfileService {
	return &profileService{userRepo: userRepo, hasher: hasher}
}

func (s *profileService) GetProfile(ctx context.Context, userID int32) (*domain.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int32, patch domain.ProfilePatch) (*domain.User, error) {
	return s.userRepo.UpdateProfile(ctx, userID, patch)
}

func (s *profileService) ChangePassword(ctx context.Context, userID int32, currentPassword, newPassword string) (*domain.Confirmation, error) {
	logger.EnterMethod("profileService.ChangePassword", "userID", userID)

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logger.ExitMethodWithError("profileService.ChangePassword", ErrInvalidCredentials, "userID", userID)
			return nil, ErrInvalidCredentials
		}
		logger.ExitMethodWithError("profileService.ChangePassword", err, "userID", userID)
		return nil, err
	}

	if !s.hasher.Compare(currentPassword, user.PasswordHash) {
		logger.ExitMethodWithError("profileService.ChangePassword", ErrInvalidCredentials, "userID", userID)
		return nil, ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		logger.ExitMethodWithError("profileService.ChangePassword", err, "userID", userID)
		return nil, err
	}
	if err := s.userRepo.UpdatePassword(ctx, userID, hash); err != nil {
		logger.ExitMethodWithError("profileService.ChangePassword", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("profileService.ChangePassword", "userID", userID)
	return &domain.Confirmation{Message: MsgPasswordChanged}, nil
}
