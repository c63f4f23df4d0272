package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/repository"
	"tutoring-center-backend/internal/service"
)

func TestQuizAnswerService_UpdateAnswer(t *testing.T) {
	repo := new(MockQuizAnswerRepo)
	svc := service.NewQuizAnswerService(repo)
	ctx := context.Background()

	content := "Hà Nội"
	patch := domain.QuizAnswerPatch{Content: &content}
	repo.On("Update", ctx, int32(4), patch).Return(&domain.QuizAnswer{ID: 4, Content: content}, nil).Once()
	repo.On("Update", ctx, int32(5), patch).Return(nil, repository.ErrNotFound).Once()

	a, err := svc.UpdateAnswer(ctx, 4, patch)
	assert.NoError(t, err)
	assert.Equal(t, content, a.Content)

	_, err = svc.UpdateAnswer(ctx, 5, patch)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	repo.AssertExpectations(t)
}

func TestQuizAnswerService_UpdateAnswer_EmptyPatch(t *testing.T) {
	repo := new(MockQuizAnswerRepo)
	svc := service.NewQuizAnswerService(repo)
	ctx := context.Background()

	repo.On("GetByID", ctx, int32(4)).Return(&domain.QuizAnswer{ID: 4, Content: "x"}, nil).Once()

	a, err := svc.UpdateAnswer(ctx, 4, domain.QuizAnswerPatch{})
	assert.NoError(t, err)
	assert.Equal(t, "x", a.Content)

	repo.AssertExpectations(t)
	repo.AssertNotCalled(t, "Update", ctx, int32(4), domain.QuizAnswerPatch{})
}
