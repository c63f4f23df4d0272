package service

import (
	"context"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/repository"
)

type quizAnswerService struct {
	answerRepo repository.QuizAnswerRepository
}

func NewQuizAnswerService(answerRepo repository.QuizAnswerRepository) QuizAnswerService {
	return &quizAnswerService{answerRepo: answerRepo}
}

// UpdateAnswer applies the patch. An empty patch writes nothing and returns
// the stored answer.
func (s *quizAnswerService) UpdateAnswer(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error) {
	if patch.Content == nil && patch.IsCorrect == nil {
		return s.answerRepo.GetByID(ctx, id)
	}
	return s.answerRepo.Update(ctx, id, patch)
}
