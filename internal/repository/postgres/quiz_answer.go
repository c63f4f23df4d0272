package postgres

import (
	"context"
	"fmt"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
)

type quizAnswerRepository struct {
	db DBTX
}

func NewQuizAnswerRepository(db DBTX) repository.QuizAnswerRepository {
	return &quizAnswerRepository{db: db}
}

func (r *quizAnswerRepository) GetByID(ctx context.Context, id int32) (*domain.QuizAnswer, error) {
	a := &domain.QuizAnswer{}
	query := `SELECT id, question_id, content, is_correct, updated_at FROM quiz_answers WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.QuestionID, &a.Content, &a.IsCorrect, &a.UpdatedAt)
	if err != nil {
		return nil, mapError(err)
	}
	return a, nil
}

func (r *quizAnswerRepository) Update(ctx context.Context, id int32, patch domain.QuizAnswerPatch) (*domain.QuizAnswer, error) {
	b := &setBuilder{}
	if patch.Content != nil {
		b.add("content", *patch.Content)
	}
	if patch.IsCorrect != nil {
		b.add("is_correct", *patch.IsCorrect)
	}
	b.raw("updated_at = NOW()")
	keys := b.where(id)

	query := fmt.Sprintf(`UPDATE quiz_answers SET %s WHERE id = %s
	          RETURNING id, question_id, content, is_correct, updated_at`, b.clause(), keys[0])
	logger.DatabaseCall("UPDATE", "quiz_answers", "answerID", id)

	a := &domain.QuizAnswer{}
	err := r.db.QueryRowContext(ctx, query, b.args...).Scan(&a.ID, &a.QuestionID, &a.Content, &a.IsCorrect, &a.UpdatedAt)
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("UPDATE", 0, err, "answerID", id)
		return nil, err
	}
	logger.DatabaseResult("UPDATE", 1, nil, "answerID", id)
	return a, nil
}
