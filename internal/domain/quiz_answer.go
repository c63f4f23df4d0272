package domain

import "time"

type QuizAnswer struct {
	ID         int32     `json:"id"`
	QuestionID int32     `json:"questionId"`
	Content    string    `json:"content"`
	IsCorrect  bool      `json:"isCorrect"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type QuizAnswerPatch struct {
	Content   *string
	IsCorrect *bool
}
