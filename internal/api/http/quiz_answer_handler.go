package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/service"
)

type updateQuizAnswerRequest struct {
	Content   *string `json:"content" validate:"omitnil,min=1"`
	IsCorrect *bool   `json:"isCorrect"`
}

type QuizAnswerHandler struct {
	svc service.QuizAnswerService
}

func NewQuizAnswerHandler(svc service.QuizAnswerService) *QuizAnswerHandler {
	return &QuizAnswerHandler{svc: svc}
}

func (h *QuizAnswerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 32)
	if err != nil || id <= 0 {
		writeError(w, r, fmt.Errorf("%w: id must be a positive integer", errBadRequest))
		return
	}

	var req updateQuizAnswerRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	answer, err := h.svc.UpdateAnswer(r.Context(), int32(id), domain.QuizAnswerPatch{
		Content:   req.Content,
		IsCorrect: req.IsCorrect,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, answer)
}
