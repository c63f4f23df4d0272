package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/service"
)

type membershipRequest struct {
	ClassroomID int32 `json:"classroomId" validate:"required,gt=0"`
	StudentID   int32 `json:"studentId" validate:"required,gt=0"`
}

// ClassroomStudentHandler serves the classroom-student lifecycle routes
type ClassroomStudentHandler struct {
	svc service.ClassroomStudentService
}

func NewClassroomStudentHandler(svc service.ClassroomStudentService) *ClassroomStudentHandler {
	return &ClassroomStudentHandler{svc: svc}
}

// decodeMembershipRequest reads the key from the query string when present,
// otherwise from the JSON body
func decodeMembershipRequest(r *http.Request) (membershipRequest, error) {
	var req membershipRequest
	q := r.URL.Query()
	if !q.Has("classroomId") && !q.Has("studentId") {
		err := decodeJSON(r, &req)
		return req, err
	}

	classroomID, err := strconv.ParseInt(q.Get("classroomId"), 10, 32)
	if err != nil {
		return req, fmt.Errorf("%w: classroomId must be an integer", errBadRequest)
	}
	studentID, err := strconv.ParseInt(q.Get("studentId"), 10, 32)
	if err != nil {
		return req, fmt.Errorf("%w: studentId must be an integer", errBadRequest)
	}
	req.ClassroomID = int32(classroomID)
	req.StudentID = int32(studentID)
	return req, validate.Struct(req)
}

func (h *ClassroomStudentHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMembershipRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cs, err := h.svc.Get(r.Context(), req.ClassroomID, req.StudentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h *ClassroomStudentHandler) Admit(w http.ResponseWriter, r *http.Request) {
	req, err := decodeMembershipRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	cs, err := h.svc.Admit(r.Context(), req.ClassroomID, req.StudentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, cs)
}

func (h *ClassroomStudentHandler) Activate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Activate)
}

func (h *ClassroomStudentHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.Deactivate)
}

func (h *ClassroomStudentHandler) DeleteStudent(w http.ResponseWriter, r *http.Request) {
	h.lifecycle(w, r, h.svc.DeleteStudent)
}

type lifecycleOp func(ctx context.Context, classroomID, studentID int32) (*domain.Confirmation, error)

func (h *ClassroomStudentHandler) lifecycle(w http.ResponseWriter, r *http.Request, op lifecycleOp) {
	req, err := decodeMembershipRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := op(r.Context(), req.ClassroomID, req.StudentID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
