package service_test

import (
	"context"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/repository"
)

type memberKey struct{ classroomID, studentID int32 }

// memStore is an in-memory membership + join request store for state-based tests
type memStore struct {
	members  map[memberKey]*domain.ClassroomStudent
	requests []domain.JoinRequest
}

func newMemStore() *memStore {
	return &memStore{members: map[memberKey]*domain.ClassroomStudent{}}
}

func (s *memStore) FindUnique(_ context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	cs, ok := s.members[memberKey{classroomID, studentID}]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *cs
	return &cp, nil
}

func (s *memStore) Create(_ context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	k := memberKey{classroomID, studentID}
	if _, ok := s.members[k]; ok {
		return nil, repository.ErrConstraintViolation
	}
	cs := &domain.ClassroomStudent{ClassroomID: classroomID, StudentID: studentID, IsActive: true}
	s.members[k] = cs
	cp := *cs
	return &cp, nil
}

func (s *memStore) Update(_ context.Context, classroomID, studentID int32, patch domain.ClassroomStudentPatch) error {
	cs, ok := s.members[memberKey{classroomID, studentID}]
	if !ok {
		return repository.ErrNotFound
	}
	if patch.IsActive != nil {
		cs.IsActive = *patch.IsActive
	}
	if patch.DeletedAt != nil {
		t := *patch.DeletedAt
		cs.DeletedAt = &t
	}
	return nil
}

// memJoinRequests shares memStore's request slice
type memJoinRequests struct {
	s *memStore
}

func (j memJoinRequests) Create(_ context.Context, req *domain.JoinRequest) error {
	req.ID = int32(len(j.s.requests) + 1)
	j.s.requests = append(j.s.requests, *req)
	return nil
}

func (j memJoinRequests) DeleteAllFor(_ context.Context, classroomID, studentID int32) error {
	kept := j.s.requests[:0]
	for _, r := range j.s.requests {
		if r.ClassroomID == classroomID && r.StudentID == studentID {
			continue
		}
		kept = append(kept, r)
	}
	j.s.requests = kept
	return nil
}

func (j memJoinRequests) CountFor(_ context.Context, classroomID, studentID int32) (int64, error) {
	var n int64
	for _, r := range j.s.requests {
		if r.ClassroomID == classroomID && r.StudentID == studentID {
			n++
		}
	}
	return n, nil
}

func (j memJoinRequests) DeleteOrphaned(_ context.Context) (int64, error) {
	return 0, nil
}
