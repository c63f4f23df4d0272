package domain

import "time"

// JoinRequest is a student's pending request to join a classroom. Several
// requests may exist for the same (ClassroomID, StudentID) pair.
type JoinRequest struct {
	ID          int32     `json:"id"`
	ClassroomID int32     `json:"classroomId"`
	StudentID   int32     `json:"studentId"`
	CreatedAt   time.Time `json:"createdAt"`
}
