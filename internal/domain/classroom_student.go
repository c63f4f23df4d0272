package domain

import "time"

// ClassroomStudent is a student's enrollment in a classroom, keyed by
// (ClassroomID, StudentID). Rows are never physically removed; DeletedAt
// marks a soft delete.
type ClassroomStudent struct {
	ClassroomID int32      `json:"classroomId"`
	StudentID   int32      `json:"studentId"`
	IsActive    bool       `json:"isActive"`
	DeletedAt   *time.Time `json:"deletedAt"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// IsDeleted reports whether the membership has been soft deleted
func (cs *ClassroomStudent) IsDeleted() bool {
	return cs.DeletedAt != nil
}

// ClassroomStudentPatch is a partial update of the mutable membership fields.
// Nil fields are left untouched.
type ClassroomStudentPatch struct {
	IsActive  *bool
	DeletedAt *time.Time
}
