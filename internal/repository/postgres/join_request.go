package postgres

import (
	"context"
	"time"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
)

type joinRequestRepository struct {
	db DBTX
}

func NewJoinRequestRepository(db DBTX) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	query := `INSERT INTO join_requests (classroom_id, student_id, created_at)
	          VALUES ($1, $2, $3) RETURNING id`
	logger.DatabaseCall("INSERT", "join_requests", "classroomID", req.ClassroomID, "studentID", req.StudentID)

	req.CreatedAt = time.Now()
	err := r.db.QueryRowContext(ctx, query, req.ClassroomID, req.StudentID, req.CreatedAt).Scan(&req.ID)
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("INSERT", 0, err, "classroomID", req.ClassroomID, "studentID", req.StudentID)
		return err
	}
	logger.DatabaseResult("INSERT", 1, nil, "joinRequestID", req.ID)
	return nil
}

func (r *joinRequestRepository) DeleteAllFor(ctx context.Context, classroomID, studentID int32) error {
	query := `DELETE FROM join_requests WHERE classroom_id = $1 AND student_id = $2`
	logger.DatabaseCall("DELETE", "join_requests", "classroomID", classroomID, "studentID", studentID)

	res, err := r.db.ExecContext(ctx, query, classroomID, studentID)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "classroomID", classroomID, "studentID", studentID)
		return err
	}
	rows, _ := res.RowsAffected()
	logger.DatabaseResult("DELETE", rows, nil, "classroomID", classroomID, "studentID", studentID)
	return nil
}

func (r *joinRequestRepository) CountFor(ctx context.Context, classroomID, studentID int32) (int64, error) {
	query := `SELECT COUNT(*) FROM join_requests WHERE classroom_id = $1 AND student_id = $2`
	logger.DatabaseCall("SELECT", "join_requests", "classroomID", classroomID, "studentID", studentID)

	var count int64
	if err := r.db.QueryRowContext(ctx, query, classroomID, studentID).Scan(&count); err != nil {
		logger.DatabaseResult("SELECT", 0, err, "classroomID", classroomID, "studentID", studentID)
		return 0, err
	}
	logger.DatabaseResult("SELECT", count, nil, "classroomID", classroomID, "studentID", studentID)
	return count, nil
}

func (r *joinRequestRepository) DeleteOrphaned(ctx context.Context) (int64, error) {
	query := `DELETE FROM join_requests jr
	          USING classroom_students cs
	          WHERE cs.classroom_id = jr.classroom_id
	            AND cs.student_id = jr.student_id
	            AND (cs.is_active = FALSE OR cs.deleted_at IS NOT NULL)`
	logger.DatabaseCall("DELETE", "join_requests", "scope", "orphaned")

	res, err := r.db.ExecContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("DELETE", 0, err, "scope", "orphaned")
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	logger.DatabaseResult("DELETE", rows, nil, "scope", "orphaned")
	return rows, nil
}
