package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
)

type classroomStudentRepository struct {
	db DBTX
}

func NewClassroomStudentRepository(db DBTX) repository.ClassroomStudentRepository {
	return &classroomStudentRepository{db: db}
}

func (r *classroomStudentRepository) FindUnique(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	query := `SELECT classroom_id, student_id, is_active, deleted_at, created_at, updated_at
	          FROM classroom_students WHERE classroom_id = $1 AND student_id = $2`
	logger.DatabaseCall("SELECT", "classroom_students", "classroomID", classroomID, "studentID", studentID)

	cs := &domain.ClassroomStudent{}
	var deletedAt sql.NullTime
	err := r.db.QueryRowContext(ctx, query, classroomID, studentID).Scan(
		&cs.ClassroomID, &cs.StudentID, &cs.IsActive, &deletedAt, &cs.CreatedAt, &cs.UpdatedAt,
	)
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("SELECT", 0, err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}
	if deletedAt.Valid {
		t := deletedAt.Time
		cs.DeletedAt = &t
	}
	logger.DatabaseResult("SELECT", 1, nil, "classroomID", classroomID, "studentID", studentID)
	return cs, nil
}

func (r *classroomStudentRepository) Create(ctx context.Context, classroomID, studentID int32) (*domain.ClassroomStudent, error) {
	query := `INSERT INTO classroom_students (classroom_id, student_id, is_active, created_at, updated_at)
	          VALUES ($1, $2, TRUE, $3, $3) RETURNING is_active`
	logger.DatabaseCall("INSERT", "classroom_students", "classroomID", classroomID, "studentID", studentID)

	now := time.Now()
	cs := &domain.ClassroomStudent{
		ClassroomID: classroomID,
		StudentID:   studentID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := r.db.QueryRowContext(ctx, query, classroomID, studentID, now).Scan(&cs.IsActive); err != nil {
		err = mapError(err)
		logger.DatabaseResult("INSERT", 0, err, "classroomID", classroomID, "studentID", studentID)
		return nil, err
	}
	logger.DatabaseResult("INSERT", 1, nil, "classroomID", classroomID, "studentID", studentID)
	return cs, nil
}

func (r *classroomStudentRepository) Update(ctx context.Context, classroomID, studentID int32, patch domain.ClassroomStudentPatch) error {
	b := &setBuilder{}
	if patch.IsActive != nil {
		b.add("is_active", *patch.IsActive)
	}
	if patch.DeletedAt != nil {
		b.add("deleted_at", *patch.DeletedAt)
	}
	b.raw("updated_at = NOW()")
	keys := b.where(classroomID, studentID)

	query := fmt.Sprintf(`UPDATE classroom_students SET %s WHERE classroom_id = %s AND student_id = %s`, b.clause(), keys[0], keys[1])
	logger.DatabaseCall("UPDATE", "classroom_students", "classroomID", classroomID, "studentID", studentID)

	res, err := r.db.ExecContext(ctx, query, b.args...)
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("UPDATE", 0, err, "classroomID", classroomID, "studentID", studentID)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "classroomID", classroomID, "studentID", studentID)
		return err
	}
	if rows == 0 {
		logger.DatabaseResult("UPDATE", 0, repository.ErrNotFound, "classroomID", classroomID, "studentID", studentID)
		return repository.ErrNotFound
	}
	logger.DatabaseResult("UPDATE", rows, nil, "classroomID", classroomID, "studentID", studentID)
	return nil
}
