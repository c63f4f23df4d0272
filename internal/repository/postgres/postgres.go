package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"tutoring-center-backend/internal/repository"
)

// uniqueViolation is the SQLSTATE Postgres reports for duplicate keys
const uniqueViolation = "23505"

// DBTX is satisfied by both *sql.DB and *sql.Tx, so repositories can run
// inside a caller's transaction
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	repository.ClassroomStudentRepository
	repository.JoinRequestRepository
	repository.UserRepository
	repository.QuizAnswerRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		ClassroomStudentRepository: NewClassroomStudentRepository(db),
		JoinRequestRepository:      NewJoinRequestRepository(db),
		UserRepository:             NewUserRepository(db),
		QuizAnswerRepository:       NewQuizAnswerRepository(db),
	}
}

// mapError translates driver errors into repository sentinels
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return repository.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		return fmt.Errorf("%w: %s", repository.ErrConstraintViolation, pqErr.Constraint)
	}
	return err
}

// setBuilder accumulates "col = $n" fragments for partial updates
type setBuilder struct {
	sets []string
	args []any
}

func (b *setBuilder) add(column string, value any) {
	b.args = append(b.args, value)
	b.sets = append(b.sets, fmt.Sprintf("%s = $%d", column, len(b.args)))
}

// raw appends a fragment that takes no argument, e.g. "updated_at = NOW()"
func (b *setBuilder) raw(fragment string) {
	b.sets = append(b.sets, fragment)
}

// where appends key arguments and returns their placeholders in order
func (b *setBuilder) where(values ...any) []string {
	placeholders := make([]string, len(values))
	for i, v := range values {
		b.args = append(b.args, v)
		placeholders[i] = fmt.Sprintf("$%d", len(b.args))
	}
	return placeholders
}

func (b *setBuilder) clause() string {
	return strings.Join(b.sets, ", ")
}
