package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository"
)

const userColumns = `id, email, full_name, COALESCE(phone_number, ''), avatar_media_id, role, password_hash, created_at, updated_at`

type userRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) repository.UserRepository {
	return &userRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	u := &domain.User{}
	var avatar sql.NullInt32
	var role string
	err := row.Scan(&u.ID, &u.Email, &u.FullName, &u.PhoneNumber, &avatar, &role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if avatar.Valid {
		id := avatar.Int32
		u.AvatarMediaID = &id
	}
	u.Role = domain.Role(role)
	return u, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	logger.DatabaseCall("SELECT", "users", "userID", id)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("SELECT", 0, err, "userID", id)
		return nil, err
	}
	logger.DatabaseResult("SELECT", 1, nil, "userID", id)
	return u, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, id int32, patch domain.ProfilePatch) (*domain.User, error) {
	logger.EnterMethod("userRepository.UpdateProfile", "userID", id)

	b := &setBuilder{}
	if patch.FullName != nil {
		b.add("full_name", *patch.FullName)
	}
	if patch.PhoneNumber != nil {
		b.add("phone_number", *patch.PhoneNumber)
	}
	if patch.AvatarMediaID != nil {
		b.add("avatar_media_id", *patch.AvatarMediaID)
	}
	b.raw("updated_at = NOW()")
	keys := b.where(id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = %s RETURNING %s`, b.clause(), keys[0], userColumns)
	logger.DatabaseCall("UPDATE", "users", "userID", id)

	u, err := scanUser(r.db.QueryRowContext(ctx, query, b.args...))
	if err != nil {
		err = mapError(err)
		logger.DatabaseResult("UPDATE", 0, err, "userID", id)
		logger.ExitMethodWithError("userRepository.UpdateProfile", err, "userID", id)
		return nil, err
	}

	logger.DatabaseResult("UPDATE", 1, nil, "userID", id)
	logger.ExitMethod("userRepository.UpdateProfile", "userID", id)
	return u, nil
}

func (r *userRepository) UpdatePassword(ctx context.Context, id int32, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`
	logger.DatabaseCall("UPDATE", "users", "userID", id, "field", "password_hash")

	res, err := r.db.ExecContext(ctx, query, passwordHash, id)
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", id)
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		logger.DatabaseResult("UPDATE", 0, err, "userID", id)
		return err
	}
	if rows == 0 {
		logger.DatabaseResult("UPDATE", 0, repository.ErrNotFound, "userID", id)
		return repository.ErrNotFound
	}
	logger.DatabaseResult("UPDATE", rows, nil, "userID", id)
	return nil
}
