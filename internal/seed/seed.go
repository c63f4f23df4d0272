// Package seed loads a YAML fixture into a fresh database for local
// development and end-to-end tests.
package seed

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"tutoring-center-backend/internal/domain"
	"tutoring-center-backend/internal/logger"
	"tutoring-center-backend/internal/repository/postgres"
	"tutoring-center-backend/internal/security"
)

type Classroom struct {
	ID   int32  `yaml:"id"`
	Name string `yaml:"name"`
}

// User carries a plaintext password that is hashed before insert
type User struct {
	Email       string      `yaml:"email"`
	FullName    string      `yaml:"full_name"`
	PhoneNumber string      `yaml:"phone_number"`
	Password    string      `yaml:"password"`
	Role        domain.Role `yaml:"role"`
}

type Membership struct {
	ClassroomID  int32  `yaml:"classroom_id"`
	StudentEmail string `yaml:"student_email"`
	Active       *bool  `yaml:"active"`
	Deleted      bool   `yaml:"deleted"`
}

type JoinRequest struct {
	ClassroomID  int32  `yaml:"classroom_id"`
	StudentEmail string `yaml:"student_email"`
}

type QuizAnswer struct {
	QuestionID int32  `yaml:"question_id"`
	Content    string `yaml:"content"`
	IsCorrect  bool   `yaml:"is_correct"`
}

// Fixture is the on-disk seed format
type Fixture struct {
	Classrooms   []Classroom   `yaml:"classrooms"`
	Users        []User        `yaml:"users"`
	Memberships  []Membership  `yaml:"memberships"`
	JoinRequests []JoinRequest `yaml:"join_requests"`
	QuizAnswers  []QuizAnswer  `yaml:"quiz_answers"`
}

// Result reports what Apply wrote. Skipped rows are not counted.
type Result struct {
	UserIDs      map[string]int32
	Memberships  int
	JoinRequests int
	QuizAnswers  int
}

func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture: %w", err)
	}
	return ParseFixture(data)
}

func ParseFixture(data []byte) (*Fixture, error) {
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse fixture: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Validate checks references inside the fixture before anything is written
func (f *Fixture) Validate() error {
	emails := make(map[string]bool, len(f.Users))
	for _, u := range f.Users {
		if u.Email == "" || u.Password == "" {
			return fmt.Errorf("user %q: email and password are required", u.Email)
		}
		if !u.Role.Valid() {
			return fmt.Errorf("user %q: unknown role %q", u.Email, u.Role)
		}
		emails[u.Email] = true
	}
	for _, m := range f.Memberships {
		if !emails[m.StudentEmail] {
			return fmt.Errorf("membership references unknown user %q", m.StudentEmail)
		}
	}
	for _, jr := range f.JoinRequests {
		if !emails[jr.StudentEmail] {
			return fmt.Errorf("join request references unknown user %q", jr.StudentEmail)
		}
	}
	return nil
}

// Apply writes the fixture in a single transaction. Classrooms, users and
// memberships are upserted; join requests and quiz answers already present
// are skipped, so the fixture can be applied repeatedly.
func Apply(ctx context.Context, db *sql.DB, hasher security.PasswordHasher, f *Fixture) (*Result, error) {
	logger.EnterMethod("seed.Apply", "users", len(f.Users), "memberships", len(f.Memberships))

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := apply(ctx, tx, hasher, f)
	if err != nil {
		logger.ExitMethodWithError("seed.Apply", err)
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit seed data: %w", err)
	}

	logger.ExitMethod("seed.Apply", "users", len(res.UserIDs), "memberships", res.Memberships,
		"join_requests", res.JoinRequests, "quiz_answers", res.QuizAnswers)
	return res, nil
}

func apply(ctx context.Context, tx *sql.Tx, hasher security.PasswordHasher, f *Fixture) (*Result, error) {
	res := &Result{UserIDs: make(map[string]int32, len(f.Users))}

	for _, c := range f.Classrooms {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO classrooms (id, name) VALUES ($1, $2)
			 ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name`,
			c.ID, c.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to insert classroom %d: %w", c.ID, err)
		}
	}

	for _, u := range f.Users {
		hash, err := hasher.Hash(u.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password for %s: %w", u.Email, err)
		}
		var id int32
		err = tx.QueryRowContext(ctx,
			`INSERT INTO users (email, full_name, phone_number, role, password_hash)
			 VALUES ($1, $2, $3, $4, $5)
			 ON CONFLICT (email) DO UPDATE SET full_name = EXCLUDED.full_name, password_hash = EXCLUDED.password_hash
			 RETURNING id`,
			u.Email, u.FullName, u.PhoneNumber, string(u.Role), hash).Scan(&id)
		if err != nil {
			return nil, fmt.Errorf("failed to insert user %s: %w", u.Email, err)
		}
		res.UserIDs[u.Email] = id
	}

	now := time.Now()
	for _, m := range f.Memberships {
		studentID, ok := res.UserIDs[m.StudentEmail]
		if !ok {
			return nil, fmt.Errorf("membership references unknown user %q", m.StudentEmail)
		}
		active := m.Active == nil || *m.Active
		var deletedAt *time.Time
		if m.Deleted {
			deletedAt = &now
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO classroom_students (classroom_id, student_id, is_active, deleted_at)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (classroom_id, student_id) DO UPDATE SET is_active = EXCLUDED.is_active, deleted_at = EXCLUDED.deleted_at`,
			m.ClassroomID, studentID, active, deletedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to insert membership (%d, %s): %w", m.ClassroomID, m.StudentEmail, err)
		}
		res.Memberships++
	}

	joinRequests := postgres.NewJoinRequestRepository(tx)
	for _, jr := range f.JoinRequests {
		studentID, ok := res.UserIDs[jr.StudentEmail]
		if !ok {
			return nil, fmt.Errorf("join request references unknown user %q", jr.StudentEmail)
		}
		pending, err := joinRequests.CountFor(ctx, jr.ClassroomID, studentID)
		if err != nil {
			return nil, fmt.Errorf("failed to count join requests (%d, %s): %w", jr.ClassroomID, jr.StudentEmail, err)
		}
		if pending > 0 {
			continue
		}
		req := &domain.JoinRequest{ClassroomID: jr.ClassroomID, StudentID: studentID}
		if err := joinRequests.Create(ctx, req); err != nil {
			return nil, fmt.Errorf("failed to insert join request (%d, %s): %w", jr.ClassroomID, jr.StudentEmail, err)
		}
		res.JoinRequests++
	}

	for _, qa := range f.QuizAnswers {
		// (question_id, content) identifies an answer across re-runs
		result, err := tx.ExecContext(ctx,
			`INSERT INTO quiz_answers (question_id, content, is_correct)
			 SELECT $1::integer, $2::text, $3::boolean
			 WHERE NOT EXISTS (SELECT 1 FROM quiz_answers WHERE question_id = $1 AND content = $2)`,
			qa.QuestionID, qa.Content, qa.IsCorrect)
		if err != nil {
			return nil, fmt.Errorf("failed to insert quiz answer for question %d: %w", qa.QuestionID, err)
		}
		inserted, err := result.RowsAffected()
		if err != nil {
			return nil, err
		}
		res.QuizAnswers += int(inserted)
	}

	return res, nil
}
