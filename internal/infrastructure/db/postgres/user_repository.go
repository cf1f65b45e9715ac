package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/ligonine/hospital-system/internal/core/domain"
	"github.com/ligonine/hospital-system/internal/core/ports"
)

const (
	uniqueViolation     = "23505"
	userNameConstraint  = "users_user_name_key"
	userEmailConstraint = "users_email_key"
	selectUserWithRoles = `
		SELECT u.id, u.user_name, u.email, u.password_hash, u.created_at,
		       COALESCE(array_agg(r.role ORDER BY r.role) FILTER (WHERE r.role IS NOT NULL), '{}')
		FROM users u
		LEFT JOIN user_roles r ON r.user_id = u.id`
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

var _ ports.UserRepository = (*UserRepository)(nil)

// Create inserts the user and its roles in one transaction. Unique
// violations are reported as ErrUserNameTaken or ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	created := *user
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	created.CreatedAt = created.CreatedAt.UTC()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx,
		`INSERT INTO users (id, user_name, email, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		created.ID, created.UserName, created.Email, created.PasswordHash, created.CreatedAt,
	)
	if err != nil {
		return nil, mapInsertError(err)
	}

	for _, role := range created.Roles {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			created.ID, role,
		); err != nil {
			return nil, fmt.Errorf("insert role %s: %w", role, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	created.Roles = append([]string(nil), created.Roles...)
	return &created, nil
}

func (r *UserRepository) FindByUserName(ctx context.Context, userName string) (*domain.User, error) {
	return r.findOne(ctx, selectUserWithRoles+` WHERE u.user_name = $1 GROUP BY u.id`, userName)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, selectUserWithRoles+` WHERE u.id = $1 GROUP BY u.id`, id)
}

// AddRole grants role to the user. Granting a role twice is a no-op.
func (r *UserRepository) AddRole(ctx context.Context, userID, role string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO user_roles (user_id, role) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
		userID, role,
	)
	if err != nil {
		return fmt.Errorf("add role: %w", err)
	}
	return nil
}

func (r *UserRepository) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var (
		u     domain.User
		roles []string
	)
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.CreatedAt, pq.Array(&roles),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	u.Roles = roles
	u.CreatedAt = u.CreatedAt.UTC()
	return &u, nil
}

func mapInsertError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
		switch pqErr.Constraint {
		case userNameConstraint:
			return domain.ErrUserNameTaken
		case userEmailConstraint:
			return domain.ErrEmailTaken
		}
	}
	return fmt.Errorf("insert user: %w", err)
}
