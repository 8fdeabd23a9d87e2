package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/clockdesk/timeclock-backend-go/internal/domain/auth"
	"github.com/clockdesk/timeclock-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

type adminUserRepository struct {
	db *database.DB
}

func NewAdminUserRepository(db *database.DB) auth.AdminUserRepository {
	return &adminUserRepository{db: db}
}

// GetByEmail implements auth.AdminUserRepository. Callers are expected to
// check pgx.ErrNoRows themselves so unknown emails can be reported the same
// way as wrong passwords.
func (r *adminUserRepository) GetByEmail(ctx context.Context, email string) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, email, password_hash, role, created_at
		FROM admin_users
		WHERE email = $1
	`

	var a auth.AdminUser
	err := q.QueryRow(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Role, &a.CreatedAt)
	if err != nil {
		return auth.AdminUser{}, err
	}

	return a, nil
}

// Create implements auth.AdminUserRepository.
func (r *adminUserRepository) Create(ctx context.Context, admin auth.AdminUser) (auth.AdminUser, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return auth.AdminUser{}, fmt.Errorf("failed to generate admin ID: %w", err)
	}
	admin.ID = id.String()

	query := `
		INSERT INTO admin_users (id, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`

	err = q.QueryRow(ctx, query, admin.ID, admin.Email, admin.PasswordHash, admin.Role).Scan(&admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return auth.AdminUser{}, fmt.Errorf("admin with email %s already exists", admin.Email)
		}
		return auth.AdminUser{}, fmt.Errorf("failed to create admin user: %w", err)
	}

	return admin, nil
}
