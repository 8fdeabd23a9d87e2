package auth

import "context"

type AdminUserRepository interface {
	GetByEmail(ctx context.Context, email string) (AdminUser, error)
	Create(ctx context.Context, admin AdminUser) (AdminUser, error)
}
