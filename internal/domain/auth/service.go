package auth

import "context"

type AuthService interface {
	// Login authenticates an admin by email and password and issues a
	// bearer access token. Unknown emails and wrong passwords are reported
	// identically.
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
}
