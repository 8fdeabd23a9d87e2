package auth

import "time"

// AdminUser can manage the employee directory and read shift reports.
// Kiosk punches never authenticate as admins; the clock code is the only
// credential on that path.
type AdminUser struct {
	ID           string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}
