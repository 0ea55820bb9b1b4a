package models

// User is the back-office account. The deployment seeds a single admin;
// there is no self-service registration.
type User struct {
	ID           string `json:"id"`
	FullName     string `json:"full_name"`
	Email        string `json:"email" validate:"omitempty,email"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
}
