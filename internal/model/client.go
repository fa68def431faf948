package model

import "time"

const (
	RoleOwner  = "owner"
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// Client is a self-registered end-user account. Username and email are
// unique case-insensitively; the record is immutable after registration.
type Client struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PublicView strips the password hash for API responses.
func (c Client) PublicView() map[string]interface{} {
	return map[string]interface{}{
		"id":        c.ID,
		"username":  c.Username,
		"email":     c.Email,
		"role":      c.Role,
		"createdAt": c.CreatedAt,
	}
}

// AdminAccount is an operator account sourced from configuration at startup.
// Never persisted; immutable for the process lifetime.
type AdminAccount struct {
	Username string
	Password string
	Role     string
}

// RegisterRequest is the client registration body.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest serves both admin and client logins. Clients may supply an
// email address in the username field.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
