package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is keyed by OpenID, the identifier issued by the external OAuth
// provider. This service never handles credentials itself.
type User struct {
	ID           int       `json:"id"`
	OpenID       string    `json:"open_id"`
	Name         string    `json:"name,omitempty"`
	Email        string    `json:"email,omitempty"`
	LoginMethod  string    `json:"login_method,omitempty"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	LastSignedIn time.Time `json:"last_signed_in"`
}
