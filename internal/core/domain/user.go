package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const UserStatusActive = "active"

// User models an account holder. PasswordHash is empty for accounts created
// through an external identity provider.
type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	Username     string     `json:"username,omitempty"`
	DisplayName  string     `json:"displayName,omitempty"`
	PasswordHash string     `json:"-"`
	Status       string     `json:"status"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
	DeletedAt    *time.Time `json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.DeletedAt == nil && u.Status == UserStatusActive
}

// Profile is the public projection of a user returned to clients.
type Profile struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Username    string `json:"username,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Status      string `json:"status"`
}

// Profile returns the public view of u.
func (u *User) Profile() Profile {
	return Profile{
		ID:          u.ID,
		Email:       u.Email,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Status:      u.Status,
	}
}
