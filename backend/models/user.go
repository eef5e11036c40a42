package models

import "golang.org/x/crypto/bcrypt"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	TierID       string `json:"tierId"`
	Role         string `json:"role"`
	Joined       string `json:"joined"`
	Status       string `json:"status"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// UserPatch is a partial update; nil fields are left untouched.
// Password carries a new plaintext password to be hashed by the caller.
type UserPatch struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Password *string `json:"password"`
	TierID   *string `json:"tierId"`
	Role     *string `json:"role"`
	Status   *string `json:"status"`
}

func (u *User) Apply(p UserPatch) {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.TierID != nil {
		u.TierID = *p.TierID
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
	if p.Status != nil {
		u.Status = *p.Status
	}
}
