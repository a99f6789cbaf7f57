package user

import (
	"encoding/hex"
	"strings"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"

	MinPasswordLen = 6
)

// User is the on-disk account record. Salt and PasswordHash are stored as
// hex strings so the whole collection serializes to plain JSON.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Salt         string    `json:"salt"`
	PasswordHash string    `json:"password_hash"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the projection safe to hand to callers and UI: no salt,
// no password hash.
type PublicUser struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func (u User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func (u User) saltBytes() ([]byte, error) {
	return hex.DecodeString(u.Salt)
}

func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleEditor
}

// FindByUsername returns a pointer into users for the case-insensitive
// exact match, or nil. No two users may share a case-folded username.
func FindByUsername(users []User, username string) *User {
	username = strings.TrimSpace(username)
	for i := range users {
		if strings.EqualFold(users[i].Username, username) {
			return &users[i]
		}
	}
	return nil
}

func findByID(users []User, id string) *User {
	for i := range users {
		if users[i].ID == id {
			return &users[i]
		}
	}
	return nil
}
