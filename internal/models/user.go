package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// User represents an application account keyed by email.
type User struct {
	ID             string    `db:"id" json:"id"`
	Email          string    `db:"email" json:"email"`
	PasswordHash   string    `db:"password_hash" json:"-"`
	FirstName      string    `db:"first_name" json:"firstName"`
	LastName       string    `db:"last_name" json:"lastName"`
	Birthday       string    `db:"birthday" json:"birthday"`
	Address        string    `db:"address" json:"address"`
	ProfilePicture string    `db:"profile_picture" json:"profilePicture"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time `db:"updated_at" json:"updatedAt"`
}

// JWTClaims carries the authenticated identity inside access and reset tokens.
type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
