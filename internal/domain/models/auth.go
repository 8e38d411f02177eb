package models

import "time"

// Token is what a successful login hands back to the client.
type Token struct {
	Token     string    `json:"token"`
	TokenType string    `json:"token_type"`
	ExpiresIn int64     `json:"expires_in"`
	ExpiresAt time.Time `json:"-"`
}

// Identity is the decoded content of a verified bearer token.
type Identity struct {
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}
