// Package model holds the JSON document shapes persisted under the legacy
// storage keys. Field names match what the storefront has always written;
// mappers in the repo layer convert to and from entities.
package model

import "time"

type UserDocument struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"password"` // one-way digest, never plaintext
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// SessionDocument keeps millisecond epochs, the shape the SPA wrote with
// Date.now().
type SessionDocument struct {
	UserID    string `json:"userId"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt int64  `json:"expiresAt"`
}
