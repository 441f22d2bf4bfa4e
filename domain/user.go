// Package domain contains core concepts of the chat system.
// This file defines users and their identifiers.
// No runtime, network, or UI logic should be added here.
package domain

import "time"

// UserID is the opaque, stable identity of a user.
// It is trusted as given by the transport layer.
type UserID string

func (u UserID) String() string {
	return string(u)
}

type User struct {
	ID           UserID    `json:"_id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ProfilePic   string    `json:"profilePic"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
