package model

import "time"

// User represents a registered user of the prices service. Email serves as
// the identity key and is stored lowercased.
type User struct {
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}
