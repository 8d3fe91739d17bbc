package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated viewer account.
type User struct {
	ID           uuid.UUID
	Email        string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
