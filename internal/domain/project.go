package domain

import (
	"time"

	"github.com/google/uuid"
)

// Project groups the topics of one model under an owning user.
type Project struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
