package domain

import (
	"github.com/google/uuid"
)

// User is the author summary embedded in post read models.
// Only the identifier and the unique username are exposed.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}
