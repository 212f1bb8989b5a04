package domain

import (
	"time"

	"github.com/google/uuid"
)

// Tag is a unique label attached to posts through the posts_to_tags
// association table.
type Tag struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
