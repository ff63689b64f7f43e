package model

import (
	"time"

	"github.com/google/uuid"
)

// Category names are not unique. The catalog accepts duplicate names on
// purpose, matching the behavior the product form always had.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
