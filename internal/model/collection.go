package model

import (
	"time"
)

// Collection is a user-created shelf of books.
type Collection struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}
