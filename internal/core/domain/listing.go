package domain

import (
	"errors"
	"time"
)

var ErrListingNotFound = errors.New("listing not found")

// Listing is a skill offered on the marketplace.
type Listing struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Skill       string    `json:"skill"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
