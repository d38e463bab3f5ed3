package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// ListingRepository defines persistence operations for marketplace listings.
type ListingRepository interface {
	Insert(ctx context.Context, l *domain.Listing) error
	// List returns all listings, newest first.
	List(ctx context.Context) ([]domain.Listing, error)
}
