package ports

import (
	"context"

	"github.com/skillx/skillx-api/internal/core/domain"
)

// PublishListingInput carries the data needed to publish a skill listing.
type PublishListingInput struct {
	OwnerID     string
	Skill       string
	Description string
	City        string
}

type MarketService interface {
	Publish(ctx context.Context, input PublishListingInput) (*domain.Listing, error)
	Browse(ctx context.Context) ([]domain.Listing, error)
}
