package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

// MarketService implements the marketplace listing read and publish paths.
type MarketService struct {
	listings ports.ListingRepository
	log      zerolog.Logger
}

func NewMarketService(listings ports.ListingRepository, log zerolog.Logger) *MarketService {
	return &MarketService{listings: listings, log: log}
}

func (s *MarketService) Publish(ctx context.Context, input ports.PublishListingInput) (*domain.Listing, error) {
	listing := &domain.Listing{
		OwnerID:     input.OwnerID,
		Skill:       input.Skill,
		Description: input.Description,
		City:        input.City,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.listings.Insert(ctx, listing); err != nil {
		return nil, err
	}

	s.log.Info().Str("owner_id", input.OwnerID).Str("skill", input.Skill).Msg("listing published")
	return listing, nil
}

func (s *MarketService) Browse(ctx context.Context) ([]domain.Listing, error) {
	return s.listings.List(ctx)
}
