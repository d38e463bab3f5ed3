package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/skillx/skillx-api/internal/core/domain"
	"github.com/skillx/skillx-api/internal/core/ports"
)

type MarketHandler struct {
	marketService ports.MarketService
}

func NewMarketHandler(marketService ports.MarketService) *MarketHandler {
	return &MarketHandler{marketService: marketService}
}

type publishListingRequest struct {
	Skill       string `json:"skill" validate:"required"`
	Description string `json:"description"`
	City        string `json:"city"`
}

type listingResponse struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Skill       string    `json:"skill"`
	Description string    `json:"description,omitempty"`
	City        string    `json:"city,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Browse returns all marketplace listings, newest first.
//
// @Summary      Browse skill listings
// @Tags         market
// @Produce      json
// @Success      200  {array}  listingResponse
// @Router       /api/market [get]
func (h *MarketHandler) Browse(c echo.Context) error {
	listings, err := h.marketService.Browse(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]listingResponse, len(listings))
	for i, l := range listings {
		out[i] = toListingResponse(l)
	}
	return c.JSON(http.StatusOK, out)
}

// Publish adds a skill listing owned by the caller.
//
// @Summary      Publish a skill listing
// @Tags         market
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      publishListingRequest  true  "Listing"
// @Success      201   {object}  listingResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/market [post]
func (h *MarketHandler) Publish(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req publishListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	listing, err := h.marketService.Publish(c.Request().Context(), ports.PublishListingInput{
		OwnerID:     userID,
		Skill:       req.Skill,
		Description: req.Description,
		City:        req.City,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toListingResponse(*listing))
}

func toListingResponse(l domain.Listing) listingResponse {
	return listingResponse{
		ID:          l.ID,
		OwnerID:     l.OwnerID,
		Skill:       l.Skill,
		Description: l.Description,
		City:        l.City,
		CreatedAt:   l.CreatedAt.UTC(),
	}
}
