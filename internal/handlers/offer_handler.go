package handlers

import (
	"net/http"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"

	"github.com/labstack/echo/v4"
)

// OfferHandler serves the card offer catalogue
type OfferHandler struct {
	offerService services.OfferServiceInterface
}

// NewOfferHandler creates a new offer handler
func NewOfferHandler(offerService services.OfferServiceInterface) *OfferHandler {
	return &OfferHandler{offerService: offerService}
}

// ListOffers returns the whole catalogue; it does not require authentication
// @Summary Card offers
// @Tags Offers
// @Produce json
// @Param co_branded query bool false "Only co-branded cards"
// @Success 200 {object} dto.CardOffersResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid co_branded flag"
// @Router /offers [get]
func (h *OfferHandler) ListOffers(c echo.Context) error {
	coBranded, err := getBoolParam(c, "co_branded")
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	offers := h.offerService.ListOffers(coBranded)
	return c.JSON(http.StatusOK, dto.CardOffersResponse{
		Cards: nonNil(offers),
		Total: len(offers),
	})
}

// RecommendedOffers ranks catalogue cards the user does not own by their spending
// @Summary Recommended card offers
// @Tags Offers
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum offers (max 20)" default(6)
// @Success 200 {object} dto.RecommendedOffersResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid limit"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /offers/recommended [get]
func (h *OfferHandler) RecommendedOffers(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit, err := getIntParam(c, "limit", 0)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	offers, profile, err := h.offerService.RecommendOffers(c.Request().Context(), userID, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RecommendedOffersResponse{
		RecommendedCards:    nonNil(offers),
		UserSpendingProfile: profile,
	})
}
