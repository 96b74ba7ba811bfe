package handlers

import (
	"net/http"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"

	"github.com/labstack/echo/v4"
)

// CardHandler handles the wallet card endpoints
type CardHandler struct {
	cardService services.CardServiceInterface
}

// NewCardHandler creates a new card handler
func NewCardHandler(cardService services.CardServiceInterface) *CardHandler {
	return &CardHandler{cardService: cardService}
}

// CreateCard adds a card to the user's wallet
// @Summary Add a card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCardRequest true "Card details"
// @Success 201 {object} dto.CardResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid card details"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Card store unavailable"
// @Router /cards [post]
func (h *CardHandler) CreateCard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	card, err := h.cardService.CreateCard(c.Request().Context(), userID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ToCardResponse(card))
}

// ListCards returns every card in the user's wallet
// @Summary List cards
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListCardsResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Card store unavailable"
// @Router /cards [get]
func (h *CardHandler) ListCards(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cards, err := h.cardService.ListCards(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ListCardsResponse{
		Cards: dto.ToCardResponses(cards),
		Total: len(cards),
	})
}

// GetCard returns a single card
// @Summary Get a card
// @Tags Cards
// @Security BearerAuth
// @Produce json
// @Param id path string true "Card ID (UUID)"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} errors.ErrorResponse "CARD_003 - Invalid card ID"
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Router /cards/{id} [get]
func (h *CardHandler) GetCard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cardID, err := parseCardID(c)
	if err != nil {
		return SendError(c, errors.CardInvalidID)
	}

	card, err := h.cardService.GetCard(c.Request().Context(), userID, cardID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// UpdateCard applies a partial update; an empty expiry_date clears the expiry
// @Summary Update a card
// @Tags Cards
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Card ID (UUID)"
// @Param request body dto.UpdateCardRequest true "Fields to change"
// @Success 200 {object} dto.CardResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid card details"
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Router /cards/{id} [put]
func (h *CardHandler) UpdateCard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cardID, err := parseCardID(c)
	if err != nil {
		return SendError(c, errors.CardInvalidID)
	}

	var req dto.UpdateCardRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	card, err := h.cardService.UpdateCard(c.Request().Context(), userID, cardID, &req)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ToCardResponse(card))
}

// DeleteCard removes a card, keeping its transaction history
// @Summary Delete a card
// @Tags Cards
// @Security BearerAuth
// @Param id path string true "Card ID (UUID)"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Router /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	cardID, err := parseCardID(c)
	if err != nil {
		return SendError(c, errors.CardInvalidID)
	}

	if err := h.cardService.DeleteCard(c.Request().Context(), userID, cardID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
