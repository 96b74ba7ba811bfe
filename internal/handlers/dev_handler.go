package handlers

import (
	stderrors "errors"
	"net/http"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints.
// It is only routed when the server runs in development.
type DevHandler struct {
	tokenService services.TokenServiceInterface
	demoService  services.DemoDataServiceInterface
}

// NewDevHandler creates a new development handler
func NewDevHandler(tokenService services.TokenServiceInterface, demoService services.DemoDataServiceInterface) *DevHandler {
	return &DevHandler{
		tokenService: tokenService,
		demoService:  demoService,
	}
}

// IssueToken signs an access token with the local development key so the API
// can be exercised without the identity service
//
// Method: POST /api/v1/dev/token
// Authentication: None
// Environment: Development only
//
// Success Response: 200 OK with dto.TokenResponse
//
// Error Responses:
//   - 400: Invalid email or user_id
//   - 500: Signing key not configured
func (h *DevHandler) IssueToken(c echo.Context) error {
	var req dto.DevTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	userID := uuid.New()
	if req.UserID != "" {
		parsed, err := uuid.Parse(req.UserID)
		if err != nil || parsed == uuid.Nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("user_id: must be a valid UUID"))
		}
		userID = parsed
	}

	token, expiresAt, err := h.tokenService.IssueAccessToken(userID, req.Email)
	if err != nil {
		if stderrors.Is(err, services.ErrSigningDisabled) {
			return SendError(c, errors.SystemConfigurationError, errors.WithDetails("Token signing key is not configured"))
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		UserID:      userID.String(),
	})
}

// SeedTransactions generates purchase history on the caller's cards
//
// Method: POST /api/v1/dev/seed
// Authentication: Bearer token
// Environment: Development only
//
// Success Response: 201 Created with models.SeedSummary
//
// Error Responses:
//   - 400: months outside 1..12
//   - 404: CARD_002 when the user has no cards
func (h *DevHandler) SeedTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.SeedTransactionsRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
		}
	}
	if err := c.Validate(&req); err != nil {
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	summary, err := h.demoService.SeedTransactions(c.Request().Context(), userID, req.Months)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, summary)
}
