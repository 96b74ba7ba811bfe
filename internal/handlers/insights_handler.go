package handlers

import (
	"net/http"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services"
	"card-rewards-api/internal/validation"

	"github.com/labstack/echo/v4"
)

// InsightsHandler serves the recommendation, analytics, optimizer and
// rewards endpoints
type InsightsHandler struct {
	insightsService     services.InsightsServiceInterface
	expiryThresholdDays int
}

// NewInsightsHandler creates a new insights handler. expiryThresholdDays is
// used when the client does not pass threshold_days.
func NewInsightsHandler(insightsService services.InsightsServiceInterface, expiryThresholdDays int) *InsightsHandler {
	return &InsightsHandler{
		insightsService:     insightsService,
		expiryThresholdDays: expiryThresholdDays,
	}
}

// Recommend picks the card earning the most points for a purchase
// @Summary Recommend a card
// @Tags Recommendations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Category and amount"
// @Success 200 {object} models.Recommendation
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_008 - Unknown category or VALIDATION_001 - Invalid amount"
// @Failure 404 {object} errors.ErrorResponse "CARD_002 - No cards available"
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Card store unavailable"
// @Router /recommendations [post]
func (h *InsightsHandler) Recommend(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Request body must be valid JSON"))
	}
	if err := c.Validate(&req); err != nil {
		if validation.HasFieldError(err, "category") {
			return sendValidationError(c, err, errors.ValidationInvalidCategory)
		}
		return sendValidationError(c, err, errors.ValidationGeneral)
	}

	category, _ := models.NormalizeCategory(req.Category)

	rec, err := h.insightsService.Recommend(c.Request().Context(), userID, category, req.Amount)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, rec)
}

// SpendingPatterns reports category totals and spending tiers
// @Summary Spending patterns
// @Tags Analytics
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.PatternsReport
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Transaction store unavailable"
// @Router /analytics/spending-patterns [get]
func (h *InsightsHandler) SpendingPatterns(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, err := h.insightsService.AnalyzeSpending(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// RecurringBills lists merchants charged repeatedly
// @Summary Recurring bills
// @Tags Optimizer
// @Security BearerAuth
// @Produce json
// @Param min_occurrences query int false "Minimum charges per merchant" default(2)
// @Param limit query int false "Maximum bills returned"
// @Success 200 {object} dto.RecurringBillsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Router /optimizer/recurring-bills [get]
func (h *InsightsHandler) RecurringBills(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	minOccurrences, err := getIntParam(c, "min_occurrences", 0)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	limit, err := getIntParam(c, "limit", 0)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	bills, err := h.insightsService.DetectRecurringBills(c.Request().Context(), userID, minOccurrences, limit)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RecurringBillsResponse{
		RecurringBills: nonNil(bills),
		Total:          len(bills),
	})
}

// Optimize suggests better cards for recurring bills
// @Summary Optimize recurring bills
// @Tags Optimizer
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.OptimizationReport
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003 - Store unavailable"
// @Router /optimizer/optimize [post]
func (h *InsightsHandler) Optimize(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, err := h.insightsService.Optimize(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, report)
}

// ExpiryAlerts flags point balances expiring soon or already expired
// @Summary Expiry alerts
// @Tags Rewards
// @Security BearerAuth
// @Produce json
// @Param threshold_days query int false "Alert window in days" default(60)
// @Success 200 {object} dto.ExpiryAlertsResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid threshold"
// @Router /rewards/expiry-alerts [get]
func (h *InsightsHandler) ExpiryAlerts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	thresholdDays, err := getIntParam(c, "threshold_days", h.expiryThresholdDays)
	if err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}

	alerts, err := h.insightsService.ExpiryAlerts(c.Request().Context(), userID, thresholdDays)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpiryAlertsResponse{Alerts: nonNil(alerts)})
}

// ExpirySchedule lists every card's expiry date with its risk level
// @Summary All expiry dates
// @Tags Rewards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ExpiryScheduleResponse
// @Router /rewards/all-expiry-dates [get]
func (h *InsightsHandler) ExpirySchedule(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	schedule, err := h.insightsService.ExpirySchedule(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpiryScheduleResponse{ExpiryDates: nonNil(schedule)})
}

// RedemptionSuggestions lists redemption options per card balance
// @Summary Redemption suggestions
// @Tags Rewards
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.RedemptionSuggestionsResponse
// @Router /rewards/redemption-suggestions [get]
func (h *InsightsHandler) RedemptionSuggestions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	suggestions, err := h.insightsService.RedemptionSuggestions(c.Request().Context(), userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.RedemptionSuggestionsResponse{Suggestions: nonNil(suggestions)})
}

// nonNil keeps empty collections rendering as [] instead of null
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
