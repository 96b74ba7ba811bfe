package handlers

import (
	"net/http"
	"strings"

	"card-rewards-api/internal/dto"
	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/models"
	"card-rewards-api/internal/services"

	"github.com/labstack/echo/v4"
)

const maxMerchantLength = 255

// CategoryHandler exposes the category list and merchant categorization
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns every supported category with its display label
// @Summary Spending categories
// @Tags Categories
// @Produce json
// @Success 200 {object} dto.CategoriesResponse
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	codes := models.AllCategories()
	categories := make([]dto.CategoryResponse, 0, len(codes))
	for _, code := range codes {
		categories = append(categories, dto.CategoryResponse{Code: code, Label: models.CategoryLabel(code)})
	}
	return c.JSON(http.StatusOK, dto.CategoriesResponse{Categories: categories})
}

// SuggestCategory infers the category for a merchant and optional MCC code
// @Summary Suggest a category
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Param merchant query string true "Merchant name"
// @Param mcc query string false "Merchant category code"
// @Success 200 {object} dto.CategorySuggestionResponse
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_002 - Missing merchant"
// @Router /categories/suggest [get]
func (h *CategoryHandler) SuggestCategory(c echo.Context) error {
	merchant := strings.TrimSpace(c.QueryParam("merchant"))
	if merchant == "" {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("merchant: is required"))
	}
	if len(merchant) > maxMerchantLength {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails("merchant: must be at most 255 characters long"))
	}

	suggestion := h.categoryService.Suggest(merchant, strings.TrimSpace(c.QueryParam("mcc")))

	return c.JSON(http.StatusOK, dto.CategorySuggestionResponse{
		Merchant:   merchant,
		Category:   suggestion.Category,
		Method:     suggestion.Method,
		Confidence: suggestion.Confidence,
		Matched:    suggestion.MatchedPattern,
	})
}
