package middleware

import (
	stderrors "errors"

	"card-rewards-api/internal/errors"
	"card-rewards-api/internal/handlers"
	"card-rewards-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	TokenJTIContextKey  = "token_jti"
)

// RequireAuth rejects requests without a valid bearer token and exposes the
// token subject to handlers as user_id
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil || userID == uuid.Nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(UserIDContextKey, userID)
			c.Set(UserEmailContextKey, claims.Email)
			c.Set(TokenJTIContextKey, claims.ID)

			return next(c)
		}
	}
}
