package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"card-rewards-api/internal/config"
	"card-rewards-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const TokenTypeAccess = "access"

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrMissingUserID     = errors.New("token has no valid user id")
	ErrSigningDisabled   = errors.New("token signing is not configured")
)

// TokenService verifies the RS256 bearer tokens minted by the identity service.
// Outside production it also holds the private key so /dev/token can mint them.
type TokenService struct {
	cfg    config.JWTConfig
	parser *jwt.Parser
	now    func() time.Time
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		cfg: *jwtConfig,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithIssuer(jwtConfig.Issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(5*time.Second),
		),
		now: time.Now,
	}
}

func (ts *TokenService) IssueAccessToken(userID uuid.UUID, email string) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, ErrMissingUserID
	}
	if ts.cfg.PrivateKey == nil {
		return "", time.Time{}, ErrSigningDisabled
	}

	issuedAt := ts.now()
	expiresAt := issuedAt.Add(ts.cfg.AccessTokenDuration)

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.cfg.Issuer,
			Subject:   userID.String(),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID.String(),
		Email:     email,
		TokenType: TokenTypeAccess,
	}).SignedString(ts.cfg.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateAccessToken checks signature, issuer and expiry, then requires an
// access token carrying a non-nil user id.
func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	claims := &models.CustomClaims{}
	_, err := ts.parser.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		return ts.cfg.PublicKey, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.TokenType != TokenTypeAccess {
		return nil, ErrInvalidTokenType
	}
	if id, err := uuid.Parse(claims.UserID); err != nil || id == uuid.Nil {
		return nil, ErrMissingUserID
	}

	return claims, nil
}

// ExtractTokenFromHeader returns the token of a case-insensitive "Bearer <token>" header
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}
	if token = strings.TrimSpace(token); token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}
