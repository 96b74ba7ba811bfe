package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"card-rewards-api/internal/config"
	"card-rewards-api/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// TokenServiceTestSuite defines the test suite for TokenService
type TokenServiceTestSuite struct {
	suite.Suite
	privateKey *rsa.PrivateKey
	publicKey  *rsa.PublicKey
	service    TokenServiceInterface
	issuer     string
}

func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.service = NewTokenService(&config.JWTConfig{
		PrivateKey:          s.privateKey,
		PublicKey:           s.publicKey,
		Issuer:              s.issuer,
		AccessTokenDuration: time.Hour,
	})
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func (s *TokenServiceTestSuite) sign(claims models.CustomClaims, key *rsa.PrivateKey) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	s.Require().NoError(err)
	return token
}

func (s *TokenServiceTestSuite) claimsFor(userID string) models.CustomClaims {
	now := time.Now()
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UserID:    userID,
		TokenType: TokenTypeAccess,
	}
}

func (s *TokenServiceTestSuite) TestIssueAndValidate() {
	userID := uuid.New()

	token, expiresAt, err := s.service.IssueAccessToken(userID, "dev@example.com")
	s.Require().NoError(err)
	s.True(expiresAt.After(time.Now()))

	claims, err := s.service.ValidateAccessToken(token)
	s.Require().NoError(err)
	s.Equal(userID.String(), claims.UserID)
	s.Equal("dev@example.com", claims.Email)
}

func (s *TokenServiceTestSuite) TestIssue_WithoutPrivateKey() {
	service := NewTokenService(&config.JWTConfig{PublicKey: s.publicKey, Issuer: s.issuer})

	_, _, err := service.IssueAccessToken(uuid.New(), "")
	s.ErrorIs(err, ErrSigningDisabled)
}

func (s *TokenServiceTestSuite) TestIssue_NilUser() {
	_, _, err := s.service.IssueAccessToken(uuid.Nil, "")
	s.ErrorIs(err, ErrMissingUserID)
}

func (s *TokenServiceTestSuite) TestValidate_Failures() {
	otherKey, _, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	expired := s.claimsFor(uuid.NewString())
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	wrongIssuer := s.claimsFor(uuid.NewString())
	wrongIssuer.Issuer = "someone-else"

	wrongType := s.claimsFor(uuid.NewString())
	wrongType.TokenType = "refresh"

	hmac, err := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claimsFor(uuid.NewString())).SignedString([]byte("shared-secret"))
	s.Require().NoError(err)

	noExpiry := s.claimsFor(uuid.NewString())
	noExpiry.ExpiresAt = nil

	testCases := []struct {
		name  string
		token string
		want  error
	}{
		{"hmac algorithm", hmac, ErrInvalidToken},
		{"no expiry", s.sign(noExpiry, s.privateKey), ErrInvalidToken},
		{"empty", "", ErrEmptyToken},
		{"garbage", "not-a-jwt", ErrInvalidToken},
		{"foreign key", s.sign(s.claimsFor(uuid.NewString()), otherKey), ErrInvalidToken},
		{"expired", s.sign(expired, s.privateKey), ErrExpiredToken},
		{"issuer", s.sign(wrongIssuer, s.privateKey), ErrInvalidIssuer},
		{"token type", s.sign(wrongType, s.privateKey), ErrInvalidTokenType},
		{"user id", s.sign(s.claimsFor("not-a-uuid"), s.privateKey), ErrMissingUserID},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.ValidateAccessToken(tc.token)
			s.ErrorIs(err, tc.want)
		})
	}
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	token, err := s.service.ExtractTokenFromHeader("Bearer abc.def")
	s.NoError(err)
	s.Equal("abc.def", token)

	token, err = s.service.ExtractTokenFromHeader("bearer  abc.def ")
	s.NoError(err)
	s.Equal("abc.def", token)

	for _, header := range []string{"", "Basic abc", "Bearer   ", "Bearerabc"} {
		_, err := s.service.ExtractTokenFromHeader(header)
		s.ErrorIs(err, ErrInvalidAuthHeader, header)
	}
}
