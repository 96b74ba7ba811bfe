package config

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

var ErrPublicKeyRequired = errors.New("JWT_PUBLIC_KEY must be set in production")

// loadJWTKeys reads the base64 encoded PEM keys from JWT_PUBLIC_KEY and the
// optional JWT_PRIVATE_KEY. Production requires the public key. Elsewhere a
// missing key gets a throwaway keypair so /dev/token can mint tokens.
func (c *Config) loadJWTKeys() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	publicB64 := os.Getenv("JWT_PUBLIC_KEY")
	if publicB64 == "" {
		if c.IsProduction() {
			return nil, nil, ErrPublicKeyRequired
		}
		c.Warnings = append(c.Warnings, "JWT_PUBLIC_KEY is not set, generated a local keypair; tokens from the identity service will be rejected")
		return GenerateRSAKeyPair()
	}

	publicPEM, err := base64.StdEncoding.DecodeString(publicB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PUBLIC_KEY: %w", err)
	}
	publicKey, err := jwt.ParseRSAPublicKeyFromPEM(publicPEM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT_PUBLIC_KEY: %w", err)
	}

	privateB64 := os.Getenv("JWT_PRIVATE_KEY")
	if privateB64 == "" {
		return nil, publicKey, nil
	}

	privatePEM, err := base64.StdEncoding.DecodeString(privateB64)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode JWT_PRIVATE_KEY: %w", err)
	}
	privateKey, err := jwt.ParseRSAPrivateKeyFromPEM(privatePEM)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse JWT_PRIVATE_KEY: %w", err)
	}
	if !privateKey.PublicKey.Equal(publicKey) {
		return nil, nil, errors.New("JWT_PRIVATE_KEY does not match JWT_PUBLIC_KEY")
	}

	return privateKey, publicKey, nil
}

// GenerateRSAKeyPair creates a 2048-bit keypair for local token signing
func GenerateRSAKeyPair() (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA key pair: %w", err)
	}
	return privateKey, &privateKey.PublicKey, nil
}
