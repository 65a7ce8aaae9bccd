// Copyright (c) 2026 Plume. All rights reserved.
// Author: minh.anh.vo.dev@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces.
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT session token.
//
// # Why custom claims?
//
// By embedding the UserID, Username, and Role directly inside the JWT,
// a request can be attributed without a database hit for signature-level
// checks. The subject's existence is still re-validated against storage on
// every authenticated request, so a deleted account cannot ride out its
// token lifetime.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID   string `json:"uid"`
	Username string `json:"unm"`
	Role     string `json:"rol"`
}

// Subject is the authenticated identity attached to a request after token
// verification. It carries the re-resolved role from storage, not the role
// snapshot baked into the token.
type Subject struct {
	ID   string
	Name string
	Role UserRole
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// Tokens are not persisted and cannot be revoked before expiry; keep the
// configured lifetime short.
type TokenService struct {
	secret   []byte
	issuer   string
	lifetime time.Duration
}

// NewTokenService creates a new TokenService with a shared signing secret.
func NewTokenService(secret, issuer string, lifetime time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: jwt secret must not be empty")
	}

	return &TokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		lifetime: lifetime,
	}, nil
}

// GenerateAccessToken creates a new signed session token for a user.
func (service *TokenService) GenerateAccessToken(userID, username, role string) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(service.lifetime)),
		},
		UserID:   userID,
		Username: username,
		Role:     role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// VerifyToken checks the signature and validity of a JWT string.
func (service *TokenService) VerifyToken(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
