package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const matchIssuer = "toot-otto"

// MatchClaims lets a client reattach to a match it started
type MatchClaims struct {
	MatchID string `json:"match_id"`
	Player  string `json:"player"`
	jwt.RegisteredClaims
}

// GenerateMatchToken signs a resume token for matchID that expires after ttl
func GenerateMatchToken(matchID, player, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("missing signing secret")
	}

	now := time.Now()
	claims := &MatchClaims{
		MatchID: matchID,
		Player:  player,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    matchIssuer,
			Subject:   matchID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateMatchToken checks the signature and expiry and returns the claims
func ValidateMatchToken(tokenString, secret string) (*MatchClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &MatchClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(secret), nil
	}, jwt.WithIssuer(matchIssuer))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*MatchClaims); ok && token.Valid && claims.MatchID != "" {
		return claims, nil
	}

	return nil, errors.New("invalid match token")
}
