package service

import (
	"errors"
	"time"

	userModel "gerejaku_backend/internals/features/users/user/model"

	"github.com/golang-jwt/jwt/v4"
)

// GenerateAccessToken: HS256 dengan klaim id, user_name, email, iat, exp.
func GenerateAccessToken(secret string, user *userModel.UserModel, now time.Time, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("JWT_SECRET belum diset")
	}
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"email":     user.Email,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// resolveBlacklistExpiry: simpan di blacklist sampai token memang kadaluarsa (+1 menit skew).
func resolveBlacklistExpiry(secret, accessToken string, now time.Time) time.Time {
	fallback := now.Add(2 * time.Minute)
	if secret == "" || accessToken == "" {
		return fallback
	}
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}); err != nil {
		return fallback
	}
	if exp, ok := claims["exp"].(float64); ok {
		until := time.Unix(int64(exp), 0)
		if until.After(now) {
			return until.Add(60 * time.Second)
		}
		return now.Add(time.Minute)
	}
	return fallback
}
