package services

import (
	"strconv"
	"time"

	"stillpoint/config"
	"stillpoint/internal/apperror"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TOKEN_ISSUER = "stillpoint"
	TOKEN_EXPIRY = 7 * 24 * time.Hour
)

// TokenService issues and validates the bearer tokens that carry a user's
// identity between requests.
type TokenService struct {
	secret []byte
	log    logger.Logger
}

func NewTokenService(config config.Config) (*TokenService, error) {
	log := logger.New("TokenService")

	if config.JWTSecret == "" {
		return nil, log.ErrMsg("jwt secret is not configured")
	}

	return &TokenService{
		secret: []byte(config.JWTSecret),
		log:    log,
	}, nil
}

// Issue signs a token for the user, valid for seven days.
func (ts *TokenService) Issue(userID int) (string, error) {
	log := ts.log.Function("Issue")

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.Itoa(userID),
		Issuer:    TOKEN_ISSUER,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TOKEN_EXPIRY)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.secret)
	if err != nil {
		return "", log.Err("failed to sign token", err, "userID", userID)
	}

	return signed, nil
}

// Validate parses the token and returns the user id it was issued for.
// Expired, malformed, or foreign-signed tokens all come back unauthorized.
func (ts *TokenService) Validate(tokenString string) (int, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return ts.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, apperror.Unauthorized("Invalid token")
	}

	userID, err := strconv.Atoi(claims.Subject)
	if err != nil || userID <= 0 {
		return 0, apperror.Unauthorized("Invalid token")
	}

	return userID, nil
}
