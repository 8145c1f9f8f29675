package helpers

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType discriminates access tokens from refresh tokens inside the claims.
type TokenType string

const (
	AccessTokenType  TokenType = "access"
	RefreshTokenType TokenType = "refresh"
)

var (
	ErrWrongTokenType = errors.New("token type mismatch")
	ErrMissingSubject = errors.New("token has no user id")
)

// JWTManager handles generation and validation of JWT tokens.
// Access and refresh tokens are signed with different secrets.
type JWTManager struct {
	AccessSecret  []byte
	RefreshSecret []byte
	AccessTTL     time.Duration
	RefreshTTL    time.Duration
}

func NewJWTManager(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *JWTManager {
	return &JWTManager{
		AccessSecret:  []byte(accessSecret),
		RefreshSecret: []byte(refreshSecret),
		AccessTTL:     accessTTL,
		RefreshTTL:    refreshTTL,
	}
}

// Claims is the wire shape shared by both token kinds.
type Claims struct {
	UserID string    `json:"userId"`
	Type   TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// AccessToken is a verified access token.
type AccessToken struct {
	UserID    string
	ExpiresAt time.Time
}

// RefreshToken is a verified refresh token.
type RefreshToken struct {
	UserID    string
	ExpiresAt time.Time
}

// TokenPair is what a successful login, registration or refresh hands out.
type TokenPair struct {
	AccessToken        string
	AccessTokenExpiry  time.Time
	RefreshToken       string
	RefreshTokenExpiry time.Time
}

func (m *JWTManager) GenerateAccessToken(userID string) (string, time.Time, error) {
	return sign(userID, AccessTokenType, m.AccessTTL, m.AccessSecret)
}

func (m *JWTManager) GenerateRefreshToken(userID string) (string, time.Time, error) {
	return sign(userID, RefreshTokenType, m.RefreshTTL, m.RefreshSecret)
}

// GeneratePair issues a fresh access/refresh pair for userID.
func (m *JWTManager) GeneratePair(userID string) (TokenPair, error) {
	access, aexp, err := m.GenerateAccessToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, rexp, err := m.GenerateRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, AccessTokenExpiry: aexp, RefreshToken: refresh, RefreshTokenExpiry: rexp}, nil
}

// ParseAccessToken verifies signature, expiry and type. An expired token with a
// valid signature returns an error matching jwt.ErrTokenExpired.
func (m *JWTManager) ParseAccessToken(tokenStr string) (AccessToken, error) {
	claims, err := parseToken(tokenStr, m.AccessSecret, AccessTokenType)
	if err != nil {
		return AccessToken{}, err
	}
	return AccessToken{UserID: claims.UserID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func (m *JWTManager) ParseRefreshToken(tokenStr string) (RefreshToken, error) {
	claims, err := parseToken(tokenStr, m.RefreshSecret, RefreshTokenType)
	if err != nil {
		return RefreshToken{}, err
	}
	return RefreshToken{UserID: claims.UserID, ExpiresAt: claims.ExpiresAt.Time}, nil
}

func sign(userID string, typ TokenType, ttl time.Duration, secret []byte) (string, time.Time, error) {
	now := time.Now()
	exp := now.Add(ttl)
	claims := &Claims{
		UserID: userID,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			// jti keeps tokens minted in the same second distinct
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := t.SignedString(secret)
	return s, exp, err
}

func parseToken(tokenStr string, secret []byte, want TokenType) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !tkn.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Type != want {
		return nil, ErrWrongTokenType
	}
	if claims.UserID == "" {
		return nil, ErrMissingSubject
	}
	return claims, nil
}

// IsTokenExpired reports whether err came from a correctly signed token whose
// expiry has passed.
func IsTokenExpired(err error) bool {
	return errors.Is(err, jwt.ErrTokenExpired)
}
