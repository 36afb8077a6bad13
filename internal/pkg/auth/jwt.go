package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
)

// JWT errors
var (
	ErrInvalidToken   = apperrors.ErrTokenInvalid
	ErrExpiredToken   = apperrors.ErrTokenExpired
	ErrMissingToken   = apperrors.ErrTokenNotFound
	ErrRefreshExpired = apperrors.ErrRefreshExpired
)

// JWTConfig defines JWT configuration settings
type JWTConfig struct {
	SecretKey string
	// TTL is the lifetime of an issued token
	TTL time.Duration
	// RefreshWindow is how long after issue a token may still be refreshed,
	// even when it has already expired
	RefreshWindow time.Duration
	TokenIssuer   string
	// Now overrides the clock; nil means time.Now
	Now func() time.Time
}

// JWTService issues, verifies and refreshes signed bearer tokens
type JWTService struct {
	config JWTConfig
}

// NewJWTService creates a new JWT service
func NewJWTService(config JWTConfig) *JWTService {
	if config.Now == nil {
		config.Now = time.Now
	}
	return &JWTService{
		config: config,
	}
}

// Claims defines JWT token content
type Claims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed token for the given user
func (s *JWTService) GenerateToken(userID int64, email string) (string, time.Time, error) {
	now := s.config.Now()
	expiresAt := now.Add(s.config.TTL)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.config.TokenIssuer,
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.SecretKey))
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// ValidateToken checks the signature and registered claims of a token
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims, err := s.parse(tokenString, jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if _, err := subjectID(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// Verify validates a token and returns the user id it was issued for
func (s *JWTService) Verify(tokenString string) (int64, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// Refresh exchanges a valid token, or an expired one still inside the
// refresh window, for a new token bound to the same subject.
func (s *JWTService) Refresh(tokenString string) (string, time.Time, error) {
	if tokenString == "" {
		return "", time.Time{}, ErrMissingToken
	}

	// Signature and issuer are still checked; only time-based claims are skipped.
	claims, err := s.parse(tokenString, jwt.WithoutClaimsValidation())
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if s.config.TokenIssuer != "" && claims.Issuer != s.config.TokenIssuer {
		return "", time.Time{}, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	if claims.IssuedAt == nil {
		return "", time.Time{}, fmt.Errorf("%w: missing iat", ErrInvalidToken)
	}

	if s.config.Now().After(claims.IssuedAt.Add(s.config.RefreshWindow)) {
		return "", time.Time{}, ErrRefreshExpired
	}

	userID, err := subjectID(claims)
	if err != nil {
		return "", time.Time{}, err
	}

	return s.GenerateToken(userID, claims.Email)
}

func (s *JWTService) parse(tokenString string, opts ...jwt.ParserOption) (*Claims, error) {
	opts = append(opts,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.config.Now),
	)
	if s.config.TokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(s.config.TokenIssuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.SecretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func subjectID(claims *Claims) (int64, error) {
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 || id != claims.UserID {
		return 0, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return id, nil
}

// ExtractBearerToken extracts the token from an "Authorization: Bearer <token>" header
func ExtractBearerToken(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrMissingToken
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrMissingToken
	}

	return token, nil
}
