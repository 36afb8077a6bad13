package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentrecords/internal/app/models/dto"
	"github.com/yigit/studentrecords/internal/pkg/apperrors"
	"github.com/yigit/studentrecords/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID = "userID"
	ContextEmail  = "email"
)

// 401 messages returned by JWTAuth
const (
	MessageTokenNotFound = "Authorization Token not found"
	MessageTokenExpired  = "Token is Expired"
	MessageTokenInvalid  = "Token is Invalid"
)

// TokenValidator validates a bearer token and returns its claims
type TokenValidator interface {
	ValidateToken(tokenString string) (*auth.Claims, error)
}

// AuthMiddleware for authentication
type AuthMiddleware struct {
	validator TokenValidator
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(validator TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewStatusResponse(false, MessageTokenNotFound))
			return
		}

		claims, err := m.validator.ValidateToken(tokenString)
		if err != nil {
			message := MessageTokenInvalid
			if errors.Is(err, apperrors.ErrTokenExpired) {
				message = MessageTokenExpired
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewStatusResponse(false, message))
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextEmail, claims.Email)
		c.Request = c.Request.WithContext(auth.WithUserID(c.Request.Context(), claims.UserID))

		c.Next()
	}
}

// CurrentUserID returns the user id stored by JWTAuth
func CurrentUserID(c *gin.Context) (int64, bool) {
	if userID, ok := auth.UserIDFromContext(c.Request.Context()); ok {
		return userID, true
	}
	return 0, false
}
