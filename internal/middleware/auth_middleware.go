package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const accessTokenCookie = "access_token"

var (
	ErrTokenNotFound = apperror.New(apperror.CodeUnauthorized, "Token no proporcionado", http.StatusUnauthorized)
	ErrInvalidToken  = apperror.New(apperror.CodeUnauthorized, "Token inválido", http.StatusUnauthorized)
	ErrTokenExpired  = apperror.New(apperror.CodeUnauthorized, "Token expirado", http.StatusUnauthorized)
)

func abortWith(c *gin.Context, err *apperror.AppError) {
	response.Error(c, err.HTTPStatus, err.Code, err.Message, nil)
	c.Abort()
}

// AuthMiddleware verifies an HMAC-signed token from the Authorization
// header or the access_token cookie and places the caller in the request
// context as a contextutil.Actor.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(accessTokenCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			abortWith(c, ErrTokenNotFound)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortWith(c, ErrTokenExpired)
				return
			}
			abortWith(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			abortWith(c, ErrInvalidToken)
			return
		}

		rawID, _ := claims["user_id"].(string)
		userID, err := uuid.Parse(rawID)
		if err != nil || userID == uuid.Nil {
			abortWith(c, ErrInvalidToken)
			return
		}

		isAdmin, _ := claims["is_admin"].(bool)
		actor := contextutil.Actor{ID: userID, IsAdmin: isAdmin}

		c.Set("actor_id", userID.String())
		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), actor))

		c.Next()
	}
}

// RequireAdmin rejects callers that are not administrators. It must run
// after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := contextutil.GetActor(c.Request.Context())
		if !ok {
			abortWith(c, apperror.ErrUnauthorized)
			return
		}
		if !actor.IsAdmin {
			abortWith(c, apperror.ErrForbidden)
			return
		}
		c.Next()
	}
}
