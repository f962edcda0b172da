package middlewares

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"culturebites/src/db"
	"culturebites/src/models"
	"culturebites/src/types"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// jwtKey is read lazily so it picks up values loaded from .env files.
func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func AuthMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		if authHeader == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			return
		}

		claims := &types.Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
			return jwtKey(), nil
		})
		if err != nil || !token.Valid {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		var user models.User
		if err := db.GetDb().Where(&models.User{Email: claims.Username}).First(&user).Error; err != nil {
			log.Printf("Error retrieving user %s: %s\n", claims.Username, err.Error())
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}

		ctx.Set("id", user.ID)
		ctx.Set("uid", user.UID)
		ctx.Set("email", user.Email)
		ctx.Set("name", user.Name)
		ctx.Set("role", string(user.Role))
		ctx.Next()
	}
}

// GenerateJWT issues a short-lived token for the given account.
func GenerateJWT(email string, role types.Role) (string, error) {
	claims := &types.Claims{
		Username: email,
		Role:     string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

func SecureHeaders(ctx *gin.Context) {
	ctx.Header("X-Frame-Options", "DENY")
	ctx.Header("X-Content-Type-Options", "nosniff")
	ctx.Header("X-XSS-Protection", "1; mode=block")
	ctx.Header("Referrer-Policy", "strict-origin")
	ctx.Next()
}
