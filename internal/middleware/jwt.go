package middleware

import (
	"net/http"
	"strings"
	"time"

	"content-hub/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	JWTSecret = []byte("content-hub-secret-2026")
	TokenTTL  = 7 * 24 * time.Hour
)

// IssueToken signs a session token for u.
func IssueToken(u model.User) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":    u.ID,
		"name":   u.Name,
		"email":  u.Email,
		"avatar": u.AvatarURL,
		"exp":    time.Now().Add(TokenTTL).Unix(),
	}).SignedString(JWTSecret)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return JWTSecret, nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		u := model.User{
			ID:        claimString(claims, "uid"),
			Name:      claimString(claims, "name"),
			Email:     claimString(claims, "email"),
			AvatarURL: claimString(claims, "avatar"),
		}
		if u.ID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		c.Set("user_id", u.ID)
		c.Set("user_name", u.Name)
		c.Set("user", u)

		// renew when less than a day is left
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				if newToken, err := IssueToken(u); err == nil {
					c.Header("X-New-Token", newToken)
				}
			}
		}

		c.Next()
	}
}

// CurrentUser returns the user JWTAuth stored on c.
func CurrentUser(c *gin.Context) model.User {
	if v, ok := c.Get("user"); ok {
		if u, ok := v.(model.User); ok {
			return u
		}
	}
	return model.User{ID: c.GetString("user_id"), Name: c.GetString("user_name")}
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return s
}
