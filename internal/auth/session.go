package auth

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	CookieName = "salon_session"
	SessionTTL = 7 * 24 * time.Hour
)

// NewSessionToken mints the signed session token carried by the cookie.
// The subject is the user's OpenID; the row is re-read on every request so
// role changes take effect immediately.
func NewSessionToken(secret, openID string) (string, error) {
	claims := jwt.MapClaims{
		"sub": openID,
		"exp": time.Now().Add(SessionTTL).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken validates the token and returns the OpenID it carries.
func ParseSessionToken(secret, tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", jwt.ErrTokenMalformed
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", jwt.ErrTokenInvalidClaims
	}
	openID, ok := claims["sub"].(string)
	if !ok || openID == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return openID, nil
}

func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(CookieName, token, int(SessionTTL.Seconds()), "/", "", false, true)
}

func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
