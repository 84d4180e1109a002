package auth

import (
	"crypto/subtle"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/smartcampus/campus-api/internal/response"
)

// CookieName is the session cookie carrying the signed admin claims.
const CookieName = "campus_session"

// Claims represents the session JWT payload. The admin capability is the
// logged_in flag; an absent or unparseable cookie means not admin.
type Claims struct {
	LoggedIn bool   `json:"logged_in"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Gate compares credentials against the configured admin pair and issues or
// verifies session cookies. Plain string comparison is intentional here; the
// admin surface is a single shared credential.
type Gate struct {
	username string
	password string
	secret   []byte
	ttl      time.Duration
}

// NewGate creates a session gate for the configured admin credentials.
func NewGate(username, password, secret string, ttl time.Duration) *Gate {
	return &Gate{
		username: username,
		password: password,
		secret:   []byte(secret),
		ttl:      ttl,
	}
}

// Login checks the submitted credentials and, on success, returns a signed
// session token. Failure returns ok=false and issues nothing.
func (g *Gate) Login(username, password string) (string, bool) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) == 1
	if !userOK || !passOK {
		return "", false
	}

	now := time.Now()
	claims := Claims{
		LoggedIn: true,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(g.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(g.secret)
	if err != nil {
		return "", false
	}
	return token, true
}

// Parse validates a session token and returns its claims.
func (g *Gate) Parse(tokenStr string) (Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil {
		return Claims{}, err
	}
	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return Claims{}, errors.New("invalid token")
	}
	return *claims, nil
}

// IsAdmin reports whether the request carries a valid admin session cookie.
func (g *Gate) IsAdmin(c *gin.Context) bool {
	cookie, err := c.Cookie(CookieName)
	if err != nil {
		return false
	}
	claims, err := g.Parse(cookie)
	if err != nil {
		return false
	}
	return claims.LoggedIn
}

// RequireAdmin aborts with 401 when the request has no valid admin session.
func (g *Gate) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !g.IsAdmin(c) {
			response.Unauthorized(c, "Unauthorized access.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SetSessionCookie attaches the session token to the response.
func (g *Gate) SetSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, token, int(g.ttl.Seconds()), "/", "", false, true)
}

// ClearSessionCookie removes the session cookie.
func (g *Gate) ClearSessionCookie(c *gin.Context) {
	c.SetCookie(CookieName, "", -1, "/", "", false, true)
}
