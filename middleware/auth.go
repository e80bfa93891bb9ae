package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"closetable-api/config"
	"closetable-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token classes. A refresh token can never be used on a protected route and
// an access token can never be exchanged for a new one.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour
)

type Claims struct {
	UserID    uint   `json:"user_id"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT of the given class for a user. Every
// token carries a unique jti so it can be revoked individually.
func GenerateToken(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:    userID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// GenerateTokenPair issues the short-lived access token and the long-lived
// refresh token for a user.
func GenerateTokenPair(userID uint) (accessToken, refreshToken string, err error) {
	accessToken, err = GenerateToken(userID, TokenTypeAccess, AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = GenerateToken(userID, TokenTypeRefresh, RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ParseToken validates the signature and expiry and returns the claims.
func ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return config.JWTSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// IsTokenRevoked reports whether a jti is on the blocklist. Entries whose
// expiry has passed are purged first, so the store's TTL semantics stay
// passive: no sweeper goroutine is needed.
func IsTokenRevoked(jti string) bool {
	config.DB.Where("expires_at < ?", time.Now()).Delete(&models.RevokedToken{})
	var count int64
	config.DB.Model(&models.RevokedToken{}).Where("jti = ?", jti).Count(&count)
	return count > 0
}

// RevokeToken puts a token's jti on the blocklist until the token's own
// expiry, after which the entry is dead weight and gets purged.
func RevokeToken(claims *Claims) error {
	exp := time.Now().Add(AccessTokenTTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	entry := models.RevokedToken{Jti: claims.ID, ExpiresAt: exp}
	return config.DB.Create(&entry).Error
}

func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return strings.TrimPrefix(authHeader, "Bearer "), true
}

// AuthRequired validates the access token and injects the current user into
// the context. The role is re-read from the store on every request rather
// than trusted from the token payload, so a promotion (or demotion) takes
// effect on the user's very next call.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := extractBearerToken(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		claims, err := ParseToken(tokenStr)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		if claims.TokenType != TokenTypeAccess {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Access token required"})
			c.Abort()
			return
		}
		if IsTokenRevoked(claims.ID) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked"})
			c.Abort()
			return
		}

		var user models.User
		if err := config.DB.First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account no longer exists"})
			c.Abort()
			return
		}

		c.Set("user", &user)
		c.Set("userID", user.ID)
		c.Set("role", string(user.Role))
		c.Set("claims", claims)
		c.Next()
	}
}

// RoleRequired enforces that caller has one of the allowed roles
func RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "Role not found in context"})
			c.Abort()
			return
		}
		callerRole := models.Role(roleVal.(string))
		for _, r := range roles {
			if callerRole == r {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Access denied. Required role(s): " + rolesString(roles),
		})
		c.Abort()
	}
}

func rolesString(roles []models.Role) string {
	s := ""
	for i, r := range roles {
		if i > 0 {
			s += ", "
		}
		s += string(r)
	}
	return s
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetRole extracts caller role from context
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	return models.Role(val.(string))
}

// CurrentUser extracts the freshly-loaded user record from context
func CurrentUser(c *gin.Context) *models.User {
	val, _ := c.Get("user")
	return val.(*models.User)
}

// GetClaims extracts the parsed token claims from context
func GetClaims(c *gin.Context) *Claims {
	val, _ := c.Get("claims")
	return val.(*Claims)
}
