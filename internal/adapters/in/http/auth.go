package http

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"railmeals/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const claimsContextKey = "claims"

// Claims carries the authenticated vendor operator's identity. Every request
// is scoped to the outlet in the token; there is no cross-outlet access.
type Claims struct {
	UserID   uuid.UUID `json:"user_id"`
	OutletID uuid.UUID `json:"outlet_id"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed operator token for an outlet.
func GenerateToken(secret string, userID, outletID uuid.UUID, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:   userID,
		OutletID: outletID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses and verifies an operator token.
func ValidateToken(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// AuthMiddleware authenticates requests with a bearer token and stores the
// claims on the request context.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing authorization header",
				})
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid authorization format",
				})
			}

			claims, err := ValidateToken(secret, parts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// outletIDFromContext extracts the authenticated outlet from the request.
func outletIDFromContext(c echo.Context) (kernel.UUID, error) {
	claims, ok := c.Get(claimsContextKey).(*Claims)
	if !ok {
		return kernel.UUID{}, fmt.Errorf("not authenticated")
	}
	return kernel.UUIDFromBytes(claims.OutletID[:])
}
