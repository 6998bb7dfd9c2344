package serverutils

import (
	"errors"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid or expired token")

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return []byte(secret)
}

func parseClaims(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return jwtSecret(), nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, errInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidToken
	}
	return claims, nil
}

func bearerToken(ctx *fiber.Ctx) (string, bool) {
	authHeader := ctx.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", false
	}
	return authHeader[7:], true
}

// JwtMiddleware requires a valid bearer token and stores user_id in Locals.
func JwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr, ok := bearerToken(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
	}

	claims, err := parseClaims(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	userId, ok := claims["user_id"].(string)
	if !ok || userId == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid token claims"))
	}

	ctx.Locals("user_id", userId)
	return ctx.Next()
}

// OptionalJwtMiddleware lets the request through either way: a valid token
// sets user_id, anything else marks the request as guest. It never 401s.
func OptionalJwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr, ok := bearerToken(ctx)
	if ok {
		if claims, err := parseClaims(tokenStr); err == nil {
			if userId, ok := claims["user_id"].(string); ok && userId != "" {
				ctx.Locals("user_id", userId)
				return ctx.Next()
			}
		}
	}

	ctx.Locals("is_guest", true)
	return ctx.Next()
}

// AdminJwtMiddleware requires a valid token whose claims carry "role": "admin".
func AdminJwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr, ok := bearerToken(ctx)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Missing or invalid authorization header"))
	}

	claims, err := parseClaims(tokenStr)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse(401, "Invalid or expired token"))
	}

	role, ok := claims["role"].(string)
	if !ok {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Role missing"))
	}
	if role != "admin" {
		return ctx.Status(fiber.StatusForbidden).JSON(ErrorResponse(403, "Access denied: Admins only"))
	}

	if userId, ok := claims["user_id"].(string); ok {
		ctx.Locals("user_id", userId)
	}
	return ctx.Next()
}
