package middleware

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// TokenVerifier validates a bearer credential and yields the verified email
// identity. The production implementation wraps the identity provider's
// signed tokens; tests substitute their own.
type TokenVerifier interface {
	VerifyToken(tokenString string) (string, error)
}

// JWTVerifier verifies HMAC-signed tokens carrying an email claim.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// GenerateToken issues a signed token attesting the given email identity.
func (v *JWTVerifier) GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(24 * time.Hour).Unix(), // expiry 24h
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(v.secret)
}

// VerifyToken parses and validates the token and returns its email claim.
func (v *JWTVerifier) VerifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Check if the token method is valid
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token payload")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("token carries no email claim")
	}
	return email, nil
}

// Auth holds the identity gates applied to protected routes.
type Auth struct {
	Verifier TokenVerifier
}

func NewAuth(verifier TokenVerifier) *Auth {
	return &Auth{Verifier: verifier}
}

// RequireAuth checks for a valid bearer credential in the request and stores
// the verified email in the request context for downstream handlers.
func (a *Auth) RequireAuth(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}

	email, err := a.Verifier.VerifyToken(strings.TrimPrefix(authHeader, "Bearer "))
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"message": "Unauthorized access",
		})
	}

	c.Locals("userEmail", email)
	return c.Next()
}

// RequireEmailMatch rejects requests whose email query parameter does not
// match the verified identity. Runs after RequireAuth.
func (a *Auth) RequireEmailMatch(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" || email != VerifiedEmail(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": "Forbidden access",
		})
	}
	return c.Next()
}

// VerifiedEmail returns the email stored by RequireAuth, or "" if the route
// did not run the gate.
func VerifiedEmail(c *fiber.Ctx) string {
	email, _ := c.Locals("userEmail").(string)
	return email
}
