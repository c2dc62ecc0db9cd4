package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newGatedApp(auth *Auth) *fiber.App {
	app := fiber.New()
	app.Get("/private", auth.RequireAuth, func(c *fiber.Ctx) error {
		return c.SendString(VerifiedEmail(c))
	})
	app.Get("/mine", auth.RequireAuth, auth.RequireEmailMatch, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRequireAuthMissingHeader(t *testing.T) {
	app := newGatedApp(NewAuth(NewJWTVerifier("secret")))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/private", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: want=401 got=%d", resp.StatusCode)
	}
}

func TestRequireAuthInvalidToken(t *testing.T) {
	app := newGatedApp(NewAuth(NewJWTVerifier("secret")))

	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: want=401 got=%d", resp.StatusCode)
	}
}

func TestRequireAuthWrongSecret(t *testing.T) {
	app := newGatedApp(NewAuth(NewJWTVerifier("secret")))

	token, err := NewJWTVerifier("other-secret").GenerateToken("b@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status: want=401 got=%d", resp.StatusCode)
	}
}

func TestRequireAuthStoresVerifiedEmail(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	app := newGatedApp(NewAuth(verifier))

	token, err := verifier.GenerateToken("b@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: want=200 got=%d", resp.StatusCode)
	}
}

func TestRequireEmailMatch(t *testing.T) {
	verifier := NewJWTVerifier("secret")
	app := newGatedApp(NewAuth(verifier))

	token, err := verifier.GenerateToken("b@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	cases := []struct {
		name   string
		target string
		want   int
	}{
		{"match", "/mine?email=b@x.com", http.StatusOK},
		{"mismatch", "/mine?email=c@x.com", http.StatusForbidden},
		{"missing", "/mine", http.StatusForbidden},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("%s: request: %v", tc.name, err)
		}
		if resp.StatusCode != tc.want {
			t.Fatalf("%s: status: want=%d got=%d", tc.name, tc.want, resp.StatusCode)
		}
	}
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	verifier := NewJWTVerifier("secret")

	token, err := verifier.GenerateToken("b@x.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	email, err := verifier.VerifyToken(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if email != "b@x.com" {
		t.Fatalf("email: want=%q got=%q", "b@x.com", email)
	}
}
