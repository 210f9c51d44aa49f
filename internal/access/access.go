// Package access holds the per-route gate pipeline. A gate either lets the
// request through, possibly with identity claims, or rejects it with a
// status. Gates never write the response themselves; Chain does that once.
package access

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"

	"github.com/arzan03/PawPal/internal/models"
	"github.com/arzan03/PawPal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const claimsKey = "claims"

// Rejection is a terminal gate outcome.
type Rejection struct {
	Status  int
	Message string
}

// Error returns the message sent to the client.
func (r *Rejection) Error() string { return r.Message }

var (
	ErrUnauthorized = &Rejection{Status: fiber.StatusUnauthorized, Message: "unauthorized access"}
	ErrForbidden    = &Rejection{Status: fiber.StatusForbidden, Message: "forbidden access"}
)

// Gate inspects the request with the claims established by earlier gates
// and returns the claims later gates should see.
type Gate func(c *fiber.Ctx, claims *services.Claims) (*services.Claims, error)

// TokenVerifier is satisfied by *services.TokenService.
type TokenVerifier interface {
	Verify(token string) (*services.Claims, error)
}

// RoleLookup finds the stored user for an email, nil when absent.
type RoleLookup interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// Chain runs gates in order and only calls the next handler when all pass.
func Chain(gates ...Gate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var claims *services.Claims
		for _, gate := range gates {
			next, err := gate(c, claims)
			if err != nil {
				var rej *Rejection
				if errors.As(err, &rej) {
					return c.Status(rej.Status).JSON(fiber.Map{"message": rej.Message})
				}
				return err
			}
			claims = next
		}
		if claims != nil {
			c.Locals(claimsKey, claims)
		}
		return c.Next()
	}
}

// ClaimsFrom returns the claims attached by a Chain with an Authenticate gate.
func ClaimsFrom(c *fiber.Ctx) (*services.Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*services.Claims)
	return claims, ok && claims != nil
}

// Authenticate requires an "Authorization: Bearer <token>" header. A missing
// header is unauthorized; any other scheme or a token that fails
// verification is forbidden.
func Authenticate(tokens TokenVerifier) Gate {
	return func(c *fiber.Ctx, _ *services.Claims) (*services.Claims, error) {
		header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if header == "" {
			return nil, ErrUnauthorized
		}

		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return nil, ErrForbidden
		}
		claims, err := tokens.Verify(strings.TrimSpace(token))
		if err != nil {
			return nil, ErrForbidden
		}
		return claims, nil
	}
}

// RequireSelf only lets a caller address their own email in the named
// route parameter.
func RequireSelf(param string) Gate {
	return func(c *fiber.Ctx, claims *services.Claims) (*services.Claims, error) {
		if claims == nil {
			return nil, ErrForbidden
		}
		target, err := url.PathUnescape(c.Params(param))
		if err != nil || target != claims.Email {
			return nil, ErrForbidden
		}
		return claims, nil
	}
}

// RequireAdmin checks the caller's stored role, not anything in the token,
// so a promotion takes effect without a new token.
func RequireAdmin(users RoleLookup) Gate {
	return func(c *fiber.Ctx, claims *services.Claims) (*services.Claims, error) {
		if claims == nil {
			return nil, ErrForbidden
		}

		user, err := users.FindByEmail(c.UserContext(), claims.Email)
		if err != nil {
			log.Printf("admin gate: lookup %s: %v", claims.Email, err)
			return nil, err
		}
		if user == nil || !user.IsAdmin() {
			return nil, ErrForbidden
		}
		return claims, nil
	}
}
