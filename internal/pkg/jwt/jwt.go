package jwt

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidSigningMethod rejects tokens signed with anything but HS512.
	ErrInvalidSigningMethod = errors.New("invalid JWT signing method")

	// ErrSigningKeyTooShort rejects HS512 keys shorter than the 64-byte digest.
	ErrSigningKeyTooShort = errors.New("HS512 signing key must be at least 64 bytes (512 bits)")

	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("JWT token has expired")

	// ErrInvalidToken marks a token that failed parsing or validation.
	ErrInvalidToken = errors.New("invalid token")
)

// JWT is the token surface the application needs: issue for a user, verify
// a presented token.
type JWT interface {
	Generate(uid int64, email, role string) (string, error)
	Verify(tokenStr string) (Claims, error)
}

type clocker interface {
	Now() time.Time
}

type generator interface {
	Generate() string
}

type jwtContextKey struct{}

// Config collects everything a token implementation needs. Clock and UUID
// are injected so token timestamps and IDs are controllable in tests.
type Config struct {
	// Secret is the HMAC signing key.
	Secret []byte
	// Issuer is stamped into and required from every token.
	Issuer string
	// Audiences lists the audience values accepted on verify.
	Audiences []string
	// TTL bounds token lifetime from the moment of issue.
	TTL time.Duration
	// Clock supplies issue and expiry timestamps.
	Clock clocker
	// UUID supplies token IDs.
	UUID generator
}

// Claims extends the registered claim set with the application payload.
type Claims struct {
	jwt.RegisteredClaims

	// UserID identifies the authenticated user.
	UserID int64 `json:"user_id,string"`
	// UserEmail is the user's email at issue time.
	UserEmail string `json:"user_email"`
	// Role drives the authorization policy lookup.
	Role string `json:"role"`
}

// GetAuth reads the claims placed in ctx by the authentication middleware.
// It returns nil when the request carried no valid token.
func GetAuth(ctx context.Context) *Claims {
	clm, ok := ctx.Value(jwtContextKey{}).(Claims)
	if !ok {
		return nil
	}

	return &clm
}

// SetAuth stores verified claims in ctx for downstream handlers.
func SetAuth(ctx context.Context, clm Claims) context.Context {
	return context.WithValue(ctx, jwtContextKey{}, clm)
}
