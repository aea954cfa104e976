package auth

import (
	"fmt"
	"strconv"
	"time"

	"dondusang/pkg/types"

	"github.com/lestrrat-go/jwx/v3/jwa"
	"github.com/lestrrat-go/jwx/v3/jwk"
	"github.com/lestrrat-go/jwx/v3/jwt"
)

// Identity is the caller resolved from a verified access token.
type Identity struct {
	UserID int64
	Email  string
	Role   types.UserRole
}

// TokenIssuer signs and verifies access tokens with a shared HMAC secret.
type TokenIssuer struct {
	key jwk.Key
	ttl time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("token secret must not be empty")
	}

	key, err := jwk.Import([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("failed to import signing key: %w", err)
	}

	return &TokenIssuer{key: key, ttl: ttl}, nil
}

// Issue signs a token carrying the user's id, email and role.
func (t *TokenIssuer) Issue(user *types.User) (string, error) {
	now := time.Now()

	token, err := jwt.NewBuilder().
		Subject(strconv.FormatInt(user.ID, 10)).
		IssuedAt(now).
		Expiration(now.Add(t.ttl)).
		Claim("email", user.Email).
		Claim("role", string(user.Role)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256(), t.key))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return string(signed), nil
}

// Verify parses and validates a signed token and returns the identity it
// carries.
func (t *TokenIssuer) Verify(raw string) (*Identity, error) {
	token, err := jwt.Parse(
		[]byte(raw),
		jwt.WithKey(jwa.HS256(), t.key),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	subject, ok := token.Subject()
	if !ok || subject == "" {
		return nil, fmt.Errorf("token has no subject claim")
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("token subject is not a user id: %w", err)
	}

	var email string
	if err := token.Get("email", &email); err != nil {
		return nil, fmt.Errorf("token has no email claim: %w", err)
	}

	var role string
	if err := token.Get("role", &role); err != nil {
		return nil, fmt.Errorf("token has no role claim: %w", err)
	}

	return &Identity{
		UserID: userID,
		Email:  email,
		Role:   types.UserRole(role),
	}, nil
}
