package auth

import (
	"fmt"
	"maps"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ClaimUserID is the claim carrying the authenticated user's id.
const ClaimUserID = "user_id"

// DefaultTokenTTL is how long an issued access token stays valid.
const DefaultTokenTTL = 60 * time.Minute

var signingMethod = jwt.SigningMethodHS256

// TokenService issues and validates HS256 bearer tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption configures a TokenService.
type TokenOption func(*TokenService)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) TokenOption {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService creates a TokenService signing with secret. A non-positive ttl
// means DefaultTokenTTL.
func NewTokenService(secret []byte, ttl time.Duration, opts ...TokenOption) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	s := &TokenService{
		secret: secret,
		ttl:    ttl,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Issue signs claims together with an "exp" of now + ttl. The caller's map is not modified.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	mc := jwt.MapClaims{}
	maps.Copy(mc, claims)
	mc["exp"] = jwt.NewNumericDate(s.now().Add(s.ttl))

	token, err := jwt.NewWithClaims(signingMethod, mc).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// IssueForUser issues a token whose identity claim is userID.
func (s *TokenService) IssueForUser(userID string) (string, error) {
	return s.Issue(map[string]any{ClaimUserID: userID})
}

// Validate checks the signature and expiry of token and returns its user id.
// Every failure (malformed, tampered, wrong key, expired, missing claim) reports false.
func (s *TokenService) Validate(token string) (string, bool) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return "", false
	}

	userID, ok := claims[ClaimUserID].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}
