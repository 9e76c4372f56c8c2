package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/openplate/foodshare-api/internal/core/domain"
)

// TokenService implements the session guard: it issues and verifies HS256
// signed identity tokens. There is no revocation list — a logout is purely
// the client discarding its credential, so issued tokens stay valid until
// natural expiry.
type TokenService struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewTokenService(secret string, tokenTTL time.Duration) *TokenService {
	if tokenTTL <= 0 {
		tokenTTL = 7 * 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), tokenTTL: tokenTTL}
}

// Issue signs a token embedding the identity claim for email. The claim is
// returned alongside the compact token so the transport layer can align the
// credential's lifetime with the token's expiry.
func (s *TokenService) Issue(email string) (string, *domain.IdentityClaim, error) {
	now := time.Now().UTC()
	claim := &domain.IdentityClaim{
		Email:     email,
		IssuedAt:  now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": claim.Email,
		"iat":   claim.IssuedAt.Unix(),
		"exp":   claim.ExpiresAt.Unix(),
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}
	return signed, claim, nil
}

// Verify checks signature and expiry and returns the embedded claim.
// Any parse, signature, or expiry failure maps to domain.ErrTokenInvalid.
func (s *TokenService) Verify(token string) (*domain.IdentityClaim, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return nil, domain.ErrTokenInvalid
	}

	claim := &domain.IdentityClaim{Email: email}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		claim.IssuedAt = iat.Time
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		claim.ExpiresAt = exp.Time
	}
	return claim, nil
}
