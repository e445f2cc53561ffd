package jwtx

import (
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/borgstromhq/borgcal/pkg/idx"
	"github.com/golang-jwt/jwt/v5"
)

// Codec signs and verifies session tokens with a single Ed25519 key pair.
type Codec struct {
	kid    string
	issuer string
	key    ed25519.PrivateKey
	pub    ed25519.PublicKey
}

// NewCodec generates an ephemeral Ed25519 key pair for the given issuer.
func NewCodec(issuer string) (*Codec, error) {
	pub, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("jwtx: generate key: %w", err)
	}

	return &Codec{
		kid:    idx.New().String(),
		issuer: issuer,
		key:    key,
		pub:    pub,
	}, nil
}

func (c *Codec) Alg() string { return jwt.SigningMethodEdDSA.Alg() }
func (c *Codec) KID() string { return c.kid }

// Sign turns claims into a signed compact JWT string.
func (c *Codec) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims)
	token.Header["kid"] = c.kid

	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify validates the JWT string and returns its parsed Claims.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}))

	token, err := parser.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		kid, _ := t.Header["kid"].(string)
		if kid != c.kid {
			return nil, fmt.Errorf("jwtx: unknown kid %q", kid)
		}
		return c.pub, nil
	})
	if err != nil {
		return nil, fmt.Errorf("jwtx: parse or verify: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("jwtx: invalid token claims")
	}

	if err := claims.ValidateIssuer(c.issuer); err != nil {
		return nil, err
	}

	return claims, nil
}
