package clearance

import (
	"crypto/ecdsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
)

const AudienceClearance = "gatecheck:clearance"

// JWTIssuer implements the ClearanceIssuer interface using JWT
type JWTIssuer struct {
	signKey *ecdsa.PrivateKey
	ttl     time.Duration
}

// NewJWTIssuer creates a new JWT clearance issuer. A non-positive ttl
// falls back to the default clearance TTL.
func NewJWTIssuer(signKey *ecdsa.PrivateKey, ttl time.Duration) ports.ClearanceIssuer {
	if ttl <= 0 {
		ttl = core.DefaultClearanceTTL
	}
	return &JWTIssuer{signKey: signKey, ttl: ttl}
}

// Issue mints a signed pass for a verified token digest
func (j *JWTIssuer) Issue(tokenDigest string) (string, error) {
	now := time.Now()
	claims := PassClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   tokenDigest,
			ID:        uuid.New().String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Audience:  jwt.ClaimStrings{AudienceClearance},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodES256, claims)

	signedPass, err := token.SignedString(j.signKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign clearance pass: %w", err)
	}

	return signedPass, nil
}

// Check validates a pass signature, audience and expiry
func (j *JWTIssuer) Check(pass string) error {
	token, err := jwt.ParseWithClaims(pass, &PassClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Validate the signing method
		if _, ok := token.Method.(*jwt.SigningMethodECDSA); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return &j.signKey.PublicKey, nil
	}, jwt.WithAudience(AudienceClearance))

	if err != nil {
		return fmt.Errorf("failed to parse clearance pass: %w", err)
	}

	if !token.Valid {
		return core.ErrInvalidClearance
	}

	return nil
}

// ParseSigningKey decodes a PEM-encoded EC private key
func ParseSigningKey(pemKey string) (*ecdsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemKey))
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in clearance key")
	}

	key, err := x509.ParseECPrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse clearance key: %w", err)
	}

	return key, nil
}
