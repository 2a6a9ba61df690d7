package clearance

import "github.com/golang-jwt/jwt/v5"

// PassClaims are the standard claims carried by a clearance pass. The
// subject is the digest of the captcha token the pass was earned with.
type PassClaims struct {
	jwt.RegisteredClaims
}
