package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
	"github.com/layer-3/gatecheck/service"
)

const (
	// HeaderToken carries the captcha token on inbound requests
	HeaderToken = "X-Captcha-Token"

	// HeaderClearance carries a clearance pass, inbound and outbound
	HeaderClearance = "X-Captcha-Clearance"
)

// CaptchaGuard creates middleware that admits requests carrying a verified
// captcha token. A missing token or a rejected verification aborts with a
// fixed 403 payload. issuer may be nil; when set, a valid clearance pass
// bypasses verification and successful checks earn a fresh pass.
func CaptchaGuard(checker *service.Checker, issuer ports.ClearanceIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if issuer != nil {
			if pass := c.GetHeader(HeaderClearance); pass != "" {
				if err := issuer.Check(pass); err == nil {
					c.Next()
					return
				}
				// An invalid pass falls through to token verification
			}
		}

		token := c.GetHeader(HeaderToken)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "captcha_required"})
			return
		}

		if !checker.Check(c.Request.Context(), token) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "captcha_rejected"})
			return
		}

		if issuer != nil {
			if pass, err := issuer.Issue(core.TokenDigest(token)); err == nil {
				c.Header(HeaderClearance, pass)
			}
		}

		c.Next()
	}
}
