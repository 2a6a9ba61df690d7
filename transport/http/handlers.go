package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/layer-3/gatecheck/core"
	"github.com/layer-3/gatecheck/ports"
	"github.com/layer-3/gatecheck/service"
)

// CaptchaHandlers contains HTTP handlers for the verification endpoints
type CaptchaHandlers struct {
	checker *service.Checker
	issuer  ports.ClearanceIssuer
}

// NewCaptchaHandlers creates new captcha handlers. issuer may be nil.
func NewCaptchaHandlers(checker *service.Checker, issuer ports.ClearanceIssuer) *CaptchaHandlers {
	return &CaptchaHandlers{
		checker: checker,
		issuer:  issuer,
	}
}

// Verify handles an explicit verification request
func (h *CaptchaHandlers) Verify(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	ok := h.checker.Check(c.Request.Context(), req.Token)

	resp := gin.H{"ok": ok}
	if ok && h.issuer != nil {
		if pass, err := h.issuer.Issue(core.TokenDigest(req.Token)); err == nil {
			resp["clearance"] = pass
		}
	}

	c.JSON(http.StatusOK, resp)
}

// Health handles the health check endpoint
func (h *CaptchaHandlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Status handles the guarded status endpoint. Reaching it at all means the
// guard admitted the request.
func (h *CaptchaHandlers) Status(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"verified": true})
}
